package main

import (
	"fmt"

	"github.com/novelgrab/novelgrab"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Scraping %d pages\n", len(c.URLs))

	progress := func(p novelgrab.ProgressEvent) {
		if p.Err != "" {
			fmt.Fprintf(deps.Stdout, "[%d/%d] %s: failed: %s\n", p.Position, p.Total, p.URL, p.Err)
			return
		}
		fmt.Fprintf(deps.Stdout, "[%d/%d] %s: ok\n", p.Position, p.Total, p.URL)
	}

	summary, err := deps.Runner.Run(deps.Ctx, c.URLs, c.Selector, c.Append, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error writing output: %v\n", err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d of %d pages to %s (%d failed)\n",
		summary.Succeeded, len(c.URLs), c.Output, summary.Failed)

	return nil
}
