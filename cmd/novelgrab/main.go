package main

import (
	"context"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/fs"
	"github.com/novelgrab/novelgrab/goquery"
	"github.com/novelgrab/novelgrab/htmltomarkdown"
	"github.com/novelgrab/novelgrab/robotstxt"
	"github.com/novelgrab/novelgrab/rod"
	"github.com/novelgrab/novelgrab/scrape"
	nslog "github.com/novelgrab/novelgrab/slog"
	"github.com/novelgrab/novelgrab/sqlite"
	"github.com/novelgrab/novelgrab/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("novelgrab"),
		kong.Description("Scrape rendered web pages into a combined text artifact"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle no arguments
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no arguments provided")
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	// Validate: exactly one URL source
	if cli.URL == "" && cli.URLFile == "" {
		return fmt.Errorf("either --url or --url-file is required")
	}
	if cli.URL != "" && cli.URLFile != "" {
		return fmt.Errorf("--url and --url-file are mutually exclusive")
	}

	level := stdslog.LevelInfo
	if cli.Verbose {
		level = stdslog.LevelDebug
	}
	logger := stdslog.New(stdslog.NewTextHandler(stderr, &stdslog.HandlerOptions{Level: level}))

	// Resolve the URL list before touching the browser so list errors fail fast.
	urls := []string{cli.URL}
	if cli.URLFile != "" {
		urls, err = fs.LoadURLs(cli.URLFile)
		if err != nil {
			return err
		}
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	runner := &scrape.Runner{
		Writer: fs.NewWriter(cli.Output),
		Logger: logger,
	}

	if cli.History != "" {
		db := sqlite.NewDB(cli.History)
		if err := db.Open(); err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		history := sqlite.NewHistoryService(db)
		defer history.Close()
		runner.History = history
	}

	if cli.CheckRobots {
		runner.Robots = robotstxt.NewChecker()
	}
	if cli.Rate > 0 {
		runner.Limiter = scrape.NewDomainLimiter(cli.Rate)
	}

	browser, err := rod.NewBrowser(rod.WithHeadless(cli.Headless))
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer browser.Close()

	var cleaner novelgrab.Cleaner
	switch cli.Format {
	case "markdown":
		cleaner = htmltomarkdown.NewCleaner()
	default:
		cleaner = goquery.NewCleaner()
	}

	scraper := &scrape.Scraper{
		Browser:          rod.NewLoggingBrowser(browser, logger),
		Cleaner:          cleaner,
		Detector:         &scrape.Detector{Logger: logger},
		Extractor:        trafilatura.NewExtractor(),
		Logger:           logger,
		Headless:         cli.Headless,
		ManualVerifyWait: cli.VerifyTime,
	}
	runner.Scraper = nslog.NewLoggingPageScraper(scraper, logger)

	deps.Runner = runner

	cmd := &ScrapeCmd{
		URLs:     urls,
		Selector: cli.Selector,
		Output:   cli.Output,
		Append:   cli.Append,
	}

	return cmd.Run(deps)
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL         string        `short:"u" help:"Single page URL to scrape"`
	URLFile     string        `short:"f" help:"Path to a URL list (text, JSON array, or sitemap XML)"`
	Selector    string        `short:"s" help:"CSS selector for the content region (auto-detected if empty)"`
	Output      string        `short:"o" default:"scraped_text.txt" help:"Output artifact path"`
	VerifyTime  time.Duration `default:"30s" help:"Pause after navigation for solving challenge pages by hand"`
	Headless    bool          `help:"Run the browser without a window (skips the verification pause)"`
	Append      bool          `short:"a" help:"Append to the output file instead of overwriting"`
	Format      string        `default:"text" enum:"text,markdown" help:"Output format"`
	History     string        `help:"Record runs in a SQLite database at this path"`
	CheckRobots bool          `help:"Skip URLs disallowed by the site's robots.txt"`
	Rate        float64       `help:"Max requests per second per domain (0 = unlimited)"`
	Verbose     bool          `short:"v" help:"Enable debug logging"`
}
