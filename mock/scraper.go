package mock

import (
	"context"

	"github.com/novelgrab/novelgrab"
)

var _ novelgrab.PageScraper = (*PageScraper)(nil)

// PageScraper is a mock implementation of novelgrab.PageScraper.
type PageScraper struct {
	ScrapePageFn func(ctx context.Context, url, selector string) *novelgrab.ScrapeResult
}

func (s *PageScraper) ScrapePage(ctx context.Context, url, selector string) *novelgrab.ScrapeResult {
	return s.ScrapePageFn(ctx, url, selector)
}
