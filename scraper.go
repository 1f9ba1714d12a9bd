package novelgrab

import "context"

// PageScraper captures the readable content of a single URL.
// Implementations never return nil and never propagate per-page errors;
// failures are recorded in the result's Err field.
type PageScraper interface {
	ScrapePage(ctx context.Context, url, selector string) *ScrapeResult
}
