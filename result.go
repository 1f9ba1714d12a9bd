package novelgrab

// ScrapeResult holds the outcome of scraping a single URL.
// Exactly one of Content and Err carries the meaningful outcome: non-empty
// Content marks success, non-empty Err records why the attempt failed. Both
// may be empty when extraction legitimately produced no text. Results are
// created once by the page scraper and never mutated afterwards.
type ScrapeResult struct {
	URL      string
	Content  string
	Selector string
	Err      string
}

// Succeeded reports whether the scrape produced usable content.
func (r *ScrapeResult) Succeeded() bool {
	return r.Content != ""
}

// BatchSummary aggregates the results of a batch run. Results preserve the
// input URL order regardless of individual failures, so the combined
// artifact is reproducible and traceable to its source list.
type BatchSummary struct {
	Results   []*ScrapeResult
	Succeeded int
	Failed    int
}

// ProgressEvent reports per-URL progress during a batch run.
// Position is 1-based.
type ProgressEvent struct {
	URL      string
	Position int
	Total    int
	Selector string
	Err      string
}

// ProgressFunc is called after each URL is processed.
type ProgressFunc func(ProgressEvent)
