// Package slog provides logging decorators for domain services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/novelgrab/novelgrab"
)

// Ensure LoggingPageScraper implements novelgrab.PageScraper.
var _ novelgrab.PageScraper = (*LoggingPageScraper)(nil)

// LoggingPageScraper wraps a PageScraper with per-page timing logs.
type LoggingPageScraper struct {
	next   novelgrab.PageScraper
	logger *slog.Logger
}

// NewLoggingPageScraper creates a new LoggingPageScraper.
func NewLoggingPageScraper(next novelgrab.PageScraper, logger *slog.Logger) *LoggingPageScraper {
	return &LoggingPageScraper{next: next, logger: logger}
}

// ScrapePage delegates to the wrapped scraper and logs the outcome.
func (s *LoggingPageScraper) ScrapePage(ctx context.Context, url, selector string) (result *novelgrab.ScrapeResult) {
	defer func(begin time.Time) {
		s.logger.Info("scrape page",
			"url", url,
			"selector", result.Selector,
			"bytes", len(result.Content),
			"duration", time.Since(begin),
			"err", result.Err,
		)
	}(time.Now())
	return s.next.ScrapePage(ctx, url, selector)
}
