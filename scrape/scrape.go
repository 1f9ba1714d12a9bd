package scrape

import (
	"context"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/novelgrab/novelgrab"
)

// Ensure Scraper implements novelgrab.PageScraper at compile time.
var _ novelgrab.PageScraper = (*Scraper)(nil)

// Default timings mirror the operator workflow: a fixed window for solving
// a challenge page by hand, a settle pause for late-loading content, and a
// bounded wait for the content region to appear.
const (
	DefaultManualVerifyWait = 30 * time.Second
	DefaultSettleWait       = 3 * time.Second
	DefaultElementWait      = 10 * time.Second
	DefaultMinViableLength  = 200
)

// Scraper captures the readable content of single pages through a browser
// session. Each ScrapePage call owns one session for its full duration and
// releases it on every exit path.
type Scraper struct {
	Browser   novelgrab.Browser
	Cleaner   novelgrab.Cleaner
	Detector  *Detector
	Extractor novelgrab.Extractor // optional; refines whole-page captures
	Logger    *slog.Logger

	// Headless skips the manual verification window; there is nobody
	// watching the browser who could solve a challenge.
	Headless         bool
	ManualVerifyWait time.Duration
	SettleWait       time.Duration
	ElementWait      time.Duration
	MinViableLength  int
}

// ScrapePage navigates to the URL, locates the content region (detecting a
// selector when none is given), and returns the cleaned text. Any error
// between navigation and cleaning terminates only this URL's attempt and is
// recorded in the result's Err field.
func (s *Scraper) ScrapePage(ctx context.Context, url, selector string) *novelgrab.ScrapeResult {
	result := &novelgrab.ScrapeResult{URL: url}

	session, err := s.Browser.NewSession(ctx)
	if err != nil {
		result.Err = err.Error()
		return result
	}
	defer func() {
		if err := session.Close(); err != nil {
			s.logger().Warn("closing session", "url", url, "err", err)
		}
	}()

	content, used, err := s.capture(ctx, session, url, selector)
	if err != nil {
		result.Err = err.Error()
		result.Selector = used
		return result
	}

	result.Content = content
	result.Selector = used
	return result
}

func (s *Scraper) capture(ctx context.Context, session novelgrab.Session, url, selector string) (string, string, error) {
	if err := session.Navigate(ctx, url); err != nil {
		return "", selector, err
	}
	s.logger().Info("visiting", "url", url)

	if !s.Headless {
		wait := s.ManualVerifyWait
		if wait <= 0 {
			wait = DefaultManualVerifyWait
		}
		s.logger().Info("waiting for manual verification", "window", wait)
		if err := sleep(ctx, wait); err != nil {
			return "", selector, err
		}
	}

	settle := s.SettleWait
	if settle <= 0 {
		settle = DefaultSettleWait
	}
	if err := sleep(ctx, settle); err != nil {
		return "", selector, err
	}

	if selector == "" {
		selector = s.detector().Detect(ctx, session)
	}

	elementWait := s.ElementWait
	if elementWait <= 0 {
		elementWait = DefaultElementWait
	}
	if err := session.WaitFor(ctx, selector, elementWait); err != nil {
		// Non-fatal: extract whatever is present.
		s.logger().Warn("content region did not appear in time", "url", url, "selector", selector, "err", err)
	}

	markup, err := session.ElementHTML(selector)
	if err != nil {
		return "", selector, err
	}

	// A whole-page capture carries nav, footers and ads; let the content
	// extractor isolate the article before cleaning.
	if selector == FallbackSelector && s.Extractor != nil {
		refined, err := s.Extractor.Extract(markup)
		if err != nil {
			s.logger().Debug("content isolation failed, using full page", "url", url, "err", err)
		} else if refined != "" {
			markup = refined
		}
	}

	content := s.Cleaner.Clean(markup)

	minViable := s.MinViableLength
	if minViable <= 0 {
		minViable = DefaultMinViableLength
	}
	if length := utf8.RuneCountInString(content); length < minViable {
		s.logger().Warn("capture may be incomplete", "url", url, "length", length)
	}

	return content, selector, nil
}

func (s *Scraper) detector() *Detector {
	if s.Detector != nil {
		return s.Detector
	}
	return &Detector{Logger: s.Logger}
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}

// sleep blocks for d or until ctx is done, whichever comes first.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
