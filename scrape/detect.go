// Package scrape provides single-page scraping and batch orchestration.
// It coordinates browser sessions, content-region detection, cleaning, and
// artifact output for an ordered list of URLs.
package scrape

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"github.com/andybalholm/cascadia"
	"github.com/novelgrab/novelgrab"
)

// DefaultCandidates lists content-region selectors in priority order, most
// specific first, calibrated for common novel-site templates.
var DefaultCandidates = []string{
	"div#content",
	"div#contenta",
	"div.novelcontent",
	"div.read-content",
	"div.article-content",
}

// DefaultMinContentLength is the text length (in runes) a candidate's first
// match must exceed to be accepted.
const DefaultMinContentLength = 500

// FallbackSelector captures the whole page when no candidate qualifies.
const FallbackSelector = "body"

// Detector probes a live page for the selector of its main content region.
// The zero value uses the default candidate list and threshold.
type Detector struct {
	Candidates []string
	MinLength  int
	Logger     *slog.Logger
}

// Detect returns the first candidate selector whose first match carries
// enough text, or FallbackSelector when none does. Lookup failures on
// individual candidates are non-fatal and advance to the next candidate.
func (d *Detector) Detect(ctx context.Context, session novelgrab.Session) string {
	candidates := d.Candidates
	if candidates == nil {
		candidates = DefaultCandidates
	}
	minLength := d.MinLength
	if minLength <= 0 {
		minLength = DefaultMinContentLength
	}

	for _, selector := range candidates {
		if ctx.Err() != nil {
			break
		}

		// Reject malformed candidates without a browser round trip.
		if _, err := cascadia.Parse(selector); err != nil {
			d.logger().Debug("skipping malformed candidate selector", "selector", selector, "err", err)
			continue
		}

		text, err := session.ElementText(selector)
		if err != nil {
			continue
		}
		if length := utf8.RuneCountInString(text); length > minLength {
			d.logger().Info("detected content selector", "selector", selector, "length", length)
			return selector
		}
	}

	d.logger().Info("no content selector detected, using fallback", "selector", FallbackSelector)
	return FallbackSelector
}

func (d *Detector) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}
