package rod

import (
	"context"
	"log/slog"
	"time"

	"github.com/novelgrab/novelgrab"
)

// Ensure LoggingBrowser implements novelgrab.Browser.
var _ novelgrab.Browser = (*LoggingBrowser)(nil)

// LoggingBrowser wraps a Browser with debug logging. Sessions it opens are
// wrapped as well.
type LoggingBrowser struct {
	next   novelgrab.Browser
	logger *slog.Logger
}

// NewLoggingBrowser creates a new LoggingBrowser.
func NewLoggingBrowser(next novelgrab.Browser, logger *slog.Logger) *LoggingBrowser {
	return &LoggingBrowser{next: next, logger: logger}
}

// NewSession opens a session on the wrapped browser and wraps it with
// logging.
func (b *LoggingBrowser) NewSession(ctx context.Context) (novelgrab.Session, error) {
	session, err := b.next.NewSession(ctx)
	if err != nil {
		b.logger.Error("new session", "err", err)
		return nil, err
	}
	b.logger.Debug("new session")
	return &LoggingSession{next: session, logger: b.logger}, nil
}

// Close delegates to the wrapped browser.
func (b *LoggingBrowser) Close() error {
	return b.next.Close()
}

// Ensure LoggingSession implements novelgrab.Session.
var _ novelgrab.Session = (*LoggingSession)(nil)

// LoggingSession wraps a Session with debug logging.
type LoggingSession struct {
	next   novelgrab.Session
	logger *slog.Logger
}

// Navigate logs the navigation and delegates to the wrapped session.
func (s *LoggingSession) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Navigate(ctx, url)
}

// WaitFor delegates to the wrapped session and logs the outcome.
func (s *LoggingSession) WaitFor(ctx context.Context, selector string, timeout time.Duration) (err error) {
	defer func(begin time.Time) {
		s.logger.Debug("wait for element",
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.WaitFor(ctx, selector, timeout)
}

// ElementText delegates to the wrapped session.
func (s *LoggingSession) ElementText(selector string) (text string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("element text",
			"selector", selector,
			"chars", len(text),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ElementText(selector)
}

// ElementHTML delegates to the wrapped session.
func (s *LoggingSession) ElementHTML(selector string) (html string, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("element html",
			"selector", selector,
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ElementHTML(selector)
}

// Close delegates to the wrapped session.
func (s *LoggingSession) Close() error {
	return s.next.Close()
}
