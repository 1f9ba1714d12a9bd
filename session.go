package novelgrab

import (
	"context"
	"time"
)

// Session is a single live browser page. A session is owned by exactly one
// scrape attempt at a time and must be closed on every exit path.
type Session interface {
	// Navigate loads the URL and waits for the page load event.
	Navigate(ctx context.Context, url string) error

	// WaitFor blocks until at least one element matching the selector is
	// present or the timeout elapses.
	WaitFor(ctx context.Context, selector string, timeout time.Duration) error

	// ElementText returns the visible text of the first element matching
	// the selector. Returns ENOTFOUND if nothing matches.
	ElementText(selector string) (string, error)

	// ElementHTML returns the inner markup of the first element matching
	// the selector. Returns ENOTFOUND if nothing matches.
	ElementHTML(selector string) (string, error)

	// Close releases the page.
	Close() error
}

// Browser opens browser sessions. Implementations may drive a real browser
// process to handle JavaScript-rendered content.
type Browser interface {
	// NewSession opens a fresh page bound to ctx.
	NewSession(ctx context.Context) (Session, error)

	// Close shuts down the browser process.
	// Must be called when the Browser is no longer needed.
	Close() error
}
