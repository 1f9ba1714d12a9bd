// Package rod drives Chrome through go-rod to fetch rendered pages.
package rod

import (
	"context"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/novelgrab/novelgrab"
)

// Ensure Browser implements novelgrab.Browser at compile time.
var _ novelgrab.Browser = (*Browser)(nil)

// Browser launches and owns a Chrome process. Sessions are tabs; the batch
// runner opens and closes them one at a time.
type Browser struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
}

// BrowserOption configures a Browser.
type BrowserOption func(*browserConfig)

type browserConfig struct {
	headless bool
}

// WithHeadless controls whether the browser window is shown. A visible
// browser lets an operator solve challenge pages during the manual
// verification window.
func WithHeadless(headless bool) BrowserOption {
	return func(cfg *browserConfig) {
		cfg.headless = headless
	}
}

// NewBrowser launches Chrome and connects to it. Close must be called when
// the Browser is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewBrowser(opts ...BrowserOption) (*Browser, error) {
	cfg := browserConfig{headless: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	lnchr := launcher.New().
		Set("disable-gpu").
		Set("no-sandbox").
		Leakless(true).
		Headless(cfg.headless)

	u, err := lnchr.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	return &Browser{browser: browser, launcher: lnchr}, nil
}

// NewSession opens a fresh page bound to ctx.
func (b *Browser) NewSession(ctx context.Context) (novelgrab.Session, error) {
	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	return &Session{page: page.Context(ctx)}, nil
}

// Close shuts down the browser and its launcher process.
func (b *Browser) Close() error {
	err := b.browser.Close()
	if b.launcher != nil {
		b.launcher.Kill()
	}
	return err
}

// Ensure Session implements novelgrab.Session at compile time.
var _ novelgrab.Session = (*Session)(nil)

// Session wraps a single browser tab.
type Session struct {
	page *rod.Page
}

// Navigate loads the URL and waits for the page load event.
func (s *Session) Navigate(ctx context.Context, url string) error {
	page := s.page.Context(ctx)
	if err := page.Navigate(url); err != nil {
		return err
	}
	return page.WaitLoad()
}

// WaitFor blocks until an element matching the selector appears or the
// timeout elapses.
func (s *Session) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	page := s.page.Context(ctx).Timeout(timeout)
	return page.WaitElementsMoreThan(selector, 0)
}

// ElementText returns the visible text of the first element matching the
// selector.
func (s *Session) ElementText(selector string) (string, error) {
	element, err := s.first(selector)
	if err != nil {
		return "", err
	}
	return element.Text()
}

// ElementHTML returns the inner markup of the first element matching the
// selector.
func (s *Session) ElementHTML(selector string) (string, error) {
	element, err := s.first(selector)
	if err != nil {
		return "", err
	}
	obj, err := element.Eval(`() => this.innerHTML`)
	if err != nil {
		return "", err
	}
	return obj.Value.Str(), nil
}

// Close releases the page. The original page reference is used, not the
// context-bound clone, so cleanup succeeds after the request context
// expires.
func (s *Session) Close() error {
	return s.page.Close()
}

func (s *Session) first(selector string) (*rod.Element, error) {
	elements, err := s.page.Elements(selector)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, novelgrab.Errorf(novelgrab.ENOTFOUND, "no element matches %q", selector)
	}
	return elements.First(), nil
}
