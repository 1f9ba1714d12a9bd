// Package mock provides function-field test doubles for the domain
// interfaces.
package mock

import (
	"context"
	"time"

	"github.com/novelgrab/novelgrab"
)

var _ novelgrab.Session = (*Session)(nil)

// Session is a mock implementation of novelgrab.Session.
type Session struct {
	NavigateFn    func(ctx context.Context, url string) error
	WaitForFn     func(ctx context.Context, selector string, timeout time.Duration) error
	ElementTextFn func(selector string) (string, error)
	ElementHTMLFn func(selector string) (string, error)
	CloseFn       func() error
}

func (s *Session) Navigate(ctx context.Context, url string) error {
	return s.NavigateFn(ctx, url)
}

func (s *Session) WaitFor(ctx context.Context, selector string, timeout time.Duration) error {
	return s.WaitForFn(ctx, selector, timeout)
}

func (s *Session) ElementText(selector string) (string, error) {
	return s.ElementTextFn(selector)
}

func (s *Session) ElementHTML(selector string) (string, error) {
	return s.ElementHTMLFn(selector)
}

func (s *Session) Close() error {
	return s.CloseFn()
}
