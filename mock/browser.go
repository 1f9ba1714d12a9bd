package mock

import (
	"context"

	"github.com/novelgrab/novelgrab"
)

var _ novelgrab.Browser = (*Browser)(nil)

// Browser is a mock implementation of novelgrab.Browser.
type Browser struct {
	NewSessionFn func(ctx context.Context) (novelgrab.Session, error)
	CloseFn      func() error
}

func (b *Browser) NewSession(ctx context.Context) (novelgrab.Session, error) {
	return b.NewSessionFn(ctx)
}

func (b *Browser) Close() error {
	return b.CloseFn()
}
