package mock

import (
	"context"

	"github.com/novelgrab/novelgrab"
)

var _ novelgrab.RobotsChecker = (*RobotsChecker)(nil)

// RobotsChecker is a mock implementation of novelgrab.RobotsChecker.
type RobotsChecker struct {
	AllowedFn func(ctx context.Context, rawURL string) (bool, error)
}

func (c *RobotsChecker) Allowed(ctx context.Context, rawURL string) (bool, error) {
	return c.AllowedFn(ctx, rawURL)
}
