package novelgrab

import "context"

// RobotsChecker reports whether a URL may be fetched under the target
// site's robots.txt policy.
type RobotsChecker interface {
	Allowed(ctx context.Context, rawURL string) (bool, error)
}
