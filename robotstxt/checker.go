// Package robotstxt checks URLs against site robots.txt policies.
package robotstxt

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/novelgrab/novelgrab"
	robots "github.com/temoto/robotstxt"
)

// DefaultUserAgent is the agent name matched against robots.txt rules.
const DefaultUserAgent = "novelgrab"

// Ensure Checker implements novelgrab.RobotsChecker at compile time.
var _ novelgrab.RobotsChecker = (*Checker)(nil)

// Checker fetches and caches robots.txt per host. A host's policy is
// fetched once and reused for every URL on that host within the run.
type Checker struct {
	client    *http.Client
	userAgent string

	mu    sync.Mutex
	cache map[string]*robots.RobotsData
}

// CheckerOption configures a Checker.
type CheckerOption func(*Checker)

// WithUserAgent overrides the agent name used for rule matching.
func WithUserAgent(agent string) CheckerOption {
	return func(c *Checker) {
		c.userAgent = agent
	}
}

// WithHTTPClient overrides the HTTP client used to fetch robots.txt.
func WithHTTPClient(client *http.Client) CheckerOption {
	return func(c *Checker) {
		c.client = client
	}
}

// NewChecker creates a new Checker.
func NewChecker(opts ...CheckerOption) *Checker {
	c := &Checker{
		client:    http.DefaultClient,
		userAgent: DefaultUserAgent,
		cache:     make(map[string]*robots.RobotsData),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Allowed reports whether the URL may be fetched. Fetch or parse failures
// return an error so the caller can decide whether to proceed anyway.
func (c *Checker) Allowed(ctx context.Context, rawURL string) (bool, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false, novelgrab.Errorf(novelgrab.EINVALID, "invalid URL %q", rawURL)
	}
	if u.Scheme == "" || u.Host == "" {
		return false, novelgrab.Errorf(novelgrab.EINVALID, "URL %q missing scheme or host", rawURL)
	}

	data, err := c.policyFor(ctx, u)
	if err != nil {
		return false, err
	}

	path := u.Path
	if path == "" {
		path = "/"
	}
	return data.TestAgent(path, c.userAgent), nil
}

// policyFor returns the cached robots.txt policy for the URL's host,
// fetching it on first use.
func (c *Checker) policyFor(ctx context.Context, u *url.URL) (*robots.RobotsData, error) {
	key := u.Scheme + "://" + u.Host

	c.mu.Lock()
	data, ok := c.cache[key]
	c.mu.Unlock()
	if ok {
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, key+"/robots.txt", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build robots.txt request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch robots.txt for %s: %w", u.Host, err)
	}
	defer resp.Body.Close()

	data, err = robots.FromResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse robots.txt for %s: %w", u.Host, err)
	}

	c.mu.Lock()
	c.cache[key] = data
	c.mu.Unlock()

	return data, nil
}
