package mock

import "github.com/novelgrab/novelgrab"

var _ novelgrab.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of novelgrab.Cleaner.
type Cleaner struct {
	CleanFn func(html string) string
}

func (c *Cleaner) Clean(html string) string {
	return c.CleanFn(html)
}
