package mock

import "github.com/novelgrab/novelgrab"

var _ novelgrab.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of novelgrab.Extractor.
type Extractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *Extractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
