package mock

import "github.com/novelgrab/novelgrab"

var _ novelgrab.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of novelgrab.ArtifactWriter.
type ArtifactWriter struct {
	WriteArtifactFn func(results []*novelgrab.ScrapeResult, appendMode bool) error
}

func (w *ArtifactWriter) WriteArtifact(results []*novelgrab.ScrapeResult, appendMode bool) error {
	return w.WriteArtifactFn(results, appendMode)
}
