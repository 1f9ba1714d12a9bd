package novelgrab

// ArtifactWriter persists the combined output of a batch run.
// Results without content are skipped; the remaining results are written in
// order. When appendMode is true existing file content is preserved as a
// strict prefix of the new content.
type ArtifactWriter interface {
	WriteArtifact(results []*ScrapeResult, appendMode bool) error
}
