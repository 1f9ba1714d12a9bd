package novelgrab

// Extractor isolates the main content of a full HTML page, removing
// boilerplate (nav, footer, sidebar, ads). It is used to refine whole-page
// captures when no content selector could be detected.
type Extractor interface {
	// Extract returns the main content as HTML. An empty result with a nil
	// error means no main content could be identified.
	Extract(html string) (string, error)
}
