package fs

import (
	"os"
	"strings"

	"github.com/novelgrab/novelgrab"
)

// divider separates sections in the combined artifact.
const dividerWidth = 50

var divider = strings.Repeat("=", dividerWidth)

// Ensure Writer implements novelgrab.ArtifactWriter at compile time.
var _ novelgrab.ArtifactWriter = (*Writer)(nil)

// Writer writes the combined batch artifact to a single text file.
type Writer struct {
	path string
}

// NewWriter creates a Writer targeting the given path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteArtifact renders every successful result as a labeled section and
// writes the whole artifact in one call, overwriting or appending per
// appendMode. Results without content are skipped; the input order of the
// remaining results is preserved.
func (w *Writer) WriteArtifact(results []*novelgrab.ScrapeResult, appendMode bool) error {
	var sections []string
	for _, result := range results {
		if !result.Succeeded() {
			continue
		}
		sections = append(sections, "Source: "+result.URL+"\n\n"+result.Content)
	}

	var body string
	if len(sections) > 0 {
		body = strings.Join(sections, "\n\n"+divider+"\n\n") + "\n"
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(w.path, flags, 0644)
	if err != nil {
		return err
	}
	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
