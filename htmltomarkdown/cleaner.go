// Package htmltomarkdown renders captured markup as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/novelgrab/novelgrab"
)

// Ensure Cleaner implements novelgrab.Cleaner at compile time.
var _ novelgrab.Cleaner = (*Cleaner)(nil)

// Cleaner is the Markdown output mode: it strips the same noise tags and
// hyperlinks as the plain-text cleaner, then converts the surviving markup
// to Markdown instead of applying line filtering.
type Cleaner struct {
	conv *converter.Converter
}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Cleaner{conv: conv}
}

// Clean converts the fragment to Markdown. Unparseable or unconvertible
// input yields an empty string, which callers treat as a failed capture.
func (c *Cleaner) Clean(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	doc.Find(strings.Join(novelgrab.NoiseTags, ", ")).Remove()
	doc.Find("a").Remove()

	body, err := doc.Find("body").Html()
	if err != nil || strings.TrimSpace(body) == "" {
		return ""
	}

	markdown, err := c.conv.ConvertString(body)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(markdown)
}
