// Package goquery provides HTML cleaning built on CSS-selector queries.
package goquery

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/novelgrab/novelgrab"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements novelgrab.Cleaner at compile time.
var _ novelgrab.Cleaner = (*Cleaner)(nil)

// DefaultNoiseMarkers are substrings that mark a line as advertising or
// site chrome rather than content. Matching is case-insensitive. The
// defaults are calibrated for web novel sites, which interleave chapter
// text with banner phrases and bare domain lines.
var DefaultNoiseMarkers = []string{
	"ad:",
	"hgame:",
	"本站发布页",
	"请勿使用非浏览器访问本站",
	"www.",
	"http",
	".com",
}

// defaultPunctuationRE matches lines consisting solely of punctuation or
// symbols: no letters, digits or whitespace in any script. Divider lines
// like "****" or "——" carry no content.
var defaultPunctuationRE = regexp.MustCompile(`^[^\p{L}\p{N}_\s]+$`)

// Cleaner converts an HTML fragment to line-oriented plain text with
// advertising noise removed. The zero value is not usable; use NewCleaner.
type Cleaner struct {
	markers     []string
	punctuation *regexp.Regexp
}

// CleanerOption configures a Cleaner.
type CleanerOption func(*Cleaner)

// WithNoiseMarkers replaces the default noise marker list.
func WithNoiseMarkers(markers []string) CleanerOption {
	return func(c *Cleaner) {
		c.markers = markers
	}
}

// WithPunctuationPattern replaces the pattern used to drop punctuation-only
// lines. Callers dealing with scripts the default misjudges can supply
// their own.
func WithPunctuationPattern(re *regexp.Regexp) CleanerOption {
	return func(c *Cleaner) {
		c.punctuation = re
	}
}

// NewCleaner creates a Cleaner with the given options.
func NewCleaner(opts ...CleanerOption) *Cleaner {
	c := &Cleaner{
		markers:     DefaultNoiseMarkers,
		punctuation: defaultPunctuationRE,
	}
	for _, opt := range opts {
		opt(c)
	}
	// Marker matching is case-insensitive; lowercase once up front.
	lowered := make([]string, len(c.markers))
	for i, m := range c.markers {
		lowered[i] = strings.ToLower(m)
	}
	c.markers = lowered
	return c
}

// Clean strips non-content tags and hyperlinks from the fragment, extracts
// the remaining text line by line, drops noise lines, and joins survivors
// with a blank line between paragraphs. An unparseable fragment or a
// fragment with no survivable lines yields an empty string.
func (c *Cleaner) Clean(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	doc.Find(strings.Join(novelgrab.NoiseTags, ", ")).Remove()
	// Hyperlinks on these sites are navigation and ads, never content.
	doc.Find("a").Remove()

	var lines []string
	for _, node := range doc.Nodes {
		collectText(node, &lines)
	}

	return c.filterLines(lines)
}

// Sanitize removes the same noise tags and hyperlinks as Clean but returns
// the surviving markup instead of text, for callers that render the content
// in a structured format.
func (c *Cleaner) Sanitize(rawHTML string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", novelgrab.Errorf(novelgrab.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(strings.Join(novelgrab.NoiseTags, ", ")).Remove()
	doc.Find("a").Remove()

	return doc.Find("body").Html()
}

// collectText appends the trimmed text of every text node in document
// order. One entry per text node preserves the paragraph boundaries the
// source markup conveys through block elements and <br> tags.
func collectText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		for _, part := range strings.Split(n.Data, "\n") {
			if t := strings.TrimSpace(part); t != "" {
				*lines = append(*lines, t)
			}
		}
		return
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		collectText(child, lines)
	}
}

// filterLines drops noise, empty and punctuation-only lines and joins the
// survivors with blank-line paragraph separators.
func (c *Cleaner) filterLines(lines []string) string {
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if c.isNoise(line) {
			continue
		}
		if c.punctuation.MatchString(line) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n\n")
}

func (c *Cleaner) isNoise(line string) bool {
	lower := strings.ToLower(line)
	for _, marker := range c.markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
