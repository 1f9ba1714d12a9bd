// Package fs provides file-based input and output for batch runs.
package fs

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/beevik/etree"
	"github.com/novelgrab/novelgrab"
)

// LoadURLs reads an ordered URL list from path. The format follows the file
// extension: .json is a JSON array of strings, .xml is a sitemap-style
// <urlset> document, anything else is one URL per line with blank lines and
// #-comments skipped. A missing, malformed or empty list is an EINVALID
// error; the batch must abort before any scraping starts.
func LoadURLs(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, novelgrab.Errorf(novelgrab.EINVALID, "reading url list: %v", err)
	}

	var urls []string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		urls, err = parseJSON(data)
	case ".xml":
		urls, err = parseSitemap(data)
	default:
		urls, err = parseLines(data)
	}
	if err != nil {
		return nil, err
	}

	if len(urls) == 0 {
		return nil, novelgrab.Errorf(novelgrab.EINVALID, "url list %s contains no URLs", path)
	}
	return urls, nil
}

func parseJSON(data []byte) ([]string, error) {
	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return nil, novelgrab.Errorf(novelgrab.EINVALID, "url list is not a JSON array of strings: %v", err)
	}
	return urls, nil
}

func parseSitemap(data []byte) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, novelgrab.Errorf(novelgrab.EINVALID, "url list is not valid XML: %v", err)
	}

	root := doc.Root()
	if root == nil || root.Tag != "urlset" {
		return nil, novelgrab.Errorf(novelgrab.EINVALID, "XML url list must be a sitemap <urlset>")
	}

	var urls []string
	for _, urlElement := range root.SelectElements("url") {
		loc := urlElement.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}

func parseLines(data []byte) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, novelgrab.Errorf(novelgrab.EINVALID, "reading url list: %v", err)
	}
	return urls, nil
}
