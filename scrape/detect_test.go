package scrape_test

import (
	"context"
	"strings"
	"testing"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/mock"
	"github.com/novelgrab/novelgrab/scrape"
	"github.com/stretchr/testify/assert"
)

func TestDetector_Detect(t *testing.T) {
	t.Parallel()

	t.Run("returns first candidate exceeding the threshold", func(t *testing.T) {
		t.Parallel()

		var probed []string
		session := &mock.Session{
			ElementTextFn: func(selector string) (string, error) {
				probed = append(probed, selector)
				if selector == "div.novelcontent" {
					return strings.Repeat("字", 600), nil
				}
				return "", novelgrab.Errorf(novelgrab.ENOTFOUND, "no element matches %q", selector)
			},
		}

		d := &scrape.Detector{}
		got := d.Detect(context.Background(), session)

		assert.Equal(t, "div.novelcontent", got)
		assert.Equal(t, []string{"div#content", "div#contenta", "div.novelcontent"}, probed,
			"detection should stop at the first qualifying candidate")
	})

	t.Run("candidate with short content is skipped", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			ElementTextFn: func(selector string) (string, error) {
				if selector == "div#content" {
					return "too short", nil
				}
				if selector == "div#contenta" {
					return strings.Repeat("a", 501), nil
				}
				return "", novelgrab.Errorf(novelgrab.ENOTFOUND, "no match")
			},
		}

		d := &scrape.Detector{}
		got := d.Detect(context.Background(), session)

		assert.Equal(t, "div#contenta", got)
	})

	t.Run("falls back to body when nothing qualifies", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			ElementTextFn: func(selector string) (string, error) {
				return "", novelgrab.Errorf(novelgrab.ENOTFOUND, "no match")
			},
		}

		d := &scrape.Detector{}
		got := d.Detect(context.Background(), session)

		assert.Equal(t, scrape.FallbackSelector, got)
	})

	t.Run("lookup failures advance to the next candidate", func(t *testing.T) {
		t.Parallel()

		session := &mock.Session{
			ElementTextFn: func(selector string) (string, error) {
				if selector == "div#content" {
					return "", novelgrab.Errorf(novelgrab.EUNAVAILABLE, "session crashed")
				}
				return strings.Repeat("x", 600), nil
			},
		}

		d := &scrape.Detector{}
		got := d.Detect(context.Background(), session)

		assert.Equal(t, "div#contenta", got)
	})

	t.Run("malformed candidates are skipped without probing the page", func(t *testing.T) {
		t.Parallel()

		var probed []string
		session := &mock.Session{
			ElementTextFn: func(selector string) (string, error) {
				probed = append(probed, selector)
				return strings.Repeat("x", 600), nil
			},
		}

		d := &scrape.Detector{
			Candidates: []string{"div[unclosed", "div#content"},
		}
		got := d.Detect(context.Background(), session)

		assert.Equal(t, "div#content", got)
		assert.Equal(t, []string{"div#content"}, probed)
	})

	t.Run("threshold is measured in runes", func(t *testing.T) {
		t.Parallel()

		// 201 CJK characters are ~600 bytes but only 201 runes.
		session := &mock.Session{
			ElementTextFn: func(selector string) (string, error) {
				return strings.Repeat("字", 201), nil
			},
		}

		d := &scrape.Detector{MinLength: 200}
		got := d.Detect(context.Background(), session)

		assert.Equal(t, "div#content", got)
	})

	t.Run("canceled context falls back immediately", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		session := &mock.Session{
			ElementTextFn: func(selector string) (string, error) {
				t.Fatal("should not probe with canceled context")
				return "", nil
			},
		}

		d := &scrape.Detector{}
		got := d.Detect(ctx, session)

		assert.Equal(t, scrape.FallbackSelector, got)
	})
}
