package novelgrab_test

import (
	"testing"

	"github.com/novelgrab/novelgrab"
	"github.com/stretchr/testify/assert"
)

func TestScrapeResult_Succeeded(t *testing.T) {
	t.Parallel()

	t.Run("non-empty content succeeds", func(t *testing.T) {
		t.Parallel()
		r := &novelgrab.ScrapeResult{URL: "https://example.com", Content: "chapter text"}
		assert.True(t, r.Succeeded())
	})

	t.Run("error result fails", func(t *testing.T) {
		t.Parallel()
		r := &novelgrab.ScrapeResult{URL: "https://example.com", Err: "navigation failed"}
		assert.False(t, r.Succeeded())
	})

	t.Run("empty content without error still fails", func(t *testing.T) {
		t.Parallel()
		r := &novelgrab.ScrapeResult{URL: "https://example.com"}
		assert.False(t, r.Succeeded())
	})
}

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	t.Run("requires ID", func(t *testing.T) {
		t.Parallel()
		run := &novelgrab.Run{}
		err := run.Validate()
		assert.Equal(t, novelgrab.EINVALID, novelgrab.ErrorCode(err))
	})

	t.Run("valid run", func(t *testing.T) {
		t.Parallel()
		run := &novelgrab.Run{ID: "run-1"}
		assert.NoError(t, run.Validate())
	})
}
