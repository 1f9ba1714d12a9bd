package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/novelgrab/novelgrab"
	"github.com/novelgrab/novelgrab/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() { db.Close() })
	return db
}

func TestHistoryService_CreateRun(t *testing.T) {
	t.Parallel()

	t.Run("persists run and assigns ID", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewHistoryService(db)

		run := &novelgrab.Run{URLCount: 3}
		err := s.CreateRun(context.Background(), run)
		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.False(t, run.StartedAt.IsZero())

		var count, urlCount int
		err = db.QueryRowContext(context.Background(),
			"SELECT COUNT(*), MAX(url_count) FROM runs WHERE id = ?", run.ID).Scan(&count, &urlCount)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
		assert.Equal(t, 3, urlCount)
	})

	t.Run("keeps caller-provided ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewHistoryService(db)

		started := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
		run := &novelgrab.Run{ID: "run-1", StartedAt: started, URLCount: 1}
		require.NoError(t, s.CreateRun(context.Background(), run))

		var storedAt string
		err := db.QueryRowContext(context.Background(),
			"SELECT started_at FROM runs WHERE id = ?", "run-1").Scan(&storedAt)
		require.NoError(t, err)
		assert.Equal(t, started.Format(time.RFC3339), storedAt)
	})
}

func TestHistoryService_RecordResult(t *testing.T) {
	t.Parallel()

	t.Run("persists success with content hash", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewHistoryService(db)
		ctx := context.Background()

		run := &novelgrab.Run{URLCount: 1}
		require.NoError(t, s.CreateRun(ctx, run))

		result := &novelgrab.ScrapeResult{
			URL:      "https://example.com/ch1",
			Content:  "chapter text",
			Selector: "div#content",
		}
		require.NoError(t, s.RecordResult(ctx, run.ID, 0, result))

		var url, selector, hash string
		var contentBytes, position int
		err := db.QueryRowContext(ctx, `
			SELECT url, selector, content_hash, content_bytes, position
			FROM results WHERE run_id = ?
		`, run.ID).Scan(&url, &selector, &hash, &contentBytes, &position)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/ch1", url)
		assert.Equal(t, "div#content", selector)
		assert.NotEmpty(t, hash)
		assert.Equal(t, len("chapter text"), contentBytes)
		assert.Equal(t, 0, position)
	})

	t.Run("persists failure with empty hash", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewHistoryService(db)
		ctx := context.Background()

		run := &novelgrab.Run{URLCount: 1}
		require.NoError(t, s.CreateRun(ctx, run))

		result := &novelgrab.ScrapeResult{
			URL: "https://example.com/ch2",
			Err: "navigation timeout",
		}
		require.NoError(t, s.RecordResult(ctx, run.ID, 1, result))

		var hash, errMsg string
		err := db.QueryRowContext(ctx,
			"SELECT content_hash, error FROM results WHERE run_id = ?", run.ID).Scan(&hash, &errMsg)
		require.NoError(t, err)
		assert.Empty(t, hash)
		assert.Equal(t, "navigation timeout", errMsg)
	})

	t.Run("identical content yields identical hashes", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewHistoryService(db)
		ctx := context.Background()

		run := &novelgrab.Run{URLCount: 2}
		require.NoError(t, s.CreateRun(ctx, run))

		for i, url := range []string{"https://example.com/a", "https://example.com/b"} {
			result := &novelgrab.ScrapeResult{URL: url, Content: "same text"}
			require.NoError(t, s.RecordResult(ctx, run.ID, i, result))
		}

		rows, err := db.QueryContext(ctx,
			"SELECT content_hash FROM results WHERE run_id = ? ORDER BY position", run.ID)
		require.NoError(t, err)
		defer rows.Close()

		var hashes []string
		for rows.Next() {
			var h string
			require.NoError(t, rows.Scan(&h))
			hashes = append(hashes, h)
		}
		require.NoError(t, rows.Err())
		require.Len(t, hashes, 2)
		assert.Equal(t, hashes[0], hashes[1])
	})

	t.Run("rejects missing run ID", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewHistoryService(db)

		err := s.RecordResult(context.Background(), "", 0, &novelgrab.ScrapeResult{URL: "https://example.com"})
		require.Error(t, err)
		assert.Equal(t, novelgrab.EINVALID, novelgrab.ErrorCode(err))
	})

	t.Run("rejects unknown run via foreign key", func(t *testing.T) {
		t.Parallel()

		db := mustOpenDB(t)
		s := sqlite.NewHistoryService(db)

		err := s.RecordResult(context.Background(), "no-such-run", 0,
			&novelgrab.ScrapeResult{URL: "https://example.com"})
		require.Error(t, err)
	})
}
