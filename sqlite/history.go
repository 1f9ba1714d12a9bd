package sqlite

import (
	"context"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/novelgrab/novelgrab"
)

// Compile-time interface verification.
var _ novelgrab.HistoryStore = (*HistoryService)(nil)

// HistoryService implements novelgrab.HistoryStore using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// hashContent computes xxHash of content and returns hex string.
func hashContent(content string) string {
	h := xxhash.Sum64String(content)
	b := make([]byte, 8)
	b[0] = byte(h >> 56)
	b[1] = byte(h >> 48)
	b[2] = byte(h >> 40)
	b[3] = byte(h >> 32)
	b[4] = byte(h >> 24)
	b[5] = byte(h >> 16)
	b[6] = byte(h >> 8)
	b[7] = byte(h)
	return hex.EncodeToString(b)
}

// CreateRun records the start of a batch run.
func (s *HistoryService) CreateRun(ctx context.Context, run *novelgrab.Run) error {
	if run.ID == "" {
		run.ID = uuid.New().String()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	if err := run.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, url_count)
		VALUES (?, ?, ?)
	`, run.ID, run.StartedAt.Format(time.RFC3339), run.URLCount)

	return err
}

// RecordResult records the outcome of one URL within a run.
func (s *HistoryService) RecordResult(ctx context.Context, runID string, position int, result *novelgrab.ScrapeResult) error {
	if runID == "" {
		return novelgrab.Errorf(novelgrab.EINVALID, "run ID required")
	}
	if result == nil {
		return novelgrab.Errorf(novelgrab.EINVALID, "result required")
	}

	var hash string
	if result.Content != "" {
		hash = hashContent(result.Content)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results (id, run_id, position, url, selector, content_hash, content_bytes, error, fetched_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, uuid.New().String(), runID, position, result.URL, result.Selector, hash,
		len(result.Content), result.Err, time.Now().UTC().Format(time.RFC3339))

	return err
}

// Close closes the underlying database.
func (s *HistoryService) Close() error {
	return s.db.Close()
}
