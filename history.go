package novelgrab

import (
	"context"
	"time"
)

// Run represents a recorded batch invocation.
type Run struct {
	ID        string
	StartedAt time.Time
	URLCount  int
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.ID == "" {
		return Errorf(EINVALID, "run ID required")
	}
	return nil
}

// HistoryStore records batch runs and their per-URL outcomes.
// Recording is best-effort from the orchestrator's point of view: store
// failures are logged, never fatal.
type HistoryStore interface {
	// CreateRun records the start of a batch run.
	CreateRun(ctx context.Context, run *Run) error

	// RecordResult records the outcome of one URL within a run.
	// Position is the URL's zero-based index in the input list.
	RecordResult(ctx context.Context, runID string, position int, result *ScrapeResult) error

	// Close releases the underlying storage.
	Close() error
}
