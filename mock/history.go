package mock

import (
	"context"

	"github.com/novelgrab/novelgrab"
)

var _ novelgrab.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is a mock implementation of novelgrab.HistoryStore.
type HistoryStore struct {
	CreateRunFn    func(ctx context.Context, run *novelgrab.Run) error
	RecordResultFn func(ctx context.Context, runID string, position int, result *novelgrab.ScrapeResult) error
	CloseFn        func() error
}

func (s *HistoryStore) CreateRun(ctx context.Context, run *novelgrab.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *HistoryStore) RecordResult(ctx context.Context, runID string, position int, result *novelgrab.ScrapeResult) error {
	return s.RecordResultFn(ctx, runID, position, result)
}

func (s *HistoryStore) Close() error {
	return s.CloseFn()
}
