// Package memory provides an in-memory history store used when no database
// is configured, and by tests.
package memory

import (
	"context"
	"sync"

	"adhtc/ports"
)

// HistoryRepository keeps analysis records in memory, newest first.
type HistoryRepository struct {
	mu      sync.RWMutex
	records []*ports.AnalysisRecord
	cap     int
}

// NewHistoryRepository creates an in-memory history bounded to cap entries.
func NewHistoryRepository(cap int) *HistoryRepository {
	if cap <= 0 {
		cap = 100
	}
	return &HistoryRepository{cap: cap}
}

// Save appends one analysis run summary
func (r *HistoryRepository) Save(_ context.Context, record *ports.AnalysisRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append([]*ports.AnalysisRecord{record}, r.records...)
	if len(r.records) > r.cap {
		r.records = r.records[:r.cap]
	}
	return nil
}

// ListRecent returns up to limit records, most recent first
func (r *HistoryRepository) ListRecent(_ context.Context, limit int) ([]*ports.AnalysisRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]*ports.AnalysisRecord, limit)
	copy(out, r.records[:limit])
	return out, nil
}
