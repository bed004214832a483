package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"colloquy-hq/colloquy/pkg/archive"
)

// Memory is an in-memory storage backend. It is intended for tests and for
// runs where persistence is disabled but the run pipeline still wants a
// Storage to talk to. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	records map[string]*archive.RunRecord
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{records: make(map[string]*archive.RunRecord)}
}

// Store persists one run record.
func (m *Memory) Store(_ context.Context, rec *archive.RunRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[rec.ID] = rec
	return nil
}

// Get fetches one run by identifier.
func (m *Memory) Get(_ context.Context, id string) (*archive.RunRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[id]
	if !ok {
		return nil, &archive.NotFoundError{ID: id}
	}
	return rec, nil
}

// Query lists runs matching the query, newest first.
func (m *Memory) Query(_ context.Context, q archive.Query) ([]*archive.RunRecord, error) {
	m.mu.RLock()
	matched := make([]*archive.RunRecord, 0, len(m.records))
	for _, rec := range m.records {
		if q.Source != "" && rec.Source != q.Source {
			continue
		}
		if !q.Since.IsZero() && rec.RecordedAt.Before(q.Since) {
			continue
		}
		if !q.Until.IsZero() && !rec.RecordedAt.Before(q.Until) {
			continue
		}
		matched = append(matched, rec)
	}
	m.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].RecordedAt.Equal(matched[j].RecordedAt) {
			return matched[i].RecordedAt.After(matched[j].RecordedAt)
		}
		return matched[i].ID < matched[j].ID
	})

	if q.Offset > 0 {
		if q.Offset >= len(matched) {
			return nil, nil
		}
		matched = matched[q.Offset:]
	}
	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}
	return matched, nil
}

// Count reports the number of stored runs.
func (m *Memory) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records), nil
}

// Delete removes one run by identifier.
func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[id]; !ok {
		return &archive.NotFoundError{ID: id}
	}
	delete(m.records, id)
	return nil
}

// DeleteOlderThan removes runs recorded before the cutoff.
func (m *Memory) DeleteOlderThan(_ context.Context, cutoff time.Time) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	removed := 0
	for id, rec := range m.records {
		if rec.RecordedAt.Before(cutoff) {
			delete(m.records, id)
			removed++
		}
	}
	return removed, nil
}

// Close is a no-op for the in-memory backend.
func (m *Memory) Close() error { return nil }
