package settings

import (
	"context"
	"sync"
)

// MemoryBackend keeps the record in process memory. Records are copied on the
// way in and out so callers cannot mutate the stored state.
type MemoryBackend struct {
	mu     sync.RWMutex
	record Record
	saves  int
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

// Load returns a copy of the stored record.
func (m *MemoryBackend) Load(ctx context.Context) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.record == nil {
		return nil, ErrNotFound
	}
	return m.record.Clone(), nil
}

// Save stores a copy of record.
func (m *MemoryBackend) Save(ctx context.Context, record Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if record == nil {
		record = make(Record)
	}
	m.record = record.Clone()
	m.saves++
	return nil
}

// Location returns "memory".
func (m *MemoryBackend) Location() string {
	return "memory"
}

// Saves reports how many times Save was called.
func (m *MemoryBackend) Saves() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.saves
}
