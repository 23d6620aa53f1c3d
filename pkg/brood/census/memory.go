package census

import (
	"sort"
	"sync"
)

// MemoryStore is an in-memory census store.
// Data is lost when the process exits.
type MemoryStore struct {
	mu     sync.RWMutex
	data   map[string]map[int]Entry // runID -> sequence -> entry
	closed bool
}

// NewMemoryStore creates a new in-memory census store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string]map[int]Entry),
	}
}

// Record implements Store.
func (m *MemoryStore) Record(e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrStoreClosed
	}

	run := m.data[e.RunID]
	if run == nil {
		run = make(map[int]Entry)
		m.data[e.RunID] = run
	}
	if _, ok := run[e.Sequence]; ok {
		return ErrDuplicateEntry
	}
	run[e.Sequence] = stamp(e)
	return nil
}

// List implements Store.
func (m *MemoryStore) List(runID string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.closed {
		return nil, ErrStoreClosed
	}

	run := m.data[runID]
	entries := make([]Entry, 0, len(run))
	for _, e := range run {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Sequence < entries[j].Sequence
	})
	return entries, nil
}

// Close implements Store.
func (m *MemoryStore) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.data = nil
	return nil
}
