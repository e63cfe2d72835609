package cachestore

import "sync"

// MemoryStore is an in-memory implementation of the Store interface.
// It uses a map for storage and provides thread-safe operations via RWMutex.
//
// This adapter holds entries without any persistence; the mapping lives
// only for the duration of the process. It exists so the fetcher and
// pipeline can be exercised without filesystem side effects.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// NewMemoryStore creates a new in-memory store, initialized empty.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
	}
}

// Get retrieves an entry by key.
// Returns the entry and true if the key exists, or a zero entry and
// false if not.
func (s *MemoryStore) Get(key string) (Entry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, exists := s.entries[key]
	return entry, exists
}

// Put stores the entry under key. An existing entry is overwritten.
// Never fails; the error return satisfies the Store port.
func (s *MemoryStore) Put(key string, entry Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = entry
	return nil
}

// Clear removes all entries. Primarily useful for testing.
func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]Entry)
}

// Len returns the number of entries.
// Primarily useful for testing and diagnostics.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
