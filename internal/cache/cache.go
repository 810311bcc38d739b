package cache

import (
	"sync"
	"time"
)

// Snapshot holds the payload from the most recent successful upstream fetch.
type Snapshot struct {
	Payload   []byte
	FetchedAt time.Time
}

// Fresh reports whether the snapshot is younger than ttl at the given instant.
// A snapshot exactly ttl old is stale.
func (s Snapshot) Fresh(now time.Time, ttl time.Duration) bool {
	return now.Sub(s.FetchedAt) < ttl
}

// Store defines the behaviour required for keeping the player snapshot.
type Store interface {
	Get() (Snapshot, bool)
	Replace(payload []byte, fetchedAt time.Time)
}

// MemoryStore is a mutex-guarded in-memory implementation of Store holding a
// single snapshot. The snapshot is replaced wholesale, never patched, so a
// reader always sees a complete payload from one fetch.
type MemoryStore struct {
	mu   sync.RWMutex
	snap Snapshot
	set  bool
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get returns the current snapshot. It reports false until the first Replace.
func (s *MemoryStore) Get() (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.set {
		return Snapshot{}, false
	}
	return s.snap, true
}

// Replace swaps in a new snapshot.
func (s *MemoryStore) Replace(payload []byte, fetchedAt time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snap = Snapshot{Payload: payload, FetchedAt: fetchedAt}
	s.set = true
}

var _ Store = (*MemoryStore)(nil)
