package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreEmpty(t *testing.T) {
	s := NewMemoryStore()

	_, ok := s.Get()
	assert.False(t, ok, "empty store should report no snapshot")
}

func TestMemoryStoreReplace(t *testing.T) {
	s := NewMemoryStore()
	first := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)

	s.Replace([]byte(`{"100":{"name":"Player A"}}`), first)

	snap, ok := s.Get()
	require.True(t, ok)
	assert.Equal(t, []byte(`{"100":{"name":"Player A"}}`), snap.Payload)
	assert.Equal(t, first, snap.FetchedAt)

	second := first.Add(25 * time.Hour)
	s.Replace([]byte(`{"200":{"name":"Player B"}}`), second)

	snap, ok = s.Get()
	require.True(t, ok)
	assert.Equal(t, []byte(`{"200":{"name":"Player B"}}`), snap.Payload)
	assert.Equal(t, second, snap.FetchedAt)
}

func TestSnapshotFresh(t *testing.T) {
	ttl := 24 * time.Hour
	fetched := time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{Payload: []byte(`{}`), FetchedAt: fetched}

	testCases := []struct {
		name    string
		elapsed time.Duration
		fresh   bool
	}{
		{"immediately after fetch", 0, true},
		{"ten seconds later", 10 * time.Second, true},
		{"just inside the ttl", ttl - time.Nanosecond, true},
		{"exactly the ttl", ttl, false},
		{"well past the ttl", ttl + time.Hour, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.fresh, snap.Fresh(fetched.Add(tc.elapsed), ttl))
		})
	}
}
