// internal/store/cache.go
//
// In-memory cache for ranking results, keyed by a caller-built signature
// of the feedback history. Ranking the full pool is the expensive path;
// advisor API clients tend to re-send the same history (polling UIs), so
// memoizing whole responses is worth a map.
//
// Characteristics:
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Bounded: the cache is dropped wholesale past maxEntries. Histories
//     are tiny and regeneration is cheap relative to eviction bookkeeping.
//   - State is lost when the process restarts.

package store

import (
	"sync"

	"github.com/robalobadob/prompter/internal/solver"
)

// RankCache memoizes ranked suggestion lists by history signature.
// Implementations may be backed by memory (this package) or nothing at all.
type RankCache interface {
	// Get retrieves a cached ranking, reporting whether it was present.
	Get(key string) ([]solver.Ranked, bool)

	// Put stores a ranking under key.
	Put(key string, ranked []solver.Ranked)
}

const maxEntries = 1024

// memory is an in-memory map-based RankCache implementation.
type memory struct {
	mu      sync.RWMutex
	entries map[string][]solver.Ranked
}

// NewMemoryCache constructs a new in-memory RankCache.
func NewMemoryCache() RankCache {
	return &memory{entries: make(map[string][]solver.Ranked)}
}

func (m *memory) Get(key string) ([]solver.Ranked, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.entries[key]
	return r, ok
}

func (m *memory) Put(key string, ranked []solver.Ranked) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.entries) >= maxEntries {
		m.entries = make(map[string][]solver.Ranked)
	}
	m.entries[key] = ranked
}
