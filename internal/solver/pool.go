// internal/solver/pool.go
//
// The candidate pool: the words still consistent with all feedback so far.
// Pools are plain value slices. Filter and Remove return new pools rather
// than mutating, so the driver owns exactly one live pool per round.

package solver

import (
	"runtime"
	"sort"
	"sync"
)

// Pool is an ordered, duplicate-free collection of candidate words.
type Pool []Word

// NewPool builds a pool from raw strings: lowercased, deduplicated,
// insertion order preserved.
func NewPool(words []string) Pool {
	seen := make(map[Word]struct{}, len(words))
	pool := make(Pool, 0, len(words))
	for _, s := range words {
		w := NewWord(s)
		if _, dup := seen[w]; dup || w == "" {
			continue
		}
		seen[w] = struct{}{}
		pool = append(pool, w)
	}
	return pool
}

// Len returns the number of candidates left.
func (p Pool) Len() int { return len(p) }

// Contains reports whether w is in the pool.
func (p Pool) Contains(w Word) bool {
	for _, c := range p {
		if c == w {
			return true
		}
	}
	return false
}

// Filter returns the candidates satisfying every constraint in cs,
// in pool order. The receiver is left untouched. An empty result is a
// valid outcome (contradictory feedback), not an error.
func (p Pool) Filter(cs *ConstraintSet) Pool {
	out := make(Pool, 0, len(p))
	for _, w := range p {
		if cs.IsMatch(w) {
			out = append(out, w)
		}
	}
	return out
}

// Remove returns the pool without w, preserving order.
func (p Pool) Remove(w Word) Pool {
	out := make(Pool, 0, len(p))
	for _, c := range p {
		if c != w {
			out = append(out, c)
		}
	}
	return out
}

// Ranked pairs a candidate with its heuristic score.
type Ranked struct {
	Word  Word
	Score int
}

// Rank scores every candidate against the pool with h and returns the
// result sorted by score descending, ties broken by word ascending.
//
// Scoring is O(n²) in pool size and dominates a round, so it fans out
// across workers goroutines (NumCPU when workers <= 0). Each candidate's
// score depends only on the fixed pool snapshot, so the split is by index
// range with no coordination beyond the final sort; the ordering is fully
// deterministic regardless of scheduling.
func (p Pool) Rank(h Heuristic, workers int) []Ranked {
	out := make([]Ranked, len(p))
	if len(p) == 0 {
		return out
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(p) {
		workers = len(p)
	}

	chunk := (len(p) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(p); start += chunk {
		end := start + chunk
		if end > len(p) {
			end = len(p)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				out[i] = Ranked{Word: p[i], Score: h.Score(p[i], p)}
			}
		}(start, end)
	}
	wg.Wait()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Word < out[j].Word
	})
	return out
}
