// internal/solver/heuristic.go
//
// Pluggable guess-ranking heuristics.
// The canonical scorer is raw partition count: how many distinct feedback
// codes a guess could produce across the still-possible secrets. More
// distinct codes means the guess splits the pool into more buckets, so a
// round of feedback carries more information.

package solver

import "fmt"

// Heuristic scores a candidate guess against the current pool.
// Higher is better. Implementations must be pure: no state across calls.
type Heuristic interface {
	Score(w Word, pool Pool) int
}

// PartitionCount is the canonical heuristic: the number of distinct
// feedback codes w produces when matched against every word in the pool.
type PartitionCount struct{}

func (PartitionCount) Score(w Word, pool Pool) int {
	seen := make(map[FeedbackCode]struct{}, len(pool))
	for _, target := range pool {
		seen[w.Feedback(target)] = struct{}{}
	}
	return len(seen)
}

// PartitionLetters adds a distinct-letter bonus to the partition count,
// nudging ties toward guesses that probe more letters.
type PartitionLetters struct{}

func (PartitionLetters) Score(w Word, pool Pool) int {
	return PartitionCount{}.Score(w, pool) + distinctLetters(w)
}

func distinctLetters(w Word) int {
	var seen [26]bool
	n := 0
	for i := 0; i < len(w); i++ {
		c := w[i]
		if c < 'a' || c > 'z' || seen[c-'a'] {
			continue
		}
		seen[c-'a'] = true
		n++
	}
	return n
}

// NewHeuristic resolves a configured heuristic name.
func NewHeuristic(name string) (Heuristic, error) {
	switch name {
	case "", "partition":
		return PartitionCount{}, nil
	case "letters":
		return PartitionLetters{}, nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q", name)
	}
}

// Buckets groups the pool by the feedback code guessing w would produce
// for each possible secret. len(Buckets(w, p)) equals the PartitionCount
// score of w. Words within a bucket keep pool order.
func Buckets(w Word, pool Pool) map[FeedbackCode][]Word {
	out := make(map[FeedbackCode][]Word)
	for _, target := range pool {
		code := w.Feedback(target)
		out[code] = append(out[code], target)
	}
	return out
}
