// internal/solver/word.go
//
// Word and feedback-code values for the solver core.
// Defines:
//   - Word: an immutable lowercase fixed-length word.
//   - Symbol: one feedback symbol per letter (hit/present/miss).
//   - FeedbackCode: the per-position feedback for one guess.
//
// Notes:
//   - Feedback uses the simplified per-position containment check, not the
//     two-pass multiset accounting of the official game. The constraint
//     matcher's present-char exclusion (constraint.go) is written against
//     exactly these semantics.

package solver

import (
	"fmt"
	"strings"
)

// Symbol is the evaluation result for a single letter in a guess.
type Symbol byte

const (
	// Hit: correct letter in the correct position (green).
	Hit Symbol = 'G'
	// Present: letter occurs elsewhere in the secret (yellow).
	Present Symbol = 'Y'
	// Miss: letter does not occur in the secret (gray).
	Miss Symbol = '_'
)

// FeedbackCode is an ordered sequence of Symbols, one per word position,
// rendered in the canonical G/Y/_ alphabet. Comparable, so it can key maps.
type FeedbackCode string

// AllHit reports whether every position of the code is a Hit.
func (c FeedbackCode) AllHit() bool {
	for i := 0; i < len(c); i++ {
		if Symbol(c[i]) != Hit {
			return false
		}
	}
	return len(c) > 0
}

// Word is a candidate or guess word. Always lowercase; immutable.
type Word string

// NewWord normalizes s into a Word (trimmed, lowercased).
func NewWord(s string) Word {
	return Word(strings.ToLower(strings.TrimSpace(s)))
}

// Len returns the number of characters in the word.
func (w Word) Len() int { return len(w) }

// String implements fmt.Stringer.
func (w Word) String() string { return string(w) }

// Contains reports whether c occurs anywhere in the word.
func (w Word) Contains(c byte) bool {
	return strings.IndexByte(string(w), c) >= 0
}

// CharAt returns the character at position i.
// Out-of-range access is a programming error, not bad user input: all
// user-facing lengths are validated before a Word reaches the core.
func (w Word) CharAt(i int) byte {
	if i < 0 || i >= len(w) {
		panic(fmt.Sprintf("solver: index %d out of range for word %q", i, w))
	}
	return w[i]
}

// Feedback returns the code the game would show for guessing w when the
// secret is secret. The comparison is asymmetric:
// w.Feedback(secret) answers "what would guessing w reveal?", which is not
// the same as secret.Feedback(w).
//
// Example: Word("crate").Feedback("space") == "Y_G_G".
func (w Word) Feedback(secret Word) FeedbackCode {
	buf := make([]byte, len(w))
	for i := 0; i < len(w); i++ {
		switch {
		case w[i] == secret[i]:
			buf[i] = byte(Hit)
		case secret.Contains(w[i]):
			buf[i] = byte(Present)
		default:
			buf[i] = byte(Miss)
		}
	}
	return FeedbackCode(buf)
}

// IsAlpha reports whether the word consists only of lowercase a-z.
func (w Word) IsAlpha() bool {
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return false
		}
	}
	return true
}
