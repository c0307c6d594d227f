// internal/solver/constraint.go
//
// Constraints derived from one round of guess + feedback.
// A ConstraintSet is the conjunction of one constraint per position plus
// the set of characters the feedback confirmed present. The present set
// exists for repeated letters: a letter can be gray in one slot while
// green/yellow in another, and Absent must not eliminate candidates that
// carry the confirmed occurrence.

package solver

import "strings"

type constraintKind int

const (
	// atPosition: candidate[pos] must equal char.
	atPosition constraintKind = iota
	// presentNotAt: candidate must contain char, but not at pos.
	presentNotAt
	// absent: char must not occur in the candidate, ignoring chars
	// already confirmed present by other positions.
	absent
)

// Constraint encodes what one feedback symbol says about one position.
type Constraint struct {
	kind constraintKind
	pos  int
	char byte
}

// ConstraintSet is the conjunctive predicate built from one guess and its
// feedback code. Zero value is unusable; build with NewConstraintSet.
type ConstraintSet struct {
	constraints []Constraint
	present     []byte // chars confirmed present via Hit/Present symbols
}

// NewConstraintSet parses a feedback string, one symbol per guess
// position. Symbols are case-insensitive over {G, Y, _}. Returns
// *ColorCodeLengthError on a length mismatch and *InvalidColorCodeError
// on an unrecognized symbol.
func NewConstraintSet(guess Word, code string) (*ConstraintSet, error) {
	if len(code) != guess.Len() {
		return nil, &ColorCodeLengthError{Want: guess.Len()}
	}
	code = strings.ToUpper(code)

	cs := &ConstraintSet{constraints: make([]Constraint, 0, guess.Len())}
	for i := 0; i < guess.Len(); i++ {
		c := guess.CharAt(i)
		switch Symbol(code[i]) {
		case Hit:
			cs.present = append(cs.present, c)
			cs.constraints = append(cs.constraints, Constraint{kind: atPosition, pos: i, char: c})
		case Present:
			cs.present = append(cs.present, c)
			cs.constraints = append(cs.constraints, Constraint{kind: presentNotAt, pos: i, char: c})
		case Miss:
			cs.constraints = append(cs.constraints, Constraint{kind: absent, char: c})
		default:
			return nil, &InvalidColorCodeError{Char: code[i]}
		}
	}
	return cs, nil
}

// IsMatch reports whether candidate satisfies every constraint in the set.
func (cs *ConstraintSet) IsMatch(candidate Word) bool {
	for _, c := range cs.constraints {
		switch c.kind {
		case atPosition:
			if candidate.CharAt(c.pos) != c.char {
				return false
			}
		case presentNotAt:
			if candidate.CharAt(c.pos) == c.char || !candidate.Contains(c.char) {
				return false
			}
		case absent:
			// A char confirmed present elsewhere is exempt from Absent.
			if !cs.isPresent(c.char) && candidate.Contains(c.char) {
				return false
			}
		}
	}
	return true
}

// IsCorrectGuess reports whether the feedback was an all-Hit code,
// i.e. the game is won.
func (cs *ConstraintSet) IsCorrectGuess() bool {
	for _, c := range cs.constraints {
		if c.kind != atPosition {
			return false
		}
	}
	return len(cs.constraints) > 0
}

func (cs *ConstraintSet) isPresent(c byte) bool {
	for _, p := range cs.present {
		if p == c {
			return true
		}
	}
	return false
}
