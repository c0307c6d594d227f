// internal/solver/errors.go
//
// Typed input errors surfaced by the solver core.
// All of these are recoverable: drivers re-prompt or reject the request.

package solver

import "fmt"

// InvalidColorCodeError reports a feedback character outside the
// recognized G/Y/_ alphabet.
type InvalidColorCodeError struct {
	Char byte
}

func (e *InvalidColorCodeError) Error() string {
	return fmt.Sprintf("invalid color code character %q", e.Char)
}

// WordLengthError reports a guess whose length does not match the
// session's word length.
type WordLengthError struct {
	Want int
}

func (e *WordLengthError) Error() string {
	return fmt.Sprintf("word must be %d characters long", e.Want)
}

// ColorCodeLengthError reports a feedback string whose length does not
// match the guess.
type ColorCodeLengthError struct {
	Want int
}

func (e *ColorCodeLengthError) Error() string {
	return fmt.Sprintf("color code must be %d characters long", e.Want)
}
