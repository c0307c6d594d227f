// internal/game/types.go
//
// Core type definitions for the solving session.
// Defines:
//   - State: coarse session state (playing/won/lost/stuck).
//   - Session: state for one game's worth of solving.

package game

import "github.com/robalobadob/prompter/internal/solver"

// State represents the session's position in the round state machine.
// Possible values:
//   - "playing": rounds remain and candidates remain.
//   - "won":     feedback was all-hit.
//   - "lost":    round budget exhausted with more than one candidate left.
//   - "stuck":   the pool emptied; the feedback rounds contradict each
//                other, so no dictionary word can be the secret.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
	StateStuck   State = "stuck"
)

// Session holds the state of a single solving session. The pool is
// replaced, never mutated, as rounds are applied.
type Session struct {
	pool    solver.Pool      // candidates still consistent with all feedback
	heur    solver.Heuristic // ranking heuristic for suggestions
	workers int              // ranking parallelism, 0 = NumCPU
	length  int              // fixed word length for this session
	rounds  int              // guess budget
	round   int              // guesses applied so far
	state   State
}
