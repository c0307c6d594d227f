// internal/game/session.go
//
// Round loop for a single solving session.
// Responsibilities:
//   - Validate and apply guess + feedback rounds (length, alphabetic,
//     recognized color codes).
//   - Shrink the candidate pool via the solver's constraint filter.
//   - Track state transitions: playing → won/lost/stuck.
//
// Notes:
//   - The candidate pool is provided by the caller (words package → pool).
//   - All validation errors are returned, never panicked; drivers
//     re-prompt or reject and the session stays playable.

package game

import (
	"errors"
	"strings"

	"github.com/robalobadob/prompter/internal/solver"
)

// ErrFinished is returned by Apply once the session left the playing state.
var ErrFinished = errors.New("session finished")

// NewSession constructs a session over pool with the given guess budget.
// The session's fixed word length is taken from the first pool word.
func NewSession(pool solver.Pool, heur solver.Heuristic, workers, rounds int) *Session {
	length := 0
	if pool.Len() > 0 {
		length = pool[0].Len()
	}
	return &Session{
		pool:    pool,
		heur:    heur,
		workers: workers,
		length:  length,
		rounds:  rounds,
		state:   StatePlaying,
	}
}

// State reports the current session state.
func (s *Session) State() State { return s.state }

// Round reports the number of guesses applied so far.
func (s *Session) Round() int { return s.round }

// Rounds reports the guess budget.
func (s *Session) Rounds() int { return s.rounds }

// Remaining reports the number of candidates left.
func (s *Session) Remaining() int { return s.pool.Len() }

// Candidates returns the current pool.
func (s *Session) Candidates() solver.Pool { return s.pool }

// Suggest ranks the current pool and returns the top n candidates.
func (s *Session) Suggest(n int) []solver.Ranked {
	ranked := s.pool.Rank(s.heur, s.workers)
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// Apply validates one round of guess + feedback and advances the state
// machine.
//
// Validation rules:
//   - Session must still be playing.
//   - Guess must be exactly the session length and alphabetic a-z.
//   - Code must parse over the G/Y/_ alphabet, one symbol per letter.
//
// State transitions:
//   - All-hit feedback → won.
//   - Pool empties after filtering → stuck (contradictory feedback).
//   - Round budget exhausted with >1 candidate → lost.
func (s *Session) Apply(guess, code string) (State, error) {
	if s.state != StatePlaying {
		return s.state, ErrFinished
	}

	w := solver.NewWord(guess)
	if w.Len() != s.length {
		return s.state, &solver.WordLengthError{Want: s.length}
	}
	if !w.IsAlpha() {
		return s.state, errors.New("guess must contain only letters a-z")
	}

	cs, err := solver.NewConstraintSet(w, strings.TrimSpace(code))
	if err != nil {
		return s.state, err
	}

	s.round++

	if cs.IsCorrectGuess() {
		s.state = StateWon
		return s.state, nil
	}

	s.pool = s.pool.Filter(cs).Remove(w)

	switch {
	case s.pool.Len() == 0:
		s.state = StateStuck
	case s.round >= s.rounds && s.pool.Len() > 1:
		s.state = StateLost
	}
	return s.state, nil
}
