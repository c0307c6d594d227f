// internal/sim/sim.go
//
// Headless simulation harness over the solver core.
// Replays the round loop with a known target: round one plays the start
// word, later rounds play the top-ranked candidate, feedback is computed
// instead of typed. Aggregates win rate and average rounds per start word.
//
// Notes:
//   - Each game gets a fresh pool; the harness holds no cross-game state
//     beyond the base dictionary.
//   - The optional Store records per-game results for the report command.

package sim

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/prompter/internal/solver"
)

// Result is the outcome of one simulated game.
type Result struct {
	Start  string
	Target string
	Rounds int // rounds used; meaningful when Won
	Won    bool
}

// Stats aggregates results for one start word.
type Stats struct {
	Start       string
	Games       int
	Wins        int
	TotalRounds int // across won games only
}

// WinRate returns wins / games in percent.
func (s Stats) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games) * 100
}

// AvgRounds returns the average rounds per won game.
func (s Stats) AvgRounds() float64 {
	if s.Wins == 0 {
		return 0
	}
	return float64(s.TotalRounds) / float64(s.Wins)
}

// Runner replays games over a fixed base pool.
type Runner struct {
	Base    solver.Pool
	Heur    solver.Heuristic
	Workers int
	Rounds  int
	Store   *Store // optional; nil disables recording
}

// Simulate plays one game from start toward target and returns the number
// of rounds used and whether the solver won within the budget.
func (r *Runner) Simulate(start, target solver.Word) (int, bool) {
	pool := r.Base

	log.Debug().Stringer("start", start).Stringer("target", target).Msg("simulating")

	for i := 1; i <= r.Rounds; i++ {
		var w solver.Word
		if i == 1 {
			w = start
		} else {
			w = pool.Rank(r.Heur, r.Workers)[0].Word
		}

		log.Debug().Int("round", i).Int("candidates", pool.Len()).Stringer("guess", w).Msg("round")

		if pool.Len() == 1 {
			return i, true
		}

		code := w.Feedback(target)
		log.Debug().Int("round", i).Str("code", string(code)).Msg("hint")

		cs, err := solver.NewConstraintSet(w, string(code))
		if err != nil {
			// Cannot happen: the code comes from Feedback itself.
			log.Error().Err(err).Stringer("guess", w).Msg("constraint build failed")
			return i, false
		}
		if cs.IsCorrectGuess() {
			return i, true
		}

		pool = pool.Filter(cs).Remove(w)
		if pool.Len() == 0 {
			log.Debug().Int("round", i).Msg("pool emptied")
			return i, false
		}
	}
	return r.Rounds, false
}

// RunAll simulates start × target over the base pool. Empty start/target
// mean "every word in the pool". Fixed words must match the pool's word
// length; a mismatch is a recoverable input error, not a fault. Returns
// aggregate stats per start word.
func (r *Runner) RunAll(ctx context.Context, start, target string) ([]Stats, error) {
	if err := r.checkWord(start); err != nil {
		return nil, err
	}
	if err := r.checkWord(target); err != nil {
		return nil, err
	}
	starts := r.expand(start)
	targets := r.expand(target)
	date := time.Now().UTC().Format("2006-01-02")

	out := make([]Stats, 0, len(starts))
	for _, s := range starts {
		stats := Stats{Start: string(s)}

		for _, t := range targets {
			rounds, won := r.Simulate(s, t)
			stats.Games++
			if won {
				stats.Wins++
				stats.TotalRounds += rounds
				log.Info().Stringer("start", s).Stringer("target", t).Int("rounds", rounds).Msg("won")
			} else {
				log.Info().Stringer("start", s).Stringer("target", t).Msg("lost")
			}

			if r.Store != nil {
				res := Result{Start: string(s), Target: string(t), Rounds: rounds, Won: won}
				if err := r.Store.InsertResult(ctx, res, date); err != nil {
					return nil, err
				}
			}
		}
		out = append(out, stats)
	}
	return out, nil
}

// checkWord validates a fixed start/target word against the base pool's
// word length. Empty means "every word" and is always valid.
func (r *Runner) checkWord(word string) error {
	if word == "" {
		return nil
	}
	length := 0
	if r.Base.Len() > 0 {
		length = r.Base[0].Len()
	}
	w := solver.NewWord(word)
	if w.Len() != length {
		return &solver.WordLengthError{Want: length}
	}
	if !w.IsAlpha() {
		return errors.New("word must contain only letters a-z")
	}
	return nil
}

// expand resolves a fixed word to a one-element list, or the whole base
// pool when empty.
func (r *Runner) expand(word string) []solver.Word {
	if word != "" {
		return []solver.Word{solver.NewWord(word)}
	}
	return r.Base
}
