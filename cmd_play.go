// cmd_play.go
//
// Interactive mode: each round shows how many candidates remain and the
// top-ranked suggestions, then asks for the word that was played and the
// colour code Wordle answered with. Input errors re-prompt; the round is
// only consumed by a valid guess + code pair.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/prompter/internal/config"
	"github.com/robalobadob/prompter/internal/game"
	"github.com/robalobadob/prompter/internal/solver"
	"github.com/robalobadob/prompter/internal/words"
)

func cmdPlay(cfg *config.Config, heur solver.Heuristic) error {
	pool := solver.NewPool(words.Words())
	sess := game.NewSession(pool, heur, cfg.Solver.Workers, cfg.Solver.Rounds)
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome! Let's play Wordle.")

	for round := 1; round <= cfg.Solver.Rounds; round++ {
		fmt.Printf("\n---[ Round #%d ]------------------------------------------------\n", round)

		n := sess.Remaining()
		fmt.Printf("\n%d candidate word%s left.\n", n, plural(n))

		started := time.Now()
		top := sess.Suggest(cfg.Solver.Suggestions)
		log.Debug().Dur("elapsed", time.Since(started)).Int("candidates", n).Msg("ranked candidates")

		fmt.Printf("\nTop candidate word%s:\n", plural(len(top)))
		for _, r := range top {
			fmt.Printf("%s (%d)\n", r.Word, r.Score)
		}

		if n == 1 {
			fmt.Printf("\nCongratulations! You won after %d round%s.\n", round, plural(round))
			return nil
		}

		state, err := applyRound(sess, in, round)
		if err != nil {
			return err
		}

		switch state {
		case game.StateWon:
			fmt.Printf("\nCongratulations! You won after %d round%s.\n", round, plural(round))
			return nil
		case game.StateStuck:
			fmt.Println("\nSomething went wrong. There are no matching words left.")
			return nil
		case game.StateLost:
			fmt.Printf("\n%d candidate words left.\n", sess.Remaining())
			fmt.Println("\nGame over.")
			return nil
		}
	}
	return nil
}

// applyRound prompts for a guess and colour code until the pair is valid,
// then applies it to the session.
func applyRound(sess *game.Session, in *bufio.Scanner, round int) (game.State, error) {
	ordinal := "next"
	if round == 1 {
		ordinal = "first"
	}

	for {
		guess, err := promptLine(in, fmt.Sprintf("\nPlease enter your %s word.", ordinal))
		if err != nil {
			return sess.State(), err
		}
		code, err := promptLine(in, "\nPlease enter Wordle's answer. (G = Green, Y = Yellow, _ = Gray)")
		if err != nil {
			return sess.State(), err
		}

		state, err := sess.Apply(guess, code)
		if err != nil {
			fmt.Printf("\nError: %v\n", err)
			continue
		}
		return state, nil
	}
}

// promptLine prints a prompt and reads one trimmed line from in.
func promptLine(in *bufio.Scanner, prompt string) (string, error) {
	fmt.Println(prompt)
	fmt.Print("> ")
	if !in.Scan() {
		if err := in.Err(); err != nil {
			return "", err
		}
		return "", errors.New("input closed")
	}
	return in.Text(), nil
}
