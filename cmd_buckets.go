// cmd_buckets.go
//
// Shows the feedback buckets a word splits the dictionary into: for every
// possible secret, the colour code the word would receive, grouped by
// code. More buckets means a more informative guess.

package main

import (
	"errors"
	"flag"
	"fmt"
	"sort"

	"github.com/robalobadob/prompter/internal/config"
	"github.com/robalobadob/prompter/internal/solver"
	"github.com/robalobadob/prompter/internal/words"
)

func cmdBuckets(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("buckets", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("usage: prompter buckets WORD")
	}

	word := solver.NewWord(fs.Arg(0))
	if word.Len() != cfg.Solver.WordLength || !word.IsAlpha() {
		return &solver.WordLengthError{Want: cfg.Solver.WordLength}
	}

	pool := solver.NewPool(words.Words())
	grouped := solver.Buckets(word, pool)

	codes := make([]string, 0, len(grouped))
	for code := range grouped {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)

	fmt.Printf("%q has %d Wordle bucket%s.\n", word, len(grouped), plural(len(grouped)))
	for _, code := range codes {
		bucket := grouped[solver.FeedbackCode(code)]
		fmt.Printf("\n%s (%d word%s)\n", code, len(bucket), plural(len(bucket)))
		for _, w := range bucket {
			fmt.Println(w)
		}
	}
	return nil
}
