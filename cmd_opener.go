// cmd_opener.go
//
// Suggests a deterministic opener for today: the date is hashed into the
// highest-scoring slice of the dictionary, so the pick varies day to day
// without ever being a weak guess.

package main

import (
	"fmt"
	"time"

	"github.com/robalobadob/prompter/internal/config"
	"github.com/robalobadob/prompter/internal/opener"
	"github.com/robalobadob/prompter/internal/solver"
	"github.com/robalobadob/prompter/internal/words"
)

// openerPoolSize bounds the slice of top-ranked words the daily pick
// rotates through.
const openerPoolSize = 50

func cmdOpener(cfg *config.Config, heur solver.Heuristic) error {
	pool := solver.NewPool(words.Words())
	ranked := pool.Rank(heur, cfg.Solver.Workers)
	if len(ranked) > openerPoolSize {
		ranked = ranked[:openerPoolSize]
	}

	now := time.Now()
	pick := ranked[opener.Index(now, cfg.Server.Salt, len(ranked))]
	fmt.Printf("Opener for %s: %s (score %d)\n", opener.DateKey(now), pick.Word, pick.Score)
	return nil
}
