// cmd_serve.go
//
// Runs the stateless advisor HTTP API. The server holds only the
// dictionary; every request carries its own feedback history.

package main

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/prompter/internal/config"
	"github.com/robalobadob/prompter/internal/httpserver"
	"github.com/robalobadob/prompter/internal/solver"
	"github.com/robalobadob/prompter/internal/words"
)

func cmdServe(cfg *config.Config, heur solver.Heuristic) error {
	pool := solver.NewPool(words.Words())
	srv := httpserver.New(pool, heur, cfg.Solver.Workers, cfg.Solver.Suggestions)

	log.Info().Str("addr", cfg.Server.Addr).Int("words", pool.Len()).Msg("starting advisor api")
	return srv.Start(cfg.Server.Addr)
}
