// main.go
//
// Entry point and subcommand dispatch for the prompter CLI.
//
// Subcommands:
//   play      interactive solving assistant
//   simulate  headless games over the dictionary
//   report    opener leaderboard from recorded simulations
//   buckets   feedback-bucket breakdown for a word
//   opener    deterministic opener of the day
//   serve     stateless advisor HTTP API

package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/prompter/internal/config"
	"github.com/robalobadob/prompter/internal/solver"
	"github.com/robalobadob/prompter/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	cmd, args := os.Args[1], os.Args[2:]
	if cmd == "help" || cmd == "-h" || cmd == "--help" {
		usage()
		return
	}

	cfg, err := config.Load(os.Getenv("PROMPTER_CONFIG"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if err := words.Init(cfg.Words.File, cfg.Solver.WordLength); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}
	heur, err := solver.NewHeuristic(cfg.Solver.Heuristic)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to resolve heuristic")
	}

	switch cmd {
	case "play":
		err = cmdPlay(cfg, heur)
	case "simulate":
		err = cmdSimulate(cfg, heur, args)
	case "report":
		err = cmdReport(cfg, args)
	case "buckets":
		err = cmdBuckets(cfg, args)
	case "opener":
		err = cmdOpener(cfg, heur)
	case "serve":
		err = cmdServe(cfg, heur)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", cmd)
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("command", cmd).Msg("command failed")
	}
}

func usage() {
	fmt.Fprint(os.Stderr, `prompter - a Wordle solving assistant

Usage:
  prompter play                           get help while playing Wordle
  prompter simulate [-start W] [-target W] [-record]
                                          simulate games headlessly
  prompter report [-date D] [-limit N]    opener leaderboard from recordings
  prompter buckets WORD                   show WORD's feedback buckets
  prompter opener                         suggest today's opener
  prompter serve                          run the advisor HTTP API

Environment:
  LOG_LEVEL        zerolog level (default "info")
  PROMPTER_CONFIG  path to a TOML config file
  WORDS_FILE       word list override (one word per line)
  PORT             advisor API port
  DB_PATH          simulation database path
`)
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// plural returns "s" for any count but one.
func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
