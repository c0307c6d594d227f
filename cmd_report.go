// cmd_report.go
//
// Opener leaderboard from recorded simulations: which start words win the
// most games, and in how few rounds.

package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/robalobadob/prompter/internal/config"
	"github.com/robalobadob/prompter/internal/sim"
)

func cmdReport(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	date := fs.String("date", "", "restrict to one recording date (YYYY-MM-DD)")
	limit := fs.Int("limit", 20, "number of openers to show")
	if err := fs.Parse(args); err != nil {
		return err
	}

	db, err := openSimDB(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	rows, err := sim.NewStore(db).OpenerLeaderboard(context.Background(), *date, *limit)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No recorded simulations. Run `prompter simulate -record` first.")
		return nil
	}

	fmt.Printf("%-4s %-8s %8s %8s %12s\n", "#", "opener", "games", "wins", "avg rounds")
	for i, r := range rows {
		fmt.Printf("%-4d %-8s %8d %8d %12.2f\n", i+1, r.Start, r.Games, r.Wins, r.AvgRounds)
	}
	return nil
}
