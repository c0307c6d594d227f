// internal/sim/store.go
//
// SQLite persistence for simulation results. One row per
// (start, target, date); reruns on the same day are ignored rather than
// duplicated. The leaderboard query ranks start words by win rate, then
// by average rounds across won games.

package sim

import (
	"context"
	"database/sql"
)

// Store wraps a *sql.DB opened by the caller (see db.go at the root).
type Store struct{ db *sql.DB }

// NewStore constructs a Store over an open database.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// InsertResult records one simulated game. Respects the
// (start_word, target_word, date) uniqueness key; duplicates are ignored.
func (s *Store) InsertResult(ctx context.Context, r Result, date string) error {
	won := 0
	if r.Won {
		won = 1
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO sim_results(start_word, target_word, date, rounds, won)
		 VALUES(?,?,?,?,?)`, r.Start, r.Target, date, r.Rounds, won,
	)
	return err
}

// OpenerRow is one leaderboard entry: a start word with its aggregate
// record. AvgRounds is NULL-safe (0 when the opener never won).
type OpenerRow struct {
	Start     string
	Games     int
	Wins      int
	AvgRounds float64
}

// OpenerLeaderboard ranks start words for a date (all dates when empty)
// by win rate descending, then average rounds ascending.
func (s *Store) OpenerLeaderboard(ctx context.Context, date string, limit int) ([]OpenerRow, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT start_word,
		       COUNT(1) AS games,
		       SUM(won) AS wins,
		       COALESCE(AVG(CASE WHEN won = 1 THEN rounds END), 0) AS avg_rounds
		FROM sim_results`
	args := []any{}
	if date != "" {
		query += ` WHERE date = ?`
		args = append(args, date)
	}
	query += `
		GROUP BY start_word
		ORDER BY CAST(SUM(won) AS REAL) / COUNT(1) DESC, avg_rounds ASC, start_word ASC
		LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []OpenerRow
	for rows.Next() {
		var r OpenerRow
		if err := rows.Scan(&r.Start, &r.Games, &r.Wins, &r.AvgRounds); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
