package sim

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
		CREATE TABLE sim_results (
			start_word  TEXT NOT NULL,
			target_word TEXT NOT NULL,
			date        TEXT NOT NULL,
			rounds      INTEGER NOT NULL,
			won         INTEGER NOT NULL,
			created_at  TEXT NOT NULL DEFAULT (datetime('now')),
			PRIMARY KEY (start_word, target_word, date)
		)`)
	require.NoError(t, err)
	return db
}

func TestInsertResultIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t))

	r := Result{Start: "crane", Target: "slate", Rounds: 3, Won: true}
	require.NoError(t, store.InsertResult(ctx, r, "2026-08-27"))
	// Same key again: ignored, not an error.
	require.NoError(t, store.InsertResult(ctx, r, "2026-08-27"))

	rows, err := store.OpenerLeaderboard(ctx, "2026-08-27", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Games)
}

func TestOpenerLeaderboardOrdering(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t))

	// crane: 2/2 wins, avg 3 rounds. slate: 1/2 wins. vague: 2/2, avg 4.
	results := []struct {
		r    Result
		date string
	}{
		{Result{"crane", "aaaaa", 2, true}, "2026-08-27"},
		{Result{"crane", "bbbbb", 4, true}, "2026-08-27"},
		{Result{"slate", "aaaaa", 3, true}, "2026-08-27"},
		{Result{"slate", "bbbbb", 6, false}, "2026-08-27"},
		{Result{"vague", "aaaaa", 4, true}, "2026-08-27"},
		{Result{"vague", "bbbbb", 4, true}, "2026-08-27"},
	}
	for _, x := range results {
		require.NoError(t, store.InsertResult(ctx, x.r, x.date))
	}

	rows, err := store.OpenerLeaderboard(ctx, "", 10)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// Win rate first, then avg rounds: crane (100%, 3.0) before
	// vague (100%, 4.0) before slate (50%).
	assert.Equal(t, "crane", rows[0].Start)
	assert.Equal(t, "vague", rows[1].Start)
	assert.Equal(t, "slate", rows[2].Start)
	assert.InDelta(t, 3.0, rows[0].AvgRounds, 0.01)
}

func TestOpenerLeaderboardDateFilter(t *testing.T) {
	ctx := context.Background()
	store := NewStore(newTestDB(t))

	require.NoError(t, store.InsertResult(ctx, Result{"crane", "aaaaa", 2, true}, "2026-08-26"))
	require.NoError(t, store.InsertResult(ctx, Result{"slate", "aaaaa", 2, true}, "2026-08-27"))

	rows, err := store.OpenerLeaderboard(ctx, "2026-08-27", 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "slate", rows[0].Start)
}

func TestOpenerLeaderboardEmpty(t *testing.T) {
	store := NewStore(newTestDB(t))
	rows, err := store.OpenerLeaderboard(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
