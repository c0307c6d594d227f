// db.go
//
// Database helpers for the simulation store.
// Responsibilities:
//   - Opening the SQLite database with safe defaults (WAL, busy timeout,
//     foreign keys).
//   - Applying the schema (idempotent; a single table needs no migration
//     files).

package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
)

// schema is applied on every open; CREATE IF NOT EXISTS keeps it
// idempotent. One row per (start, target, date) simulated game.
const schema = `
CREATE TABLE IF NOT EXISTS sim_results (
    start_word  TEXT NOT NULL,
    target_word TEXT NOT NULL,
    date        TEXT NOT NULL,
    rounds      INTEGER NOT NULL,
    won         INTEGER NOT NULL,
    created_at  TEXT NOT NULL DEFAULT (datetime('now')),
    PRIMARY KEY (start_word, target_word, date)
);
CREATE INDEX IF NOT EXISTS idx_sim_results_date ON sim_results(date);
`

// openDB opens (and creates if missing) the SQLite database file.
//
// - Ensures the parent directory exists for relative paths (./data/...).
// - Configures busy timeout and WAL journaling mode.
// - Enforces foreign keys.
func openDB(dsn string) (*sql.DB, error) {
	dir := filepath.Dir(dsn)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", dsn+"?_busy_timeout=5000&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;`); err != nil {
		return nil, fmt.Errorf("set pragmas: %w", err)
	}
	return db, nil
}

// migrate applies the schema.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debug().Msg("schema applied")
	return nil
}

// openSimDB opens the simulation database at path and applies the schema.
func openSimDB(path string) (*sql.DB, error) {
	db, err := openDB(path)
	if err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}
