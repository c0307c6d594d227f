// internal/config/config.go
//
// TOML configuration for prompter.
//
// Load priority:
//   1. Explicit path (PROMPTER_CONFIG or -config flag).
//   2. Built-in defaults when no file exists.
// Environment variables override individual file values:
//   WORDS_FILE, PORT, DB_PATH.

package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the entire config structure.
type Config struct {
	Solver SolverConfig `toml:"solver"`
	Words  WordsConfig  `toml:"words"`
	Server ServerConfig `toml:"server"`
	DB     DBConfig     `toml:"db"`
}

// SolverConfig has solver/session options.
type SolverConfig struct {
	WordLength  int    `toml:"word_length"` // letters per word (fixed per run)
	Rounds      int    `toml:"rounds"`      // guess budget per game
	Heuristic   string `toml:"heuristic"`   // "partition" | "letters"
	Suggestions int    `toml:"suggestions"` // top-N shown per round
	Workers     int    `toml:"workers"`     // ranking goroutines, 0 = NumCPU
}

// WordsConfig holds dictionary options.
type WordsConfig struct {
	File string `toml:"file"` // word list path, empty = embedded default
}

// ServerConfig has advisor API options.
type ServerConfig struct {
	Addr string `toml:"addr"`
	Salt string `toml:"salt"` // opener-of-the-day salt
}

// DBConfig holds simulation store options.
type DBConfig struct {
	Path string `toml:"path"`
}

// Default returns the built-in defaults.
func Default() *Config {
	return &Config{
		Solver: SolverConfig{
			WordLength:  5,
			Rounds:      6,
			Heuristic:   "partition",
			Suggestions: 10,
			Workers:     0,
		},
		Server: ServerConfig{
			Addr: ":5175",
			Salt: "local_dev_salt",
		},
		DB: DBConfig{
			Path: "./data/prompter.db",
		},
	}
}

// Load reads the config file at path, falling back to defaults when path
// is empty or the file does not exist. Env overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, cfg); err != nil {
				return nil, fmt.Errorf("config: decode %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: stat %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("WORDS_FILE"); v != "" {
		c.Words.File = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Addr = ":" + v
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		c.DB.Path = v
	}
}

func (c *Config) validate() error {
	if c.Solver.WordLength < 2 {
		return fmt.Errorf("config: word_length %d too small", c.Solver.WordLength)
	}
	if c.Solver.Rounds < 1 {
		return fmt.Errorf("config: rounds %d too small", c.Solver.Rounds)
	}
	if c.Solver.Suggestions < 1 {
		c.Solver.Suggestions = 10
	}
	return nil
}
