// internal/words/words.go
//
// Word list management for the solver.
//
// Responsibilities:
//   - Load the candidate dictionary from a configured file or fall back to
//     the embedded default list.
//   - Normalize to lowercase and keep only alphabetic words of the
//     session's fixed length.
//   - Reject duplicates so the candidate pool starts duplicate-free.
//
// Initialization behavior (Init):
//   1. If a path is given, load words from that file.
//   2. Otherwise use the embedded default list from assets/words.txt.
//
// Constraints:
//   • Words must be exactly `length` alphabetic letters (a-z).
//   • Lists are normalized to lowercase.
//   • Initialization is run once (sync.Once).

package words

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/robalobadob/prompter/assets"
)

var (
	initOnce   sync.Once
	list       []string
	initialErr error
)

// Init loads the word list exactly once. path may be empty (embedded
// default). Returns an error if no valid words of the given length load.
func Init(path string, length int) error {
	initOnce.Do(func() {
		var raw []string
		var err error
		if path != "" {
			raw, err = readWordFile(path)
		} else {
			raw, err = assets.WordList()
		}
		if err != nil {
			initialErr = err
			return
		}

		list = normalize(raw, length)
		if len(list) == 0 {
			initialErr = fmt.Errorf("words: no valid %d-letter words loaded", length)
		}
	})
	return initialErr
}

// Words returns the loaded list. Empty before Init succeeds.
func Words() []string { return list }

// Count returns the number of loaded words.
func Count() int { return len(list) }

// readWordFile loads one word per line from a file.
func readWordFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var out []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		out = append(out, sc.Text())
	}
	return out, sc.Err()
}

// normalize lowercases, trims, filters to alphabetic words of the wanted
// length, and drops duplicates while preserving order.
func normalize(raw []string, length int) []string {
	seen := make(map[string]struct{}, len(raw))
	var out []string
	for _, line := range raw {
		w := strings.TrimSpace(strings.ToLower(line))
		if len(w) != length || !isAlpha(w) {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// isAlpha reports whether s is all lowercase ASCII letters.
func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'a' || r > 'z' {
			return false
		}
	}
	return true
}

// Validate filters a raw list the same way Init does, without touching
// package state.
func Validate(raw []string, length int) ([]string, error) {
	out := normalize(raw, length)
	if len(out) == 0 {
		return nil, errors.New("words: list is empty after filtering")
	}
	return out, nil
}
