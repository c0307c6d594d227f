// internal/httpserver/routes_solve.go
//
// Advisor endpoints under /api:
//   - POST /api/rank    → apply a feedback history, return the surviving
//                         candidate count, state, and top suggestions.
//   - POST /api/buckets → feedback-bucket breakdown for one word against
//                         the full dictionary.
//
// Ranking the pool is the O(n²) hot path, so /api/rank memoizes full
// ranked lists by history signature before slicing to the requested top-N.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/prompter/internal/solver"
)

// mountSolve registers all /api routes.
func (s *Server) mountSolve(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/rank", s.handleRank)
		r.Post("/buckets", s.handleBuckets)
	})
}

// historyEntry is one past round: the guess and the feedback it received.
type historyEntry struct {
	Word string `json:"word"`
	Code string `json:"code"`
}

type rankReq struct {
	History []historyEntry `json:"history"`
	Top     int            `json:"top"` // optional; defaults to server setting
}

type suggestion struct {
	Word  string `json:"word"`
	Score int    `json:"score"`
}

type rankRes struct {
	Remaining   int          `json:"remaining"`
	State       string       `json:"state"` // "playing" | "won" | "stuck"
	Suggestions []suggestion `json:"suggestions"`
}

// handleRank replays the feedback history against a fresh pool and
// returns ranked next guesses. Input errors come back as 400 with the
// offending round's message.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	var req rankReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}

	pool := s.base
	state := "playing"
	for _, h := range req.History {
		guess := solver.NewWord(h.Word)
		if guess.Len() != wordLen(s.base) || !guess.IsAlpha() {
			httpInputError(w, &solver.WordLengthError{Want: wordLen(s.base)})
			return
		}
		cs, err := solver.NewConstraintSet(guess, strings.TrimSpace(h.Code))
		if err != nil {
			httpInputError(w, err)
			return
		}
		if cs.IsCorrectGuess() {
			state = "won"
			break
		}
		pool = pool.Filter(cs).Remove(guess)
		if pool.Len() == 0 {
			state = "stuck"
			break
		}
	}

	res := rankRes{Remaining: pool.Len(), State: state, Suggestions: []suggestion{}}
	if state == "playing" {
		top := req.Top
		if top <= 0 {
			top = s.suggestions
		}
		ranked := s.rankCached(req.History, pool)
		if top > len(ranked) {
			top = len(ranked)
		}
		for _, rk := range ranked[:top] {
			res.Suggestions = append(res.Suggestions, suggestion{Word: string(rk.Word), Score: rk.Score})
		}
	}
	_ = json.NewEncoder(w).Encode(res)
}

// rankCached ranks pool, memoized by the normalized history signature.
func (s *Server) rankCached(history []historyEntry, pool solver.Pool) []solver.Ranked {
	var sb strings.Builder
	for _, h := range history {
		sb.WriteString(strings.ToLower(strings.TrimSpace(h.Word)))
		sb.WriteByte(':')
		sb.WriteString(strings.ToUpper(strings.TrimSpace(h.Code)))
		sb.WriteByte('|')
	}
	key := sb.String()

	if ranked, ok := s.cache.Get(key); ok {
		return ranked
	}
	ranked := pool.Rank(s.heur, s.workers)
	s.cache.Put(key, ranked)
	return ranked
}

type bucketsReq struct {
	Word string `json:"word"`
}

type bucket struct {
	Code  string   `json:"code"`
	Words []string `json:"words"`
}

type bucketsRes struct {
	Word    string   `json:"word"`
	Count   int      `json:"count"`
	Buckets []bucket `json:"buckets"`
}

// handleBuckets returns the feedback-bucket breakdown of one word against
// the full dictionary, buckets sorted by code for stable output.
func (s *Server) handleBuckets(w http.ResponseWriter, r *http.Request) {
	var req bucketsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"bad_json"}`, http.StatusBadRequest)
		return
	}
	word := solver.NewWord(req.Word)
	if word.Len() != wordLen(s.base) || !word.IsAlpha() {
		httpInputError(w, &solver.WordLengthError{Want: wordLen(s.base)})
		return
	}

	grouped := solver.Buckets(word, s.base)
	codes := make([]string, 0, len(grouped))
	for code := range grouped {
		codes = append(codes, string(code))
	}
	sort.Strings(codes)

	res := bucketsRes{Word: string(word), Count: len(grouped)}
	for _, code := range codes {
		b := bucket{Code: code}
		for _, cand := range grouped[solver.FeedbackCode(code)] {
			b.Words = append(b.Words, string(cand))
		}
		res.Buckets = append(res.Buckets, b)
	}
	_ = json.NewEncoder(w).Encode(res)
}

// wordLen returns the fixed word length of the loaded dictionary.
func wordLen(pool solver.Pool) int {
	if pool.Len() == 0 {
		return 0
	}
	return pool[0].Len()
}

// httpInputError writes a 400 with the typed input error's message.
func httpInputError(w http.ResponseWriter, err error) {
	log.Debug().Err(err).Msg("rejecting advisor request")
	body, _ := json.Marshal(map[string]string{"error": err.Error()})
	http.Error(w, string(body), http.StatusBadRequest)
}
