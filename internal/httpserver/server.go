// internal/httpserver/server.go
//
// HTTP wiring for the advisor API.
// Responsibilities:
//   - Router + middleware (JSON, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Advisor endpoints mounted under /api (routes_solve.go).
//
// Notes:
//   - The advisor is stateless: it holds the dictionary and answers pure
//     rank/filter queries. There are no sessions, no secrets, no users.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/prompter/internal/solver"
	"github.com/robalobadob/prompter/internal/store"
)

// Server bundles the router, the base pool, and ranking options.
type Server struct {
	r           *chi.Mux
	base        solver.Pool
	heur        solver.Heuristic
	workers     int
	suggestions int
	cache       store.RankCache
}

// New constructs a Server, installs middleware, and registers routes.
func New(base solver.Pool, heur solver.Heuristic, workers, suggestions int) *Server {
	s := &Server{
		r:           chi.NewRouter(),
		base:        base,
		heur:        heur,
		workers:     workers,
		suggestions: suggestions,
		cache:       store.NewMemoryCache(),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(30 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"prompter","endpoints":["/health","POST /api/rank","POST /api/buckets"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]int{"words": s.base.Len()})
	})

	s.mountSolve(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}
