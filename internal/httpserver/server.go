// internal/httpserver/server.go
//
// HTTP server wiring for the anagram puzzle backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, rate limit).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Puzzle endpoints: new, daily, guess, answer, handicap (see routes_puzzle.go).
//
// Notes:
//   - The engine is synchronous; each request runs it on its own goroutine and
//     chi's Timeout middleware bounds the handler.
//   - Clients only ever see the scrambled word and a signed ticket; the original
//     stays in the puzzle store until the puzzle is guessed or expires.

package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/anagram/internal/game"
	"github.com/robalobadob/anagram/internal/store"
	"github.com/robalobadob/anagram/internal/ticket"
)

// Options carries the transport-level settings.
type Options struct {
	ClientOrigin        string
	DailySalt           string
	MaxScrambleAttempts int
	RateLimitRPS        int
	RateLimitBurst      int
	RequestTimeout      time.Duration
	Now                 func() time.Time // defaults to time.Now
}

// Server bundles router, engine, puzzle store and ticket signer.
type Server struct {
	r       *chi.Mux
	engine  *game.Engine
	store   store.Store
	tickets *ticket.Signer
	opts    Options
	limits  *limiterSet
}

// New constructs a Server, installs middleware, and registers routes.
func New(engine *game.Engine, st store.Store, tickets *ticket.Signer, opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	s := &Server{
		r:       chi.NewRouter(),
		engine:  engine,
		store:   st,
		tickets: tickets,
		opts:    opts,
		limits:  newLimiterSet(opts.RateLimitRPS, opts.RateLimitBurst),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                    // add X-Request-ID
	s.r.Use(chimw.RealIP)                       // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(requestLogger)                      // zerolog access log
	s.r.Use(chimw.Recoverer)                    // recover from panics
	s.r.Use(chimw.Timeout(opts.RequestTimeout)) // bound handler time
	s.r.Use(jsonContentType)                    // default JSON responses
	s.r.Use(corsFor(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"service":"anagram-go","endpoints":["/health","POST /puzzle/new","GET /puzzle/daily","POST /puzzle/guess","POST /puzzle/answer","POST /puzzle/handicap"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"words":   s.engine.Bank().Stats(),
			"puzzles": s.store.Len(),
		})
	})

	s.mountPuzzle()

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})

	return s
}

// Handler exposes the router, for http.Server and tests.
func (s *Server) Handler() http.Handler { return s.r }

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

// writeError writes {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
