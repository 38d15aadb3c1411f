// internal/httpserver/routes_puzzle.go
//
// HTTP routes for playing puzzles.
// Exposes under /puzzle:
//   - POST /puzzle/new      → scramble a word from the requested pool
//   - GET  /puzzle/daily    → today's puzzle (see routes_daily.go)
//   - POST /puzzle/guess    → verify a guess; consumes the puzzle
//   - POST /puzzle/answer   → reveal the original word
//   - POST /puzzle/handicap → reveal the first letters of long words
//
// Puzzles are addressed by a signed ticket (see internal/ticket).

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/anagram/internal/game"
	"github.com/robalobadob/anagram/internal/store"
)

// generateTries is how many source words a request may go through when
// the engine reports ErrUnscramblableWord.
const generateTries = 3

// mountPuzzle registers all /puzzle routes.
func (s *Server) mountPuzzle() {
	s.r.Route("/puzzle", func(r chi.Router) {
		r.With(s.rateLimit).Post("/new", s.handleNew)
		r.With(s.rateLimit).Get("/daily", s.handleDaily)
		r.With(s.rateLimit).Post("/guess", s.handleGuess)
		r.Post("/answer", s.handleAnswer)
		r.Post("/handicap", s.handleHandicap)
	})
}

// -----------------------------------------------------------------------------
// /puzzle/new

// newReq is the body of POST /puzzle/new. Both fields are optional.
type newReq struct {
	Difficulty string `json:"difficulty"` // "new" | "easier" | "harder"
	Window     int    `json:"window"`     // shuffle window; 0 = whole word
}

// puzzleRes is returned for a freshly issued puzzle.
type puzzleRes struct {
	PuzzleID          string   `json:"puzzleId"`
	Scrambled         string   `json:"scrambled"`
	Length            int      `json:"length"`
	Options           []string `json:"options"`
	HandicapAvailable bool     `json:"handicapAvailable"`
	Date              string   `json:"date,omitempty"`
}

func (s *Server) handleNew(w http.ResponseWriter, r *http.Request) {
	var req newReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	d, err := game.ParseDifficulty(req.Difficulty)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_difficulty")
		return
	}

	p, err := generate(s.engine, d, req.Window)
	if err != nil {
		s.writeGenerateError(w, d, err)
		return
	}
	s.issue(w, r, p, "")
}

// generate asks e for a puzzle, moving on to another source word when the
// drawn one cannot be scrambled.
func generate(e *game.Engine, d game.Difficulty, window int) (game.Puzzle, error) {
	var err error
	for try := 0; try < generateTries; try++ {
		var p game.Puzzle
		p, err = e.GeneratePuzzle(d, window)
		if !errors.Is(err, game.ErrUnscramblableWord) {
			return p, err
		}
		log.Debug().Err(err).Int("try", try+1).Msg("retrying with another word")
	}
	return game.Puzzle{}, err
}

func (s *Server) writeGenerateError(w http.ResponseWriter, d game.Difficulty, err error) {
	switch {
	case errors.Is(err, game.ErrNoWordsAvailable):
		log.Info().Str("difficulty", d.String()).Msg("empty word pool")
		writeError(w, http.StatusUnprocessableEntity, "no_words_available")
	case errors.Is(err, game.ErrUnscramblableWord):
		log.Warn().Err(err).Str("difficulty", d.String()).Msg("no scramble found")
		writeError(w, http.StatusServiceUnavailable, "unscramblable")
	case errors.Is(err, game.ErrUnknownDifficulty):
		writeError(w, http.StatusBadRequest, "unknown_difficulty")
	default:
		log.Error().Err(err).Msg("generate puzzle")
		writeError(w, http.StatusInternalServerError, "generate_failed")
	}
}

// issue stores p under a fresh ticket and writes the public view of it.
func (s *Server) issue(w http.ResponseWriter, r *http.Request, p game.Puzzle, date string) {
	id, tok, err := s.tickets.Issue()
	if err != nil {
		log.Error().Err(err).Msg("issue ticket")
		writeError(w, http.StatusInternalServerError, "ticket_failed")
		return
	}
	if err := s.store.Save(r.Context(), id, p); err != nil {
		log.Error().Err(err).Msg("save puzzle")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	_, handicapOK := handicap(p.Original)
	writeJSON(w, http.StatusOK, puzzleRes{
		PuzzleID:          tok,
		Scrambled:         p.Scrambled,
		Length:            runeLen(p.Scrambled),
		Options:           options(p.Original),
		HandicapAvailable: handicapOK,
		Date:              date,
	})
}

// -----------------------------------------------------------------------------
// /puzzle/guess

type guessReq struct {
	PuzzleID string `json:"puzzleId"`
	Guess    string `json:"guess"`
}

// guessRes reports the verification. Answer is only filled on a miss.
type guessRes struct {
	Matched     bool   `json:"matched"`
	MatchedWord string `json:"matchedWord,omitempty"`
	Answer      string `json:"answer,omitempty"`
}

// handleGuess verifies a guess. Blank guesses are rejected without
// consuming the puzzle; any other guess consumes it.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	id, ok := s.ticketID(w, req.PuzzleID)
	if !ok {
		return
	}
	if strings.TrimSpace(req.Guess) == "" {
		writeError(w, http.StatusBadRequest, "empty_guess")
		return
	}
	p, err := s.store.Take(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return
	}

	v := s.engine.VerifyGuess(p.Original, req.Guess)
	log.Info().Bool("matched", v.Matched).Str("puzzle", id).Msg("guess")
	res := guessRes{Matched: v.Matched, MatchedWord: v.MatchedWord}
	if !v.Matched {
		res.Answer = p.Original
	}
	writeJSON(w, http.StatusOK, res)
}

// -----------------------------------------------------------------------------
// /puzzle/answer and /puzzle/handicap

type ticketReq struct {
	PuzzleID string `json:"puzzleId"`
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"answer": p.Original})
}

func (s *Server) handleHandicap(w http.ResponseWriter, r *http.Request) {
	p, ok := s.lookup(w, r)
	if !ok {
		return
	}
	h, ok := handicap(p.Original)
	if !ok {
		writeError(w, http.StatusConflict, "handicap_unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"handicap": h})
}

// lookup decodes a ticketReq and fetches its puzzle without consuming it.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (game.Puzzle, bool) {
	var req ticketReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return game.Puzzle{}, false
	}
	id, ok := s.ticketID(w, req.PuzzleID)
	if !ok {
		return game.Puzzle{}, false
	}
	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		s.writeStoreError(w, err)
		return game.Puzzle{}, false
	}
	return p, true
}

func (s *Server) ticketID(w http.ResponseWriter, tok string) (string, bool) {
	id, err := s.tickets.Parse(tok)
	if err != nil {
		log.Debug().Err(err).Msg("reject ticket")
		writeError(w, http.StatusUnauthorized, "invalid_ticket")
		return "", false
	}
	return id, true
}

func (s *Server) writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "not_found")
		return
	}
	log.Error().Err(err).Msg("puzzle store")
	writeError(w, http.StatusInternalServerError, "store_failed")
}
