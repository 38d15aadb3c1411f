// internal/httpserver/routes_daily.go
//
// The daily puzzle: GET /puzzle/daily.
//
// Every caller on the same UTC date gets the same source word and the same
// scramble. Both are drawn from a math/rand source seeded by
// HMAC-SHA256(DAILY_SALT, date), so no daily state is kept server side.
// Each call still issues its own ticket, so guesses are tracked per caller.

package httpserver

import (
	"net/http"
	"time"

	"github.com/robalobadob/anagram/internal/daily"
	"github.com/robalobadob/anagram/internal/game"
)

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := s.opts.Now()
	e := s.dailyEngine(now)
	p, err := generate(e, game.DifficultyNew, 0)
	if err != nil {
		s.writeGenerateError(w, game.DifficultyNew, err)
		return
	}
	s.issue(w, r, p, daily.DateKey(now))
}

// dailyEngine shares the server's bank but draws from the date's seed.
func (s *Server) dailyEngine(now time.Time) *game.Engine {
	return game.NewEngine(s.engine.Bank(),
		game.WithRand(daily.Rand(now, s.opts.DailySalt)),
		game.WithMaxAttempts(s.opts.MaxScrambleAttempts),
	)
}
