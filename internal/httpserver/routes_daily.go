// internal/httpserver/routes_daily.go
//
// HTTP routes for the "Daily" mode.
//   - POST /daily/new → start a round whose secret is fixed for the UTC day.
//
// The secret comes from HMAC(salt, YYYY-MM-DD), so every player gets the
// same number on the same day. Guesses and resets go through /game/*;
// a reset always starts a normal round.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/rng"
)

// mountDaily registers all /daily routes.
func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Post("/new", func(w http.ResponseWriter, req *http.Request) {
			s.startRound(w, req, s.dailyEngine(), "daily")
		})
	})
}

// dailyEngine returns an engine whose next round uses today's secret.
func (s *Server) dailyEngine() *game.Engine {
	return s.engine.WithRandom(rng.Daily(s.opts.Now(), s.opts.DailySalt))
}
