// internal/httpserver/server.go
//
// HTTP server wiring for the number-guessing backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, POST /game/guess, POST /game/reset, GET /game/{id}.
//   - Daily endpoint: POST /daily/new (see routes_daily.go).
//
// Notes:
//   - Rounds live in a store.Store keyed by an opaque session ID.
//   - The secret never leaves the server except inside the loss message.
//   - Invalid numeric input is not an HTTP error; it is a 200 with
//     outcome "invalid_input".

package httpserver

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/store"
)

// Options configures a Server.
type Options struct {
	ClientOrigin string           // CORS origin; defaults to http://localhost:5173
	DailySalt    string           // salt for daily secrets
	Now          func() time.Time // clock for daily rounds; defaults to time.Now
}

// Server bundles router, round store, and engine.
type Server struct {
	r      *chi.Mux
	store  store.Store
	engine *game.Engine
	opts   Options
}

// New constructs a Server, installs middleware, and registers routes.
func New(st store.Store, eng *game.Engine, opts Options) *Server {
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{r: chi.NewRouter(), store: st, engine: eng, opts: opts}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))         // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"numguess","endpoints":["/health","POST /game/new","POST /game/guess","POST /game/reset","GET /game/{id}","POST /daily/new"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.r.Route("/game", func(r chi.Router) {
		r.Post("/new", s.handleNewGame)
		r.Post("/guess", s.handleGuess)
		r.Post("/reset", s.handleReset)
		r.Get("/{id}", s.handleGet)
	})

	s.mountDaily(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------ GAME ---------------------------------------

// newGameReq is the payload for POST /game/new.
type newGameReq struct {
	Mode string `json:"mode"` // "normal" | "daily"
}

// roundRes is returned by new, reset and get.
type roundRes struct {
	GameID string    `json:"gameId"`
	View   game.View `json:"view"`
}

// handleNewGame starts a round and stores it under a fresh session ID.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	// empty body means normal mode
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	eng := s.engine
	switch req.Mode {
	case "", "normal":
	case "daily":
		eng = s.dailyEngine()
	default:
		writeError(w, http.StatusBadRequest, "unknown_mode")
		return
	}
	s.startRound(w, r, eng, req.Mode)
}

func (s *Server) startRound(w http.ResponseWriter, r *http.Request, eng *game.Engine, mode string) {
	id := randomID()
	round := eng.NewRound()
	if err := s.store.Save(r.Context(), id, round); err != nil {
		log.Error().Err(err).Msg("save round")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	log.Info().Str("gameId", id).Str("mode", mode).Msg("round started")
	_ = json.NewEncoder(w).Encode(roundRes{GameID: id, View: round.View()})
}

// guessReq/Res payloads for POST /game/guess.
type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}
type guessRes struct {
	Outcome    game.Outcome `json:"outcome"`
	ClearInput bool         `json:"clearInput"`
	View       game.View    `json:"view"`
}

// handleGuess applies a guess to a stored round. The load, transition and
// save happen atomically per game so concurrent guesses each spend an attempt.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var res game.Result
	next, err := s.store.Update(r.Context(), req.GameID, func(cur game.Round) game.Round {
		var n game.Round
		n, res = s.engine.SubmitGuess(cur, req.Guess)
		return n
	})
	if !s.checkStoreErr(w, req.GameID, err) {
		return
	}

	ev := log.Debug()
	if next.Over() && res.Outcome != game.OutcomeIgnored {
		ev = log.Info()
	}
	ev.Str("gameId", req.GameID).
		Str("outcome", string(res.Outcome)).
		Int("attemptsRemaining", next.AttemptsRemaining).
		Msg("guess")

	_ = json.NewEncoder(w).Encode(guessRes{Outcome: res.Outcome, ClearInput: res.ClearInput, View: next.View()})
}

// resetReq is the payload for POST /game/reset.
type resetReq struct {
	GameID string `json:"gameId"`
}

// handleReset replaces the stored round with a fresh one under the same ID.
func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	var req resetReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	var previous game.Status
	next, err := s.store.Update(r.Context(), req.GameID, func(cur game.Round) game.Round {
		previous = cur.Status
		return s.engine.Reset(cur)
	})
	if !s.checkStoreErr(w, req.GameID, err) {
		return
	}
	log.Info().Str("gameId", req.GameID).Str("previous", string(previous)).Msg("round reset")
	_ = json.NewEncoder(w).Encode(roundRes{GameID: req.GameID, View: next.View()})
}

// handleGet returns the current view of a round.
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	round, ok := s.loadRound(w, r, id)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(roundRes{GameID: id, View: round.View()})
}

// loadRound fetches a round or writes the matching error response.
func (s *Server) loadRound(w http.ResponseWriter, r *http.Request, id string) (game.Round, bool) {
	round, err := s.store.Get(r.Context(), id)
	if !s.checkStoreErr(w, id, err) {
		return game.Round{}, false
	}
	return round, true
}

// checkStoreErr writes the response for a failed store call and reports
// whether the handler may continue.
func (s *Server) checkStoreErr(w http.ResponseWriter, id string, err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	default:
		log.Error().Err(err).Str("gameId", id).Msg("store round")
		writeError(w, http.StatusInternalServerError, "store_failed")
	}
	return false
}

// ------------------------------- small util --------------------------------

func writeError(w http.ResponseWriter, status int, code string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
