// internal/game/engine.go
//
// Core engine for a single number-guessing round.
// Responsibilities:
//   - Start rounds with a secret drawn uniformly from [Min, Max].
//   - Parse and apply guesses (strict integers only).
//   - Narrate too-high/too-low feedback and track attempts.
//   - Track state transitions: in_progress → won/lost, reset → in_progress.
//
// Notes:
//   - Randomness is injected (Random) so rounds are reproducible in tests.
//   - The engine is immutable after construction and safe to share as long
//     as its Random is (see rng.Locked).
//
// Package-level defaults are kept here for clarity.
package game

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	MinSecret        = 1
	MaxSecret        = 100
	StartingAttempts = 6
)

// ErrInvalidRules is returned by Rules.Validate.
var ErrInvalidRules = errors.New("invalid rules")

// Random is the randomness capability the engine needs.
// IntN returns a value in [0, n). *math/rand/v2.Rand satisfies it.
type Random interface {
	IntN(n int) int
}

// Rules are the tunable constants of a round.
type Rules struct {
	Min      int // lowest possible secret (inclusive)
	Max      int // highest possible secret (inclusive)
	Attempts int // attempt budget per round
}

// DefaultRules returns the 1..100, six-attempt game.
func DefaultRules() Rules {
	return Rules{Min: MinSecret, Max: MaxSecret, Attempts: StartingAttempts}
}

// Validate rejects empty or oversized ranges and non-positive budgets.
func (r Rules) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("%w: min %d greater than max %d", ErrInvalidRules, r.Min, r.Max)
	}
	// Max-Min+1 must fit in a positive int; a wrapped difference is negative.
	if d := r.Max - r.Min; d < 0 || d == math.MaxInt {
		return fmt.Errorf("%w: range %d..%d too large", ErrInvalidRules, r.Min, r.Max)
	}
	if r.Attempts < 1 {
		return fmt.Errorf("%w: attempts must be at least 1, got %d", ErrInvalidRules, r.Attempts)
	}
	return nil
}

// Engine applies the round transition rules.
type Engine struct {
	rules   Rules
	rnd     Random
	remarks []string
}

// NewEngine constructs an engine. remarks is the closing-remark pool shown on
// a loss; it must not be empty.
func NewEngine(rules Rules, rnd Random, remarks []string) (*Engine, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if rnd == nil {
		return nil, errors.New("game: nil random source")
	}
	if len(remarks) == 0 {
		return nil, errors.New("game: empty remark pool")
	}
	return &Engine{
		rules:   rules,
		rnd:     rnd,
		remarks: append([]string(nil), remarks...),
	}, nil
}

// Rules returns the engine's rules.
func (e *Engine) Rules() Rules { return e.rules }

// WithRandom returns a copy of the engine that draws from rnd.
func (e *Engine) WithRandom(rnd Random) *Engine {
	cp := *e
	cp.rnd = rnd
	return &cp
}

// NewRound starts a fresh round.
func (e *Engine) NewRound() Round {
	return Round{
		secret:            e.rules.Min + e.rnd.IntN(e.rules.Max-e.rules.Min+1),
		AttemptsRemaining: e.rules.Attempts,
		Status:            StatusInProgress,
		LastMessage:       "",
	}
}

// Reset discards r and starts a brand-new round.
func (e *Engine) Reset(r Round) Round {
	return e.NewRound()
}

// SubmitGuess applies raw to r and returns the next state.
//
// Order of checks:
//   - Finished rounds are left untouched (OutcomeIgnored).
//   - Unparseable text costs nothing (OutcomeInvalidInput).
//   - A match wins before any attempt is spent, even on the last attempt.
//   - Otherwise one attempt is spent; reaching zero loses the round.
func (e *Engine) SubmitGuess(r Round, raw string) (Round, Result) {
	if r.Over() {
		return r, Result{Outcome: OutcomeIgnored}
	}

	guess, ok := parseGuess(raw)
	if !ok {
		r.LastMessage = MsgInvalidInput
		return r, Result{Outcome: OutcomeInvalidInput}
	}

	if guess == r.secret {
		r.Status = StatusWon
		r.LastMessage = MsgCorrect
		return r, Result{Outcome: OutcomeWon, ClearInput: true}
	}

	r.AttemptsRemaining--
	if r.AttemptsRemaining <= 0 {
		r.AttemptsRemaining = 0
		r.Status = StatusLost
		r.LastMessage = lossMessage(r.secret, e.remarks[e.rnd.IntN(len(e.remarks))])
		return r, Result{Outcome: OutcomeLost, ClearInput: true}
	}

	if guess > r.secret {
		r.LastMessage = MsgTooHigh
	} else {
		r.LastMessage = MsgTooLow
	}
	return r, Result{Outcome: OutcomeContinue, ClearInput: true}
}

// parseGuess accepts an optionally signed base-10 integer surrounded by
// whitespace. Decimals and trailing garbage are rejected.
func parseGuess(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

func lossMessage(secret int, remark string) string {
	return fmt.Sprintf("out of tries! it was %d. %s", secret, remark)
}
