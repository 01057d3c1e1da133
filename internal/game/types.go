// internal/game/types.go
//
// Core type definitions for the number-guessing engine.
// Defines:
//   - Status:  lifecycle of a round (in progress / won / lost).
//   - Outcome: what a single submission did to the round.
//   - Round:   state of one round (the secret stays unexported).
//   - View:    the display-facing projection handed to presentation layers.

package game

// Status is the lifecycle state of a round.
// Won and Lost are terminal until the round is reset.
type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusLost       Status = "lost"
)

// Outcome reports the effect of a single SubmitGuess call.
//   - "continue":      valid, incorrect guess; round still running.
//   - "won":           guess matched the secret.
//   - "lost":          valid, incorrect guess that used the last attempt.
//   - "invalid_input": text did not parse as an integer; nothing consumed.
//   - "ignored":       round was already over; nothing changed.
type Outcome string

const (
	OutcomeContinue     Outcome = "continue"
	OutcomeWon          Outcome = "won"
	OutcomeLost         Outcome = "lost"
	OutcomeInvalidInput Outcome = "invalid_input"
	OutcomeIgnored      Outcome = "ignored"
)

// Feedback messages shown to the player.
const (
	MsgTooHigh      = "too high"
	MsgTooLow       = "too low"
	MsgCorrect      = "correct"
	MsgInvalidInput = "invalid input"
)

// Round holds the state of a single round. It is passed by value; every
// transition returns a new Round.
type Round struct {
	secret            int    // hidden number, fixed until reset
	AttemptsRemaining int    // never negative
	Status            Status // in_progress until won or lost
	LastMessage       string // most recent feedback (display only)
}

// Secret returns the hidden number. Presentation layers must not show it
// while the round is in progress.
func (r Round) Secret() int { return r.secret }

// Over reports whether the round reached a terminal state.
func (r Round) Over() bool { return r.Status != StatusInProgress }

// Result accompanies every submission.
type Result struct {
	Outcome Outcome
	// ClearInput is set for every processed guess (won, lost, continue).
	// Presentation layers empty their guess field when it is true.
	ClearInput bool
}

// View is the outbound contract to presentation layers. It never carries the
// secret; the only place the secret surfaces is the loss message.
type View struct {
	Message           string `json:"message"`
	AttemptsRemaining int    `json:"attemptsRemaining"`
	RoundOver         bool   `json:"roundOver"`
	Status            Status `json:"status"`
}

// View projects the round into display data.
func (r Round) View() View {
	return View{
		Message:           r.LastMessage,
		AttemptsRemaining: r.AttemptsRemaining,
		RoundOver:         r.Over(),
		Status:            r.Status,
	}
}
