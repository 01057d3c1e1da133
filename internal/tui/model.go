// Package tui presents the guessing game in a terminal.
//
// The model owns the current game.Round and forwards two intents to the
// engine: submitting the text field (Enter) and resetting a finished round
// (r / Enter on the "Try Again" control).
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/numguess/internal/game"
)

// Model is the bubbletea model for one game session.
type Model struct {
	engine   *game.Engine
	round    game.Round
	input    textinput.Model
	styles   Styles
	quitting bool
}

// New creates a model with a fresh round.
func New(engine *game.Engine, styles Styles) Model {
	ti := textinput.New()
	ti.Placeholder = "Enter your guess"
	ti.Prompt = "> "
	ti.CharLimit = 12
	ti.Width = 20
	ti.Focus()

	return Model{
		engine: engine,
		round:  engine.NewRound(),
		input:  ti,
		styles: styles,
	}
}

// Round returns the current round.
func (m Model) Round() game.Round { return m.round }

// Input returns the current text of the guess field.
func (m Model) Input() string { return m.input.Value() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "esc":
		m.quitting = true
		return m, tea.Quit
	}

	if m.round.Over() {
		switch key.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "r", "enter":
			return m.reset()
		}
		return m, nil
	}

	if key.Type == tea.KeyEnter {
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	next, res := m.engine.SubmitGuess(m.round, m.input.Value())
	log.Debug().
		Str("outcome", string(res.Outcome)).
		Int("attemptsRemaining", next.AttemptsRemaining).
		Msg("guess")

	m.round = next
	if res.ClearInput {
		m.input.SetValue("")
	}
	if m.round.Over() {
		m.input.Blur()
	}
	return m, nil
}

func (m Model) reset() (tea.Model, tea.Cmd) {
	log.Debug().Str("previous", string(m.round.Status)).Msg("round reset")
	m.round = m.engine.Reset(m.round)
	m.input.SetValue("")
	return m, m.input.Focus()
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	v := m.round.View()
	rules := m.engine.Rules()

	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Number Guessing Game"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Pick a number between %d and %d.\n\n", rules.Min, rules.Max))

	msgStyle := m.styles.Message
	if v.RoundOver {
		msgStyle = m.styles.GameOver
	}
	b.WriteString(msgStyle.Render(v.Message))
	b.WriteString("\n")
	b.WriteString(m.styles.Attempts.Render(fmt.Sprintf("Attempts Left: %d", v.AttemptsRemaining)))
	b.WriteString("\n")

	if v.RoundOver {
		b.WriteString(m.styles.Retry.Render("Try Again"))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("r / enter: new round • q: quit"))
	} else {
		b.WriteString(m.styles.Input.Render(m.input.View()))
		b.WriteString("\n")
		b.WriteString(m.styles.Help.Render("enter: guess • esc: quit"))
	}
	b.WriteString("\n")
	return b.String()
}
