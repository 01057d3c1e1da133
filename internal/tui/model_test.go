package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/numguess/internal/game"
	"github.com/robalobadob/numguess/internal/remarks"
	"github.com/robalobadob/numguess/internal/rng"
)

func newModel(t *testing.T, draws ...int) Model {
	t.Helper()
	eng, err := game.NewEngine(game.DefaultRules(), rng.NewSequence(draws...), remarks.Default())
	require.NoError(t, err)
	return New(eng, DefaultStyles())
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func typeText(t *testing.T, m Model, s string) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func enter(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	return m
}

func TestModel_GuessClearsInput(t *testing.T) {
	m := newModel(t, 49)

	m = typeText(t, m, "10")
	assert.Equal(t, "10", m.Input())

	m = enter(t, m)
	assert.Equal(t, "", m.Input())
	assert.Equal(t, game.MsgTooLow, m.Round().LastMessage)
	assert.Equal(t, 5, m.Round().AttemptsRemaining)
	assert.Contains(t, m.View(), "Attempts Left: 5")
	assert.Contains(t, m.View(), "too low")
}

func TestModel_InvalidInputKeepsText(t *testing.T) {
	m := newModel(t, 49)

	m = typeText(t, m, "abc")
	m = enter(t, m)
	assert.Equal(t, "abc", m.Input())
	assert.Equal(t, game.MsgInvalidInput, m.Round().LastMessage)
	assert.Equal(t, 6, m.Round().AttemptsRemaining)
}

func TestModel_WinShowsRetryAndResets(t *testing.T) {
	m := newModel(t, 49, 9)

	m = typeText(t, m, "50")
	m = enter(t, m)
	require.Equal(t, game.StatusWon, m.Round().Status)
	assert.Contains(t, m.View(), "Try Again")
	assert.NotContains(t, m.View(), "Enter your guess")

	// typing is ignored while the round is over
	m = typeText(t, m, "7")
	assert.Equal(t, "", m.Input())
	assert.Equal(t, game.StatusWon, m.Round().Status)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	assert.Equal(t, game.StatusInProgress, m.Round().Status)
	assert.Equal(t, game.StartingAttempts, m.Round().AttemptsRemaining)
	assert.Equal(t, 10, m.Round().Secret())
	assert.NotContains(t, m.View(), "Try Again")
}

func TestModel_LoseRevealsSecret(t *testing.T) {
	m := newModel(t, 6, 0)

	for _, g := range []string{"1", "2", "3", "4", "5", "6"} {
		m = typeText(t, m, g)
		m = enter(t, m)
	}
	require.Equal(t, game.StatusLost, m.Round().Status)
	assert.Contains(t, m.View(), "it was 7.")
	assert.Contains(t, m.View(), "Attempts Left: 0")
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t, 49)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.Equal(t, "", m.View())
}

func TestModel_QOnlyQuitsWhenOver(t *testing.T) {
	m := newModel(t, 49)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.Equal(t, "q", m.Input())
	assert.Equal(t, game.StatusInProgress, m.Round().Status)
	assert.NotEqual(t, "", m.View())
}
