package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Indigo = lipgloss.Color("#3949ab")
	Teal   = lipgloss.Color("#00796b")
	Pink   = lipgloss.Color("#d81b60")
	Blue   = lipgloss.Color("#1976d2")
	Sky    = lipgloss.Color("#81d4fa")
	Purple = lipgloss.Color("#ab47bc")
	White  = lipgloss.Color("#ffffff")
	Muted  = lipgloss.Color("#78909c")
)

// Styles groups every style the model renders with.
type Styles struct {
	Title    lipgloss.Style
	Message  lipgloss.Style
	GameOver lipgloss.Style
	Attempts lipgloss.Style
	Input    lipgloss.Style
	Retry    lipgloss.Style
	Help     lipgloss.Style
}

// DefaultStyles returns the standard look.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Indigo).MarginBottom(1),
		Message:  lipgloss.NewStyle().Foreground(Teal),
		GameOver: lipgloss.NewStyle().Foreground(Pink),
		Attempts: lipgloss.NewStyle().Foreground(Blue).MarginBottom(1),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Sky).
			Padding(0, 1),
		Retry: lipgloss.NewStyle().Bold(true).Foreground(White).Background(Purple).Padding(0, 2),
		Help:  lipgloss.NewStyle().Foreground(Muted).MarginTop(1),
	}
}
