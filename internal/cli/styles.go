package cli

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colors used by the menu.
type Theme struct {
	Primary lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color
	Dim     lipgloss.Color
}

var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Warning: lipgloss.Color("#f0c674"),
	Error:   lipgloss.Color("#ff5f5f"),
	Dim:     lipgloss.Color("#6e7681"),
}

type Styles struct {
	Title   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Dim     lipgloss.Style
}

// NewStyles binds the theme to out, so colors are dropped when out is not a terminal.
func NewStyles(out io.Writer, t Theme) Styles {
	r := lipgloss.NewRenderer(out)
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(t.Primary),
		Success: r.NewStyle().Foreground(t.Primary),
		Warning: r.NewStyle().Foreground(t.Warning),
		Error:   r.NewStyle().Bold(true).Foreground(t.Error),
		Dim:     r.NewStyle().Foreground(t.Dim),
	}
}
