package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the console styling definitions.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Value   lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Muted   lipgloss.Style
}

// DefaultStyles creates the default style set using the default renderer.
func DefaultStyles() Styles {
	return NewStyles(lipgloss.DefaultRenderer())
}

// NewStyles creates the style set using the given renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("62")),
		Label: r.NewStyle().
			Foreground(lipgloss.Color("245")),
		Value: r.NewStyle().
			Bold(true),
		Success: r.NewStyle().
			Foreground(lipgloss.Color("42")),
		Failure: r.NewStyle().
			Foreground(lipgloss.Color("196")),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color("241")),
	}
}
