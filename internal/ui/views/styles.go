package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title         lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSliding lipgloss.Style
	Dim           lipgloss.Style
	Empty         lipgloss.Style

	Card        lipgloss.Style
	CardCurrent lipgloss.Style
	CardTitle   lipgloss.Style
	CardBody    lipgloss.Style
	CardSource  lipgloss.Style

	IndicatorActive   lipgloss.Style
	IndicatorInactive lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSliding: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // cyan
		Dim:           lipgloss.NewStyle().Faint(true),
		Empty: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		CardCurrent: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		CardTitle:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		CardBody:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		CardSource: lipgloss.NewStyle().Faint(true),

		IndicatorActive:   lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		IndicatorInactive: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
