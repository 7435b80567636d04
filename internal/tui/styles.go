package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/pgmon/internal/session"
)

// Dashboard color palette.
const (
	ColorAccent   = lipgloss.Color("14") // cyan
	ColorHealthy  = lipgloss.Color("10") // green
	ColorWarning  = lipgloss.Color("11") // yellow
	ColorCritical = lipgloss.Color("9")  // red

	ColorTextPrimary   = lipgloss.Color("15")
	ColorTextSecondary = lipgloss.Color("7")
	ColorTextMuted     = lipgloss.Color("8")

	ColorBorder = lipgloss.Color("8")
)

// Base styles for the dashboard chrome.
var (
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorTextMuted).
				Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorTextPrimary)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorCritical).
			Bold(true).
			Padding(0, 1)
)

// SeverityColor maps a severity tier onto the palette.
func SeverityColor(s session.Severity) lipgloss.Color {
	switch s {
	case session.SeverityHigh:
		return ColorCritical
	case session.SeverityMedium:
		return ColorWarning
	default:
		return ColorHealthy
	}
}

// SeverityStyle returns a foreground style for the severity tier.
func SeverityStyle(s session.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(SeverityColor(s))
}
