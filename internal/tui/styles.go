package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary = "6"
	colorMuted   = "8"
	colorError   = "1"
	colorAccent  = "11"
	colorSuccess = "2"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(colorPrimary)).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color(colorAccent)).
				Bold(true)

	gridStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorMuted)).
			Padding(0, 1)

	focusedGridStyle = gridStyle.
				BorderForeground(lipgloss.Color(colorAccent))

	robotStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorSuccess)).
			Bold(true)

	errorBoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(colorError)).
			Padding(0, 1)

	errorTitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorError)).
			Bold(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color(colorMuted)).
			MarginTop(1)
)
