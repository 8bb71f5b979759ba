package tui

import "github.com/charmbracelet/lipgloss"

var (
	board = lipgloss.NewStyle().
		Foreground(lipgloss.Color("46")).
		Background(lipgloss.Color("22"))

	statusRunning = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82"))
	statusStopped = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220"))
	metricLabel   = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	metricValue   = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	keyHint       = lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Italic(true)
)
