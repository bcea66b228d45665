package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Underline(true)
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	rowStyle      = lipgloss.NewStyle()
	totalStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Faint(true).Italic(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	emptyStyle    = lipgloss.NewStyle().Faint(true).Italic(true)
)
