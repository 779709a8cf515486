package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginTop(1)

	lightStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	darkStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))
	summaryStyle = lipgloss.NewStyle().MarginTop(1)
	helpStyle    = lipgloss.NewStyle().MarginTop(1)
)
