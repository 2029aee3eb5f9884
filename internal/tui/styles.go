package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	maskedStyle     = lipgloss.NewStyle().Faint(true)
	validStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	invalidStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
