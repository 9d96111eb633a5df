package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/mcpscan/mcpscan/internal/models"
)

// Severity colors
var (
	colorCritical = lipgloss.Color("#FF0000")
	colorHigh     = lipgloss.Color("#FF8800")
	colorMedium   = lipgloss.Color("#FFFF00")
	colorLow      = lipgloss.Color("#00FF00")
	colorMuted    = lipgloss.Color("#888888")
	colorAccent   = lipgloss.Color("#7B68EE")
	colorBorder   = lipgloss.Color("#444444")
)

var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder)

	styleFooter = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	styleSearchPrompt = lipgloss.NewStyle().
				Foreground(colorAccent).Bold(true)
)

// severityStyle returns the lipgloss style for a worst-case severity.
func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case models.SeverityCritical:
		return lipgloss.NewStyle().Foreground(colorCritical).Bold(true)
	case models.SeverityHigh:
		return lipgloss.NewStyle().Foreground(colorHigh).Bold(true)
	case models.SeverityMedium, models.SeverityLow:
		return lipgloss.NewStyle().Foreground(colorMedium)
	case models.SeverityNone:
		return lipgloss.NewStyle().Foreground(colorLow)
	default:
		return lipgloss.NewStyle()
	}
}
