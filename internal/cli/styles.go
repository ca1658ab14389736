// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// ScaleColor marks profitable ads worth scaling.
	ScaleColor = lipgloss.Color("#2E7D32")
	// AdjustColor marks ads with problems to fix.
	AdjustColor = lipgloss.Color("#F9A825")
	// PauseColor marks ads running at a clear loss.
	PauseColor = lipgloss.Color("#C62828")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#004AAD")).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ScaleColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(AdjustColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(PauseColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)
)

// CategoryStyle returns the style matching a category label.
func CategoryStyle(category string) lipgloss.Style {
	switch category {
	case "SCALE":
		return SuccessStyle
	case "ADJUST":
		return WarningStyle
	case "PAUSE":
		return ErrorStyle
	default:
		return SubtleStyle
	}
}
