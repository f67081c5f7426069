package output

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: plugin names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for successful builds.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failed builds (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (scope prefixes, durations).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Build status values.
const (
	StatusSucceeded = "succeeded"
	StatusWarnings  = "warnings"
	StatusFailed    = "failed"
)

// StatusStyle returns the style for a build status. Unknown statuses are unstyled.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusSucceeded:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusWarnings:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minNameColumnWidth keeps status words aligned across lines.
const minNameColumnWidth = 32

// FormatBuildLine renders "b:<plugin>  <status> (<duration>)".
func FormatBuildLine(plugin, status string, d time.Duration) string {
	padding := minNameColumnWidth - len(plugin)
	if padding < 2 {
		padding = 2
	}
	return StyleDim.Render("b:") +
		StyleNoun.Render(plugin) +
		strings.Repeat(" ", padding) +
		StatusStyle(status).Render(status) +
		" " + StyleDim.Render(fmt.Sprintf("(%s)", d.Round(time.Millisecond)))
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
