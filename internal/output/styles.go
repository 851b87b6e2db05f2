package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for all ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: component names, paths, targets.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "installed" component state.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "pending" component state (needs install).
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (component names, paths, targets).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (selecting, probing, listing).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome (separators, shadowed values).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Component state constants.
const (
	StatePending      = "pending"
	StateInstalled    = "installed"
	StateIncompatible = "incompatible"
)

// StateStyle returns the lipgloss style for a component state string.
// Unknown states return an unstyled default.
func StateStyle(state string) lipgloss.Style {
	switch state {
	case StatePending:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StateInstalled:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StateIncompatible:
		return lipgloss.NewStyle().Faint(true)
	default:
		return lipgloss.NewStyle()
	}
}

// minComponentColumnWidth is the minimum width for the component name
// column before the state suffix, so state words align consistently.
const minComponentColumnWidth = 40

// FormatComponentLine renders a component description with a right-aligned,
// color-coded state suffix.
//
// Format: c:<description>  <state>
func FormatComponentLine(description, state string) string {
	padding := minComponentColumnWidth - len(description)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("c:")
	styledName := StyleNoun.Render(description)
	styledState := StateStyle(state).Render(state)

	return prefix + styledName + strings.Repeat(" ", padding) + styledState
}

// FormatTarget renders a platform/architecture pair as a styled noun.
func FormatTarget(platform, architecture string) string {
	return StyleNoun.Render(fmt.Sprintf("%s/%s", platform, architecture))
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
