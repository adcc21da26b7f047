// Package tui provides the terminal user interface for quoteweb.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	apierrors "github.com/diogo/quoteweb/internal/errors"
	"github.com/diogo/quoteweb/internal/render"
)

// Color variables (updated from theme)
var (
	colorBorder    lipgloss.Color
	colorPrimary   lipgloss.Color
	colorSecondary lipgloss.Color
	colorAccent    lipgloss.Color
	colorSuccess   lipgloss.Color
	colorWarning   lipgloss.Color
	colorText      lipgloss.Color
	colorTextDim   lipgloss.Color
	colorTextMute  lipgloss.Color

	// revealColors are stepped through when a new quote appears
	revealColors []lipgloss.Color
)

// Style variables (rebuilt when theme changes)
var (
	// Outer card around the whole widget
	cardStyle lipgloss.Style

	// Widget title
	titleStyle lipgloss.Style

	// Panel holding the quote text
	quotePanelStyle lipgloss.Style
	quoteTextStyle  lipgloss.Style
	authorStyle     lipgloss.Style

	// Buttons
	buttonStyle       lipgloss.Style
	buttonNewStyle    lipgloss.Style
	buttonCopyStyle   lipgloss.Style
	buttonCopiedStyle lipgloss.Style
	buttonMutedStyle  lipgloss.Style

	// Loading/spinner style
	loadingStyle lipgloss.Style

	// Advisory shown when the local fallback was used
	advisoryStyle lipgloss.Style
	hintStyle     lipgloss.Style

	// Status bar styles
	statusBarStyle  lipgloss.Style
	statusKeyStyle  lipgloss.Style
	statusDescStyle lipgloss.Style
)

// init loads the default theme on package initialization
func init() {
	UpdateTheme()
}

// UpdateTheme refreshes all styles based on the current TUI theme
func UpdateTheme() {
	theme := render.GetTUITheme()

	colorBorder = theme.Border
	colorPrimary = theme.Primary
	colorSecondary = theme.Secondary
	colorAccent = theme.Accent
	colorSuccess = theme.Success
	colorWarning = theme.Warning
	colorText = theme.Text
	colorTextDim = theme.TextDim
	colorTextMute = theme.TextMute
	revealColors = theme.Gradient

	rebuildStyles()
}

// rebuildStyles creates all lipgloss styles with current color values
func rebuildStyles() {
	cardStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
		Foreground(colorPrimary).
		Bold(true).
		MarginBottom(1)

	quotePanelStyle = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(colorSecondary).
		Padding(1, 2).
		MarginBottom(1)

	quoteTextStyle = lipgloss.NewStyle().
		Foreground(colorText).
		Italic(true)

	authorStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		MarginTop(1)

	buttonStyle = lipgloss.NewStyle().
		Padding(0, 2).
		Bold(true)

	buttonNewStyle = buttonStyle.
		Foreground(lipgloss.Color("#ffffff")).
		Background(colorSecondary)

	buttonCopyStyle = buttonStyle.
		Foreground(lipgloss.Color("#ffffff")).
		Background(colorAccent)

	buttonCopiedStyle = buttonStyle.
		Foreground(lipgloss.Color("#ffffff")).
		Background(colorSuccess)

	buttonMutedStyle = buttonStyle.
		Foreground(colorTextDim).
		Background(colorTextMute)

	loadingStyle = lipgloss.NewStyle().
		Foreground(colorAccent).
		Bold(true)

	advisoryStyle = lipgloss.NewStyle().
		Foreground(colorWarning).
		Bold(true).
		MarginTop(1)

	hintStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		Italic(true)

	statusBarStyle = lipgloss.NewStyle().
		Foreground(colorTextMute).
		MarginTop(1)

	statusKeyStyle = lipgloss.NewStyle().
		Foreground(colorTextDim).
		Bold(true)

	statusDescStyle = lipgloss.NewStyle().
		Foreground(colorTextMute)
}

// failureHint explains the most likely reason every source failed
func failureHint(err error) string {
	switch {
	case err == nil:
		return ""
	case apierrors.IsNetworkError(err):
		return "Hint: check your internet connection and press n to try again"
	case apierrors.IsValidationError(err):
		return "Hint: the fetched quotes contained characters outside plain ASCII"
	default:
		return "Hint: the quote services may be down, press n to try again"
	}
}
