package render

import (
	"github.com/charmbracelet/lipgloss"
)

// TUITheme defines the color scheme for the quote widget
type TUITheme struct {
	Name        string
	Description string

	// Base colors
	Background lipgloss.Color
	Surface    lipgloss.Color
	Border     lipgloss.Color

	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color

	// Text colors
	Text     lipgloss.Color
	TextDim  lipgloss.Color
	TextMute lipgloss.Color

	// Gradient is swept across a new quote as it appears
	Gradient []lipgloss.Color
}

// Built-in TUI themes
var (
	// TokyoNightTheme is the default dark theme based on Tokyo Night color scheme
	TokyoNightTheme = TUITheme{
		Name:        "tokyonight",
		Description: "Tokyo Night - Dark theme with blue accents",

		Background: lipgloss.Color("#1a1b26"),
		Surface:    lipgloss.Color("#24283b"),
		Border:     lipgloss.Color("#414868"),

		Primary:   lipgloss.Color("#7aa2f7"),
		Secondary: lipgloss.Color("#f7768e"),
		Accent:    lipgloss.Color("#bb9af7"),
		Success:   lipgloss.Color("#9ece6a"),
		Warning:   lipgloss.Color("#e0af68"),
		Error:     lipgloss.Color("#f7768e"),

		Text:     lipgloss.Color("#c0caf5"),
		TextDim:  lipgloss.Color("#565f89"),
		TextMute: lipgloss.Color("#3b4261"),

		Gradient: []lipgloss.Color{"#3b4261", "#565f89", "#7aa2f7", "#bb9af7", "#c0caf5"},
	}

	// CatppuccinMochaTheme is based on Catppuccin Mocha palette
	CatppuccinMochaTheme = TUITheme{
		Name:        "catppuccin",
		Description: "Catppuccin Mocha - Warm dark theme with pastel colors",

		Background: lipgloss.Color("#1e1e2e"),
		Surface:    lipgloss.Color("#313244"),
		Border:     lipgloss.Color("#45475a"),

		Primary:   lipgloss.Color("#cba6f7"), // Mauve
		Secondary: lipgloss.Color("#f5c2e7"), // Pink
		Accent:    lipgloss.Color("#89b4fa"), // Blue
		Success:   lipgloss.Color("#a6e3a1"), // Green
		Warning:   lipgloss.Color("#f9e2af"), // Yellow
		Error:     lipgloss.Color("#f38ba8"), // Red

		Text:     lipgloss.Color("#cdd6f4"),
		TextDim:  lipgloss.Color("#6c7086"),
		TextMute: lipgloss.Color("#45475a"),

		Gradient: []lipgloss.Color{"#45475a", "#6c7086", "#cba6f7", "#f5c2e7", "#cdd6f4"},
	}

	// NordTheme is based on the Nord color palette
	NordTheme = TUITheme{
		Name:        "nord",
		Description: "Nord - Arctic-inspired theme with cool tones",

		Background: lipgloss.Color("#2e3440"),
		Surface:    lipgloss.Color("#3b4252"),
		Border:     lipgloss.Color("#4c566a"),

		Primary:   lipgloss.Color("#88c0d0"), // Frost
		Secondary: lipgloss.Color("#b48ead"), // Aurora purple
		Accent:    lipgloss.Color("#81a1c1"), // Frost blue
		Success:   lipgloss.Color("#a3be8c"), // Aurora green
		Warning:   lipgloss.Color("#ebcb8b"), // Aurora yellow
		Error:     lipgloss.Color("#bf616a"), // Aurora red

		Text:     lipgloss.Color("#eceff4"),
		TextDim:  lipgloss.Color("#7b88a1"),
		TextMute: lipgloss.Color("#4c566a"),

		Gradient: []lipgloss.Color{"#4c566a", "#7b88a1", "#81a1c1", "#88c0d0", "#eceff4"},
	}

	// PurpleHazeTheme is a deep purple theme with a purple-to-pink reveal gradient
	PurpleHazeTheme = TUITheme{
		Name:        "purple",
		Description: "Purple Haze - Purple background with yellow and pink highlights",

		Background: lipgloss.Color("#4c1d95"),
		Surface:    lipgloss.Color("#6d28d9"),
		Border:     lipgloss.Color("#a78bfa"),

		Primary:   lipgloss.Color("#fde047"), // Yellow 300
		Secondary: lipgloss.Color("#f9a8d4"), // Pink 300
		Accent:    lipgloss.Color("#22d3ee"), // Cyan 400
		Success:   lipgloss.Color("#34d399"), // Emerald 400
		Warning:   lipgloss.Color("#fbbf24"), // Amber 400
		Error:     lipgloss.Color("#fb7185"), // Rose 400

		Text:     lipgloss.Color("#ffffff"),
		TextDim:  lipgloss.Color("#ddd6fe"),
		TextMute: lipgloss.Color("#a78bfa"),

		Gradient: []lipgloss.Color{"#7c3aed", "#a78bfa", "#f9a8d4", "#fde047", "#ffffff"},
	}

	// DraculaTheme is based on the Dracula color palette
	DraculaTheme = TUITheme{
		Name:        "dracula",
		Description: "Dracula - Dark theme with vibrant colors",

		Background: lipgloss.Color("#282a36"),
		Surface:    lipgloss.Color("#44475a"),
		Border:     lipgloss.Color("#6272a4"),

		Primary:   lipgloss.Color("#bd93f9"), // Purple
		Secondary: lipgloss.Color("#ff79c6"), // Pink
		Accent:    lipgloss.Color("#8be9fd"), // Cyan
		Success:   lipgloss.Color("#50fa7b"), // Green
		Warning:   lipgloss.Color("#f1fa8c"), // Yellow
		Error:     lipgloss.Color("#ff5555"), // Red

		Text:     lipgloss.Color("#f8f8f2"),
		TextDim:  lipgloss.Color("#6272a4"),
		TextMute: lipgloss.Color("#44475a"),

		Gradient: []lipgloss.Color{"#44475a", "#6272a4", "#bd93f9", "#ff79c6", "#f8f8f2"},
	}
)

// currentTUITheme holds the currently active TUI theme
var currentTUITheme = TokyoNightTheme

// GetTUITheme returns the currently active TUI theme
func GetTUITheme() TUITheme {
	return currentTUITheme
}

// SetTUITheme sets the active TUI theme by name
func SetTUITheme(name string) bool {
	theme, ok := GetTUIThemeByName(name)
	if ok {
		currentTUITheme = theme
		return true
	}
	return false
}

// GetTUIThemeByName returns a TUI theme by its name
func GetTUIThemeByName(name string) (TUITheme, bool) {
	for _, theme := range AvailableTUIThemes() {
		if theme.Name == name {
			return theme, true
		}
	}
	return TUITheme{}, false
}

// NextTUIThemeName returns the theme after name in AvailableTUIThemes, wrapping around.
// Unknown names yield the first theme.
func NextTUIThemeName(name string) string {
	themes := AvailableTUIThemes()
	for i, theme := range themes {
		if theme.Name == name {
			return themes[(i+1)%len(themes)].Name
		}
	}
	return themes[0].Name
}

// AvailableTUIThemes returns a list of all available TUI themes
func AvailableTUIThemes() []TUITheme {
	return []TUITheme{
		TokyoNightTheme,
		CatppuccinMochaTheme,
		NordTheme,
		PurpleHazeTheme,
		DraculaTheme,
	}
}

// TUIThemeNames returns just the theme names for selection
func TUIThemeNames() []string {
	themes := AvailableTUIThemes()
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}
