package commands

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/diogo/quoteweb/internal/api"
	"github.com/diogo/quoteweb/internal/tui"
)

// TUIInterface defines the methods required from the TUI package.
type TUIInterface interface {
	RunQuoteTUI(opts tui.Options) error
}

// Dependencies holds the external dependencies for the commands.
// This allows for dependency injection and easier testing.
type Dependencies struct {
	// Fetcher overrides the provider built from the config file.
	Fetcher api.QuoteFetcher

	// TUI is the terminal user interface.
	TUI TUIInterface

	// Clipboard receives copied quotes.
	Clipboard tui.Clipboard

	// Out and Err replace stdout and stderr.
	Out io.Writer
	Err io.Writer

	// IsTerminal reports whether Out is a terminal.
	IsTerminal func() bool
}

// DefaultTUI is the production implementation of TUIInterface.
type DefaultTUI struct{}

func (d *DefaultTUI) RunQuoteTUI(opts tui.Options) error {
	return tui.Run(opts)
}

// NewDependencies creates a new Dependencies struct with default implementations.
func NewDependencies() *Dependencies {
	return &Dependencies{
		TUI:        &DefaultTUI{},
		Clipboard:  tui.SystemClipboard{},
		Out:        os.Stdout,
		Err:        os.Stderr,
		IsTerminal: isStdoutTTY,
	}
}

// orDefaults fills every unset field of deps with its production value
func (d *Dependencies) orDefaults() *Dependencies {
	def := NewDependencies()
	if d == nil {
		return def
	}

	out := *d
	if out.TUI == nil {
		out.TUI = def.TUI
	}
	if out.Clipboard == nil {
		out.Clipboard = def.Clipboard
	}
	if out.Out == nil {
		out.Out = def.Out
	}
	if out.Err == nil {
		out.Err = def.Err
	}
	if out.IsTerminal == nil {
		out.IsTerminal = def.IsTerminal
	}
	return &out
}

// getTerminalWidth returns the terminal width or a default value
func getTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // default width
	}
	return width
}

// isStdoutTTY returns true if stdout is connected to a terminal
func isStdoutTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
