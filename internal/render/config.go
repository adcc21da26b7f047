package render

import (
	"os"

	"github.com/diogo/quoteweb/internal/config"
)

// OptionsFromConfig builds render options from the user configuration.
// GLAMOUR_STYLE takes precedence over the config file.
func OptionsFromConfig(cfg config.Config, width int) Options {
	opts := DefaultOptions()

	if cfg.MarkdownStyle != "" {
		opts = opts.WithStyle(cfg.MarkdownStyle)
	}
	if width > 0 {
		opts = opts.WithWidth(width)
	}

	if style := os.Getenv("GLAMOUR_STYLE"); style != "" {
		opts = opts.WithStyle(style)
	}

	return opts
}
