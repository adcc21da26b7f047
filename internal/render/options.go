// Package render provides quote rendering utilities for terminal output.
package render

// Options configures the markdown renderer behavior.
type Options struct {
	// Width defines the maximum output width (default: 80)
	Width int

	// Style is a glamour style name ("dark", "light", "notty", "dracula",
	// "tokyo-night") or a path to a JSON style file
	Style string

	// PreserveNewLines preserves original line breaks
	PreserveNewLines bool
}

// DefaultOptions returns the default configuration.
func DefaultOptions() Options {
	return Options{
		Width:            80,
		Style:            "dark",
		PreserveNewLines: true,
	}
}

// WithWidth returns Options with the specified width.
func (o Options) WithWidth(width int) Options {
	o.Width = width
	return o
}

// WithStyle returns Options with the specified style.
func (o Options) WithStyle(style string) Options {
	o.Style = style
	return o
}

// WithPreserveNewLines returns Options with newline preservation enabled/disabled.
func (o Options) WithPreserveNewLines(enabled bool) Options {
	o.PreserveNewLines = enabled
	return o
}
