package tui

import "github.com/atotto/clipboard"

// Clipboard writes text to the system clipboard
type Clipboard interface {
	WriteAll(text string) error
}

// SystemClipboard is the Clipboard backed by atotto/clipboard
type SystemClipboard struct{}

// WriteAll implements Clipboard
func (SystemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
