package models

// Quote is a single quotation. An empty Author means the author is unknown.
type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author,omitempty"`
}

// IsZero reports whether the quote has no text
func (q Quote) IsZero() bool {
	return q.Text == ""
}

// ClipboardText returns the text written to the clipboard on copy.
// The text is wrapped in plain double quotes without escaping.
func (q Quote) ClipboardText() string {
	quoted := `"` + q.Text + `"`
	if q.Author == "" {
		return quoted
	}
	return quoted + " - " + q.Author
}
