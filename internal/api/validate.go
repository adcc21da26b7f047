package api

import "regexp"

// acceptPattern admits ASCII letters, digits, whitespace and basic punctuation.
// It stands in for "English only" but is just a character-set check: curly
// quotes, em-dashes and accented names are rejected.
var acceptPattern = regexp.MustCompile(`^[A-Za-z0-9\s.,!?'";:()\-]+$`)

// Accept reports whether text passes the acceptance pattern
func Accept(text string) bool {
	return acceptPattern.MatchString(text)
}
