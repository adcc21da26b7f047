// Package models contains data types and constants for the quote sources.
package models

// Endpoints for the remote quote APIs
const (
	EndpointQuotable       = "https://api.quotable.io/random"
	EndpointQuotableMirror = "https://quotable.io/random"
	EndpointQuoteGarden    = "https://quote-garden.onrender.com/api/v3/quotes/random"
)

// Source names
const (
	SourceQuotable       = "quotable"
	SourceQuotableMirror = "quotable-mirror"
	SourceQuoteGarden    = "quote-garden"
	SourceLocal          = "local"
)

// SourceSpec describes where a remote source lives and how to read its response.
// TextPath and AuthorPath are gjson paths; alternatives are separated by "|"
// and tried left to right.
type SourceSpec struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	TextPath   string `json:"text_path"`
	AuthorPath string `json:"author_path,omitempty"`
}

// DefaultSources returns the remote sources in fallback order
func DefaultSources() []SourceSpec {
	return []SourceSpec{
		{
			Name:       SourceQuotable,
			URL:        EndpointQuotable,
			TextPath:   "content",
			AuthorPath: "author",
		},
		{
			Name:       SourceQuotableMirror,
			URL:        EndpointQuotableMirror,
			TextPath:   "content",
			AuthorPath: "author",
		},
		{
			// data is an object in the documented shape and an array in the live service
			Name:       SourceQuoteGarden,
			URL:        EndpointQuoteGarden,
			TextPath:   "data.quoteText|data.0.quoteText",
			AuthorPath: "data.quoteAuthor|data.0.quoteAuthor",
		},
	}
}

// fallbackQuotes are shown when every remote source fails.
// Each entry must pass the acceptance pattern.
var fallbackQuotes = []Quote{
	{Text: "Believe you can and you're halfway there.", Author: "Theodore Roosevelt"},
	{Text: "Dream big and dare to fail.", Author: "Norman Vaughan"},
	{Text: "The harder you work for something, the greater you'll feel when you achieve it."},
	{Text: "Act as if what you do makes a difference. It does.", Author: "William James"},
	{Text: "It always seems impossible until it's done.", Author: "Nelson Mandela"},
	{Text: "The secret of getting ahead is getting started.", Author: "Mark Twain"},
}

// FallbackQuotes returns a copy of the local quote list
func FallbackQuotes() []Quote {
	out := make([]Quote, len(fallbackQuotes))
	copy(out, fallbackQuotes)
	return out
}

// DefaultHeaders returns the default headers for quote API requests
func DefaultHeaders() map[string]string {
	return map[string]string{
		"Accept":          "application/json",
		"Accept-Language": "en-US,en;q=0.9",
		"User-Agent":      "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}
