package render

import (
	"strings"

	"github.com/diogo/quoteweb/internal/models"
)

// Markdown renders markdown content for terminal display.
// Uses a pooled renderer for better performance and thread safety.
func Markdown(content string, opts Options) (string, error) {
	renderer, err := globalPool.get(opts)
	if err != nil {
		return "", err
	}
	defer globalPool.put(opts, renderer)

	return renderer.Render(content)
}

// QuoteMarkdown formats q as a markdown blockquote with an attribution line
func QuoteMarkdown(q models.Quote) string {
	var sb strings.Builder
	for _, line := range strings.Split(q.Text, "\n") {
		sb.WriteString("> ")
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if q.Author != "" {
		sb.WriteString(">\n> *")
		sb.WriteString(q.Author)
		sb.WriteString("*\n")
	}
	return sb.String()
}

// Quote renders q for terminal display. Line breaks in the quote text are
// always kept.
func Quote(q models.Quote, opts Options) (string, error) {
	return Markdown(QuoteMarkdown(q), opts.WithPreserveNewLines(true))
}
