package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/diogo/quoteweb/internal/config"
	"github.com/diogo/quoteweb/internal/models"
)

var sourceNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7aa2f7")).Bold(true)

// NewSourcesCmd creates the sources command
func NewSourcesCmd(deps *Dependencies) *cobra.Command {
	deps = deps.orDefaults()

	return &cobra.Command{
		Use:   "sources",
		Short: "List quote sources in fallback order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			printSources(deps.Out, cfg.Sources, offlineFlag)
			return nil
		},
	}
}

// printSources writes one line per source, ending with the local fallback
func printSources(w io.Writer, specs []models.SourceSpec, offline bool) {
	n := 1
	if !offline {
		for _, spec := range specs {
			fmt.Fprintf(w, "%d. %s  %s\n", n, sourceNameStyle.Render(spec.Name), spec.URL)
			fmt.Fprintln(w, dimStyle.Render(fmt.Sprintf("   text: %s  author: %s", spec.TextPath, orNone(spec.AuthorPath))))
			n++
		}
	}
	fmt.Fprintf(w, "%d. %s  %s\n", n, sourceNameStyle.Render(models.SourceLocal),
		dimStyle.Render(fmt.Sprintf("%d built-in quotes", len(models.FallbackQuotes()))))
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
