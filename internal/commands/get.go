package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/diogo/quoteweb/internal/config"
	"github.com/diogo/quoteweb/internal/logging"
	"github.com/diogo/quoteweb/internal/render"
	"github.com/diogo/quoteweb/internal/viewstate"
)

// NewGetCmd creates the get command
func NewGetCmd(deps *Dependencies) *cobra.Command {
	deps = deps.orDefaults()

	var (
		copyFlag bool
		rawFlag  bool
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print one random quote",
		Long: `Fetch one quote through the source chain and print it.

On a terminal the quote is rendered as markdown. When piped, or with --raw,
it is printed in the same form that is copied to the clipboard.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			return runGet(cmd.Context(), deps, cfg, rawFlag, copyFlag || cfg.CopyOnGet)
		},
	}

	cmd.Flags().BoolVarP(&copyFlag, "copy", "c", false, "Copy the quote to the clipboard")
	cmd.Flags().BoolVar(&rawFlag, "raw", false, "Print plain text even on a terminal")

	return cmd
}

// runGet fetches, prints and optionally copies one quote
func runGet(ctx context.Context, deps *Dependencies, cfg config.Config, raw, copyQuote bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := logging.New(logging.Options{
		Verbose: verboseFlag || cfg.Verbose,
		Output:  deps.Err,
	})

	fetcher, err := buildFetcher(deps, cfg, logger)
	if err != nil {
		return err
	}

	res := fetcher.FetchQuote(ctx)
	logger.Debug("quote resolved", "source", res.Source, "fallback", res.Fallback)

	if res.Fallback {
		fmt.Fprintln(deps.Err, warnStyle.Render("⚠ "+viewstate.FallbackMessage))
	}

	text := res.Quote.ClipboardText()
	if raw || !deps.IsTerminal() {
		fmt.Fprintln(deps.Out, text)
	} else {
		width := getTerminalWidth() - 4
		if width > 100 {
			width = 100
		}
		rendered, err := render.Quote(res.Quote, render.OptionsFromConfig(cfg, width))
		if err != nil {
			logger.Warn("markdown rendering failed", "err", err)
			rendered = text
		}
		fmt.Fprintln(deps.Out, strings.TrimRight(rendered, "\n"))
		fmt.Fprintln(deps.Out, dimStyle.Render("  via "+res.Source))
	}

	if copyQuote {
		if err := deps.Clipboard.WriteAll(text); err != nil {
			logger.Error("failed to copy quote", "err", err)
			fmt.Fprintln(deps.Err, errorStyle.Render(fmt.Sprintf("⚠ Failed to copy to clipboard: %v", err)))
		} else {
			fmt.Fprintln(deps.Err, successStyle.Render("✓ Copied to clipboard"))
		}
	}

	return nil
}
