// Package commands provides CLI commands for quoteweb.
package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/diogo/quoteweb/internal/api"
	"github.com/diogo/quoteweb/internal/config"
	"github.com/diogo/quoteweb/internal/logging"
	"github.com/diogo/quoteweb/internal/render"
	"github.com/diogo/quoteweb/internal/tui"
)

var (
	// Global flags
	themeFlag   string
	offlineFlag bool
	verboseFlag bool

	// Version info (set at build time)
	Version   = "0.1.0"
	BuildTime = "unknown"
)

var (
	colorTextDim = lipgloss.Color("#565f89")
	colorSuccess = lipgloss.Color("#9ece6a")
	colorWarning = lipgloss.Color("#e0af68")
	colorError   = lipgloss.Color("#f7768e")

	dimStyle     = lipgloss.NewStyle().Foreground(colorTextDim)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle    = lipgloss.NewStyle().Foreground(colorWarning)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd(deps *Dependencies) *cobra.Command {
	deps = deps.orDefaults()

	cmd := &cobra.Command{
		Use:   "quoteweb",
		Short: "Random quotes in your terminal",
		Long: `quoteweb shows a random inspirational quote fetched from public quote
services, falling back to a built-in list when none of them can be reached.

Examples:
  quoteweb                          Open the quote widget
  quoteweb --theme nord             Open the widget with another theme
  quoteweb get                      Print one quote
  quoteweb get --copy               Print one quote and copy it
  quoteweb sources                  List the quote sources in order
  quoteweb config init              Write the default config file`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Check for version flag
			if v, _ := cmd.Flags().GetBool("version"); v {
				fmt.Fprintf(deps.Out, "quoteweb %s (built %s)\n", Version, BuildTime)
				return nil
			}
			return runTUI(deps)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVar(&offlineFlag, "offline", false, "Use only the built-in quotes")
	cmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "Log every source attempt")
	cmd.Flags().StringVar(&themeFlag, "theme", "",
		"TUI theme ("+strings.Join(render.TUIThemeNames(), ", ")+")")
	cmd.Flags().BoolP("version", "v", false, "Show version and exit")

	// Add subcommands
	cmd.AddCommand(NewGetCmd(deps))
	cmd.AddCommand(NewSourcesCmd(deps))
	cmd.AddCommand(NewConfigCmd(deps))

	return cmd
}

// rootCmd represents the base command
var rootCmd = NewRootCmd(nil)

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

// runTUI opens the interactive quote widget
func runTUI(deps *Dependencies) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	theme := themeFlag
	if theme == "" {
		theme = cfg.TUITheme
	}
	if _, ok := render.GetTUIThemeByName(theme); !ok {
		return fmt.Errorf("unknown theme %q (available: %s)", theme, strings.Join(render.TUIThemeNames(), ", "))
	}

	// The TUI owns the terminal, so logs go to the log file
	var logOut io.Writer
	if cfg.LogFile != "" {
		f, err := logging.OpenFile(cfg.LogFile)
		if err != nil {
			fmt.Fprintln(deps.Err, warnStyle.Render(fmt.Sprintf("⚠ Logging disabled: %v", err)))
		} else {
			defer f.Close()
			logOut = f
		}
	}
	logger := logging.New(logging.Options{
		Verbose: verboseFlag || cfg.Verbose,
		Output:  logOut,
		Logfmt:  true,
	})

	fetcher, err := buildFetcher(deps, cfg, logger)
	if err != nil {
		return err
	}

	logger.Debug("starting tui", "theme", theme, "offline", offlineFlag)

	if err := deps.TUI.RunQuoteTUI(tui.Options{
		Fetcher:   fetcher,
		Clipboard: deps.Clipboard,
		Logger:    logger,
		Theme:     theme,
	}); err != nil {
		return fmt.Errorf("failed to run quote widget: %w", err)
	}
	return nil
}

// buildFetcher returns the injected fetcher or builds a provider from cfg
func buildFetcher(deps *Dependencies, cfg config.Config, logger *log.Logger) (api.QuoteFetcher, error) {
	if deps.Fetcher != nil {
		return deps.Fetcher, nil
	}

	if offlineFlag {
		return api.NewProvider(
			[]api.Source{api.NewLocalSource(nil)},
			api.WithProviderLogger(logger),
		), nil
	}

	client, err := api.NewClient(
		api.WithTimeout(cfg.Timeout()),
		api.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP client: %w", err)
	}

	return api.ProviderFromSpecs(client, cfg.Sources, api.WithProviderLogger(logger)), nil
}
