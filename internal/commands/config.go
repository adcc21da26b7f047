package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/diogo/quoteweb/internal/config"
)

// NewConfigCmd creates a new config command
func NewConfigCmd(deps *Dependencies) *cobra.Command {
	deps = deps.orDefaults()

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or initialize the configuration",
		Long:  `Show the effective quoteweb settings. Use "config init" to write the defaults to disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(deps)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfig(deps)
		},
	})

	var force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(deps, force)
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)

	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath()
			if err != nil {
				return err
			}
			fmt.Fprintln(deps.Out, path)
			return nil
		},
	})

	return cmd
}

func showConfig(deps *Dependencies) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	fmt.Fprintln(deps.Out, string(data))
	return nil
}

func initConfig(deps *Dependencies, force bool) error {
	path, err := config.GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := config.SaveConfig(config.DefaultConfig()); err != nil {
		return err
	}

	fmt.Fprintln(deps.Out, successStyle.Render("✓ Wrote default config to "+path))
	return nil
}
