// Package config handles configuration for quoteweb.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/diogo/quoteweb/internal/models"
)

const configDirName = ".quoteweb"

// Config represents the user configuration
type Config struct {
	TUITheme string `json:"tui_theme,omitempty"` // TUI color theme
	// TimeoutSeconds bounds each request to a single quote source.
	TimeoutSeconds int `json:"timeout_seconds"`
	// MarkdownStyle is the glamour style used by `quoteweb get` on a terminal:
	// "dark", "light", "notty", "dracula", "tokyo-night" or a path to a JSON style.
	MarkdownStyle string `json:"markdown_style,omitempty"`
	// Verbose enables debug logging of every source attempt.
	Verbose bool `json:"verbose"`
	// LogFile receives log output while the TUI owns the terminal.
	LogFile string `json:"log_file,omitempty"`
	// CopyOnGet copies the quote to the clipboard after `quoteweb get`.
	CopyOnGet bool `json:"copy_on_get"`
	// Sources are the remote quote sources, tried in order.
	Sources []models.SourceSpec `json:"sources,omitempty"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	homeDir, _ := os.UserHomeDir()
	return Config{
		TUITheme:       "tokyonight",
		TimeoutSeconds: 10,
		MarkdownStyle:  "dark",
		Verbose:        false,
		LogFile:        filepath.Join(homeDir, configDirName, "quoteweb.log"),
		CopyOnGet:      false,
		Sources:        models.DefaultSources(),
	}
}

// Timeout returns TimeoutSeconds as a duration
func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Validate checks the configuration for values that cannot work
func (c Config) Validate() error {
	if c.TimeoutSeconds <= 0 {
		return fmt.Errorf("timeout_seconds must be positive, got %d", c.TimeoutSeconds)
	}
	if len(c.Sources) == 0 {
		return fmt.Errorf("at least one quote source is required")
	}
	for i, src := range c.Sources {
		if src.Name == "" {
			return fmt.Errorf("source %d: name is required", i)
		}
		if src.URL == "" {
			return fmt.Errorf("source %s: url is required", src.Name)
		}
		if src.TextPath == "" {
			return fmt.Errorf("source %s: text_path is required", src.Name)
		}
	}
	return nil
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, configDirName), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the configuration from disk
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil // Use defaults if config doesn't exist
		}
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	// An explicit empty list in the file means "use the defaults"
	cfg.Sources = nil
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(cfg.Sources) == 0 {
		cfg.Sources = models.DefaultSources()
	}

	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("invalid config file: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
