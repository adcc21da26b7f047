package render

import (
	"os"
	"testing"

	"github.com/diogo/quoteweb/internal/config"
)

func TestOptionsFromConfig(t *testing.T) {
	origStyle, hadStyle := os.LookupEnv("GLAMOUR_STYLE")
	_ = os.Unsetenv("GLAMOUR_STYLE")
	defer func() {
		if hadStyle {
			_ = os.Setenv("GLAMOUR_STYLE", origStyle)
		}
	}()

	cfg := config.DefaultConfig()
	cfg.MarkdownStyle = "dracula"

	opts := OptionsFromConfig(cfg, 60)
	if opts.Style != "dracula" {
		t.Errorf("expected Style='dracula', got %s", opts.Style)
	}
	if opts.Width != 60 {
		t.Errorf("expected Width=60, got %d", opts.Width)
	}

	cfg.MarkdownStyle = ""
	opts = OptionsFromConfig(cfg, 0)
	if opts.Style != "dark" || opts.Width != 80 {
		t.Errorf("expected defaults, got %+v", opts)
	}
}

func TestOptionsFromConfig_EnvOverride(t *testing.T) {
	t.Setenv("GLAMOUR_STYLE", "light")

	cfg := config.DefaultConfig()
	cfg.MarkdownStyle = "dracula"

	opts := OptionsFromConfig(cfg, 80)
	if opts.Style != "light" {
		t.Errorf("expected Style='light' from env, got %s", opts.Style)
	}
}
