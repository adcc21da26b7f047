package commands

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/diogo/quoteweb/internal/api"
	"github.com/diogo/quoteweb/internal/config"
)

// TestNewConfigCmd tests the config command constructor
func TestNewConfigCmd(t *testing.T) {
	deps := &Dependencies{}
	cmd := NewConfigCmd(deps)

	if cmd == nil {
		t.Fatal("NewConfigCmd() returned nil")
	}

	if cmd.Use != "config" {
		t.Errorf("expected Use 'config', got '%s'", cmd.Use)
	}

	if cmd.RunE == nil {
		t.Error("RunE should not be nil")
	}

	for _, sub := range []string{"show", "init", "path"} {
		found := false
		for _, c := range cmd.Commands() {
			if c.Name() == sub {
				found = true
			}
		}
		if !found {
			t.Errorf("subcommand %s not found", sub)
		}
	}

	// Test with nil deps
	if cmd2 := NewConfigCmd(nil); cmd2 == nil || cmd2.Use != "config" {
		t.Error("NewConfigCmd(nil) should build the same command")
	}
}

func TestConfig_Show(t *testing.T) {
	for _, args := range [][]string{{"config"}, {"config", "show"}} {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			deps, out, _ := testDeps(t, api.FetchResult{})

			if err := execute(t, deps, args...); err != nil {
				t.Fatalf("Execute failed: %v", err)
			}

			var cfg config.Config
			if err := json.Unmarshal(out.Bytes(), &cfg); err != nil {
				t.Fatalf("output should be JSON: %v\n%s", err, out.String())
			}
			if cfg.TUITheme != "tokyonight" || cfg.TimeoutSeconds != 10 {
				t.Errorf("expected defaults, got %+v", cfg)
			}
			if len(cfg.Sources) != 3 {
				t.Errorf("expected 3 sources, got %d", len(cfg.Sources))
			}
		})
	}
}

func TestConfig_Init(t *testing.T) {
	deps, out, _ := testDeps(t, api.FetchResult{})

	if err := execute(t, deps, "config", "init"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	path, _ := config.GetConfigPath()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file should exist: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("expected mode 0600, got %o", info.Mode().Perm())
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("output should name the path, got %q", out.String())
	}

	// A second init refuses to overwrite
	if err := execute(t, deps, "config", "init"); err == nil {
		t.Error("init should refuse to overwrite an existing file")
	}

	if err := execute(t, deps, "config", "init", "--force"); err != nil {
		t.Errorf("init --force should overwrite: %v", err)
	}
}

func TestConfig_Path(t *testing.T) {
	deps, out, _ := testDeps(t, api.FetchResult{})
	home, _ := os.UserHomeDir()

	if err := execute(t, deps, "config", "path"); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	want := filepath.Join(home, ".quoteweb", "config.json")
	if strings.TrimSpace(out.String()) != want {
		t.Errorf("expected %s, got %q", want, out.String())
	}
}
