package commands

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/diogo/quoteweb/internal/api"
	"github.com/diogo/quoteweb/internal/models"
	"github.com/diogo/quoteweb/internal/tui"
)

// mockFetcher returns a fixed result
type mockFetcher struct {
	result api.FetchResult
	calls  int
}

func (m *mockFetcher) FetchQuote(context.Context) api.FetchResult {
	m.calls++
	return m.result
}

// mockTUI records the options it was started with
type mockTUI struct {
	opts   tui.Options
	called bool
	err    error
}

func (m *mockTUI) RunQuoteTUI(opts tui.Options) error {
	m.called = true
	m.opts = opts
	return m.err
}

// mockClipboard records writes or fails with err
type mockClipboard struct {
	writes []string
	err    error
}

func (m *mockClipboard) WriteAll(text string) error {
	if m.err != nil {
		return m.err
	}
	m.writes = append(m.writes, text)
	return nil
}

var testQuote = models.Quote{
	Text:   "Dream big and dare to fail.",
	Author: "Norman Vaughan",
}

// testDeps returns dependencies writing to buffers, with HOME in a temp dir
func testDeps(t *testing.T, result api.FetchResult) (*Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	withTempHome(t)

	var out, errOut bytes.Buffer
	deps := &Dependencies{
		Fetcher:    &mockFetcher{result: result},
		TUI:        &mockTUI{},
		Clipboard:  &mockClipboard{},
		Out:        &out,
		Err:        &errOut,
		IsTerminal: func() bool { return false },
	}
	return deps, &out, &errOut
}

// withTempHome points HOME at a fresh directory for the duration of the test
func withTempHome(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	oldHome := os.Getenv("HOME")
	_ = os.Setenv("HOME", tmpDir)
	t.Cleanup(func() { _ = os.Setenv("HOME", oldHome) })
	return tmpDir
}

// execute runs a fresh root command with args
func execute(t *testing.T, deps *Dependencies, args ...string) error {
	t.Helper()
	cmd := NewRootCmd(deps)
	cmd.SetArgs(args)
	return cmd.Execute()
}
