// Package logging builds the charmbracelet/log loggers used by quoteweb.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a logger
type Options struct {
	// Verbose lowers the level from warn to debug
	Verbose bool
	// Output is where log lines go; nil discards them
	Output io.Writer
	// Logfmt switches from the human text format to logfmt, for log files
	Logfmt bool
}

// New creates a logger from opts
func New(opts Options) *log.Logger {
	out := opts.Output
	if out == nil {
		out = io.Discard
	}

	level := log.WarnLevel
	if opts.Verbose {
		level = log.DebugLevel
	}

	formatter := log.TextFormatter
	if opts.Logfmt {
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(out, log.Options{
		Prefix:          "quoteweb",
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Formatter:       formatter,
	})
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return New(Options{})
}

// Log file rotation limits
const (
	maxLogSizeMB  = 5
	maxLogBackups = 3
	maxLogAgeDays = 28
)

// OpenFile returns a size-rotated writer appending to path, creating its
// directory if needed. The file itself is opened on first write.
func OpenFile(path string) (io.WriteCloser, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
	}, nil
}
