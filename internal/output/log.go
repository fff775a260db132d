// Package output provides terminal output for the scaffold CLI.
package output

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// LogConfig controls how progress is logged.
type LogConfig struct {
	Verbose bool
}

// NewLogger returns a slog logger rendered by charmbracelet/log. Verbose
// output adds debug records, timestamps and callers.
func NewLogger(w io.Writer, cfg LogConfig) *slog.Logger {
	level := log.InfoLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: cfg.Verbose,
		ReportCaller:    cfg.Verbose,
		TimeFormat:      "15:04:05",
	})
	return slog.New(handler)
}
