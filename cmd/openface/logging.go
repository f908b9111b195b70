package main

import (
	"os"

	"github.com/charmbracelet/log"
)

// setupLogger builds the shared CLI logger. The debug flag wins over
// the configured level string.
func setupLogger(level string, debug bool) *log.Logger {
	lvl := log.InfoLevel
	if parsed, err := log.ParseLevel(level); err == nil {
		lvl = parsed
	}
	if debug {
		lvl = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           lvl,
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
}
