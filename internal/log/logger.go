package log

import (
	"io"
	"log/slog"
)

// Level returns the minimum log level for the given verbosity.
// Verbose mode logs everything from Debug up; otherwise only warnings and
// errors are shown so that the console output stays limited to the report.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a new slog.Logger writing human-readable text.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(verbose),
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewJSONLogger creates a new slog.Logger that outputs JSON format.
// Useful for structured log aggregation.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: Level(verbose),
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}
