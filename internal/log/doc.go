// Package log provides the logger factories used throughout campeonato,
// built on top of the standard slog package.
//
// Diagnostics are written through slog to stderr. Domain output (registration
// confirmations, bonus tier lines and reports) is not logging and never goes
// through this package.
//
// # Usage
//
//	// Create a logger
//	logger := log.NewLogger(os.Stderr, true) // verbose=true
//
//	// Set as default logger
//	slog.SetDefault(logger)
package log
