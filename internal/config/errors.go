package config

import "errors"

// Configuration errors.
// These errors are returned by Config.Validate() and the file loader so that
// callers can use errors.Is() for programmatic error handling.
var (
	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrNoFormats is returned when no report format is configured.
	ErrNoFormats = errors.New("no report formats configured")

	// ErrEmptyFormat is returned when a configured report format is blank.
	ErrEmptyFormat = errors.New("invalid report format: must not be empty")
)
