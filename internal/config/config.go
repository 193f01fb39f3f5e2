package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for XDG directory paths.
	AppName = "campeonato"

	// DefaultConfigFile is the configuration file name looked up in the
	// current and home directories.
	DefaultConfigFile = ".campeonato"

	// XDGConfigFile is the configuration file name inside XDGConfigDir.
	XDGConfigFile = "config.yaml"
)

// DefaultFormats returns the report formats rendered by default: plain text,
// then HTML.
func DefaultFormats() []string {
	return []string{"TEXTO", "HTML"}
}

// Config holds all configuration options for a run.
// This struct is populated from defaults, the optional configuration file and
// CLI flags, and passed through the application rather than kept as global state.
type Config struct {
	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// Formats lists the report formats to render, in order.
	// Names are matched case-insensitively; unknown names render HTML.
	Formats []string

	// ConfigFilePath is the path to the configuration file.
	// If empty, FindConfigFile searches the default locations.
	ConfigFilePath string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Formats: DefaultFormats(),
	}
}

// Apply merges the values set in a configuration file into c.
// Fields absent from the file keep their current value.
func (c *Config) Apply(f *File) {
	if f == nil {
		return
	}
	if len(f.Formats) > 0 {
		c.Formats = append([]string(nil), f.Formats...)
	}
	if f.Verbose != nil {
		c.Verbose = *f.Verbose
	}
}

// Validate checks if the configuration is valid.
// It returns the first error found.
func (c *Config) Validate() error {
	if len(c.Formats) == 0 {
		return ErrNoFormats
	}

	for i, format := range c.Formats {
		if strings.TrimSpace(format) == "" {
			return fmt.Errorf("formats[%d]: %w", i, ErrEmptyFormat)
		}
	}

	return nil
}

// XDGConfigDir returns the XDG config directory for campeonato.
// This follows the XDG Base Directory Specification.
// On Linux: ~/.config/campeonato
// On macOS: ~/Library/Application Support/campeonato
// On Windows: %APPDATA%\campeonato
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}
