package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/adrg/xdg"

	"github.com/nao1215/campeonato/internal/config"
)

// TestNewInitCmd tests the init command creation.
func TestNewInitCmd(t *testing.T) {
	t.Parallel()

	cmd := NewInitCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "init" {
			t.Errorf("expected use 'init', got %q", cmd.Use)
		}
	})

	t.Run("has descriptions", func(t *testing.T) {
		t.Parallel()
		if cmd.Short == "" || cmd.Long == "" || cmd.Example == "" {
			t.Error("expected short, long and example text")
		}
	})

	flags := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{name: "output", shorthand: "o", defValue: config.DefaultConfigFile},
		{name: "xdg", shorthand: "", defValue: "false"},
		{name: "force", shorthand: "f", defValue: "false"},
	}
	for _, tc := range flags {
		t.Run("has "+tc.name+" flag", func(t *testing.T) {
			t.Parallel()
			flag := cmd.Flags().Lookup(tc.name)
			if flag == nil {
				t.Fatalf("expected %s flag", tc.name)
			}
			if flag.Shorthand != tc.shorthand {
				t.Errorf("expected shorthand %q, got %q", tc.shorthand, flag.Shorthand)
			}
			if flag.DefValue != tc.defValue {
				t.Errorf("expected default %q, got %q", tc.defValue, flag.DefValue)
			}
		})
	}
}

// runInit executes the init command with args and returns its output.
func runInit(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewInitCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// TestRunInitCmd tests the init command execution.
func TestRunInitCmd(t *testing.T) {
	t.Parallel()

	t.Run("writes the sample configuration", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), config.DefaultConfigFile)

		out, err := runInit(t, "-o", path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if !bytes.Equal(content, sampleConfig) {
			t.Error("expected the file to hold the sample configuration")
		}

		if !strings.Contains(out, "Wrote "+path) {
			t.Errorf("expected output to name %s, got %q", path, out)
		}
		if !strings.Contains(out, "Reports: TEXTO, HTML.") {
			t.Errorf("expected output to list the default reports, got %q", out)
		}
	})

	t.Run("keeps an existing file without force", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		if err := os.WriteFile(path, []byte("formats: [JSON]\n"), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		_, err := runInit(t, "-o", path)
		if !errors.Is(err, errConfigExists) {
			t.Fatalf("expected errConfigExists, got %v", err)
		}
		if !strings.Contains(err.Error(), "--force") {
			t.Errorf("expected error to mention --force, got %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if string(content) != "formats: [JSON]\n" {
			t.Errorf("expected existing file to be untouched, got %q", content)
		}
	})

	t.Run("force replaces an existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		if err := os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0600); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		if _, err := runInit(t, "-o", path, "-f"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("failed to read file: %v", err)
		}
		if !bytes.Equal(content, sampleConfig) {
			t.Error("expected the longer file to be truncated and replaced")
		}
	})

	t.Run("creates parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "subdir", "nested", config.DefaultConfigFile)

		if _, err := runInit(t, "-o", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected config file in nested directory: %v", err)
		}
	})

	t.Run("file is private to the user", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("skipping permission test on Windows")
		}

		path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		if _, err := runInit(t, "-o", path); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("failed to stat file: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("expected permissions 0600, got %o", perm)
		}
	})

	t.Run("output and xdg cannot be combined", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		if _, err := runInit(t, "-o", path, "--xdg"); err == nil {
			t.Error("expected error when both --output and --xdg are set")
		}
		if _, err := os.Stat(path); err == nil {
			t.Error("expected no file to be written")
		}
	})

	t.Run("positional arguments are rejected", func(t *testing.T) {
		t.Parallel()

		if _, err := runInit(t, "extra"); err == nil {
			t.Error("expected error for positional argument")
		}
	})
}

// TestRunInitCmdXDG writes the configuration to the XDG directory. It changes
// the environment and therefore cannot run in parallel.
func TestRunInitCmdXDG(t *testing.T) {
	xdgHome := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", xdgHome)
	xdg.Reload()

	out, err := runInit(t, "--xdg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(xdgHome, config.AppName, config.XDGConfigFile)
	file, err := config.LoadConfigFile(path)
	if err != nil {
		t.Fatalf("expected a loadable config at %s: %v", path, err)
	}
	if strings.Join(file.Formats, ",") != "TEXTO,HTML" {
		t.Errorf("expected formats [TEXTO HTML], got %v", file.Formats)
	}
	if !strings.Contains(out, path) {
		t.Errorf("expected output to name %s, got %q", path, out)
	}
}

// TestSampleConfig tests the embedded sample configuration.
func TestSampleConfig(t *testing.T) {
	t.Parallel()

	t.Run("loads with the default formats", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), config.DefaultConfigFile)
		if err := os.WriteFile(path, sampleConfig, 0600); err != nil {
			t.Fatalf("failed to write sample: %v", err)
		}

		file, err := config.LoadConfigFile(path)
		if err != nil {
			t.Fatalf("failed to load sample: %v", err)
		}
		if strings.Join(file.Formats, ",") != strings.Join(config.DefaultFormats(), ",") {
			t.Errorf("expected sample formats %v, got %v", config.DefaultFormats(), file.Formats)
		}
		if file.Verbose != nil {
			t.Error("expected verbose to be commented out in the sample")
		}
	})

	t.Run("documents every format name", func(t *testing.T) {
		t.Parallel()

		for _, name := range []string{"TEXTO", "HTML", "MARKDOWN", "JSON"} {
			if !strings.Contains(string(sampleConfig), name) {
				t.Errorf("expected sample to mention %s", name)
			}
		}
	})
}
