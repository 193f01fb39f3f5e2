package main

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nao1215/campeonato/internal/config"
)

// sampleConfig is the commented configuration written by init.
//
//go:embed templates/campeonato.yaml
var sampleConfig []byte

// errConfigExists is returned when init would replace a file without --force.
var errConfigExists = errors.New("configuration file already exists")

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		Long: `init writes a commented configuration file that chooses the reports
printed after registration and bonus classification.

The file is written to .campeonato in the current directory, the first place
campeonato looks for it. With --xdg it goes to the user configuration
directory instead and applies wherever campeonato runs.

The sample selects the same reports as running without any configuration:
plain text first, then HTML.`,
		Example: `  campeonato init
  campeonato init --xdg
  campeonato init -o reports.yaml && campeonato --config reports.yaml`,
		Args: cobra.NoArgs,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.DefaultConfigFile,
		"Where to write the configuration file")
	cmd.Flags().Bool("xdg", false,
		"Write to the user configuration directory instead of --output")
	cmd.Flags().BoolP("force", "f", false,
		"Replace an existing configuration file")
	cmd.MarkFlagsMutuallyExclusive("output", "xdg")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	path, err := initTarget(cmd)
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	if err := writeSampleConfig(path, force); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %s\n", path)
	fmt.Fprintf(out, "Reports: %s. Edit the formats list to change them.\n",
		strings.Join(config.DefaultFormats(), ", "))

	return nil
}

// initTarget returns the path init writes to.
func initTarget(cmd *cobra.Command) (string, error) {
	useXDG, err := cmd.Flags().GetBool("xdg")
	if err != nil {
		return "", err
	}
	if useXDG {
		return filepath.Join(config.XDGConfigDir(), config.XDGConfigFile), nil
	}
	return cmd.Flags().GetString("output")
}

// writeSampleConfig creates path holding the sample configuration, along with
// any missing parent directories. Unless force is set an existing file is
// left untouched and errConfigExists is returned.
func writeSampleConfig(path string, force bool) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0600) //nolint:gosec // User-provided output path is intentional
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s (use --force to replace it)", errConfigExists, path)
	}
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if _, err := f.Write(sampleConfig); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
