// Package main provides the entry point for the campeonato CLI.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/campeonato/internal/config"
	"github.com/nao1215/campeonato/internal/log"
	"github.com/nao1215/campeonato/internal/model"
	"github.com/nao1215/campeonato/internal/pipeline"
)

// NewRootCmd creates the root command for campeonato.
// Running it without arguments executes the championship demonstration.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "campeonato",
		Short: "Football championship registration and report demo",
		Long: `campeonato simulates the management of a football championship.

A run registers two teams and one referee, announces the bonus tier of every
player according to their position, and prints the championship report first
as plain text and then as HTML. All output goes to standard output.

The report formats can be changed with a configuration file
(see 'campeonato init').`,
		Version:       getVersion(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringP("config", "c", "", "Path to configuration file (default: search .campeonato)")

	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRootCmd executes the championship demonstration.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
	logger.Debug("configuration loaded",
		"config_file", cfg.ConfigFilePath,
		"formats", cfg.Formats,
	)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runDemo(ctx, cmd, cfg, logger)
}

// runDemo builds the demonstration pipeline and executes it.
func runDemo(ctx context.Context, cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	p := pipeline.NewDemo(cmd.OutOrStdout(), cfg.Formats, logger)
	championship := model.NewChampionship()

	if err := p.Execute(ctx, championship); err != nil {
		return fmt.Errorf("championship run failed: %w", err)
	}

	logger.Debug("championship run completed",
		"teams", len(championship.Teams),
		"players", championship.PlayerCount(),
		"referees", len(championship.Referees),
	)
	return nil
}

// buildConfig creates the configuration from defaults, the configuration
// file and the command line flags, in increasing order of precedence.
//
// A file given with --config must exist, load and validate. A file found by
// the implicit search is skipped with a warning when it cannot be used, so a
// stray file never stops the demonstration.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	switch found := config.FindConfigFile(configPath); {
	case configPath != "" && found == "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, configPath)
	case configPath != "":
		if err := applyConfigFile(cfg, found); err != nil {
			return nil, err
		}
	case found != "":
		discovered := config.NewConfig()
		if err := applyConfigFile(discovered, found); err != nil {
			log.NewLogger(cmd.ErrOrStderr(), false).Warn("ignoring configuration file",
				"path", found,
				"error", err,
			)
			break
		}
		cfg = discovered
	}

	if cmd.Flags().Changed("verbose") {
		verbose, err := cmd.Flags().GetBool("verbose")
		if err != nil {
			return nil, err
		}
		cfg.Verbose = verbose
	}

	return cfg, nil
}

// applyConfigFile loads the file at path into cfg and validates the result.
func applyConfigFile(cfg *config.Config, path string) error {
	file, err := config.LoadConfigFile(path)
	if err != nil {
		return fmt.Errorf("failed to load configuration file %s: %w", path, err)
	}
	cfg.Apply(file)
	cfg.ConfigFilePath = path

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error in %s: %w", path, err)
	}
	return nil
}
