/*
PURPOSE:
  Defines the root Cobra command for the evalreport CLI.
  Handles global flags, logging setup and config loading for subcommands.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config and --log-level.
  - Every subcommand works with zero arguments.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Interrupts must reach running scripts, so the root context is
    cancelled on SIGINT/SIGTERM.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/evalreport/main.go
  - Calls: Child commands (table, summarize, run-scripts, update, list-models, config)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Typed errors from internal/model are logged with their fields before returning.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Subcommands follow Load Config -> Override -> Engine.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/evalreport/main.go
  - internal/config/config.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/daryltucker/evalreport/internal/config"
	"github.com/daryltucker/evalreport/internal/model"
	"github.com/daryltucker/evalreport/internal/output"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string
	// logLevel overrides log_level from the config when set
	logLevel string

	rootCmd = &cobra.Command{
		Use:   "evalreport",
		Short: "Reporting toolkit for anomaly detection evaluation results",
		Long: `Turns the result tables of an anomaly detection evaluation into
publication-ready tables, per-model console summaries, and a one-shot
refresh of every downstream analysis script.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if logLevel == "" {
				return nil
			}
			return output.SetLevel(logLevel)
		},
	}
)

// Execute executes the root command.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		logError(err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./evalreport.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
}

// loadConfig loads the config file and applies the global overrides.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if err := output.SetLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	output.Logger.WithFields(logrus.Fields{
		"config":      cfgFile,
		"focus_model": cfg.FocusModel,
	}).Debug("Configuration loaded")

	return cfg, nil
}

// logError attaches the fields of known failure kinds to a debug record.
func logError(err error) {
	entry := output.Logger.WithError(err)

	var (
		missing   *model.MissingFileError
		malformed *model.MalformedDataError
		notFound  *model.ModelNotFoundError
	)
	switch {
	case errors.As(err, &missing):
		entry = entry.WithField("path", missing.Path)
	case errors.As(err, &malformed):
		entry = entry.WithFields(logrus.Fields{"path": malformed.Path, "line": malformed.Line, "column": malformed.Column})
	case errors.As(err, &notFound):
		entry = entry.WithFields(logrus.Fields{"model": notFound.Model, "table": notFound.Table})
	}
	entry.Debug("Command failed")
}
