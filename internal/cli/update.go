/*
PURPOSE:
  Defines the 'update' subcommand.
  Refreshes every downstream analysis for the focus model.

REQUIREMENTS:
  User-specified:
  - Regenerate visualizations, then print the focus model summary and
    its hyperparameter tuning outcome.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Update()
  - Uses: internal/config

ERROR HANDLING:
  - Script failures are reported, not returned.
  - Missing or malformed tables fail the command.

USAGE:
  evalreport update --model LOF
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/evalreport/internal/engine"
	"github.com/daryltucker/evalreport/internal/output"
)

var updateModel string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Regenerate all analyses and summarize the focus model",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if updateModel != "" {
			cfg.FocusModel = updateModel
		}

		_, err = engine.Update(cmd.Context(), cfg, engine.ProcessExecutor{}, output.NewConsole(cmd.OutOrStdout()))
		return err
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringVar(&updateModel, "model", "", "Focus model (default focus_model)")
}
