/*
PURPOSE:
  Defines the 'summarize' subcommand.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.SummarizeFiles()

ERROR HANDLING:
  - Unknown or repeated model names fail the command.

USAGE:
  evalreport summarize --model LOF --attack DoS
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/evalreport/internal/engine"
	"github.com/daryltucker/evalreport/internal/output"
)

var (
	summaryModel  string
	summaryAttack string
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Print one model's main, per-attack and focus-attack standing",
	Example: `  # Summarize the configured focus model
  evalreport summarize

  # Another model against another attack
  evalreport summarize --model LOF --attack DoS`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if summaryModel != "" {
			cfg.FocusModel = summaryModel
		}
		if cmd.Flags().Changed("attack") {
			cfg.FocusAttack = summaryAttack
		}

		report, err := engine.SummarizeFiles(cfg, cfg.FocusModel, cfg.FocusAttack)
		if err != nil {
			return err
		}

		output.NewConsole(cmd.OutOrStdout()).Summary(report)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
	summarizeCmd.Flags().StringVar(&summaryModel, "model", "", "Model to summarize (default focus_model)")
	summarizeCmd.Flags().StringVar(&summaryAttack, "attack", "", "Attack type to rank models on; empty skips the ranking (default focus_attack)")
}
