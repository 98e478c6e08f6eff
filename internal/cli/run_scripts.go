/*
PURPOSE:
  Defines the 'run-scripts' subcommand.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.RunScripts()

ERROR HANDLING:
  - Script failures are reported, not returned; exit status stays 0.

USAGE:
  evalreport run-scripts --scripts radar_chart.py
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/evalreport/internal/engine"
	"github.com/daryltucker/evalreport/internal/output"
)

var (
	scriptsOverride []string
	batchLog        string
)

var runScriptsCmd = &cobra.Command{
	Use:   "run-scripts",
	Short: "Run every visualization script in order, continuing past failures",
	Long: `Runs each configured script as '<interpreter> <script>' inside script_dir,
one at a time. A failing script is reported and the next one still runs.
The command exits 0 even when scripts fail; check the batch summary.`,
	Example: `  # Run the configured scripts
  evalreport run-scripts

  # Run two scripts and keep a JSON Lines record of the outcome
  evalreport run-scripts --scripts radar_chart.py,simple_analysis.py --batch-log runs.jsonl`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if len(scriptsOverride) > 0 {
			cfg.Scripts = scriptsOverride
		}
		if batchLog != "" {
			cfg.BatchLog = batchLog
		}

		_, err = engine.RunScripts(cmd.Context(), cfg, engine.ProcessExecutor{}, engine.Jobs(cfg), output.NewConsole(cmd.OutOrStdout()))
		return err
	},
}

func init() {
	rootCmd.AddCommand(runScriptsCmd)
	runScriptsCmd.Flags().StringSliceVar(&scriptsOverride, "scripts", nil, "Comma-separated list of scripts to run instead of the configured ones")
	runScriptsCmd.Flags().StringVar(&batchLog, "batch-log", "", "Append one JSON record per script to this file")
}
