/*
PURPOSE:
  Defines the 'table' subcommand.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.CreateHyperparameterTable()

USAGE:
  evalreport table -o ./tables
*/

package cli

import (
	"github.com/spf13/cobra"

	"github.com/daryltucker/evalreport/internal/engine"
	"github.com/daryltucker/evalreport/internal/output"
)

var tableOutputDir string

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Render the hyperparameter tuning table as CSV, LaTeX and Markdown",
	Long: `Reads the hyperparameter summary, ranks models by best F1 (ties keep
file order) and writes <output_dir>/<output_base>.{csv,tex,md}.
The Markdown table is also printed.`,
	Example: `  # Render with defaults (../hyperparameters -> ../results)
  evalreport table

  # Write the tables elsewhere
  evalreport table -o ./tables`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if tableOutputDir != "" {
			cfg.OutputDir = tableOutputDir
		}

		_, err = engine.CreateHyperparameterTable(cfg, output.NewConsole(cmd.OutOrStdout()))
		return err
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().StringVarP(&tableOutputDir, "output-dir", "o", "", "Output directory for the rendered tables")
}
