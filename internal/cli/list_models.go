/*
PURPOSE:
  Defines the 'list-models' subcommand.
  Helps check model names before filtering with summarize.

REQUIREMENTS:
  User-specified:
  - List the models present in each result table.

  Implementation-discovered:
  - Useful validation step before a full update.
  - Duplicate names are shown with their row count; summarize rejects them.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.IndexModels()

ERROR HANDLING:
  - Tables that fail to load are logged and skipped.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  evalreport list-models

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/models.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/daryltucker/evalreport/internal/engine"
	"github.com/daryltucker/evalreport/internal/output"
)

var listModelsCmd = &cobra.Command{
	Use:   "list-models",
	Short: "List the models found in each result table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		indexes := engine.IndexModels(cfg)
		if len(indexes) == 0 {
			return errors.New("no result tables could be read")
		}

		console := output.NewConsole(cmd.OutOrStdout())
		for i, idx := range indexes {
			if i > 0 {
				console.Printf("\n")
			}
			console.ModelList(idx.Table, idx.Path, idx.Names, idx.Rows)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listModelsCmd)
}
