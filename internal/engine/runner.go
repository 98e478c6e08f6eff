/*
PURPOSE:
  High-level runner that orchestrates the "update all analyses" workflow.
  Regenerates visualizations, then summarizes the focus model.

REQUIREMENTS:
  User-specified:
  - Run every visualization script, continuing past failures.
  - Print the focus model's main, per-attack and focus-attack standing.
  - Print the focus model's hyperparameter tuning outcome.

  Implementation-discovered:
  - Needs to report progress to CLI in numbered steps.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/engine (batch, summary), internal/output

ERROR HANDLING:
  - Script failures are reported but do not stop the workflow.
  - Summary and hyperparameter errors abort the workflow and are returned.

IMPLEMENTATION RULES:
  - Step 1: RunScripts.
  - Step 2: SummarizeFiles for the focus model.
  - Step 3: HyperparameterHighlight for the focus model.

USAGE:
  engine.Update(ctx, cfg, engine.ProcessExecutor{}, console)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/batch.go
  - internal/engine/summary.go

MAINTENANCE:
  - Update when new analysis steps are added to the writeup.
*/

package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/daryltucker/evalreport/internal/config"
	"github.com/daryltucker/evalreport/internal/model"
	"github.com/daryltucker/evalreport/internal/output"
)

// Update executes the full update workflow and returns the batch report.
func Update(ctx context.Context, cfg *config.Config, executor Executor, console *output.Console) (*model.BatchReport, error) {
	focus := strings.ToUpper(cfg.FocusModel)

	console.Banner("UPDATING ALL ANALYSES TO INCLUDE " + focus)

	// 1. Visualizations
	console.Printf("\n1. REGENERATING VISUALIZATIONS...\n")
	report, err := RunScripts(ctx, cfg, executor, Jobs(cfg), console)
	if err != nil {
		return nil, err
	}

	// 2. Focus model summary
	console.Printf("\n2. CREATING %s SUMMARY...\n", focus)
	summary, err := SummarizeFiles(cfg, cfg.FocusModel, cfg.FocusAttack)
	if err != nil {
		return report, fmt.Errorf("summary for %s: %w", cfg.FocusModel, err)
	}
	console.Summary(summary)

	// 3. Hyperparameter tuning outcome
	console.Printf("\n3. UPDATING HYPERPARAMETER ANALYSIS...\n")
	row, err := HyperparameterHighlight(cfg.HyperparameterFile, cfg.FocusModel)
	if err != nil {
		return report, fmt.Errorf("hyperparameter analysis for %s: %w", cfg.FocusModel, err)
	}
	console.Hyperparameters(row)

	if report.Failed > 0 {
		console.Printf("\nANALYSES UPDATED WITH %d FAILED SCRIPT(S)\n", report.Failed)
	} else {
		console.Printf("\nALL ANALYSES UPDATED SUCCESSFULLY!\n")
	}
	if len(cfg.Artifacts) > 0 {
		console.Files("Files updated", cfg.Artifacts, nil)
	}

	output.Logger.WithField("model", cfg.FocusModel).Info("Update complete")
	return report, nil
}
