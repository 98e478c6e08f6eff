/*
PURPOSE:
  Table renderer: ranks the hyperparameter summary and renders it as
  CSV, LaTeX and Markdown.

REQUIREMENTS:
  User-specified:
  - Rank by Best_F1 descending, stable on ties, dense 1-based.
  - Per-model parameter display strings with a generic cleanup fallback.
  - Three renderings of the identical row set, written to fixed paths.
  - Echo the Markdown rendering to the console.

  Implementation-discovered:
  - Rendering is split from writing so tests can inspect all three
    formats without touching the filesystem.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (table command)
  - Uses: internal/dataset, internal/params, internal/output

ERROR HANDLING:
  - Load errors (*model.MissingFileError, *model.MalformedDataError) are
    returned as-is and abort the render.

IMPLEMENTATION RULES:
  - Single pass, deterministic given file contents and row order.

USAGE:
  t, err := engine.RenderHyperparameterTable(path, rules)

SELF-HEALING INSTRUCTIONS:
  - If a new output format is needed, add a renderer in internal/output and
    a Document in Documents().

RELATED FILES:
  - internal/output/csv.go
  - internal/output/markdown.go
  - internal/output/latex.go

MAINTENANCE:
  - None.
*/

package engine

import (
	"fmt"

	"github.com/daryltucker/evalreport/internal/config"
	"github.com/daryltucker/evalreport/internal/dataset"
	"github.com/daryltucker/evalreport/internal/model"
	"github.com/daryltucker/evalreport/internal/output"
	"github.com/daryltucker/evalreport/internal/params"
)

// HyperparameterTable holds one render of the hyperparameter summary.
type HyperparameterTable struct {
	Ranked   []model.RankedRow
	Rows     []model.TableRow
	CSV      string
	LaTeX    string
	Markdown string
}

// RenderHyperparameterTable loads path, ranks it and renders every format.
func RenderHyperparameterTable(path string, d output.Displayer) (*HyperparameterTable, error) {
	rows, err := dataset.LoadHyperparameters(path)
	if err != nil {
		return nil, err
	}

	ranked := Rank(rows)
	formatted := output.TableRows(ranked, d)

	csvText, err := output.RenderCSV(formatted)
	if err != nil {
		return nil, fmt.Errorf("failed to render CSV table: %w", err)
	}

	return &HyperparameterTable{
		Ranked:   ranked,
		Rows:     formatted,
		CSV:      csvText,
		LaTeX:    output.RenderLaTeX(formatted),
		Markdown: output.RenderMarkdown(formatted),
	}, nil
}

// Documents returns the renderings in output order.
func (t *HyperparameterTable) Documents() []output.Document {
	return []output.Document{
		{Ext: "csv", Label: "CSV format", Content: t.CSV},
		{Ext: "tex", Label: "LaTeX format", Content: t.LaTeX},
		{Ext: "md", Label: "Markdown format", Content: t.Markdown},
	}
}

// CreateHyperparameterTable renders the configured summary, writes the three
// files and echoes the Markdown table to the console.
func CreateHyperparameterTable(cfg *config.Config, console *output.Console) (*HyperparameterTable, error) {
	rules, err := params.Load(cfg.ParameterDisplayFile)
	if err != nil {
		return nil, err
	}

	output.Logger.WithField("input", cfg.HyperparameterFile).Info("Creating hyperparameter tuning results table")

	table, err := RenderHyperparameterTable(cfg.HyperparameterFile, rules)
	if err != nil {
		return nil, err
	}

	docs := table.Documents()
	paths, err := output.WriteDocuments(cfg.OutputDir, cfg.OutputBase, docs)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(docs))
	for i, d := range docs {
		labels[i] = d.Label
	}

	console.Banner("HYPERPARAMETER TUNING RESULTS TABLE")
	console.Printf("%s", table.Markdown)
	console.Files("Files created", paths, labels)

	output.Logger.WithField("models", len(table.Rows)).Info("Hyperparameter table generation completed")
	return table, nil
}
