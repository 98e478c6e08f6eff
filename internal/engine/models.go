/*
PURPOSE:
  Indexes the model names present in each configured table.

REQUIREMENTS:
  Implementation-discovered:
  - Lets users check a filter before running summarize.
  - Shows repeated names with their row count.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (list-models)

ERROR HANDLING:
  - A table that fails to load is logged and skipped.

USAGE:
  for _, idx := range engine.IndexModels(cfg) { ... }
*/

package engine

import (
	"github.com/daryltucker/evalreport/internal/config"
	"github.com/daryltucker/evalreport/internal/dataset"
	"github.com/daryltucker/evalreport/internal/output"
)

// ModelIndex lists the model names of one table in first-seen order, with
// the number of rows each name has.
type ModelIndex struct {
	Table string
	Path  string
	Names []string
	Rows  map[string]int
}

func (m *ModelIndex) add(name string) {
	if m.Rows == nil {
		m.Rows = make(map[string]int)
	}
	if m.Rows[name] == 0 {
		m.Names = append(m.Names, name)
	}
	m.Rows[name]++
}

// IndexModels reads every configured table. Tables that fail to load are
// logged and skipped, so one broken file does not hide the others.
func IndexModels(cfg *config.Config) []ModelIndex {
	var out []ModelIndex

	if rows, err := dataset.LoadHyperparameters(cfg.HyperparameterFile); err != nil {
		output.Logger.WithError(err).Warn("Skipping hyperparameter summary")
	} else {
		idx := ModelIndex{Table: dataset.HyperparameterSchema.Name, Path: cfg.HyperparameterFile}
		for _, r := range rows {
			idx.add(r.Model)
		}
		out = append(out, idx)
	}

	if rows, err := dataset.LoadMainResults(cfg.MainResultsFile); err != nil {
		output.Logger.WithError(err).Warn("Skipping main evaluation results")
	} else {
		idx := ModelIndex{Table: dataset.MainSchema.Name, Path: cfg.MainResultsFile}
		for _, r := range rows {
			idx.add(r.Model)
		}
		out = append(out, idx)
	}

	if rows, err := dataset.LoadAttackResults(cfg.AttackResultsFile); err != nil {
		output.Logger.WithError(err).Warn("Skipping attack-specific results")
	} else {
		idx := ModelIndex{Table: dataset.AttackSchema.Name, Path: cfg.AttackResultsFile}
		for _, r := range rows {
			idx.add(r.Model)
		}
		out = append(out, idx)
	}

	return out
}
