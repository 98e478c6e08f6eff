/*
PURPOSE:
  Builds a model's console report from the main and attack-specific tables.

REQUIREMENTS:
  User-specified:
  - Filter the main table to exactly one model and return its metrics unmodified.
  - List the model's per-attack rows and rank every model on the focus attack.

  Implementation-discovered:
  - The main-table rank is computed, not assumed.
  - The hyperparameter highlight reuses the same single-match lookup.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (summarize), internal/engine/runner.go
  - Uses: internal/dataset, internal/engine/rank.go

ERROR HANDLING:
  - No match: *model.ModelNotFoundError.
  - Several matches: *model.MalformedDataError naming the table.
  - Loader errors are returned unchanged.

USAGE:
  report, err := engine.SummarizeFiles(cfg, "IsolationForest", "Realistic_Phantom_ECU")

RELATED FILES:
  - internal/output/console.go
  - internal/model/report.go
*/

package engine

import (
	"fmt"

	"github.com/daryltucker/evalreport/internal/config"
	"github.com/daryltucker/evalreport/internal/dataset"
	"github.com/daryltucker/evalreport/internal/model"
)

// FindModel returns the single row of rows named name. No match is a
// *model.ModelNotFoundError; more than one breaks the table's key invariant
// and is a *model.MalformedDataError.
func FindModel(rows []model.ResultRow, name, table string) (model.ResultRow, error) {
	var (
		found model.ResultRow
		n     int
	)
	for _, r := range rows {
		if r.Model == name {
			found = r
			n++
		}
	}

	switch {
	case n == 0:
		return model.ResultRow{}, &model.ModelNotFoundError{Model: name, Table: table}
	case n > 1:
		return model.ResultRow{}, &model.MalformedDataError{
			Table:  table,
			Column: dataset.ColModel,
			Reason: fmt.Sprintf("model %q appears %d times", name, n),
		}
	}
	return found, nil
}

// Summarize builds the console report for modelFilter from the main and
// attack-specific tables. focusAttack selects the attack whose full model
// ranking is included; empty skips it.
func Summarize(main []model.ResultRow, attacks []model.AttackResultRow, modelFilter, focusAttack string) (*model.ConsoleReport, error) {
	row, err := FindModel(main, modelFilter, dataset.MainSchema.Name)
	if err != nil {
		return nil, err
	}

	report := &model.ConsoleReport{
		Model:       modelFilter,
		Main:        row,
		MainTotal:   len(main),
		FocusAttack: focusAttack,
	}
	for _, r := range Rank(main) {
		if r.Model == modelFilter {
			report.MainRank = r.Rank
			break
		}
	}

	var focus []model.AttackResultRow
	for _, a := range attacks {
		if a.Model == modelFilter {
			report.Attacks = append(report.Attacks, a)
		}
		if focusAttack != "" && a.AttackType == focusAttack {
			focus = append(focus, a)
		}
	}

	if focusAttack == "" {
		return report, nil
	}

	report.FocusRanking = RankAttacks(focus)
	for i := range report.FocusRanking {
		if report.FocusRanking[i].Model == modelFilter {
			row := report.FocusRanking[i].AttackResultRow
			report.FocusRow = &row
			break
		}
	}

	return report, nil
}

// SummarizeFiles loads the configured tables and summarizes modelFilter.
func SummarizeFiles(cfg *config.Config, modelFilter, focusAttack string) (*model.ConsoleReport, error) {
	attacks, err := dataset.LoadAttackResults(cfg.AttackResultsFile)
	if err != nil {
		return nil, err
	}
	main, err := dataset.LoadMainResults(cfg.MainResultsFile)
	if err != nil {
		return nil, err
	}
	return Summarize(main, attacks, modelFilter, focusAttack)
}

// HyperparameterHighlight returns modelFilter's row of the hyperparameter summary.
func HyperparameterHighlight(path, modelFilter string) (model.ResultRow, error) {
	rows, err := dataset.LoadHyperparameters(path)
	if err != nil {
		return model.ResultRow{}, err
	}
	return FindModel(rows, modelFilter, dataset.HyperparameterSchema.Name)
}
