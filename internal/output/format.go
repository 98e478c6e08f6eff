/*
PURPOSE:
  Fixed-precision formatting of metrics and conversion to table rows.

REQUIREMENTS:
  User-specified:
  - Scores with four decimals; training time three decimals plus "s";
    inference time four decimals plus "s".

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/table.go, internal/output/console.go

RELATED FILES:
  - internal/model/types.go
  - internal/params/params.go (Displayer implementation)
*/

package output

import (
	"strconv"

	"github.com/daryltucker/evalreport/internal/model"
)

// Displayer resolves the human-readable parameter string for a model.
type Displayer interface {
	Display(model, raw string) string
}

// FormatScore renders a score in [0,1] with exactly four decimals.
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// FormatTrainingTime renders seconds with three decimals and an "s" suffix.
func FormatTrainingTime(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64) + "s"
}

// FormatInferenceTime renders seconds with four decimals and an "s" suffix.
func FormatInferenceTime(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64) + "s"
}

// TableRows formats ranked rows for rendering. Order is preserved.
func TableRows(ranked []model.RankedRow, d Displayer) []model.TableRow {
	rows := make([]model.TableRow, 0, len(ranked))
	for _, r := range ranked {
		rows = append(rows, model.TableRow{
			Rank:          strconv.Itoa(r.Rank),
			Model:         r.Model,
			F1:            FormatScore(r.F1),
			AUC:           FormatScore(r.AUC),
			Precision:     FormatScore(r.Precision),
			Recall:        FormatScore(r.Recall),
			Parameters:    d.Display(r.Model, r.BestParameters),
			TrainingTime:  FormatTrainingTime(r.TrainingTime),
			InferenceTime: FormatInferenceTime(r.InferenceTime),
		})
	}
	return rows
}
