/*
PURPOSE:
  Writes the ranked hyperparameter table in delimited (CSV) form.

REQUIREMENTS:
  User-specified:
  - Header row first, one row per model, in rank order.
  - Columns: Rank, Model, Best_F1, Best_AUC, Best_Precision, Best_Recall,
    Optimal_Parameters, Training_Time, Inference_Time.

  Implementation-discovered:
  - Parameter strings contain commas, so cells must be quoted (RFC 4180).

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Consumes: internal/model.TableRow

ERROR HANDLING:
  - Returns error on write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() on Close and surface the writer's deferred error.

USAGE:
  w, err := output.NewCSVWriter(buf)
  w.Write(row)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If CSV format changes, update TableHeader and record conversion.

RELATED FILES:
  - internal/model/types.go

MAINTENANCE:
  - Update Write() mapping when TableRow changes.
*/

package output

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/daryltucker/evalreport/internal/model"
)

// TableHeader is the header row of the delimited rendering.
var TableHeader = []string{
	"Rank", "Model", "Best_F1", "Best_AUC", "Best_Precision", "Best_Recall",
	"Optimal_Parameters", "Training_Time", "Inference_Time",
}

// CSVWriter handles writing table rows as CSV.
type CSVWriter struct {
	writer *csv.Writer
}

// NewCSVWriter creates a new CSVWriter and writes the header.
func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(TableHeader); err != nil {
		return nil, err
	}
	return &CSVWriter{writer: cw}, nil
}

// Write writes a single row.
func (cw *CSVWriter) Write(r model.TableRow) error {
	return cw.writer.Write([]string{
		r.Rank,
		r.Model,
		r.F1,
		r.AUC,
		r.Precision,
		r.Recall,
		r.Parameters,
		r.TrainingTime,
		r.InferenceTime,
	})
}

// Close flushes buffered rows.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.writer.Error()
}

// RenderCSV renders rows as a complete CSV document.
func RenderCSV(rows []model.TableRow) (string, error) {
	var sb strings.Builder

	w, err := NewCSVWriter(&sb)
	if err != nil {
		return "", err
	}
	for _, r := range rows {
		if err := w.Write(r); err != nil {
			return "", err
		}
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return sb.String(), nil
}
