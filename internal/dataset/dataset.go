/*
PURPOSE:
  Loads the pre-computed result tables (CSV) into model rows.
  Enforces the column schema and the per-table key invariants.

REQUIREMENTS:
  User-specified:
  - Hyperparameter summary, main evaluation and attack-specific tables.
  - Missing file and missing column are fatal, distinct errors.

  Implementation-discovered:
  - Header cells may carry a UTF-8 BOM and stray spaces (spreadsheet exports).
  - Numeric cells are parsed strictly; "NaN" or empty is a malformed value.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine
  - Produces: internal/model rows

ERROR HANDLING:
  - *model.MissingFileError when the file does not exist.
  - *model.MalformedDataError for schema, type and duplicate-key problems.

IMPLEMENTATION RULES:
  - Use encoding/csv, record by record, so errors carry the source line.
  - Rows keep file order. Sorting is the caller's job.

USAGE:
  rows, err := dataset.LoadHyperparameters("../hyperparameters/hyperparameter_summary.csv")

SELF-HEALING INSTRUCTIONS:
  - If the upstream pipeline renames a column, update the Schema below.

RELATED FILES:
  - internal/model/types.go
  - internal/model/errors.go

MAINTENANCE:
  - Update when a table gains required columns.
*/

package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/daryltucker/evalreport/internal/model"
)

// Column names as written by the evaluation pipeline.
const (
	ColModel = "Model"

	ColBestF1         = "Best_F1"
	ColBestAUC        = "Best_AUC"
	ColBestPrecision  = "Best_Precision"
	ColBestRecall     = "Best_Recall"
	ColBestParameters = "Best_Parameters"
	ColTrainingTime   = "Training_Time"
	ColInferenceTime  = "Inference_Time"

	ColF1Score       = "F1-Score"
	ColPrecision     = "Precision"
	ColRecall        = "Recall"
	ColAUC           = "AUC"
	ColTrainingSecs  = "Training Time (s)"
	ColInferenceSecs = "Inference Time (s)"

	ColAttackType  = "Attack_Type"
	ColAttackScore = "F1_Score"
)

// Schema lists the columns a table must and may carry.
type Schema struct {
	Name     string
	Required []string
	Optional []string
}

var (
	HyperparameterSchema = Schema{
		Name: "hyperparameter summary",
		Required: []string{
			ColModel, ColBestF1, ColBestAUC, ColBestPrecision, ColBestRecall,
			ColBestParameters, ColTrainingTime, ColInferenceTime,
		},
	}

	MainSchema = Schema{
		Name: "main evaluation results",
		Required: []string{
			ColModel, ColF1Score, ColPrecision, ColRecall, ColAUC,
			ColTrainingSecs, ColInferenceSecs,
		},
	}

	AttackSchema = Schema{
		Name:     "attack-specific results",
		Required: []string{ColModel, ColAttackType, ColAttackScore, ColPrecision, ColAUC},
		Optional: []string{ColRecall, ColTrainingSecs, ColInferenceSecs},
	}
)

// record is one data row together with its source line.
type record struct {
	line   int
	fields []string
}

// table is a parsed CSV file indexed by header name.
type table struct {
	path    string
	columns map[string]int
	records []record
}

// readTable parses path and checks that every required column of schema is present.
func readTable(path string, schema Schema) (*table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &model.MissingFileError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Parameter cells are serialized mappings; JSON-style ones carry bare quotes.
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, &model.MalformedDataError{Path: path, Reason: "empty file, expected a header row"}
	}
	if err != nil {
		return nil, malformedCSV(path, err)
	}

	t := &table{path: path, columns: make(map[string]int, len(header))}
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\ufeff")
		}
		name = strings.TrimSpace(name)
		// A repeated header keeps its first column.
		if _, ok := t.columns[name]; !ok {
			t.columns[name] = i
		}
	}

	for _, col := range schema.Required {
		if _, ok := t.columns[col]; !ok {
			return nil, &model.MalformedDataError{
				Path:   path,
				Line:   1,
				Column: col,
				Reason: fmt.Sprintf("required column missing from %s", schema.Name),
			}
		}
	}

	for {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, malformedCSV(path, err)
		}
		line, _ := r.FieldPos(0)
		t.records = append(t.records, record{line: line, fields: fields})
	}

	return t, nil
}

func malformedCSV(path string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &model.MalformedDataError{Path: path, Line: pe.Line, Reason: "invalid CSV", Err: pe.Err}
	}
	return &model.MalformedDataError{Path: path, Reason: "invalid CSV", Err: err}
}

func (t *table) has(col string) bool {
	_, ok := t.columns[col]
	return ok
}

func (t *table) text(rec record, col string) string {
	return strings.TrimSpace(rec.fields[t.columns[col]])
}

func (t *table) number(rec record, col string) (float64, error) {
	raw := t.text(rec, col)
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &model.MalformedDataError{
			Path:   t.path,
			Line:   rec.line,
			Column: col,
			Reason: fmt.Sprintf("expected a number, got %q", raw),
		}
	}
	return v, nil
}

// optionalNumber returns 0 when the column is absent or the cell is empty.
func (t *table) optionalNumber(rec record, col string) (float64, error) {
	if !t.has(col) || t.text(rec, col) == "" {
		return 0, nil
	}
	return t.number(rec, col)
}

// numbers parses cols of rec in order, stopping at the first failure.
func (t *table) numbers(rec record, cols ...string) ([]float64, error) {
	out := make([]float64, len(cols))
	for i, col := range cols {
		v, err := t.number(rec, col)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (t *table) modelName(rec record) (string, error) {
	name := t.text(rec, ColModel)
	if name == "" {
		return "", &model.MalformedDataError{Path: t.path, Line: rec.line, Column: ColModel, Reason: "empty model name"}
	}
	return name, nil
}

func (t *table) duplicate(rec record, key string) error {
	return &model.MalformedDataError{
		Path:   t.path,
		Line:   rec.line,
		Column: ColModel,
		Reason: fmt.Sprintf("duplicate key %s", key),
	}
}

// LoadHyperparameters reads the hyperparameter tuning summary.
func LoadHyperparameters(path string) ([]model.ResultRow, error) {
	t, err := readTable(path, HyperparameterSchema)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(t.records))
	rows := make([]model.ResultRow, 0, len(t.records))
	for _, rec := range t.records {
		name, err := t.modelName(rec)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			return nil, t.duplicate(rec, strconv.Quote(name))
		}
		seen[name] = struct{}{}

		v, err := t.numbers(rec, ColBestF1, ColBestAUC, ColBestPrecision, ColBestRecall, ColTrainingTime, ColInferenceTime)
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.ResultRow{
			Model:          name,
			F1:             v[0],
			AUC:            v[1],
			Precision:      v[2],
			Recall:         v[3],
			TrainingTime:   v[4],
			InferenceTime:  v[5],
			BestParameters: t.text(rec, ColBestParameters),
		})
	}
	return rows, nil
}

// LoadMainResults reads the main evaluation table.
func LoadMainResults(path string) ([]model.ResultRow, error) {
	t, err := readTable(path, MainSchema)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(t.records))
	rows := make([]model.ResultRow, 0, len(t.records))
	for _, rec := range t.records {
		name, err := t.modelName(rec)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[name]; dup {
			return nil, t.duplicate(rec, strconv.Quote(name))
		}
		seen[name] = struct{}{}

		v, err := t.numbers(rec, ColF1Score, ColAUC, ColPrecision, ColRecall, ColTrainingSecs, ColInferenceSecs)
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.ResultRow{
			Model:         name,
			F1:            v[0],
			AUC:           v[1],
			Precision:     v[2],
			Recall:        v[3],
			TrainingTime:  v[4],
			InferenceTime: v[5],
		})
	}
	return rows, nil
}

// LoadAttackResults reads the attack-specific table, keyed by (model, attack type).
func LoadAttackResults(path string) ([]model.AttackResultRow, error) {
	t, err := readTable(path, AttackSchema)
	if err != nil {
		return nil, err
	}

	seen := make(map[[2]string]struct{}, len(t.records))
	rows := make([]model.AttackResultRow, 0, len(t.records))
	for _, rec := range t.records {
		name, err := t.modelName(rec)
		if err != nil {
			return nil, err
		}
		attack := t.text(rec, ColAttackType)
		if attack == "" {
			return nil, &model.MalformedDataError{Path: path, Line: rec.line, Column: ColAttackType, Reason: "empty attack type"}
		}
		key := [2]string{name, attack}
		if _, dup := seen[key]; dup {
			return nil, t.duplicate(rec, fmt.Sprintf("(%q, %q)", name, attack))
		}
		seen[key] = struct{}{}

		v, err := t.numbers(rec, ColAttackScore, ColAUC, ColPrecision)
		if err != nil {
			return nil, err
		}
		recall, err := t.optionalNumber(rec, ColRecall)
		if err != nil {
			return nil, err
		}
		train, err := t.optionalNumber(rec, ColTrainingSecs)
		if err != nil {
			return nil, err
		}
		infer, err := t.optionalNumber(rec, ColInferenceSecs)
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.AttackResultRow{
			AttackType: attack,
			ResultRow: model.ResultRow{
				Model:         name,
				F1:            v[0],
				AUC:           v[1],
				Precision:     v[2],
				Recall:        recall,
				TrainingTime:  train,
				InferenceTime: infer,
			},
		})
	}
	return rows, nil
}
