/*
PURPOSE:
  Defines the core data structures used throughout evalreport.
  These models represent pre-computed evaluation results read from CSV.

REQUIREMENTS:
  User-specified:
  - Track model name, F1, AUC, precision, recall, training/inference time.
  - Hyperparameter rows carry the raw best-parameter encoding.
  - Attack rows are keyed by (model, attack type).

  Implementation-discovered:
  - Rank is derived on every render, never read from a file.
  - JSON tags for batch logs and debugging dumps.

ARCHITECTURE INTEGRATION:
  - Used by: internal/dataset, internal/engine, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs). See errors.go for the error taxonomy.

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Times are float seconds as they appear in the source tables.

USAGE:
  row := model.ResultRow{Model: "LOF", F1: 0.91}

SELF-HEALING INSTRUCTIONS:
  - If a table gains a column, add the field here and the mapping in internal/dataset.

RELATED FILES:
  - internal/dataset/dataset.go
  - internal/output/format.go

MAINTENANCE:
  - Update when the upstream evaluation pipeline changes its schema.
*/

package model

// ResultRow represents one model's evaluation outcome.
type ResultRow struct {
	Model          string  `json:"model"`
	F1             float64 `json:"f1"`
	AUC            float64 `json:"auc"`
	Precision      float64 `json:"precision"`
	Recall         float64 `json:"recall"`
	TrainingTime   float64 `json:"training_time_s"`
	InferenceTime  float64 `json:"inference_time_s"`
	BestParameters string  `json:"best_parameters,omitempty"` // Opaque, format varies by model
}

// RankedRow is a ResultRow annotated with its 1-based rank by descending F1.
type RankedRow struct {
	Rank int `json:"rank"`
	ResultRow
}

// AttackResultRow is a ResultRow restricted to one attack category.
type AttackResultRow struct {
	AttackType string `json:"attack_type"`
	ResultRow
}

// RankedAttackRow is an AttackResultRow annotated with its rank among all
// models evaluated against the same attack type.
type RankedAttackRow struct {
	Rank int `json:"rank"`
	AttackResultRow
}

// TableRow is the formatted view of a RankedRow, shared by every renderer.
type TableRow struct {
	Rank          string
	Model         string
	F1            string
	AUC           string
	Precision     string
	Recall        string
	Parameters    string
	TrainingTime  string
	InferenceTime string
}
