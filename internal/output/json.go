/*
PURPOSE:
  Appends batch job results to a JSON Lines file (NDJSON).
  Keeps a machine-readable history of visualization regeneration runs.

REQUIREMENTS:
  User-specified:
  - JSON output for easier parsing.

  Implementation-discovered:
  - JSON Lines is append-friendly: every run adds records, nothing is rewritten.
  - Records of one run share a run_id.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine (RunBatch observer)
  - Consumes: internal/model.JobResult

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/json.NewEncoder.
  - Open with O_APPEND.

USAGE:
  w, err := output.NewJSONWriter("batch_runs.jsonl")
  w.Write(result)
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - None specific.

RELATED FILES:
  - internal/model/report.go

MAINTENANCE:
  - Update if we switch to plain JSON array (not recommended for appending).
*/

package output

import (
	"encoding/json"
	"os"

	"github.com/daryltucker/evalreport/internal/model"
)

// JSONWriter handles appending job results to a JSON Lines file.
type JSONWriter struct {
	file    *os.File
	encoder *json.Encoder
}

// NewJSONWriter opens path for appending, creating it if needed.
func NewJSONWriter(path string) (*JSONWriter, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}

	return &JSONWriter{
		file:    f,
		encoder: json.NewEncoder(f),
	}, nil
}

// Write writes a single result as a JSON line.
func (jw *JSONWriter) Write(r model.JobResult) error {
	if r.Err != nil && r.Error == "" {
		r.Error = r.Err.Error()
	}
	return jw.encoder.Encode(r)
}

// Close closes the underlying file.
func (jw *JSONWriter) Close() error {
	return jw.file.Close()
}
