/*
PURPOSE:
  Writes rendered documents to <dir>/<base>.<ext>.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/table.go

ERROR HANDLING:
  - Returns error on directory creation or write failure, with the paths written so far.

USAGE:
  paths, err := output.WriteDocuments("../results", "hyperparameter_tuning_table", docs)
*/

package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/docker/go-units"
)

// Document is one rendered file: its extension and content.
type Document struct {
	Ext     string // without the dot
	Label   string // e.g. "CSV format"
	Content string
}

// WriteDocuments writes each document to <dir>/<base>.<ext>, creating dir.
// It returns the written paths in document order.
func WriteDocuments(dir, base string, docs []Document) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(docs))
	for _, doc := range docs {
		path := filepath.Join(dir, base+"."+doc.Ext)
		if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
			return paths, fmt.Errorf("failed to write %s: %w", path, err)
		}

		Logger.WithField("path", path).
			WithField("size", units.HumanSize(float64(len(doc.Content)))).
			Debug("Wrote table")

		paths = append(paths, path)
	}
	return paths, nil
}
