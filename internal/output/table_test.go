package output

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/evalreport/internal/model"
)

type stubDisplay map[string]string

func (s stubDisplay) Display(model, raw string) string {
	if v, ok := s[model]; ok {
		return v
	}
	return "raw:" + raw
}

func sampleRows() []model.TableRow {
	return TableRows([]model.RankedRow{
		{Rank: 1, ResultRow: model.ResultRow{Model: "OneClassSVM", F1: 0.95, AUC: 0.971234, Precision: 0.9, Recall: 1, TrainingTime: 2.5, InferenceTime: 0.01234567, BestParameters: "{'nu': 0.05}"}},
		{Rank: 2, ResultRow: model.ResultRow{Model: "Custom_Net", F1: 0.8, AUC: 0.5, Precision: 0.25, Recall: 0.125, TrainingTime: 100, InferenceTime: 3}},
	}, stubDisplay{"OneClassSVM": "nu=0.05, kernel=rbf"})
}

func TestFormatters(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{name: "score rounds", got: FormatScore(0.123456), expected: "0.1235"},
		{name: "score pads", got: FormatScore(1), expected: "1.0000"},
		{name: "score zero", got: FormatScore(0), expected: "0.0000"},
		{name: "training pads", got: FormatTrainingTime(1.5), expected: "1.500s"},
		{name: "training rounds", got: FormatTrainingTime(12.34567), expected: "12.346s"},
		{name: "inference pads", got: FormatInferenceTime(2), expected: "2.0000s"},
		{name: "inference rounds", got: FormatInferenceTime(0.123456), expected: "0.1235s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.got)
		})
	}
}

func TestTableRows_FixedPrecision(t *testing.T) {
	score := regexp.MustCompile(`^\d+\.\d{4}$`)
	training := regexp.MustCompile(`^\d+\.\d{3}s$`)
	inference := regexp.MustCompile(`^\d+\.\d{4}s$`)

	for _, r := range sampleRows() {
		for _, v := range []string{r.F1, r.AUC, r.Precision, r.Recall} {
			assert.Regexp(t, score, v)
		}
		assert.Regexp(t, training, r.TrainingTime)
		assert.Regexp(t, inference, r.InferenceTime)
	}
}

func TestTableRows_UsesDisplayer(t *testing.T) {
	rows := sampleRows()

	assert.Equal(t, "1", rows[0].Rank)
	assert.Equal(t, "nu=0.05, kernel=rbf", rows[0].Parameters)
	assert.Equal(t, "raw:", rows[1].Parameters)
}

func TestRenderCSV(t *testing.T) {
	out, err := RenderCSV(sampleRows())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, TableHeader, records[0])
	assert.Equal(t, []string{"1", "OneClassSVM", "0.9500", "0.9712", "0.9000", "1.0000", "nu=0.05, kernel=rbf", "2.500s", "0.0123s"}, records[1])
	assert.Contains(t, out, `"nu=0.05, kernel=rbf"`)
}

func TestRenderMarkdown(t *testing.T) {
	out := RenderMarkdown(sampleRows())

	expected := `# Hyperparameter Tuning Results

## Table 1: Model Performance Comparison

| Rank | Model | F1-Score | AUC | Precision | Recall | Training Time |
|------|-------|----------|-----|-----------|---------|---------------|
| 1 | OneClassSVM | 0.9500 | 0.9712 | 0.9000 | 1.0000 | 2.500s |
| 2 | Custom_Net | 0.8000 | 0.5000 | 0.2500 | 0.1250 | 100.000s |

## Table 2: Optimal Hyperparameters

| Model | Optimal Parameters |
|-------|--------------------|
| OneClassSVM | nu=0.05, kernel=rbf |
| Custom_Net | raw: |
`
	assert.Equal(t, expected, out)
}

func TestRenderMarkdown_EscapesPipes(t *testing.T) {
	out := RenderMarkdown([]model.TableRow{{Rank: "1", Model: "A", Parameters: "a|b"}})
	assert.Contains(t, out, `| A | a\|b |`)
}

func TestRenderLaTeX(t *testing.T) {
	out := RenderLaTeX(sampleRows())

	assert.True(t, strings.HasPrefix(out, "\\begin{table}[htbp]\n"))
	assert.True(t, strings.HasSuffix(out, "\\end{tabular}\n\\end{table}"))
	assert.Equal(t, 2, strings.Count(out, "\\begin{tabular}"))
	assert.Contains(t, out, "\\begin{tabular}{|l|l|c|c|c|c|c|}")
	assert.Contains(t, out, "\\begin{tabular}{|l|p{8cm}|}")
	assert.Contains(t, out, "1 & OneClassSVM & 0.9500 & 0.9712 & 0.9000 & 1.0000 & 2.500s \\\\\n\\hline\n")
	assert.Contains(t, out, "2 & Custom\\_Net & 0.8000")
	assert.Contains(t, out, "OneClassSVM & nu=0.05, kernel=rbf \\\\\n\\hline\n")

	// Header rule plus one rule after every row, in both tables.
	assert.Equal(t, 2*(1+1+len(sampleRows())), strings.Count(out, "\\hline"))
}

func TestEscapeLaTeX(t *testing.T) {
	assert.Equal(t, `n\_estimators=100, 50\% \& more \#1 \$x`, EscapeLaTeX("n_estimators=100, 50% & more #1 $x"))
	assert.Equal(t, `a\textbackslash{}b`, EscapeLaTeX(`a\b`))
	assert.Equal(t, `x\^{}2 \textasciitilde{}1`, EscapeLaTeX("x^2 ~1"))
}

func TestWriteDocuments(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")

	paths, err := WriteDocuments(dir, "table", []Document{
		{Ext: "csv", Content: "a,b\n"},
		{Ext: "md", Content: "# t\n"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "table.csv"), filepath.Join(dir, "table.md")}, paths)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "# t\n", string(data))
}

func TestJSONWriter_Appends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.jsonl")

	for i := 0; i < 2; i++ {
		w, err := NewJSONWriter(path)
		require.NoError(t, err)
		require.NoError(t, w.Write(model.JobResult{
			Script: "b.py",
			Status: model.JobFail,
			Err:    &model.ExternalJobError{Script: "b.py", ExitCode: 2, Diagnostic: "boom"},
		}))
		require.NoError(t, w.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), `"status":"fail"`)
	assert.Contains(t, string(lines[0]), `"error":"b.py failed (exit 2): boom"`)
}
