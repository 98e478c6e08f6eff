package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daryltucker/evalreport/internal/model"
	"github.com/daryltucker/evalreport/internal/params"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

const hyperparameterCSV = `Model,Best_F1,Best_AUC,Best_Precision,Best_Recall,Best_Parameters,Training_Time,Inference_Time
LOF,0.9123,0.95,0.9,0.92,"{'n_neighbors': 20, 'contamination': 0.1}",0.5,0.01
CustomNet,0.8,0.81,0.82,0.83,{'depth': 3},12.34567,0.123456
`

func TestLoadHyperparameters(t *testing.T) {
	path := writeFile(t, "hyper.csv", hyperparameterCSV)

	rows, err := LoadHyperparameters(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, model.ResultRow{
		Model:          "LOF",
		F1:             0.9123,
		AUC:            0.95,
		Precision:      0.9,
		Recall:         0.92,
		TrainingTime:   0.5,
		InferenceTime:  0.01,
		BestParameters: "{'n_neighbors': 20, 'contamination': 0.1}",
	}, rows[0])
	assert.Equal(t, "CustomNet", rows[1].Model)
	assert.InDelta(t, 12.34567, rows[1].TrainingTime, 1e-9)
}

func TestLoadHyperparameters_BOMAndSpacedHeader(t *testing.T) {
	path := writeFile(t, "hyper.csv", "\ufeffModel, Best_F1 ,Best_AUC,Best_Precision,Best_Recall,Best_Parameters,Training_Time,Inference_Time\n"+
		"LOF,0.9,0.9,0.9,0.9,{},1,1\n")

	rows, err := LoadHyperparameters(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "LOF", rows[0].Model)
}

func TestLoadHyperparameters_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		column  string
		line    int
	}{
		{
			name:    "missing column",
			content: "Model,Best_F1,Best_AUC,Best_Precision,Best_Parameters,Training_Time,Inference_Time\nLOF,1,1,1,{},1,1\n",
			column:  ColBestRecall,
			line:    1,
		},
		{
			name:    "non numeric score",
			content: "Model,Best_F1,Best_AUC,Best_Precision,Best_Recall,Best_Parameters,Training_Time,Inference_Time\nLOF,high,1,1,1,{},1,1\n",
			column:  ColBestF1,
			line:    2,
		},
		{
			name:    "nan score",
			content: "Model,Best_F1,Best_AUC,Best_Precision,Best_Recall,Best_Parameters,Training_Time,Inference_Time\nLOF,NaN,1,1,1,{},1,1\n",
			column:  ColBestF1,
			line:    2,
		},
		{
			name: "duplicate model",
			content: "Model,Best_F1,Best_AUC,Best_Precision,Best_Recall,Best_Parameters,Training_Time,Inference_Time\n" +
				"LOF,1,1,1,1,{},1,1\nLOF,0.5,1,1,1,{},1,1\n",
			column: ColModel,
			line:   3,
		},
		{
			name: "empty model",
			content: "Model,Best_F1,Best_AUC,Best_Precision,Best_Recall,Best_Parameters,Training_Time,Inference_Time\n" +
				",1,1,1,1,{},1,1\n",
			column: ColModel,
			line:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "hyper.csv", tt.content)

			_, err := LoadHyperparameters(path)
			require.Error(t, err)

			var malformed *model.MalformedDataError
			require.True(t, errors.As(err, &malformed), "expected MalformedDataError, got %T", err)
			assert.Equal(t, tt.column, malformed.Column)
			assert.Equal(t, tt.line, malformed.Line)
		})
	}
}

func TestLoadHyperparameters_RaggedRow(t *testing.T) {
	path := writeFile(t, "hyper.csv",
		"Model,Best_F1,Best_AUC,Best_Precision,Best_Recall,Best_Parameters,Training_Time,Inference_Time\nLOF,1,1\n")

	_, err := LoadHyperparameters(path)

	var malformed *model.MalformedDataError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Line)
}

func TestLoadHyperparameters_JSONStyleParameters(t *testing.T) {
	path := writeFile(t, "hyper.csv",
		"Model,Best_F1,Best_AUC,Best_Precision,Best_Recall,Best_Parameters,Training_Time,Inference_Time\n"+
			`Custom,0.9,0.9,0.9,0.9,{"depth":3},1,0.1`+"\n")

	rows, err := LoadHyperparameters(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, `{"depth":3}`, rows[0].BestParameters)

	rules, err := params.Default()
	require.NoError(t, err)
	assert.Equal(t, "depth:3", rules.Display("Custom", rows[0].BestParameters))
}

func TestLoadHyperparameters_RepeatedHeaderKeepsFirst(t *testing.T) {
	path := writeFile(t, "hyper.csv",
		"Model,Best_F1,Best_AUC,Best_Precision,Best_Recall,Best_Parameters,Training_Time,Inference_Time,Best_F1\n"+
			"LOF,0.9,0.8,0.7,0.6,{},1,0.5,0.1\n")

	rows, err := LoadHyperparameters(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 0.9, rows[0].F1)
}

func TestLoadHyperparameters_EmptyFile(t *testing.T) {
	path := writeFile(t, "hyper.csv", "")

	_, err := LoadHyperparameters(path)

	var malformed *model.MalformedDataError
	require.ErrorAs(t, err, &malformed)
}

func TestLoad_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.csv")

	loaders := map[string]func(string) error{
		"hyperparameters": func(p string) error { _, err := LoadHyperparameters(p); return err },
		"main":            func(p string) error { _, err := LoadMainResults(p); return err },
		"attack":          func(p string) error { _, err := LoadAttackResults(p); return err },
	}

	for name, load := range loaders {
		t.Run(name, func(t *testing.T) {
			err := load(missing)

			var notFound *model.MissingFileError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, missing, notFound.Path)
			assert.ErrorIs(t, err, os.ErrNotExist)
		})
	}
}

func TestLoadMainResults(t *testing.T) {
	path := writeFile(t, "main.csv", `Model,F1-Score,Precision,Recall,AUC,Training Time (s),Inference Time (s)
IsolationForest,0.71,0.7,0.72,0.8,1.42,0.2
LOF,0.9,0.91,0.89,0.93,0.3,0.5
`)

	rows, err := LoadMainResults(path)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, model.ResultRow{
		Model:         "IsolationForest",
		F1:            0.71,
		AUC:           0.8,
		Precision:     0.7,
		Recall:        0.72,
		TrainingTime:  1.42,
		InferenceTime: 0.2,
	}, rows[0])
}

func TestLoadAttackResults(t *testing.T) {
	path := writeFile(t, "attack.csv", `Model,Attack_Type,F1_Score,Precision,AUC
LOF,DoS,0.9,0.91,0.95
LOF,Realistic_Phantom_ECU,0.4,0.5,0.6
IsolationForest,DoS,0.7,0.71,0.8
`)

	rows, err := LoadAttackResults(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "Realistic_Phantom_ECU", rows[1].AttackType)
	assert.Equal(t, "LOF", rows[1].Model)
	assert.InDelta(t, 0.4, rows[1].F1, 1e-12)
	assert.Zero(t, rows[1].Recall)
}

func TestLoadAttackResults_OptionalColumns(t *testing.T) {
	path := writeFile(t, "attack.csv", `Model,Attack_Type,F1_Score,Precision,AUC,Recall
LOF,DoS,0.9,0.91,0.95,0.88
LOF,Fuzzy,0.9,0.91,0.95,
`)

	rows, err := LoadAttackResults(path)
	require.NoError(t, err)
	assert.InDelta(t, 0.88, rows[0].Recall, 1e-12)
	assert.Zero(t, rows[1].Recall)
}

func TestLoadAttackResults_DuplicateKey(t *testing.T) {
	path := writeFile(t, "attack.csv", `Model,Attack_Type,F1_Score,Precision,AUC
LOF,DoS,0.9,0.91,0.95
LOF,DoS,0.8,0.91,0.95
`)

	_, err := LoadAttackResults(path)

	var malformed *model.MalformedDataError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 3, malformed.Line)
	assert.Contains(t, malformed.Error(), "duplicate key")
}
