package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_DefaultFileSearch(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "evalreport.yml"), []byte("focus_model: LOF\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "LOF", cfg.FocusModel)
	assert.Equal(t, "Realistic_Phantom_ECU", cfg.FocusAttack)
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	configContent := `
log_level: debug
output_dir: ./out
focus_attack: DoS
scripts:
  - one.py
  - two.py
interpreter: python3.11
`

	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0o644))

	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "no env vars uses yaml values",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
				assert.Equal(t, "./out", cfg.OutputDir)
				assert.Equal(t, "DoS", cfg.FocusAttack)
				assert.Equal(t, []string{"one.py", "two.py"}, cfg.Scripts)
				assert.Equal(t, "python3.11", cfg.Interpreter)
				assert.Equal(t, "IsolationForest", cfg.FocusModel)
			},
		},
		{
			name: "string override",
			envVars: map[string]string{
				"EVALREPORT_FOCUS_MODEL": "OneClassSVM",
				"EVALREPORT_OUTPUT_DIR":  "/tmp/tables",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "OneClassSVM", cfg.FocusModel)
				assert.Equal(t, "/tmp/tables", cfg.OutputDir)
			},
		},
		{
			name: "list override",
			envVars: map[string]string{
				"EVALREPORT_SCRIPTS": "a.py,b.py,c.py",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"a.py", "b.py", "c.py"}, cfg.Scripts)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg, err := Load(configPath)
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "scripts: [unterminated\n"},
		{name: "bad log level", content: "log_level: chatty\n"},
		{name: "empty interpreter", content: "interpreter: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(tmpDir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := DefaultConfig()
	cfg.OutputDir = ""
	cfg.OutputBase = " "

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "output_dir")
	assert.Contains(t, err.Error(), "output_base")
}

func TestDump_RoundTrips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.FocusModel = "LOF"

	data, err := cfg.Dump()
	require.NoError(t, err)

	var back Config
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, *cfg, back)
}
