package config

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// With no config file present, every default comes through, including the
// fine-tuning script paths.
func TestLoadConfigs_Defaults(t *testing.T) {
	cmd := &cobra.Command{Use: "aiforge-test"}
	InitFlags(cmd)

	cfg := LoadConfigs(cmd, t.TempDir())
	require.NotNil(t, cfg)
	require.NotNil(t, cfg.Directories)
	require.NotNil(t, cfg.Scripts)

	assert.Equal(t, "python3", cfg.PythonBinary)
	assert.Equal(t, "code_examples", cfg.Directories.CodeExamples)
	assert.Equal(t, "api_training_data", cfg.Directories.APITrainingData)
	assert.Equal(t, "scripts/create_dataset.py", cfg.Scripts.Examples)
	assert.Equal(t, "scripts/generate_api_optimized_dataset.py", cfg.Scripts.API)
	assert.Equal(t, "scripts/generate_unified_dataset.py", cfg.Scripts.Unified)
	assert.Equal(t, "scripts/run_finetuning.py", cfg.Scripts.FineTune)
	assert.Equal(t, "scripts/run_finetuning_mlx.py", cfg.Scripts.FineTuneMLX)
	assert.Equal(t, "scripts/setup_mlx.py", cfg.Scripts.SetupMLX)
}
