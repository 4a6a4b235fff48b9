// SPDX-License-Identifier: MIT

package pipeline_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/embedchain/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultConfig checks the defaults are valid and match the documented values.
func TestDefaultConfig(t *testing.T) {
	cfg := pipeline.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 64, cfg.Dim)
	assert.Equal(t, 5, cfg.Window)
	assert.Equal(t, 2, cfg.MinCount)
	assert.Equal(t, 3, cfg.SVDIterations)
	assert.Equal(t, 0.01, cfg.LearningRate)
	assert.Equal(t, 5, cfg.Negatives)
	assert.Equal(t, 9, cfg.NodeCount)
	assert.Equal(t, 9, cfg.ProjectionWidth)
	assert.True(t, cfg.ParallelSearch)
}

// TestConfigValidate rejects each invalid field with ErrInvalidConfig.
func TestConfigValidate(t *testing.T) {
	cases := map[string]func(*pipeline.Config){
		"dim":              func(c *pipeline.Config) { c.Dim = 0 },
		"window":           func(c *pipeline.Config) { c.Window = 0 },
		"min_count":        func(c *pipeline.Config) { c.MinCount = 0 },
		"svd_iterations":   func(c *pipeline.Config) { c.SVDIterations = 0 },
		"learning_rate":    func(c *pipeline.Config) { c.LearningRate = -1 },
		"negatives":        func(c *pipeline.Config) { c.Negatives = -1 },
		"epochs":           func(c *pipeline.Config) { c.Epochs = -1 },
		"pair_window":      func(c *pipeline.Config) { c.PairWindow = 0 },
		"node_count":       func(c *pipeline.Config) { c.NodeCount = 0 },
		"projection_width": func(c *pipeline.Config) { c.ProjectionWidth = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := pipeline.DefaultConfig()
			mutate(&cfg)
			err := cfg.Validate()
			require.ErrorIs(t, err, pipeline.ErrInvalidConfig)
			assert.Contains(t, err.Error(), name)

			_, err = pipeline.New(cfg)
			require.ErrorIs(t, err, pipeline.ErrInvalidConfig)
		})
	}
}

// TestParseConfig overlays YAML keys on the defaults.
func TestParseConfig(t *testing.T) {
	cfg, err := pipeline.ParseConfig([]byte("dim: 16\nnode_count: 4\nparallel_search: false\nlearning_rate: 0.05\n"))
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Dim)
	assert.Equal(t, 4, cfg.NodeCount)
	assert.False(t, cfg.ParallelSearch)
	assert.Equal(t, 0.05, cfg.LearningRate)
	assert.Equal(t, 5, cfg.Window, "absent keys keep defaults")

	empty, err := pipeline.ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultConfig(), empty)

	_, err = pipeline.ParseConfig([]byte("dimension: 16\n"))
	require.Error(t, err, "unknown keys are rejected")

	_, err = pipeline.ParseConfig([]byte("dim: 0\n"))
	require.ErrorIs(t, err, pipeline.ErrInvalidConfig)

	_, err = pipeline.ParseConfig([]byte("dim: [\n"))
	require.Error(t, err)
}

// TestLoadConfig reads a file from disk.
func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "embedchain.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: 3\nepochs: 2\n"), 0o600))

	cfg, err := pipeline.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Window)
	assert.Equal(t, 2, cfg.Epochs)

	_, err = pipeline.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestNewOptions validates option values.
func TestNewOptions(t *testing.T) {
	_, err := pipeline.New(pipeline.DefaultConfig(), pipeline.WithFallbackCacheSize(0))
	require.ErrorIs(t, err, pipeline.ErrBadOption)

	p, err := pipeline.New(pipeline.DefaultConfig(), pipeline.WithLogger(nil), pipeline.WithWorkers(2))
	require.NoError(t, err)
	assert.Equal(t, 64, p.Dim())
}
