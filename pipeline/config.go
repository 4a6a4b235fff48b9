// SPDX-License-Identifier: MIT

package pipeline

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/embedchain/embedding"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("pipeline: invalid config")

// Config is the full configuration surface of a Pipeline.
type Config struct {
	// Dim is the target embedding dimension (clamped to the vocabulary size
	// by the bootstrap).
	Dim int `yaml:"dim"`

	// Window is the co-occurrence radius.
	Window int `yaml:"window"`

	// MinCount drops rarer words from the co-occurrence vocabulary.
	MinCount int `yaml:"min_count"`

	// SVDIterations is the number of power-iteration rounds.
	SVDIterations int `yaml:"svd_iterations"`

	// LearningRate and Negatives configure the contrastive refiner.
	LearningRate float64 `yaml:"learning_rate"`
	Negatives    int     `yaml:"negatives"`

	// Epochs is the number of refinement passes over the corpus; 0 skips
	// refinement.
	Epochs int `yaml:"epochs"`

	// PairWindow is the radius used to extract (anchor, positive) pairs.
	PairWindow int `yaml:"pair_window"`

	// NodeCount is how many words enter the permutation search.
	NodeCount int `yaml:"node_count"`

	// ProjectionWidth is the length of Project's output.
	ProjectionWidth int `yaml:"projection_width"`

	// ParallelSearch selects the parallel exact search for small node counts.
	ParallelSearch bool `yaml:"parallel_search"`
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Dim:             64,
		Window:          5,
		MinCount:        2,
		SVDIterations:   3,
		LearningRate:    0.01,
		Negatives:       5,
		Epochs:          1,
		PairWindow:      2,
		NodeCount:       9,
		ProjectionWidth: embedding.DefaultProjectionWidth,
		ParallelSearch:  true,
	}
}

// Validate reports the first invalid field, wrapped around ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case c.Dim < 1:
		return fmt.Errorf("%w: dim must be >= 1, got %d", ErrInvalidConfig, c.Dim)
	case c.Window < 1:
		return fmt.Errorf("%w: window must be >= 1, got %d", ErrInvalidConfig, c.Window)
	case c.MinCount < 1:
		return fmt.Errorf("%w: min_count must be >= 1, got %d", ErrInvalidConfig, c.MinCount)
	case c.SVDIterations < 1:
		return fmt.Errorf("%w: svd_iterations must be >= 1, got %d", ErrInvalidConfig, c.SVDIterations)
	case c.LearningRate < 0 || math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0):
		return fmt.Errorf("%w: learning_rate must be finite and >= 0, got %g", ErrInvalidConfig, c.LearningRate)
	case c.Negatives < 0:
		return fmt.Errorf("%w: negatives must be >= 0, got %d", ErrInvalidConfig, c.Negatives)
	case c.Epochs < 0:
		return fmt.Errorf("%w: epochs must be >= 0, got %d", ErrInvalidConfig, c.Epochs)
	case c.PairWindow < 1:
		return fmt.Errorf("%w: pair_window must be >= 1, got %d", ErrInvalidConfig, c.PairWindow)
	case c.NodeCount < 1:
		return fmt.Errorf("%w: node_count must be >= 1, got %d", ErrInvalidConfig, c.NodeCount)
	case c.ProjectionWidth < 1:
		return fmt.Errorf("%w: projection_width must be >= 1, got %d", ErrInvalidConfig, c.ProjectionWidth)
	}

	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Keys absent from data keep their defaults; unknown keys are rejected.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return ParseConfig(data)
}
