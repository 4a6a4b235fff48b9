// SPDX-License-Identifier: MIT

package spectral

import (
	"errors"
	"runtime"

	"github.com/katalvlaran/embedchain/embedding"
)

// MinSingularValue floors every singular value estimate.
const MinSingularValue = 1e-10

// Sentinel errors.
var (
	// ErrBadIterations indicates Options.Iterations < 1.
	ErrBadIterations = errors.New("spectral: iterations must be >= 1")

	// ErrBadDim indicates Options.Dim < 1.
	ErrBadDim = errors.New("spectral: dimension must be >= 1")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("spectral: dimension mismatch")
)

// Options configures Bootstrap.
type Options struct {
	// Dim is the target dimension k; clamped to the vocabulary size.
	Dim int

	// Iterations is the number of power-iteration rounds t.
	Iterations int

	// Workers bounds the row-parallel multiply; <= 0 means GOMAXPROCS.
	Workers int
}

// DefaultOptions returns Dim=64, Iterations=3, Workers=GOMAXPROCS.
func DefaultOptions() Options {
	return Options{Dim: 64, Iterations: 3, Workers: runtime.GOMAXPROCS(0)}
}

func (o Options) validate() error {
	if o.Dim < 1 {
		return ErrBadDim
	}
	if o.Iterations < 1 {
		return ErrBadIterations
	}

	return nil
}

func (o Options) workers() int {
	if o.Workers <= 0 {
		return runtime.GOMAXPROCS(0)
	}

	return o.Workers
}

// Result is the output of Bootstrap.
type Result struct {
	// Embeddings holds one vector of length Dim per vocabulary word; each is
	// unit-L2 or exactly zero.
	Embeddings embedding.Table

	// SingularValues holds the Dim estimates σ_d, each >= MinSingularValue.
	SingularValues []float64

	// Dim is the effective dimension, min(Options.Dim, V); 0 for empty input.
	Dim int
}
