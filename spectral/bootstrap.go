// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"

	"github.com/katalvlaran/embedchain/corpus"
	"github.com/katalvlaran/embedchain/embedding"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Bootstrap computes initial embeddings from PPMI triples by randomized
// power iteration.
//
// Stages:
//  1. k = min(opts.Dim, V); Q = SeedMatrix(V, k); A = NewAdjacency(entries, V).
//  2. Repeat opts.Iterations times: temp = A·Q; Q = A·temp; Orthonormalize(Q).
//  3. AQ = A·Q; σ_d = max(‖AQ[:,d]‖₂, MinSingularValue).
//  4. Embedding of word r = Q[r] ⊙ √σ, L2-normalised; zero rows stay zero.
//
// Empty input (nil vocabulary, V == 0 or no entries) returns an empty Result
// and no error.
//
// Errors: ErrBadDim, ErrBadIterations.
func Bootstrap(entries []corpus.PPMIEntry, vocab *corpus.Vocabulary, opts Options) (*Result, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("Bootstrap: %w", err)
	}
	empty := &Result{Embeddings: embedding.Table{}}
	if vocab == nil || vocab.Len() == 0 || len(entries) == 0 {
		return empty, nil
	}

	var (
		v       = vocab.Len()
		k       = min(opts.Dim, v)
		workers = opts.workers()
		a       = NewAdjacency(entries, v)
		q       = SeedMatrix(v, k)
		temp    *mat.Dense
		err     error
	)
	for it := 0; it < opts.Iterations; it++ {
		if temp, err = MulSparseDense(a, q, workers); err != nil {
			return nil, fmt.Errorf("Bootstrap: iteration %d: %w", it, err)
		}
		if q, err = MulSparseDense(a, temp, workers); err != nil {
			return nil, fmt.Errorf("Bootstrap: iteration %d: %w", it, err)
		}
		Orthonormalize(q)
	}

	aq, err := MulSparseDense(a, q, workers)
	if err != nil {
		return nil, fmt.Errorf("Bootstrap: %w", err)
	}
	sigma := make([]float64, k)
	scale := make([]float64, k)
	for d := 0; d < k; d++ {
		sigma[d] = math.Max(floats.Norm(mat.Col(nil, d, aq), 2), MinSingularValue)
		scale[d] = math.Sqrt(sigma[d])
	}

	table := make(embedding.Table, v)
	for r := 0; r < v; r++ {
		row := append([]float64(nil), q.RawRowView(r)...)
		floats.Mul(row, scale)
		embedding.Normalize(row)
		table[vocab.Word(r)] = row
	}

	return &Result{Embeddings: table, SingularValues: sigma, Dim: k}, nil
}
