// SPDX-License-Identifier: MIT

package permutation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/embedchain/matrix"
)

// Scorer holds the immutable dot-product matrix of n labelled embeddings.
// It is safe for concurrent use.
type Scorer struct {
	n      int
	labels []string
	dots   *matrix.Dense // nil when n == 0
	w      []float64     // dots prefetched row-major: w[i*n+j]
}

// NewScorer validates the inputs and precomputes the Gram matrix.
//
// Errors:
//   - ErrLabelMismatch when len(labels) != len(vectors); nothing is truncated.
//   - ErrDimensionMismatch when vectors differ in length.
//   - matrix.ErrInvalidDimensions / matrix.ErrNaNInf for empty or non-finite
//     vectors, or dot products that overflow.
//   - matrix.ErrAsymmetry if the dot matrix is not exactly symmetric.
//
// Empty inputs yield a Scorer with Len() == 0.
func NewScorer(labels []string, vectors [][]float64) (*Scorer, error) {
	if len(labels) != len(vectors) {
		return nil, fmt.Errorf("NewScorer: %d labels, %d embeddings: %w", len(labels), len(vectors), ErrLabelMismatch)
	}
	s := &Scorer{n: len(labels), labels: append([]string(nil), labels...)}
	if s.n == 0 {
		return s, nil
	}

	dots, err := matrix.Gram(vectors)
	if err != nil {
		if errors.Is(err, matrix.ErrDimensionMismatch) {
			return nil, fmt.Errorf("NewScorer: %w", ErrDimensionMismatch)
		}
		return nil, fmt.Errorf("NewScorer: %w", err)
	}
	if err = matrix.ValidateSymmetric(dots, 0); err != nil {
		return nil, fmt.Errorf("NewScorer: %w", err)
	}
	s.dots = dots
	s.w = dots.Flat()

	return s, nil
}

// chain sums w along order, left to right. Every strategy accumulates in the
// same order so reported scores match ScorePermutation bit-for-bit.
func (s *Scorer) chain(order []int) float64 {
	var total float64
	for i := 0; i+1 < len(order); i++ {
		total += s.w[order[i]*s.n+order[i+1]]
	}

	return total
}

// ScorePermutation returns the chain score of order.
// Errors: ErrInvalidOrder unless order is a permutation of 0..Len()-1.
func (s *Scorer) ScorePermutation(order []int) (float64, error) {
	if len(order) != s.n {
		return 0, fmt.Errorf("ScorePermutation: len %d, want %d: %w", len(order), s.n, ErrInvalidOrder)
	}
	seen := make([]bool, s.n)
	for _, v := range order {
		if v < 0 || v >= s.n || seen[v] {
			return 0, fmt.Errorf("ScorePermutation: index %d: %w", v, ErrInvalidOrder)
		}
		seen[v] = true
	}

	return s.chain(order), nil
}

// Len returns the number of nodes.
func (s *Scorer) Len() int { return s.n }

// Labels returns a copy of the node labels.
func (s *Scorer) Labels() []string { return append([]string(nil), s.labels...) }

// DotMatrix returns a copy of the dot-product matrix, or nil when Len() == 0.
func (s *Scorer) DotMatrix() *matrix.Dense {
	if s.dots == nil {
		return nil
	}

	return s.dots.Clone().(*matrix.Dense)
}

// Labeled maps p.Order to labels. Out-of-range indices map to "".
func (s *Scorer) Labeled(p ScoredPermutation) []string {
	out := make([]string, len(p.Order))
	for i, v := range p.Order {
		if v >= 0 && v < s.n {
			out[i] = s.labels[v]
		}
	}

	return out
}

// identity returns 0..n-1.
func identity(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}

	return p
}
