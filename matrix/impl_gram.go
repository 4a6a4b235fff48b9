// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

const opGram = "Gram"

// Gram builds the n×n matrix of pairwise dot products G[i,j] = ⟨v_i, v_j⟩.
//
// Implementation:
//   - Stage 1: ValidateVectors (non-empty, rectangular, finite).
//   - Stage 2: compute the upper triangle (diagonal included) once through
//     Set, which rejects a product that overflowed, and mirror it, so G[i,j]
//     and G[j,i] are the same float64 bit pattern.
//
// Errors:
//   - ErrInvalidDimensions, ErrDimensionMismatch, ErrNaNInf (wrapped with "Gram"),
//     the last also for finite inputs whose dot product overflows.
//
// Determinism:
//   - Fixed i→j order; each entry is a single floats.Dot over the same operands.
//
// Complexity:
//   - Time O(n²·d / 2), Space O(n²).
func Gram(vectors [][]float64) (*Dense, error) {
	if _, err := ValidateVectors(vectors); err != nil {
		return nil, fmt.Errorf("%s: %w", opGram, err)
	}
	n := len(vectors)
	g, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opGram, err)
	}

	var (
		i, j int
		d    float64
	)
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			d = floats.Dot(vectors[i], vectors[j])
			if err = g.Set(i, j, d); err != nil {
				return nil, fmt.Errorf("%s: %w", opGram, err)
			}
			g.data[j*n+i] = d
		}
	}

	return g, nil
}
