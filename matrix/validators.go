// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    still match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix if m == nil.
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSymmetric checks |A[i,j] - A[j,i]| ≤ tol for all i<j.
// A negative tolerance is treated as its absolute value; NaN/Inf tolerance is
// rejected with ErrNaNInf.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf, ErrAsymmetry.
// Complexity: O(n²) time, O(1) space.
func ValidateSymmetric(m Matrix, tol float64) error {
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSymmetric", err)
	}
	if math.IsNaN(tol) || math.IsInf(tol, 0) {
		return validatorErrorf("ValidateSymmetric", ErrNaNInf)
	}
	tol = math.Abs(tol)

	var (
		n        = m.Rows()
		i, j     int
		aij, aji float64
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, _ = m.At(i, j) // indices are in range after ValidateSquare
			aji, _ = m.At(j, i)
			if math.Abs(aij-aji) > tol {
				return validatorErrorf("ValidateSymmetric", ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateVectors checks a set of vectors is non-empty, rectangular and finite.
// It returns the common length on success.
//
// Errors: ErrInvalidDimensions (no vectors / zero length),
// ErrDimensionMismatch (ragged), ErrNaNInf (non-finite component).
func ValidateVectors(vectors [][]float64) (int, error) {
	if len(vectors) == 0 || len(vectors[0]) == 0 {
		return 0, validatorErrorf("ValidateVectors", ErrInvalidDimensions)
	}
	dim := len(vectors[0])
	for i, v := range vectors {
		if len(v) != dim {
			return 0, validatorErrorf(fmt.Sprintf("ValidateVectors[%d]", i), ErrDimensionMismatch)
		}
		for _, x := range v {
			if math.IsNaN(x) || math.IsInf(x, 0) {
				return 0, validatorErrorf(fmt.Sprintf("ValidateVectors[%d]", i), ErrNaNInf)
			}
		}
	}

	return dim, nil
}
