// SPDX-License-Identifier: MIT

package embedding

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Table maps a word to its embedding vector.
type Table map[string][]float64

// Clone returns a deep copy: vectors are copied, not shared.
func (t Table) Clone() Table {
	out := make(Table, len(t))
	for w, v := range t {
		out[w] = append([]float64(nil), v...)
	}

	return out
}

// Words returns the keys in lexicographic order.
func (t Table) Words() []string {
	words := make([]string, 0, len(t))
	for w := range t {
		words = append(words, w)
	}
	sort.Strings(words)

	return words
}

// Merge copies every entry of src into t, overwriting existing keys.
// Vectors are copied so later mutation of src does not leak into t.
func (t Table) Merge(src Table) {
	for w, v := range src {
		t[w] = append([]float64(nil), v...)
	}
}

// Get returns a copy of the vector for word.
func (t Table) Get(word string) ([]float64, bool) {
	v, ok := t[word]
	if !ok {
		return nil, false
	}

	return append([]float64(nil), v...), true
}

// Normalize scales v in place to unit L2 norm.
// A vector whose norm is zero or not finite is overwritten with zeros and
// Normalize reports false.
//
// Every stored vector passes through here, so it uses gonum's scaled L2 norm:
// the result does not depend on which SIMD kernels the host selects, and
// components near the float64 limit do not overflow the sum of squares.
func Normalize(v []float64) bool {
	if len(v) == 0 {
		return false
	}
	n := floats.Norm(v, 2)
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		clear(v)

		return false
	}
	floats.Scale(1/n, v)

	return true
}

// Normalized returns a unit-norm copy of v (or a zero vector, see Normalize).
func Normalized(v []float64) []float64 {
	out := append([]float64(nil), v...)
	Normalize(out)

	return out
}

// IsUnitOrZero reports whether v has L2 norm within tol of 1, or is exactly zero.
func IsUnitOrZero(v []float64, tol float64) bool {
	n := floats.Norm(v, 2)
	if n == 0 {
		return true
	}

	return math.Abs(n-1) <= tol
}
