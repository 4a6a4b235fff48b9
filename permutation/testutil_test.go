// Package permutation_test provides small helpers shared across *_test.go
// files in this package.
package permutation_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/katalvlaran/embedchain/embedding"
	"github.com/katalvlaran/embedchain/permutation"
	"github.com/stretchr/testify/require"
)

const (
	// epsScore is the tolerance for comparing best scores across strategies.
	epsScore = 1e-5

	// dimTest is the embedding width of hashed test nodes.
	dimTest = 9
)

// Repeat runs fn n times. Useful for determinism checks.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// labelsN returns node-0 … node-(n-1).
func labelsN(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("node-%d", i)
	}

	return out
}

// hashedVectors returns n deterministic unit vectors in general position.
func hashedVectors(n int) [][]float64 {
	out := make([][]float64, n)
	for i, l := range labelsN(n) {
		out[i] = embedding.HashVector(l, dimTest)
	}

	return out
}

// arcVectors places n unit vectors on a quarter circle at equal angles, so
// the optimal chain walks the arc end to end.
func arcVectors(n int) ([][]float64, float64) {
	step := math.Pi / 2 / float64(n-1)
	out := make([][]float64, n)
	for i := range out {
		th := step * float64(i)
		out[i] = []float64{math.Cos(th), math.Sin(th)}
	}

	return out, step
}

// mustScorer builds a scorer from hashed vectors.
func mustScorer(t testing.TB, n int) *permutation.Scorer {
	t.Helper()
	s, err := permutation.NewScorer(labelsN(n), hashedVectors(n))
	require.NoError(t, err)

	return s
}

// requireSortedDesc asserts scores are non-increasing.
func requireSortedDesc(t *testing.T, ps []permutation.ScoredPermutation) {
	t.Helper()
	for i := 1; i < len(ps); i++ {
		require.GreaterOrEqual(t, ps[i-1].Score, ps[i].Score, "rank %d", i)
	}
}

// requireRoundTrip asserts every reported score equals ScorePermutation.
func requireRoundTrip(t *testing.T, s *permutation.Scorer, ps []permutation.ScoredPermutation) {
	t.Helper()
	for _, p := range ps {
		got, err := s.ScorePermutation(p.Order)
		require.NoError(t, err)
		require.Equal(t, p.Score, got, "order %v", p.Order)
	}
}

// factorial returns n! for small n.
func factorial(n int) uint64 {
	f := uint64(1)
	for i := 2; i <= n; i++ {
		f *= uint64(i)
	}

	return f
}
