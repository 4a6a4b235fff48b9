package permutation_test

import (
	"testing"

	"github.com/katalvlaran/embedchain/matrix"
	"github.com/katalvlaran/embedchain/permutation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewScorer_Errors checks the construction contract fails fast.
func TestNewScorer_Errors(t *testing.T) {
	_, err := permutation.NewScorer(labelsN(3), hashedVectors(2))
	require.ErrorIs(t, err, permutation.ErrLabelMismatch)

	_, err = permutation.NewScorer(labelsN(2), [][]float64{{1, 0}, {1}})
	require.ErrorIs(t, err, permutation.ErrDimensionMismatch)

	_, err = permutation.NewScorer(labelsN(1), [][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = permutation.NewScorer(labelsN(2), [][]float64{{1e200, 1}, {1e200, -1}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	s, err := permutation.NewScorer(nil, nil)
	require.NoError(t, err)
	require.Zero(t, s.Len())
	require.Nil(t, s.DotMatrix())
}

// TestDotMatrix_Symmetric checks the precomputed matrix and its copy semantics.
func TestDotMatrix_Symmetric(t *testing.T) {
	s := mustScorer(t, 6)
	d := s.DotMatrix()
	require.NoError(t, matrix.ValidateSymmetric(d, 0))

	for i := 0; i < 6; i++ {
		v, err := d.At(i, i)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v, 1e-12) // unit vectors
	}

	var best float64 = -2
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			if v, _ := d.At(i, j); i != j && v > best {
				best = v
			}
		}
	}
	require.Equal(t, best, d.MaxOffDiagonal())

	require.NoError(t, d.Set(0, 1, 99))
	again, _ := s.DotMatrix().At(0, 1)
	require.NotEqual(t, 99.0, again)
}

// TestScorePermutation covers the chain sum and order validation.
func TestScorePermutation(t *testing.T) {
	s, err := permutation.NewScorer(
		[]string{"a", "b", "c"},
		[][]float64{{1, 0}, {1, 1}, {0, 2}},
	)
	require.NoError(t, err)

	// dot(a,b)=1, dot(b,c)=2, dot(a,c)=0
	got, err := s.ScorePermutation([]int{0, 1, 2})
	require.NoError(t, err)
	require.Equal(t, 3.0, got)

	got, err = s.ScorePermutation([]int{1, 0, 2})
	require.NoError(t, err)
	require.Equal(t, 1.0, got)

	for _, bad := range [][]int{{0, 1}, {0, 0, 1}, {0, 1, 3}, {-1, 0, 1}} {
		_, err = s.ScorePermutation(bad)
		require.ErrorIs(t, err, permutation.ErrInvalidOrder, "%v", bad)
	}

	require.Equal(t, []string{"c", "b", "a"},
		s.Labeled(permutation.ScoredPermutation{Order: []int{2, 1, 0}}))
	labels := s.Labels()
	labels[0] = "zzz"
	require.Equal(t, "a", s.Labels()[0])
}
