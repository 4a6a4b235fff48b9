package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/embedchain/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSquare covers nil and non-square inputs.
func TestValidateSquare(t *testing.T) {
	require.ErrorIs(t, matrix.ValidateSquare(nil), matrix.ErrNilMatrix)

	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquare(m), matrix.ErrDimensionMismatch)

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquare(sq))
}

// TestValidateSymmetric checks tolerance handling and asymmetry detection.
func TestValidateSymmetric(t *testing.T) {
	m := denseFrom(t, [][]float64{
		{0, 1},
		{1.001, 0},
	})

	require.ErrorIs(t, matrix.ValidateSymmetric(m, 1e-6), matrix.ErrAsymmetry)
	require.NoError(t, matrix.ValidateSymmetric(m, 1e-2))
	require.NoError(t, matrix.ValidateSymmetric(m, -1e-2)) // |tol| is used
	require.ErrorIs(t, matrix.ValidateSymmetric(m, math.NaN()), matrix.ErrNaNInf)
}

// TestValidateVectors returns the common dimension on success.
func TestValidateVectors(t *testing.T) {
	dim, err := matrix.ValidateVectors([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, 3, dim)

	_, err = matrix.ValidateVectors([][]float64{{}})
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
