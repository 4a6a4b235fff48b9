// SPDX-License-Identifier: MIT

package spectral

import (
	"github.com/katalvlaran/embedchain/embedding"
	"gonum.org/v1/gonum/mat"
)

// SeedValue returns the deterministic initial value of Q[row, col] in [-1, 1).
func SeedValue(row, col int) float64 {
	return embedding.UnitFromPair(uint64(row), uint64(col))
}

// SeedMatrix returns the rows×cols starting basis filled with SeedValue.
// Non-positive dimensions yield nil.
func SeedMatrix(rows, cols int) *mat.Dense {
	if rows <= 0 || cols <= 0 {
		return nil
	}
	data := make([]float64, rows*cols)
	var r, c int
	for r = 0; r < rows; r++ {
		for c = 0; c < cols; c++ {
			data[r*cols+c] = SeedValue(r, c)
		}
	}

	return mat.NewDense(rows, cols, data)
}
