// SPDX-License-Identifier: MIT

package spectral

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Orthonormalize applies modified Gram–Schmidt to the columns of q in place.
//
// Columns are processed left to right: column d is normalised, then its
// projection is subtracted from every later column. A column whose norm is
// zero stays zero and is not used to project the others.
//
// Complexity: O(rows·cols²).
func Orthonormalize(q *mat.Dense) {
	if q == nil {
		return
	}
	rows, cols := q.Dims()
	if rows == 0 || cols == 0 {
		return
	}

	columns := make([][]float64, cols)
	for d := range columns {
		columns[d] = mat.Col(nil, d, q)
	}

	var (
		d, e int
		n    float64
	)
	for d = 0; d < cols; d++ {
		n = floats.Norm(columns[d], 2)
		if n == 0 {
			continue
		}
		floats.Scale(1/n, columns[d])
		for e = d + 1; e < cols; e++ {
			floats.AddScaled(columns[e], -floats.Dot(columns[d], columns[e]), columns[d])
		}
	}

	for d = 0; d < cols; d++ {
		q.SetCol(d, columns[d])
	}
}
