// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"sort"

	"github.com/james-bowman/sparse"
	"github.com/katalvlaran/embedchain/corpus"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// NewAdjacency packs PPMI triples into a v×v CSR matrix.
// Entries outside [0, v) are ignored and duplicate cells are summed. The
// input need not be sorted; it is not modified. v <= 0 yields nil.
//
// Complexity: O(nnz·log nnz).
func NewAdjacency(entries []corpus.PPMIEntry, v int) *sparse.CSR {
	if v <= 0 {
		return nil
	}
	sorted := make([]corpus.PPMIEntry, 0, len(entries))
	for _, e := range entries {
		if e.I >= 0 && e.I < v && e.J >= 0 && e.J < v {
			sorted = append(sorted, e)
		}
	}
	sort.Slice(sorted, func(a, b int) bool {
		if sorted[a].I != sorted[b].I {
			return sorted[a].I < sorted[b].I
		}
		return sorted[a].J < sorted[b].J
	})

	var (
		ia   = make([]int, v+1)
		ja   = make([]int, 0, len(sorted))
		data = make([]float64, 0, len(sorted))
		last = -1
	)
	for k, e := range sorted {
		if k > 0 && e.I == sorted[k-1].I && e.J == sorted[k-1].J {
			data[last] += e.Score
			continue
		}
		ja = append(ja, e.J)
		data = append(data, e.Score)
		last = len(data) - 1
		ia[e.I+1]++
	}
	for r := 0; r < v; r++ {
		ia[r+1] += ia[r]
	}

	return sparse.NewCSR(v, v, ia, ja, data)
}

// MulSparseDense returns a·q.
//
// Implementation:
//   - Rows of a are split into contiguous blocks, one errgroup task per
//     block, at most workers tasks in flight.
//   - Row i of the result is Σ_j a[i,j]·q[j,:], accumulated with
//     floats.AddScaled in the CSR order of row i.
//
// Errors: ErrDimensionMismatch when a.Cols != q.Rows or either is nil.
func MulSparseDense(a *sparse.CSR, q *mat.Dense, workers int) (*mat.Dense, error) {
	if a == nil || q == nil {
		return nil, fmt.Errorf("MulSparseDense: nil operand: %w", ErrDimensionMismatch)
	}
	ar, ac := a.Dims()
	qr, qc := q.Dims()
	if ac != qr {
		return nil, fmt.Errorf("MulSparseDense: %dx%d · %dx%d: %w", ar, ac, qr, qc, ErrDimensionMismatch)
	}
	if workers < 1 {
		workers = 1
	}

	out := mat.NewDense(ar, qc, nil)
	block := (ar + workers - 1) / workers

	var g errgroup.Group
	g.SetLimit(workers)
	for lo := 0; lo < ar; lo += block {
		lo, hi := lo, lo+block
		if hi > ar {
			hi = ar
		}
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				dst := out.RawRowView(i)
				a.DoRowNonZero(i, func(_, j int, v float64) {
					floats.AddScaled(dst, v, q.RawRowView(j))
				})
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
