// SPDX-License-Identifier: MIT

package embedding

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultProjectionWidth is the width consumed by downstream components.
const DefaultProjectionWidth = 9

// Softmax returns exp(v_i - logsumexp(v)). The max-subtraction inside
// floats.LogSumExp keeps large inputs finite. Empty input yields an empty
// slice.
func Softmax(v []float64) []float64 {
	out := make([]float64, len(v))
	if len(v) == 0 {
		return out
	}
	lse := floats.LogSumExp(v)
	for i, x := range v {
		out[i] = math.Exp(x - lse)
	}

	return out
}

// Project strides v down to width elements and applies Softmax.
//
// Implementation:
//   - stride = max(1, len(v)/width); element i is v[i*stride], or 0 past the end.
//   - Softmax over the strided slice.
//
// The result is non-negative and sums to 1 for every width > 0, including an
// empty v (which projects to the uniform distribution). width <= 0 yields nil.
func Project(v []float64, width int) []float64 {
	if width <= 0 {
		return nil
	}
	stride := len(v) / width
	if stride < 1 {
		stride = 1
	}

	var (
		picked = make([]float64, width)
		i, src int
	)
	for i = 0; i < width; i++ {
		src = i * stride
		if src < len(v) {
			picked[i] = v[src]
		}
	}

	return Softmax(picked)
}
