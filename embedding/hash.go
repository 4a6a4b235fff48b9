// SPDX-License-Identifier: MIT

package embedding

import (
	"hash/fnv"
)

// LCG constants (Knuth MMIX). Changing them changes every seeded value.
const (
	lcgMul = 6364136223846793005
	lcgInc = 1442695040888963407

	// 2^53: the mantissa width of a float64.
	twoPow53 = 1 << 53
)

// UnitFromPair maps the pair (a, b) to a value in [-1, 1).
//
// Two LCG steps are applied, the second after folding b into the state, and
// a final xor-shift spreads the high bits. The top 53 bits are scaled into
// [0, 1) and then affinely into [-1, 1). The mapping is a pure function of
// its arguments and bit-identical on every platform.
func UnitFromPair(a, b uint64) float64 {
	x := a*lcgMul + lcgInc
	x ^= b
	x = x*lcgMul + lcgInc
	x ^= x >> 33

	return float64(x>>11)/twoPow53*2 - 1
}

// HashVector returns the deterministic unit vector used for words that have
// no learned embedding. The word's bytes are hashed with FNV-1a and each
// component d is UnitFromPair(hash, d); the result is L2-normalised.
//
// dim <= 0 yields nil.
func HashVector(word string, dim int) []float64 {
	if dim <= 0 {
		return nil
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(word)) // hash.Hash never returns an error
	seed := h.Sum64()

	v := make([]float64, dim)
	for d := range v {
		v[d] = UnitFromPair(seed, uint64(d))
	}
	Normalize(v)

	return v
}
