// SPDX-License-Identifier: MIT

package permutation

import "fmt"

// heapPermute visits every permutation of a in place using the iterative
// form of Heap's algorithm: a counter array c drives one swap per step,
// 0↔i when i is even and c[i]↔i when i is odd. visit sees the current
// arrangement and must not retain a. A slice of length 0 or 1 is visited once.
//
// Complexity: len(a)! visits, O(1) amortised work between visits.
func heapPermute(a []int, visit func()) {
	visit()
	m := len(a)
	if m <= 1 {
		return
	}

	c := make([]int, m)
	i := 1
	for i < m {
		if c[i] < i {
			if i%2 == 0 {
				a[0], a[i] = a[i], a[0]
			} else {
				a[c[i]], a[i] = a[i], a[c[i]]
			}
			visit()
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
}

// ExhaustiveTopK enumerates all n! orderings sequentially and returns the
// best k.
//
// Errors: ErrBadK, ErrTooLarge when Len() > ExactLimit.
func (s *Scorer) ExhaustiveTopK(k int) (Result, error) {
	if k <= 0 {
		return Result{}, fmt.Errorf("ExhaustiveTopK: %w", ErrBadK)
	}
	if s.n > ExactLimit {
		return Result{}, fmt.Errorf("ExhaustiveTopK: n=%d: %w", s.n, ErrTooLarge)
	}
	if s.n == 0 {
		return Result{Strategy: StrategyNone}, nil
	}

	var (
		top        = newTopK(k)
		perm       = identity(s.n)
		considered uint64
	)
	heapPermute(perm, func() {
		considered++
		top.offer(perm, s.chain(perm))
	})

	return Result{
		Permutations: top.result(),
		Considered:   considered,
		Strategy:     StrategyExhaustive,
	}, nil
}
