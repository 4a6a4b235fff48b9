// SPDX-License-Identifier: MIT

package permutation

import "fmt"

// Search returns the best k orderings, choosing the strategy from Len():
// none for 0, exact (parallel when opts.Parallel) up to ExactLimit,
// branch-and-bound above it.
//
// Errors: ErrBadK.
func (s *Scorer) Search(k int, opts Options) (Result, error) {
	if k <= 0 {
		return Result{}, fmt.Errorf("Search: %w", ErrBadK)
	}

	switch {
	case s.n == 0:
		return Result{Strategy: StrategyNone}, nil
	case s.n <= ExactLimit && opts.Parallel:
		return s.ParallelTopK(k, opts.Workers)
	case s.n <= ExactLimit:
		return s.ExhaustiveTopK(k)
	default:
		return s.BranchAndBoundTopK(k, opts)
	}
}

// Best is Search with k = 1; use Result.Best for the winning entry.
func (s *Scorer) Best(opts Options) (Result, error) {
	return s.Search(1, opts)
}
