// SPDX-License-Identifier: MIT

package permutation

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParallelTopK splits the n! orderings into n subproblems by fixing the first
// element, enumerates each tail with Heap's algorithm in its own task, and
// merges the per-task top-k lists. workers <= 0 means GOMAXPROCS.
//
// The result equals ExhaustiveTopK(k) exactly: both keep the k best entries
// under the same total order.
//
// Errors: ErrBadK, ErrTooLarge when Len() > ExactLimit.
func (s *Scorer) ParallelTopK(k, workers int) (Result, error) {
	if k <= 0 {
		return Result{}, fmt.Errorf("ParallelTopK: %w", ErrBadK)
	}
	if s.n > ExactLimit {
		return Result{}, fmt.Errorf("ParallelTopK: n=%d: %w", s.n, ErrTooLarge)
	}
	if s.n == 0 {
		return Result{Strategy: StrategyNone}, nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var (
		partial    = make([]*topK, s.n)
		considered = make([]uint64, s.n)
		g          errgroup.Group
	)
	g.SetLimit(workers)
	for first := 0; first < s.n; first++ {
		g.Go(func() error {
			perm := make([]int, 0, s.n)
			perm = append(perm, first)
			for v := 0; v < s.n; v++ {
				if v != first {
					perm = append(perm, v)
				}
			}
			local := newTopK(k)
			var count uint64
			heapPermute(perm[1:], func() {
				count++
				local.offer(perm, s.chain(perm))
			})
			partial[first] = local
			considered[first] = count

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var (
		top   = newTopK(k)
		total uint64
	)
	for first := range partial {
		top.merge(partial[first])
		total += considered[first]
	}

	return Result{
		Permutations: top.result(),
		Considered:   total,
		Strategy:     StrategyParallel,
	}, nil
}
