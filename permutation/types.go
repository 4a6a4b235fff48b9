// SPDX-License-Identifier: MIT

package permutation

import (
	"errors"
	"runtime"
)

// ExactLimit is the largest n searched exhaustively.
const ExactLimit = 12

// DefaultEps is the pruning slack of branch-and-bound.
const DefaultEps = 1e-9

// Sentinel errors.
var (
	// ErrLabelMismatch is returned when the label and embedding counts differ.
	ErrLabelMismatch = errors.New("permutation: label/embedding count mismatch")

	// ErrDimensionMismatch is returned when embeddings have different lengths.
	ErrDimensionMismatch = errors.New("permutation: embedding dimension mismatch")

	// ErrBadK is returned for k <= 0.
	ErrBadK = errors.New("permutation: k must be >= 1")

	// ErrInvalidOrder is returned when an order is not a permutation of 0..n-1.
	ErrInvalidOrder = errors.New("permutation: order is not a permutation")

	// ErrTooLarge is returned when exact enumeration is requested for n > ExactLimit.
	ErrTooLarge = errors.New("permutation: too many nodes for exact search")
)

// Strategy names the search that produced a Result.
type Strategy int

const (
	// StrategyNone means nothing was searched (n == 0).
	StrategyNone Strategy = iota
	// StrategyExhaustive is sequential Heap's enumeration.
	StrategyExhaustive
	// StrategyParallel is Heap's enumeration split by first element.
	StrategyParallel
	// StrategyBranchAndBound is the pruned depth-first search.
	StrategyBranchAndBound
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case StrategyExhaustive:
		return "exhaustive"
	case StrategyParallel:
		return "parallel"
	case StrategyBranchAndBound:
		return "branch-and-bound"
	default:
		return "none"
	}
}

// Bound selects the upper bound used by branch-and-bound.
type Bound int

const (
	// GlobalMaxBound: current + remaining·max_{i≠j} dot[i][j].
	GlobalMaxBound Bound = iota
	// VertexMaxBound: current + Σ over unplaced v of max_{u≠v} dot[u][v].
	// Never looser than GlobalMaxBound.
	VertexMaxBound
	// NoBound disables pruning (testing only).
	NoBound
)

// Options configures Search.
type Options struct {
	// Parallel selects ParallelTopK over ExhaustiveTopK for n ≤ ExactLimit.
	Parallel bool

	// Workers bounds concurrent subproblems; <= 0 means GOMAXPROCS.
	Workers int

	// Bound is the branch-and-bound policy for n > ExactLimit.
	Bound Bound

	// Eps is the pruning slack: a subtree is cut only when its bound is
	// below the K-th best score minus Eps. Values below DefaultEps, and NaN,
	// are raised to DefaultEps so rounding never prunes a tied chain.
	Eps float64
}

// DefaultOptions returns Parallel=true, Workers=GOMAXPROCS,
// Bound=GlobalMaxBound, Eps=DefaultEps.
func DefaultOptions() Options {
	return Options{
		Parallel: true,
		Workers:  runtime.GOMAXPROCS(0),
		Bound:    GlobalMaxBound,
		Eps:      DefaultEps,
	}
}

// ScoredPermutation is one ordering of node indices and its chain score.
type ScoredPermutation struct {
	Order []int
	Score float64
}

// Result is the outcome of a search.
type Result struct {
	// Permutations holds at most K entries, best first.
	Permutations []ScoredPermutation

	// Considered counts complete orderings scored.
	Considered uint64

	// Pruned counts subtrees cut by the bound (branch-and-bound only).
	Pruned uint64

	// Strategy reports which search ran.
	Strategy Strategy
}

// Best returns the top entry, if any.
func (r Result) Best() (ScoredPermutation, bool) {
	if len(r.Permutations) == 0 {
		return ScoredPermutation{}, false
	}

	return r.Permutations[0], true
}
