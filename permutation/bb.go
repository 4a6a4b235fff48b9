// Package permutation — Branch-and-Bound (top-K search with admissible upper bounds).
//
// BranchAndBoundTopK enumerates chains via depth-first search with
// deterministic branching, an admissible upper bound, and greedy seeding of
// the incumbent list.
//
// Rationale (succinct):
//  1. The dot matrix is prefetched into a flat buffer (Scorer.w) so hot loops
//     avoid interface calls and bounds-checked accessors.
//  2. Seeding: one greedy chain per start vertex (always take the heaviest
//     unused edge) is offered to the top-K list before the search. A good
//     K-th score early makes pruning effective.
//  3. Search: with depth placed nodes the chain still needs r = n − depth
//     edges. Each future edge is ≤ max_{i≠j} dot (GlobalMaxBound), and the
//     edge entering an unplaced v is ≤ rowMax[v] (VertexMaxBound), so
//     UB = current + r·max  or  current + Σ_{v unplaced} rowMax[v]
//     never underestimates any completion. Prune when the list is full and
//     UB < K-th best − eps; ties are kept so results match exact search.
//  4. Branching order: from the current last node, try v in descending
//     dot[last][v] (index tiebreak). Fully deterministic.
//
// Complexity:
//   - Worst case O(n!·n) (NoBound). Practical speed comes from pruning.
//   - Per node: O(n) bound + O(1) state updates.
//   - Memory: O(n²) neighbour orders + O(n) path + O(K·n) incumbents.

package permutation

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/embedchain/matrix"
)

// bbEngine holds all search data and policies.
type bbEngine struct {
	// Configuration / policy
	n     int
	bound Bound
	eps   float64

	// Dense weights w[u*n+v], shared read-only with the Scorer.
	w []float64

	// Precomputes for bound / branching order
	maxEdge float64   // max_{i≠j} w
	rowMax  []float64 // per-vertex max over u≠v
	order   [][]int   // for each u: v≠u sorted by descending w[u→v] (index tiebreak)

	// Current search state
	visited     []bool
	path        []int
	unplacedMax float64 // Σ rowMax over unplaced vertices

	// Incumbents and counters
	top        *topK
	considered uint64
	pruned     uint64
}

// at is a fast accessor into the dense weight buffer.
func (e *bbEngine) at(u, v int) float64 { return e.w[u*e.n+v] }

// precomputeMaxima fills rowMax and maxEdge. The diagonal is excluded: a
// chain never pairs a node with itself.
func (e *bbEngine) precomputeMaxima(dots *matrix.Dense) {
	var (
		u, v int
		m, x float64
	)
	e.maxEdge = dots.MaxOffDiagonal()
	e.rowMax = make([]float64, e.n)
	for v = 0; v < e.n; v++ {
		m = math.Inf(-1)
		for u = 0; u < e.n; u++ {
			if u == v {
				continue
			}
			if x = e.at(u, v); x > m {
				m = x
			}
		}
		e.rowMax[v] = m
	}
}

// neighborOrder implements sort.Interface for a row of neighbours ordered by
// descending weight.
type neighborOrder struct {
	u   int
	row []int
	e   *bbEngine
}

func (no neighborOrder) Len() int { return len(no.row) }
func (no neighborOrder) Less(i, j int) bool {
	vi, vj := no.row[i], no.row[j]
	wi, wj := no.e.at(no.u, vi), no.e.at(no.u, vj)
	if wi == wj {
		return vi < vj
	}

	return wi > wj
}
func (no *neighborOrder) Swap(i, j int) { no.row[i], no.row[j] = no.row[j], no.row[i] }

// buildNeighborOrder produces, for each u, the list of v≠u sorted by
// descending w[u→v] (then by v).
func (e *bbEngine) buildNeighborOrder() {
	var u, v int
	e.order = make([][]int, e.n)
	for u = 0; u < e.n; u++ {
		row := make([]int, 0, e.n-1)
		for v = 0; v < e.n; v++ {
			if v != u {
				row = append(row, v)
			}
		}
		no := neighborOrder{u: u, row: row, e: e}
		sort.Sort(&no)
		e.order[u] = no.row
	}
}

// seedGreedy offers one greedy chain per start vertex.
func (e *bbEngine) seedGreedy() {
	var (
		used  = make([]bool, e.n)
		chain = make([]int, 0, e.n)
		start int
		last  int
		score float64
	)
	for start = 0; start < e.n; start++ {
		clear(used)
		chain = append(chain[:0], start)
		used[start] = true
		last, score = start, 0
		for len(chain) < e.n {
			for _, v := range e.order[last] {
				if !used[v] {
					used[v] = true
					chain = append(chain, v)
					score += e.at(last, v)
					last = v
					break
				}
			}
		}
		e.top.offer(chain, score)
	}
}

// upperBound returns the best score any completion of the current path can
// reach, given depth placed nodes.
func (e *bbEngine) upperBound(current float64, depth int) float64 {
	switch e.bound {
	case NoBound:
		return math.Inf(1)
	case VertexMaxBound:
		return current + e.unplacedMax
	default:
		return current + float64(e.n-depth)*e.maxEdge
	}
}

// dfs performs the core search: deterministic branching + pruning by
// UB < K-th best − eps.
func (e *bbEngine) dfs(last, depth int, current float64) {
	if depth == e.n {
		e.considered++
		e.top.offer(e.path, current)
		return
	}
	if e.top.full() && e.upperBound(current, depth) < e.top.threshold()-e.eps {
		e.pruned++
		return
	}

	for _, v := range e.order[last] {
		if e.visited[v] {
			continue
		}
		e.place(v, depth)
		e.dfs(v, depth+1, current+e.at(last, v))
		e.unplace(v)
	}
}

func (e *bbEngine) place(v, depth int) {
	e.visited[v] = true
	e.path[depth] = v
	e.unplacedMax -= e.rowMax[v]
}

func (e *bbEngine) unplace(v int) {
	e.visited[v] = false
	e.unplacedMax += e.rowMax[v]
}

// BranchAndBoundTopK returns the best k chains found by depth-first
// branch-and-bound under opts.Bound and opts.Eps. opts.Eps below DefaultEps
// (or NaN) is raised to DefaultEps, since the bound and a chain's own sum may
// differ in the last bit. With that floor every bound returns the same list
// as exact enumeration. It is the only strategy Search uses above
// ExactLimit, but it accepts any n.
//
// Errors: ErrBadK.
func (s *Scorer) BranchAndBoundTopK(k int, opts Options) (Result, error) {
	if k <= 0 {
		return Result{}, fmt.Errorf("BranchAndBoundTopK: %w", ErrBadK)
	}
	if s.n == 0 {
		return Result{Strategy: StrategyNone}, nil
	}

	// Engine initialization (no anonymous closures).
	var e bbEngine
	e.n = s.n
	e.w = s.w
	e.bound = opts.Bound
	e.eps = opts.Eps
	if !(e.eps >= DefaultEps) {
		e.eps = DefaultEps
	}
	e.top = newTopK(k)

	e.precomputeMaxima(s.dots)
	e.buildNeighborOrder()
	e.seedGreedy()

	// Search state. Roots are tried in index order; the root itself has no
	// incoming edge, so its rowMax leaves the unplaced sum.
	e.visited = make([]bool, e.n)
	e.path = make([]int, e.n)
	for _, m := range e.rowMax {
		e.unplacedMax += m
	}
	var root int
	for root = 0; root < e.n; root++ {
		e.place(root, 0)
		e.dfs(root, 1, 0)
		e.unplace(root)
	}

	return Result{
		Permutations: e.top.result(),
		Considered:   e.considered,
		Pruned:       e.pruned,
		Strategy:     StrategyBranchAndBound,
	}, nil
}
