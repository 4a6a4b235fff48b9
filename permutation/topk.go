// SPDX-License-Identifier: MIT

package permutation

import (
	"math"
	"slices"
	"sort"
)

// better reports whether (a, sa) ranks before (b, sb): higher score first,
// then the lexicographically smaller order.
func better(a []int, sa float64, b []int, sb float64) bool {
	if sa != sb {
		return sa > sb
	}

	return slices.Compare(a, b) < 0
}

// topK is a bounded, sorted list of the best permutations seen so far.
// It is not safe for concurrent use; parallel tasks own one each.
type topK struct {
	k     int
	items []ScoredPermutation
}

func newTopK(k int) *topK {
	return &topK{k: k, items: make([]ScoredPermutation, 0, k)}
}

// full reports whether k entries are held.
func (t *topK) full() bool { return len(t.items) >= t.k }

// threshold returns the K-th best score, or -Inf while the list is not full.
func (t *topK) threshold() float64 {
	if !t.full() {
		return math.Inf(-1)
	}

	return t.items[len(t.items)-1].Score
}

// offer inserts (order, score) if it ranks within the top k. order is copied
// only on insertion. Duplicate orders are ignored.
func (t *topK) offer(order []int, score float64) bool {
	if t.full() {
		last := t.items[len(t.items)-1]
		if !better(order, score, last.Order, last.Score) {
			return false
		}
	}
	pos := sort.Search(len(t.items), func(i int) bool {
		return better(order, score, t.items[i].Order, t.items[i].Score)
	})
	if pos > 0 && t.items[pos-1].Score == score && slices.Equal(t.items[pos-1].Order, order) {
		return false
	}

	item := ScoredPermutation{Order: slices.Clone(order), Score: score}
	if t.full() {
		t.items = t.items[:len(t.items)-1]
	}
	t.items = slices.Insert(t.items, pos, item)

	return true
}

// merge folds other into t.
func (t *topK) merge(other *topK) {
	for _, it := range other.items {
		t.offer(it.Order, it.Score)
	}
}

// result returns the held entries, best first.
func (t *topK) result() []ScoredPermutation {
	return slices.Clone(t.items)
}
