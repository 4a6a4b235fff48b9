// SPDX-License-Identifier: MIT

package embedding

import (
	"sort"

	"github.com/viterin/vek"
)

// Neighbor is one result of a similarity query.
type Neighbor struct {
	Word       string
	Similarity float64
}

// Cosine returns the cosine similarity of a and b, or 0 when either is a
// zero vector or the lengths differ.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	na, nb := vek.Norm(a), vek.Norm(b)
	if na == 0 || nb == 0 {
		return 0
	}

	return vek.Dot(a, b) / (na * nb)
}

// TopByMagnitude returns up to n words ordered by descending L2 norm.
// Equal norms are ordered by word so the selection is deterministic.
func TopByMagnitude(t Table, n int) []string {
	if n <= 0 || len(t) == 0 {
		return nil
	}
	type ranked struct {
		word string
		norm float64
	}
	words := t.Words()
	all := make([]ranked, len(words))
	for i, w := range words {
		all[i] = ranked{word: w, norm: vek.Norm(t[w])}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].norm != all[j].norm {
			return all[i].norm > all[j].norm
		}
		return all[i].word < all[j].word
	})
	if n > len(all) {
		n = len(all)
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = all[i].word
	}

	return out
}

// Nearest ranks the words of t by cosine similarity to query and returns the
// best k. exclude (typically the query word itself) is skipped, as are zero
// vectors and vectors of a different length. Ties are broken by word.
func Nearest(t Table, query []float64, k int, exclude string) []Neighbor {
	if k <= 0 || len(query) == 0 || vek.Norm(query) == 0 {
		return nil
	}
	var out []Neighbor
	for _, w := range t.Words() {
		if w == exclude {
			continue
		}
		v := t[w]
		if len(v) != len(query) || vek.Norm(v) == 0 {
			continue
		}
		out = append(out, Neighbor{Word: w, Similarity: Cosine(query, v)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Similarity != out[j].Similarity {
			return out[i].Similarity > out[j].Similarity
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > k {
		out = out[:k]
	}

	return out
}
