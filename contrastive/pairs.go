// SPDX-License-Identifier: MIT

package contrastive

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// minPairTokenLen is the shortest token (in runes) ExtractPairs keeps, exclusive.
const minPairTokenLen = 2

// ExtractPairs lowercases sentence, splits it on anything that is not a
// letter or digit, keeps tokens longer than two runes and returns every
// ordered pair (tok_i, tok_j) with i ≠ j and |i−j| ≤ window.
// window < 1 yields nil.
func ExtractPairs(sentence string, window int) []Pair {
	if window < 1 {
		return nil
	}
	fields := strings.FieldsFunc(strings.ToLower(sentence), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	toks := fields[:0]
	for _, f := range fields {
		if utf8.RuneCountInString(f) > minPairTokenLen {
			toks = append(toks, f)
		}
	}

	var (
		out    []Pair
		i, j   int
		lo, hi int
	)
	for i = range toks {
		lo, hi = max(0, i-window), min(len(toks)-1, i+window)
		for j = lo; j <= hi; j++ {
			if j != i {
				out = append(out, Pair{Anchor: toks[i], Positive: toks[j]})
			}
		}
	}

	return out
}
