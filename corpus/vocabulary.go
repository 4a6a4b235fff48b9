// SPDX-License-Identifier: MIT

package corpus

import "sort"

// Vocabulary is an immutable bidirectional word↔index mapping.
// Indices are assigned in lexicographic word order.
type Vocabulary struct {
	words []string
	index map[string]int
}

// newVocabulary keeps the words of freq with count >= minCount.
func newVocabulary(freq map[string]int, minCount int) *Vocabulary {
	words := make([]string, 0, len(freq))
	for w, c := range freq {
		if c >= minCount {
			words = append(words, w)
		}
	}
	sort.Strings(words)

	idx := make(map[string]int, len(words))
	for i, w := range words {
		idx[w] = i
	}

	return &Vocabulary{words: words, index: idx}
}

// Len returns the number of words.
func (v *Vocabulary) Len() int { return len(v.words) }

// Index returns the index of word and whether it is present.
func (v *Vocabulary) Index(word string) (int, bool) {
	i, ok := v.index[word]
	return i, ok
}

// Word returns the word at index i, or "" when i is out of range.
func (v *Vocabulary) Word(i int) string {
	if i < 0 || i >= len(v.words) {
		return ""
	}

	return v.words[i]
}

// Words returns a copy of the words in index order.
func (v *Vocabulary) Words() []string {
	return append([]string(nil), v.words...)
}
