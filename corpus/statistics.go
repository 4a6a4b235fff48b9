// SPDX-License-Identifier: MIT

package corpus

import (
	"fmt"
	"math"
	"sort"

	"github.com/james-bowman/sparse"
)

// Statistics holds the co-occurrence table built from one corpus.
// It is immutable after NewStatistics returns.
type Statistics struct {
	opts   Options
	vocab  *Vocabulary
	freq   map[string]int
	table  *sparse.DOK // nil when the vocabulary is empty
	cells  []Cell      // nonzero cells sorted by (I, J)
	rowSum []float64
	total  float64

	sentences int
	tokens    int
}

// NewStatistics tokenizes sentences and accumulates the windowed
// inverse-distance co-occurrence table.
//
// Steps:
//  1. Tokenize every sentence and count global frequencies.
//  2. Build the Vocabulary from tokens with frequency >= MinCount.
//  3. For each in-vocabulary pair of positions (p, q) with 0 < q-p <= Window,
//     add 1/(q-p) to both (i,j) and (j,i). Distances use positions in the
//     full token list, so filtered-out tokens still occupy a slot.
//  4. Collect nonzero cells in (i, j) order; rowSum[i] = Σ_j w(i,j) and
//     total = Σ_i rowSum[i].
//
// Both cells of a pair receive the same sequence of additions, so
// Weight(i,j) == Weight(j,i) holds bit-for-bit; a self pair (i == i) is
// visited from both sides and receives 2/(q-p).
//
// Errors: ErrBadWindow, ErrBadMinCount.
func NewStatistics(sentences []string, opts Options) (*Statistics, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("NewStatistics: %w", err)
	}

	var (
		tokenized = make([][]string, len(sentences))
		freq      = make(map[string]int)
		total     int
	)
	for s, sentence := range sentences {
		toks := Tokenize(sentence)
		tokenized[s] = toks
		total += len(toks)
		for _, t := range toks {
			freq[t]++
		}
	}

	st := &Statistics{
		opts:      opts,
		vocab:     newVocabulary(freq, opts.MinCount),
		freq:      freq,
		sentences: len(sentences),
		tokens:    total,
	}
	v := st.vocab.Len()
	if v == 0 {
		return st, nil
	}

	st.table = sparse.NewDOK(v, v)
	var (
		ids  []int
		p, q int
		i, j int
		wgt  float64
	)
	for _, toks := range tokenized {
		ids = ids[:0]
		for _, t := range toks {
			if idx, ok := st.vocab.Index(t); ok {
				ids = append(ids, idx)
			} else {
				ids = append(ids, -1)
			}
		}
		for p = 0; p < len(ids); p++ {
			if i = ids[p]; i < 0 {
				continue
			}
			for q = p + 1; q <= p+opts.Window && q < len(ids); q++ {
				if j = ids[q]; j < 0 {
					continue
				}
				wgt = 1 / float64(q-p)
				st.table.Set(i, j, st.table.At(i, j)+wgt)
				st.table.Set(j, i, st.table.At(j, i)+wgt)
			}
		}
	}

	st.collect()

	return st, nil
}

// collect snapshots the DOK into sorted cells and derives the marginals.
func (s *Statistics) collect() {
	s.cells = s.cells[:0]
	s.table.DoNonZero(func(i, j int, w float64) {
		s.cells = append(s.cells, Cell{I: i, J: j, Weight: w})
	})
	sort.Slice(s.cells, func(a, b int) bool {
		if s.cells[a].I != s.cells[b].I {
			return s.cells[a].I < s.cells[b].I
		}
		return s.cells[a].J < s.cells[b].J
	})

	s.rowSum = make([]float64, s.vocab.Len())
	for _, c := range s.cells {
		s.rowSum[c.I] += c.Weight
	}
	s.total = 0
	for _, r := range s.rowSum {
		s.total += r
	}
}

// PPMI returns every cell whose pointwise mutual information
// ln(p_ij / (p_i·p_j)) is strictly positive, in (I, J) order, where
// p_ij = w(i,j)/total and p_i = rowSum[i]/total.
//
// Complexity: O(nnz).
func (s *Statistics) PPMI() []PPMIEntry {
	if len(s.cells) == 0 || s.total <= 0 {
		return nil
	}
	var (
		out         = make([]PPMIEntry, 0, len(s.cells))
		invTotal    = 1 / s.total
		pij, pi, pj float64
		pmi         float64
		c           Cell
	)
	for _, c = range s.cells {
		pij = c.Weight * invTotal
		pi = s.rowSum[c.I] * invTotal
		pj = s.rowSum[c.J] * invTotal
		if pi*pj <= 0 {
			continue
		}
		pmi = math.Log(pij / (pi * pj))
		if pmi > 0 && !math.IsInf(pmi, 0) && !math.IsNaN(pmi) {
			out = append(out, PPMIEntry{I: c.I, J: c.J, Score: pmi})
		}
	}

	return out
}

// Vocabulary returns the frequency-filtered vocabulary.
func (s *Statistics) Vocabulary() *Vocabulary { return s.vocab }

// Weight returns the accumulated weight of (i, j), 0 when absent or out of range.
func (s *Statistics) Weight(i, j int) float64 {
	v := s.vocab.Len()
	if s.table == nil || i < 0 || j < 0 || i >= v || j >= v {
		return 0
	}

	return s.table.At(i, j)
}

// WordWeight is Weight addressed by words.
func (s *Statistics) WordWeight(a, b string) float64 {
	i, ok := s.vocab.Index(a)
	if !ok {
		return 0
	}
	j, ok := s.vocab.Index(b)
	if !ok {
		return 0
	}

	return s.Weight(i, j)
}

// RowSum returns Σ_j Weight(i, j), 0 when out of range.
func (s *Statistics) RowSum(i int) float64 {
	if i < 0 || i >= len(s.rowSum) {
		return 0
	}

	return s.rowSum[i]
}

// Total returns the sum of all weights.
func (s *Statistics) Total() float64 { return s.total }

// NNZ returns the number of nonzero cells.
func (s *Statistics) NNZ() int { return len(s.cells) }

// Cells returns a copy of the nonzero cells in (I, J) order.
func (s *Statistics) Cells() []Cell { return append([]Cell(nil), s.cells...) }

// Frequency returns the global count of word before filtering.
func (s *Statistics) Frequency(word string) int { return s.freq[word] }

// Matrix exposes the underlying sparse table; nil for an empty vocabulary.
// Callers must not mutate it.
func (s *Statistics) Matrix() *sparse.DOK { return s.table }

// Sentences returns how many sentences were read.
func (s *Statistics) Sentences() int { return s.sentences }

// Tokens returns how many tokens survived tokenization, before filtering.
func (s *Statistics) Tokens() int { return s.tokens }

// Options returns the options the table was built with.
func (s *Statistics) Options() Options { return s.opts }
