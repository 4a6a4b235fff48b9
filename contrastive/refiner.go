// SPDX-License-Identifier: MIT

package contrastive

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/embedchain/embedding"
	"github.com/viterin/vek"
)

// Refiner holds the mutable embedding state of the contrastive stage.
type Refiner struct {
	opts  Options
	dim   int
	table embedding.Table
	vocab []string // sampling order: seed words sorted, then creation order
	step  uint64
}

// New builds a Refiner seeded with copies of seed's vectors.
//
// The dimension is the seed's vector length, or opts.Dim when seed is empty.
// Seed words enter the sampling vocabulary in lexicographic order.
//
// Errors: ErrBadLearningRate, ErrBadNegatives, ErrBadDim, ErrDimensionMismatch.
func New(opts Options, seed embedding.Table) (*Refiner, error) {
	if err := opts.validate(); err != nil {
		return nil, fmt.Errorf("contrastive.New: %w", err)
	}
	words := seed.Words()
	dim := opts.Dim
	if len(words) > 0 {
		dim = len(seed[words[0]])
	}
	if dim < 1 {
		return nil, fmt.Errorf("contrastive.New: %w", ErrBadDim)
	}

	r := &Refiner{
		opts:  opts,
		dim:   dim,
		table: make(embedding.Table, len(words)),
		vocab: make([]string, 0, len(words)),
	}
	for _, w := range words {
		if len(seed[w]) != dim {
			return nil, fmt.Errorf("contrastive.New: %q has %d, want %d: %w", w, len(seed[w]), dim, ErrDimensionMismatch)
		}
		r.table[w] = append([]float64(nil), seed[w]...)
		r.vocab = append(r.vocab, w)
	}

	return r, nil
}

// fetch returns the live vector of word, creating it from HashVector first
// if needed. created reports whether the word is new.
func (r *Refiner) fetch(word string) (vec []float64, created bool) {
	if v, ok := r.table[word]; ok {
		return v, false
	}
	v := embedding.HashVector(word, r.dim)
	r.table[word] = v
	r.vocab = append(r.vocab, word)

	return v, true
}

// negatives samples up to K negative vectors for the pair processed at step.
func (r *Refiner) negatives(step uint64, p Pair) [][]float64 {
	var (
		n   = uint64(len(r.vocab))
		out = make([][]float64, 0, r.opts.Negatives)
		idx uint64
		w   string
	)
	for k := 0; k < r.opts.Negatives; k++ {
		idx = (step*stepStride + uint64(k)*negativeStride + uint64(len(p.Anchor))) % n
		w = r.vocab[idx]
		if w == p.Anchor || w == p.Positive {
			continue
		}
		out = append(out, r.table[w])
	}

	return out
}

// RefineBatch applies one update per pair, in order.
// Both words of a pair are fetched or created before anything else, so every
// word seen joins the sampling vocabulary. When anchor and positive are the
// same word the step runs on two copies of its vector and the positive's
// result is stored. Pairs with an empty word are skipped. The step counter
// advances once per pair either way.
func (r *Refiner) RefineBatch(pairs []Pair) BatchStats {
	var (
		stats   = BatchStats{Pairs: len(pairs)}
		touched = make(map[string]struct{})
		lossSum float64
		step    uint64
	)
	for _, p := range pairs {
		step = r.step
		r.step++
		if p.Anchor == "" || p.Positive == "" {
			stats.Skipped++
			continue
		}

		a, newA := r.fetch(p.Anchor)
		pos, newP := r.fetch(p.Positive)
		if newA {
			touched[p.Anchor] = struct{}{}
		}
		if newP {
			touched[p.Positive] = struct{}{}
		}

		var (
			live = pos
			loss float64
			ok   bool
		)
		if p.Anchor == p.Positive {
			a = append([]float64(nil), live...)
			pos = append([]float64(nil), live...)
		}
		loss, ok = r.update(a, pos, r.negatives(step, p))
		if !ok {
			stats.Skipped++
			continue
		}
		if p.Anchor == p.Positive {
			copy(live, pos)
		}
		stats.Applied++
		lossSum += loss
		touched[p.Anchor] = struct{}{}
		touched[p.Positive] = struct{}{}
	}
	if stats.Applied > 0 {
		stats.Loss = lossSum / float64(stats.Applied)
	}
	stats.Words = make([]string, 0, len(touched))
	for w := range touched {
		stats.Words = append(stats.Words, w)
	}
	sort.Strings(stats.Words)

	return stats
}

// update performs one InfoNCE step on a and p in place and returns the loss
// −ln s_pos. ok is false when the step was skipped.
func (r *Refiner) update(a, p []float64, negs [][]float64) (loss float64, ok bool) {
	var (
		invT   = 1 / Temperature
		logits = make([]float64, 1+len(negs))
		top    float64
		denom  float64
		k      int
	)
	logits[0] = vek.Dot(a, p) * invT
	for k = range negs {
		logits[k+1] = vek.Dot(a, negs[k]) * invT
	}
	top = logits[0]
	for _, l := range logits {
		if math.IsNaN(l) || math.IsInf(l, 0) {
			return 0, false
		}
		top = math.Max(top, l)
	}
	for k = range logits {
		logits[k] = math.Exp(logits[k] - top)
		denom += logits[k]
	}
	if denom <= 0 || math.IsInf(denom, 0) || math.IsNaN(denom) {
		return 0, false
	}

	var (
		sPos = logits[0] / denom
		wPos = (1 - sPos) * invT
		lr   = r.opts.LearningRate
		aOld = append([]float64(nil), a...)
		grad = vek.MulNumber(p, wPos)
	)
	for k = range negs {
		vek.Sub_Inplace(grad, vek.MulNumber(negs[k], logits[k+1]/denom*invT))
	}
	vek.MulNumber_Inplace(grad, lr)
	vek.Add_Inplace(a, grad)
	vek.Add_Inplace(p, vek.MulNumber(aOld, lr*wPos))
	embedding.Normalize(a)
	embedding.Normalize(p)

	if sPos > 0 {
		loss = -math.Log(sPos)
	}

	return loss, true
}

// Embedding returns a copy of word's vector.
func (r *Refiner) Embedding(word string) ([]float64, bool) { return r.table.Get(word) }

// Table returns a deep copy of the refiner's table.
func (r *Refiner) Table() embedding.Table { return r.table.Clone() }

// Step returns how many pairs have been processed.
func (r *Refiner) Step() uint64 { return r.step }

// VocabularySize returns the number of sampleable words.
func (r *Refiner) VocabularySize() int { return len(r.vocab) }

// Dim returns the vector length.
func (r *Refiner) Dim() int { return r.dim }
