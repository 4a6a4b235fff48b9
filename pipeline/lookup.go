// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/embedchain/contrastive"
	"github.com/katalvlaran/embedchain/embedding"
)

// ErrBadK is returned by NearestBatch for k < 1.
var ErrBadK = errors.New("pipeline: k must be >= 1")

// GetEmbedding returns a copy of word's vector. Words outside the merged
// table get the deterministic hash vector at the current dimension, which is
// also what the refiner would create for them. Repeated calls without
// intervening training return equal vectors.
func (p *Pipeline) GetEmbedding(word string) []float64 {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return append([]float64(nil), p.lookupLocked(word)...)
}

// lookupLocked returns the live or cached vector; callers must hold p.mu and
// must not modify the result.
func (p *Pipeline) lookupLocked(word string) []float64 {
	if v, ok := p.merged[word]; ok {
		return v
	}
	dim := p.refiner.Dim()
	if v, ok := p.fallback.Get(word); ok && len(v) == dim {
		return v
	}
	v := embedding.HashVector(word, dim)
	p.fallback.Add(word, v)

	return v
}

// Project maps word's embedding to a probability vector of ProjectionWidth
// entries.
func (p *Pipeline) Project(word string) []float64 {
	return p.ProjectVector(p.GetEmbedding(word))
}

// ProjectVector applies the stride projection and softmax to v.
func (p *Pipeline) ProjectVector(v []float64) []float64 {
	return embedding.Project(v, p.cfg.ProjectionWidth)
}

// RefineFromSentence extracts pairs with PairWindow and refines on them.
func (p *Pipeline) RefineFromSentence(sentence string) contrastive.BatchStats {
	return p.RefineFromPairs(contrastive.ExtractPairs(sentence, p.cfg.PairWindow))
}

// RefineFromPairs applies one refinement batch and writes every touched
// vector back into the merged table, so GetEmbedding reflects it at once.
func (p *Pipeline) RefineFromPairs(pairs []contrastive.Pair) contrastive.BatchStats {
	if len(pairs) == 0 {
		return contrastive.BatchStats{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	stats := p.refiner.RefineBatch(pairs)
	for _, w := range stats.Words {
		if v, ok := p.refiner.Embedding(w); ok {
			p.merged[w] = v
		}
	}
	p.logger.Debug("online refinement",
		"pairs", stats.Pairs,
		"applied", stats.Applied,
		"skipped", stats.Skipped,
		"words", len(stats.Words))

	return stats
}

// Nearest returns the k words of the merged table most cosine-similar to
// word, excluding word itself. Ties break by word.
func (p *Pipeline) Nearest(word string, k int) []embedding.Neighbor {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return embedding.Nearest(p.merged, p.lookupLocked(word), k, word)
}

// NearestBatch runs Nearest for every word concurrently; out[i] belongs to
// words[i].
func (p *Pipeline) NearestBatch(words []string, k int) ([][]embedding.Neighbor, error) {
	if k < 1 {
		return nil, fmt.Errorf("NearestBatch: %w", ErrBadK)
	}
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make([][]embedding.Neighbor, len(words))
	var g errgroup.Group
	if p.workers > 0 {
		g.SetLimit(p.workers)
	}
	for i, w := range words {
		g.Go(func() error {
			out[i] = embedding.Nearest(p.merged, p.lookupLocked(w), k, w)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("NearestBatch: %w", err)
	}

	return out, nil
}
