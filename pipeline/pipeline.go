// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/katalvlaran/embedchain/contrastive"
	"github.com/katalvlaran/embedchain/corpus"
	"github.com/katalvlaran/embedchain/embedding"
	"github.com/katalvlaran/embedchain/permutation"
	"github.com/katalvlaran/embedchain/spectral"
)

// Pipeline owns the merged embedding table, the online refiner and the best
// ordering of the last training run.
type Pipeline struct {
	cfg      Config
	logger   *slog.Logger
	workers  int
	fallback *lru.Cache[string, []float64]

	mu       sync.RWMutex
	merged   embedding.Table
	refiner  *contrastive.Refiner
	ordering Ordering
	stats    TrainingStats
}

// New validates cfg and returns an untrained Pipeline. Online refinement is
// available immediately; vectors are then created at cfg.Dim.
//
// Errors: ErrInvalidConfig, ErrBadOption.
func New(cfg Config, opts ...Option) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	if s.cacheSize <= 0 {
		return nil, fmt.Errorf("%w: fallback cache size must be > 0, got %d", ErrBadOption, s.cacheSize)
	}
	cache, err := lru.New[string, []float64](s.cacheSize)
	if err != nil {
		return nil, fmt.Errorf("pipeline.New: %w", err)
	}
	refiner, err := contrastive.New(cfg.refinerOptions(), nil)
	if err != nil {
		return nil, fmt.Errorf("pipeline.New: %w", err)
	}

	return &Pipeline{
		cfg:      cfg,
		logger:   s.logger,
		workers:  s.workers,
		fallback: cache,
		merged:   embedding.Table{},
		refiner:  refiner,
	}, nil
}

func (c Config) refinerOptions() contrastive.Options {
	return contrastive.Options{LearningRate: c.LearningRate, Negatives: c.Negatives, Dim: c.Dim}
}

// Config returns the configuration the Pipeline was built with.
func (p *Pipeline) Config() Config { return p.cfg }

// Train rebuilds every piece of state from sentences and returns the run's
// statistics. The previous state is replaced atomically on success; online
// refinements made while Train runs are discarded.
//
// An empty vocabulary (no sentences, or no word reaching MinCount) is not an
// error: the Pipeline is reset and zeroed statistics are returned.
func (p *Pipeline) Train(sentences []string) (TrainingStats, error) {
	var (
		start = time.Now()
		stats = TrainingStats{RunID: uuid.New(), Sentences: len(sentences)}
		log   = p.logger.With(slog.String("run_id", stats.RunID.String()))
	)

	// 1) co-occurrence and PPMI
	t := time.Now()
	cs, err := corpus.NewStatistics(sentences, corpus.Options{Window: p.cfg.Window, MinCount: p.cfg.MinCount})
	if err != nil {
		return TrainingStats{}, fmt.Errorf("Train: %w", err)
	}
	entries := cs.PPMI()
	stats.Tokens = cs.Tokens()
	stats.VocabularySize = cs.Vocabulary().Len()
	stats.NonZero = cs.NNZ()
	stats.PPMIEntries = len(entries)
	stats.CorpusDuration = time.Since(t)
	log.Debug("corpus statistics",
		slog.Int("sentences", stats.Sentences),
		slog.Int("tokens", stats.Tokens),
		slog.Int("vocabulary", stats.VocabularySize),
		slog.Int("nnz", stats.NonZero),
		slog.Int("ppmi_entries", stats.PPMIEntries),
		slog.Duration("elapsed", stats.CorpusDuration))

	if stats.VocabularySize == 0 {
		refiner, err := contrastive.New(p.cfg.refinerOptions(), nil)
		if err != nil {
			return TrainingStats{}, fmt.Errorf("Train: %w", err)
		}
		stats = TrainingStats{RunID: stats.RunID, Sentences: stats.Sentences, Tokens: stats.Tokens}
		stats.TotalDuration = time.Since(start)
		p.swap(embedding.Table{}, refiner, Ordering{}, stats)
		log.Info("training skipped: empty vocabulary", slog.Int("sentences", stats.Sentences))

		return stats.clone(), nil
	}

	// 2) spectral bootstrap
	t = time.Now()
	boot, err := spectral.Bootstrap(entries, cs.Vocabulary(), spectral.Options{
		Dim:        p.cfg.Dim,
		Iterations: p.cfg.SVDIterations,
		Workers:    p.workers,
	})
	if err != nil {
		return TrainingStats{}, fmt.Errorf("Train: %w", err)
	}
	stats.Dim = boot.Dim
	stats.SingularValues = append([]float64(nil), boot.SingularValues...)
	stats.BootstrapDuration = time.Since(t)
	log.Debug("spectral bootstrap",
		slog.Int("dim", boot.Dim),
		slog.Int("embeddings", len(boot.Embeddings)),
		slog.Duration("elapsed", stats.BootstrapDuration))

	// 3) contrastive refinement
	t = time.Now()
	refiner, err := contrastive.New(p.cfg.refinerOptions(), boot.Embeddings)
	if err != nil {
		return TrainingStats{}, fmt.Errorf("Train: %w", err)
	}
	var batch contrastive.BatchStats
	for epoch := 0; epoch < p.cfg.Epochs; epoch++ {
		for _, s := range sentences {
			batch.Add(refiner.RefineBatch(contrastive.ExtractPairs(s, p.cfg.PairWindow)))
		}
	}
	stats.Dim = refiner.Dim()
	stats.Epochs = p.cfg.Epochs
	stats.Pairs = batch.Pairs
	stats.Updates = batch.Applied
	stats.Skipped = batch.Skipped
	stats.MeanLoss = batch.Loss
	stats.RefinedWords = len(batch.Words)
	stats.RefineDuration = time.Since(t)
	log.Debug("contrastive refinement",
		slog.Int("epochs", stats.Epochs),
		slog.Int("pairs", stats.Pairs),
		slog.Int("updates", stats.Updates),
		slog.Int("skipped", stats.Skipped),
		slog.Float64("mean_loss", stats.MeanLoss),
		slog.Duration("elapsed", stats.RefineDuration))

	// 4) merge, refined vectors win
	merged := boot.Embeddings.Clone()
	merged.Merge(refiner.Table())
	stats.EmbeddingCount = len(merged)

	// 5) best ordering over the strongest words
	t = time.Now()
	ordering, res, err := p.order(merged)
	if err != nil {
		return TrainingStats{}, fmt.Errorf("Train: %w", err)
	}
	stats.Nodes = len(ordering.Labels)
	stats.PermutationsConsidered = res.Considered
	stats.PermutationsPruned = res.Pruned
	stats.SearchStrategy = res.Strategy.String()
	stats.BestScore = ordering.Score
	stats.SearchDuration = time.Since(t)
	log.Debug("permutation search",
		slog.Int("nodes", stats.Nodes),
		slog.String("strategy", stats.SearchStrategy),
		slog.Uint64("considered", stats.PermutationsConsidered),
		slog.Uint64("pruned", stats.PermutationsPruned),
		slog.Duration("elapsed", stats.SearchDuration))

	stats.TotalDuration = time.Since(start)
	p.swap(merged, refiner, ordering, stats)
	log.Info("training complete",
		slog.Int("vocabulary", stats.VocabularySize),
		slog.Int("embeddings", stats.EmbeddingCount),
		slog.Int("dim", stats.Dim),
		slog.Float64("best_score", stats.BestScore),
		slog.Any("ordering", ordering.Labels),
		slog.Duration("elapsed", stats.TotalDuration))

	return stats.clone(), nil
}

// order selects the top NodeCount words by magnitude and finds their best chain.
func (p *Pipeline) order(merged embedding.Table) (Ordering, permutation.Result, error) {
	labels := embedding.TopByMagnitude(merged, p.cfg.NodeCount)
	if len(labels) == 0 {
		return Ordering{}, permutation.Result{}, nil
	}
	vectors := make([][]float64, len(labels))
	for i, w := range labels {
		vectors[i] = merged[w]
	}
	scorer, err := permutation.NewScorer(labels, vectors)
	if err != nil {
		return Ordering{}, permutation.Result{}, err
	}
	opts := permutation.DefaultOptions()
	opts.Parallel = p.cfg.ParallelSearch
	opts.Workers = p.workers
	res, err := scorer.Best(opts)
	if err != nil {
		return Ordering{}, permutation.Result{}, err
	}
	best, ok := res.Best()
	if !ok {
		return Ordering{}, res, nil
	}

	return Ordering{Labels: scorer.Labeled(best), Order: best.Order, Score: best.Score}, res, nil
}

func (p *Pipeline) swap(merged embedding.Table, refiner *contrastive.Refiner, ordering Ordering, stats TrainingStats) {
	p.mu.Lock()
	p.merged = merged
	p.refiner = refiner
	p.ordering = ordering
	p.stats = stats
	p.mu.Unlock()
	// Cached fallbacks may have the old dimension.
	p.fallback.Purge()
}

// Stats returns the statistics of the last Train call.
func (p *Pipeline) Stats() TrainingStats {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.stats.clone()
}

// Ordering returns the best chain found by the last Train call.
func (p *Pipeline) Ordering() Ordering {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.ordering.clone()
}

// Embeddings returns a deep copy of the merged table.
func (p *Pipeline) Embeddings() embedding.Table {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.merged.Clone()
}

// Dim is the length of every vector the Pipeline hands out.
func (p *Pipeline) Dim() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.refiner.Dim()
}
