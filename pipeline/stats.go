// SPDX-License-Identifier: MIT

package pipeline

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// TrainingStats describes one Train call. It is written once and read-only
// afterwards.
type TrainingStats struct {
	RunID uuid.UUID

	// Corpus
	Sentences      int
	Tokens         int
	VocabularySize int
	NonZero        int
	PPMIEntries    int

	// Bootstrap
	Dim            int
	SingularValues []float64

	// Refinement
	Epochs       int
	Pairs        int
	Updates      int
	Skipped      int
	MeanLoss     float64
	RefinedWords int

	// Merge and ordering
	EmbeddingCount         int
	Nodes                  int
	PermutationsConsidered uint64
	PermutationsPruned     uint64
	SearchStrategy         string
	BestScore              float64

	// Durations
	CorpusDuration    time.Duration
	BootstrapDuration time.Duration
	RefineDuration    time.Duration
	SearchDuration    time.Duration
	TotalDuration     time.Duration
}

func (s TrainingStats) clone() TrainingStats {
	s.SingularValues = slices.Clone(s.SingularValues)
	return s
}

// Ordering is the best chain over the selected nodes.
type Ordering struct {
	// Labels are the node words in chain order.
	Labels []string

	// Order indexes the nodes as selected by magnitude rank.
	Order []int

	// Score is the chain score of Order.
	Score float64
}

func (o Ordering) clone() Ordering {
	return Ordering{Labels: slices.Clone(o.Labels), Order: slices.Clone(o.Order), Score: o.Score}
}
