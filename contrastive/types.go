// SPDX-License-Identifier: MIT

package contrastive

import (
	"errors"
	"math"
)

// Temperature is the fixed softmax temperature T.
const Temperature = 0.07

// Sampling multipliers of the negative index formula.
const (
	stepStride     = 31
	negativeStride = 7
)

// Sentinel errors.
var (
	// ErrBadLearningRate indicates a negative or non-finite learning rate.
	ErrBadLearningRate = errors.New("contrastive: learning rate must be finite and >= 0")

	// ErrBadNegatives indicates Options.Negatives < 0.
	ErrBadNegatives = errors.New("contrastive: negatives must be >= 0")

	// ErrBadDim indicates a non-positive dimension with no seed to infer it from.
	ErrBadDim = errors.New("contrastive: dimension must be >= 1")

	// ErrDimensionMismatch indicates seed vectors of different lengths.
	ErrDimensionMismatch = errors.New("contrastive: seed vectors differ in length")
)

// Options configures a Refiner.
type Options struct {
	// LearningRate scales every update.
	LearningRate float64

	// Negatives is K, the number of sampled negatives per pair.
	Negatives int

	// Dim is used for words created from scratch when the seed is empty.
	// A non-empty seed's vector length takes precedence.
	Dim int
}

// DefaultOptions returns LearningRate=0.01, Negatives=5, Dim=64.
func DefaultOptions() Options {
	return Options{LearningRate: 0.01, Negatives: 5, Dim: 64}
}

func (o Options) validate() error {
	if o.LearningRate < 0 || math.IsNaN(o.LearningRate) || math.IsInf(o.LearningRate, 0) {
		return ErrBadLearningRate
	}
	if o.Negatives < 0 {
		return ErrBadNegatives
	}

	return nil
}

// Pair is one (anchor, positive) training example.
type Pair struct {
	Anchor, Positive string
}

// BatchStats summarises one RefineBatch call.
type BatchStats struct {
	// Pairs is the number of pairs seen.
	Pairs int

	// Applied counts pairs whose update was written.
	Applied int

	// Skipped counts pairs with an empty word and numerically degenerate steps.
	Skipped int

	// Loss is the mean of −ln s_pos over applied updates.
	Loss float64

	// Words lists, sorted and deduplicated, every word whose vector was
	// created or changed.
	Words []string
}

// Add folds other into s, weighting Loss by applied updates.
func (s *BatchStats) Add(other BatchStats) {
	total := s.Applied + other.Applied
	if total > 0 {
		s.Loss = (s.Loss*float64(s.Applied) + other.Loss*float64(other.Applied)) / float64(total)
	}
	s.Pairs += other.Pairs
	s.Applied = total
	s.Skipped += other.Skipped
	s.Words = mergeSorted(s.Words, other.Words)
}

// mergeSorted unions two sorted, deduplicated slices.
func mergeSorted(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)

	return append(out, b[j:]...)
}
