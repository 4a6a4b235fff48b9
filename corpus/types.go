// SPDX-License-Identifier: MIT

package corpus

import "errors"

// Sentinel errors.
var (
	// ErrBadWindow indicates Options.Window < 1.
	ErrBadWindow = errors.New("corpus: window must be >= 1")

	// ErrBadMinCount indicates Options.MinCount < 1.
	ErrBadMinCount = errors.New("corpus: min count must be >= 1")
)

// Options configures NewStatistics.
type Options struct {
	// Window is the co-occurrence radius w; positions p±1..p±w are visited.
	Window int

	// MinCount drops tokens whose global frequency is below it.
	MinCount int
}

// DefaultOptions returns Window=5, MinCount=2.
func DefaultOptions() Options {
	return Options{Window: 5, MinCount: 2}
}

func (o Options) validate() error {
	if o.Window < 1 {
		return ErrBadWindow
	}
	if o.MinCount < 1 {
		return ErrBadMinCount
	}

	return nil
}

// PPMIEntry is one strictly positive PPMI cell.
type PPMIEntry struct {
	I, J  int
	Score float64
}

// Cell is one nonzero co-occurrence weight.
type Cell struct {
	I, J   int
	Weight float64
}
