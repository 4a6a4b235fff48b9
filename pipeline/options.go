// SPDX-License-Identifier: MIT

package pipeline

import (
	"errors"
	"log/slog"
)

// DefaultFallbackCacheSize bounds the cache of hash vectors for unseen words.
const DefaultFallbackCacheSize = 1024

// ErrBadOption is returned by New for an invalid Option value.
var ErrBadOption = errors.New("pipeline: invalid option")

// Option customises a Pipeline.
type Option func(*settings)

type settings struct {
	logger    *slog.Logger
	workers   int
	cacheSize int
}

func defaultSettings() settings {
	return settings{
		logger:    slog.Default(),
		workers:   0,
		cacheSize: DefaultFallbackCacheSize,
	}
}

// WithLogger sets the structured logger. nil keeps slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithWorkers bounds every parallel stage; <= 0 means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *settings) { s.workers = n }
}

// WithFallbackCacheSize sets the LRU capacity for hash vectors of unseen
// words. It must be positive.
func WithFallbackCacheSize(n int) Option {
	return func(s *settings) { s.cacheSize = n }
}
