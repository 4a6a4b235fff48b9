// SPDX-License-Identifier: MIT

// Package pipeline wires corpus statistics, the spectral bootstrap, the
// contrastive refiner and the permutation scorer into one trainable object.
//
// Train runs, in order:
//
//	sentences → corpus.Statistics → PPMI → spectral.Bootstrap
//	          → contrastive refinement (Config.Epochs passes)
//	          → merged table (refined vectors win)
//	          → top Config.NodeCount words by magnitude → permutation search (K=1)
//
// After training, GetEmbedding, Project, Nearest and NearestBatch read the
// merged table; RefineFromSentence and RefineFromPairs keep refining it
// online. Words absent from the table get the same deterministic hash vector
// the refiner would create for them.
//
// Concurrency: a Pipeline is safe for concurrent use. Lookups share a read
// lock; Train and online refinement hold the write lock only while swapping
// or updating state.
//
// Logging: stage timings and sizes go to the injected *slog.Logger at Debug,
// the run summary at Info, each record tagged with the run's RunID.
package pipeline
