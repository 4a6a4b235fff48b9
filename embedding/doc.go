// SPDX-License-Identifier: MIT

// Package embedding provides the shared vector model for embedchain.
//
// What:
//   - Table: word → dense float64 vector, with Clone/Merge/Words helpers.
//   - Normalize / Normalized: L2 normalisation with the zero-vector policy
//     (a vector with zero or non-finite norm becomes exactly zero).
//   - UnitFromPair / HashVector: deterministic, index-driven pseudo-random
//     values used for SVD seeding and for vectors of unseen words.
//   - Softmax / Project: stride-and-softmax projection to a fixed width; the
//     result is always a valid categorical distribution.
//   - TopByMagnitude / Nearest / Cosine: ranking helpers.
//
// Determinism:
//   - Nothing here reads the clock or external entropy. Every iteration over
//     a Table goes through Words(), which is sorted, so results never depend
//     on map order.
//
// Concurrency:
//   - Table is a plain map. Callers own synchronisation; the pipeline guards
//     its merged table with a sync.RWMutex.
package embedding
