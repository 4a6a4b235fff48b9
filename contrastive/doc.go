// SPDX-License-Identifier: MIT

// Package contrastive provides online InfoNCE refinement with deterministic
// negative sampling.
//
// What:
//   - Refiner owns a word→vector table, a flat sampling vocabulary and a step
//     counter. RefineBatch applies one InfoNCE update per (anchor, positive)
//     pair at temperature 0.07.
//   - ExtractPairs derives ordered co-occurrence pairs from a sentence.
//
// Sampling:
//   - Negative k of the pair processed at step s is
//     vocab[(s*31 + k*7 + len(anchor)) % len(vocab)], skipped when it equals
//     the anchor or the positive. The step counter belongs to the Refiner, so
//     independent refiners never influence each other.
//
// Update (a = anchor, p = positive, n_k = negatives, T = 0.07):
//
//	s = softmax(a·p/T, a·n_1/T, …)          (max-subtracted)
//	a ← a + lr·((1−s_pos)/T·p − Σ_k s_k/T·n_k)
//	p ← p + lr·(1−s_pos)/T·a_old
//	a, p ← a/‖a‖, p/‖p‖
//
// Degenerate steps (non-finite logits, zero denominator) are skipped and
// counted; nothing is ever written as NaN or Inf.
//
// Concurrency:
//   - A Refiner is not safe for concurrent use.
package contrastive
