// SPDX-License-Identifier: MIT

// Package spectral provides randomized truncated SVD over a PPMI matrix.
//
// What:
//   - Bootstrap turns corpus.PPMIEntry triples into one dense vector per
//     vocabulary word using randomized power iteration:
//     Q₀ = SeedMatrix(V, k); repeat t times { Q = A·(A·Q); MGS(Q) };
//     σ_d = max(‖(A·Q)[:,d]‖₂, 1e-10); row r ↦ normalise(Q[r] ⊙ √σ).
//   - The PPMI matrix is symmetric, so one CSR adjacency serves as both A
//     and Aᵀ.
//
// Determinism:
//   - SeedValue is a pure function of (row, col); MulSparseDense computes
//     each output row in exactly one task, in CSR column order, so results
//     are bit-identical for any worker count.
//
// Concurrency:
//   - MulSparseDense fans row blocks out over an errgroup bounded by
//     Options.Workers. Tasks write disjoint rows of the output.
//
// Complexity:
//   - O(t·(nnz·k + V·k²)) time, O(V·k) space.
package spectral
