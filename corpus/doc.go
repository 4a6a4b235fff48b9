// SPDX-License-Identifier: MIT

// Package corpus provides co-occurrence statistics and PPMI over raw sentences.
//
// What:
//   - Tokenize: lowercase runs of letters, digits and apostrophes, length > 1.
//   - Vocabulary: frequency-filtered, lexicographically sorted word↔index map.
//   - Statistics: symmetric sparse co-occurrence table (a *sparse.DOK) with
//     inverse-distance weights, per-row sums and a grand total.
//   - PPMI: the positive pointwise mutual information triples of that table.
//
// Why:
//   - The PPMI list is the only input the spectral bootstrap needs; it is a
//     pure function of (sentences, Options).
//
// Determinism:
//   - Index assignment is lexicographic. Row sums, the total and the PPMI list
//     are accumulated in (i, j) order, never in map order, so every run over
//     the same input produces bit-identical floats.
//
// Complexity:
//   - Building: O(T·w) for T tokens and window w; PPMI: O(nnz·log nnz).
//
// Errors:
//   - ErrBadWindow, ErrBadMinCount for invalid Options. Empty input is not an
//     error: it yields an empty vocabulary and an empty PPMI list.
package corpus
