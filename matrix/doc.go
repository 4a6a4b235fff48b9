// Package matrix provides the small dense linear-algebra surface shared by the
// embedding and permutation packages.
//
// The package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and a
//     finite-only numeric policy.
//   - Gram, which turns a set of equal-length vectors into their symmetric
//     pairwise dot-product matrix (the similarity table the permutation
//     scorer searches over).
//   - Canonical validators (nil, square, symmetric) returning sentinel errors.
//
// Matrices here are small (n ≤ a few dozen rows for similarity tables), so a
// plain O(n²) dense layout is the right trade-off: O(1) lookups in the search
// hot loop and a single contiguous buffer to prefetch.
package matrix
