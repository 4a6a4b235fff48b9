// Package permutation finds the best linear orderings of a small set of
// labelled embeddings under the chain objective
//
//	score(order) = Σ_{i=0}^{n-2} dot[order[i]][order[i+1]]
//
// where dot is the symmetric Gram matrix of the embeddings (matrix.Gram),
// computed once per Scorer.
//
// Strategies (chosen by Scorer.Search from n):
//
//   - n == 0           → empty Result, nothing searched.
//   - n ≤ ExactLimit   → exact enumeration with Heap's algorithm, either
//     sequential (ExhaustiveTopK) or split by first element across an
//     errgroup (ParallelTopK). Both visit all n! orderings.
//   - n > ExactLimit   → depth-first branch-and-bound (BranchAndBoundTopK)
//     with the admissible bound current + Σ(best possible remaining edges).
//
// Top-K and ties:
//
//	Results are ordered by score descending; equal scores are ordered by the
//	lexicographically smaller Order first. Every strategy shares this total
//	order, so sequential, parallel and branch-and-bound searches return the
//	same lists whenever they explore the same candidates.
//
// Determinism:
//
//	No randomness is involved. Each returned Score is the exact left-to-right
//	sum ScorePermutation would compute for the same Order.
//
// Complexity:
//   - Scorer construction: O(n²·d).
//   - Exact: O(n!·n) time, O(n + K·n) memory per task.
//   - Branch-and-bound: exponential worst case; practical speed comes from
//     pruning against the K-th best incumbent.
package permutation
