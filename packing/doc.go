// Package packing solves weighted set packing exactly: choose a subset of
// candidate sets, pairwise vertex-disjoint, that maximizes the summed score.
//
// In dutyswap the sets are candidate exchange cycles and the vertices are
// participants, so the packing is the 0/1 program
//
//	maximize  Σ score_c · x_c
//	s.t.      Σ_{c ∋ v} x_c ≤ 1     for every participant v
//	          x_c ∈ {0,1}
//
// Solvers:
//
//	BranchAndBound – default. Splits the conflict graph into connected
//	                 components and solves each with an include-first
//	                 depth-first search. Upper bounds come from the LP
//	                 relaxation (gonum simplex) or a per-vertex share bound.
//	Exhaustive     – enumerates every disjoint combination; small inputs only,
//	                 used as a reference in tests.
//
// Determinism: among selections with the same optimal objective, both solvers
// return the one whose inclusion vector over the candidate order is
// lexicographically greatest (the first optimum met by an include-first
// search). Component decomposition preserves that rule.
//
// Time budget: WithTimeLimit and the context deadline are checked every 1024
// search nodes. Expiry fails the call with ErrNoOptimalSolution; a partial
// incumbent is never returned.
//
// AI-HINT: callers should treat Selection.Indices as positions into the
// Problem slices they passed in; the solver never reorders the input.
package packing
