// Package cycles enumerates the candidate exchange chains of a request graph:
// every simple directed cycle whose length lies in [2, maxSteps].
//
// What:
//
//   - Enumerate: bounded depth-first search rooted at each participant in
//     ascending order. A search rooted at s only walks through participants
//     ordered after s, so every simple cycle is produced exactly once and
//     already in canonical rotation (it starts at its smallest participant).
//     Rotations such as (A,B,C) and (B,C,A) therefore never both appear.
//   - Pruning: before searching from s, a reverse breadth-first pass computes
//     how many steps each participant needs to get back to s; branches that
//     cannot close within the bound are cut.
//   - Cap: the number of cycles is hard-limited (WithMaxCycles). Exceeding it
//     fails fast with ErrTooManyCycles instead of exhausting memory.
//
// Blow-up:
//
//	The count of simple cycles of length ≤ k in a dense digraph on n vertices
//	grows like Σ_{l=2..k} n!/((n-l)!·l) = O(n^k). A complete graph on 30
//	participants already has ~4·10^4 cycles of length ≤ 4 and ~8.5·10^5 of
//	length ≤ 5. maxSteps=2 is linear in the number of reciprocal pairs.
//
// Bound semantics:
//
//	effective bound = |maxSteps|; bounds below 2 yield an empty CandidateSet.
//	maxSteps=2 restricts to reciprocal pairs A→B, B→A.
//
// Complexity:
//
//   - Time:   O(V·(V+E) + C·L) for the prune tables plus the search, where C is
//     the number of emitted cycles and L the bound, in the favourable case;
//     exponential in L in the worst case (see Blow-up).
//   - Memory: O(V + C·L).
//
// Errors:
//
//   - ErrNilGraph        graph pointer is nil
//   - ErrTooManyCycles   enumeration exceeded the configured cap
//   - context errors     enumeration cancelled through ctx
package cycles
