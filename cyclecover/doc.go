// Package cyclecover finds exchange chains of unbounded length.
//
// Every participant either hands its duty to one successor and receives one
// from a predecessor, or stays unserved. That is an assignment of givers to
// takers in which "unserved" is the participant assigned to itself:
//
//	cost(i, j) = C − (W + w(i→j))   for each request edge i→j
//	cost(i, i) = C                  (unserved)
//
// with W = Σ weights + 1 and C the largest W + w, so all costs are
// non-negative. A minimum-cost assignment is a permutation whose non-trivial
// cycles are vertex-disjoint exchange chains that serve the most participants
// and, among those, carry the most weight.
//
// The assignment is solved exactly by successive shortest augmenting paths:
// one row at a time, a Dijkstra search over reduced costs with a lazy
// min-heap, followed by a potential update. Only request edges and self
// arcs are stored, so memory is O(V + E).
//
// Complexity: O(V · (V + E) · log V).
package cyclecover
