// Package pairing matches participants in one-on-one swaps only.
//
// A reciprocal pair {a, b} exists when the pool holds at least one request
// a→b and at least one request b→a. Two strategies are provided:
//
//	Greedy   – walks pairs in discovery order (the order in which the second
//	           direction of each pair appears in the input) and keeps every
//	           pair whose participants are still free. The result is maximal
//	           but not necessarily maximum. O(E).
//	Weighted – exact maximum-weight set of disjoint pairs, where a pair weighs
//	           the mean of its two inbound representative weights. Solved by
//	           the packing solver over pair candidates.
//
// Both return chains of two links, starting at the smaller participant.
package pairing
