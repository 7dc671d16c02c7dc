// Package core builds the directed request graph that every matching
// strategy starts from.
//
// The Graph G = (V,E) is derived from a flat list of swap requests:
//
//   - V: every participant named as From or To of some request.
//   - E: one structural edge per distinct (from,to) pair. Parallel requests
//     between the same pair collapse onto that edge; all of them remain
//     resolvable through Edge.Requests (input order), so no information is lost.
//
// Each edge carries a Representative request, the one whose ID and Weight the
// scorer and the result assembler use. The policy is configurable:
//
//	– WithRepresentative(FirstInInput)   (default) first request in input order.
//	– WithRepresentative(HeaviestWeight) highest weight, ties by input order.
//
// Vertices are indexed 0..V-1 in ascending lexicographic order of their IDs.
// Hot-path accessors (Successors/Predecessors by index) expose sorted index
// slices, so algorithms built on top iterate deterministically.
//
// The Graph is immutable once NewRequestGraph returns; it holds no locks and
// is safe for concurrent readers.
//
// Core Methods:
//
//	NewRequestGraph(reqs, opts...) (*Graph, error) // O(n log n)
//	Vertices() []string                            // O(V), sorted
//	Index(id) (int, bool)                          // O(1)
//	Vertex(i) string                               // O(1)
//	Successors(i) / Predecessors(i) []int          // O(1), sorted, read-only
//	HasEdge(from,to) bool                          // O(1)
//	Edge(from,to) (*Edge, error)                   // O(1)
//	Edges() []*Edge                                // O(E log E), sorted by (From,To)
//	Requests() []request.SwapRequest               // O(n), input order
//	TotalWeight() int64                            // O(1)
//
// Errors:
//
//	ErrNilGraph        – method called on a nil *Graph where it matters.
//	ErrVertexNotFound  – unknown participant.
//	ErrEdgeNotFound    – no request from→to.
//	request.Err*       – validation failures from request.Validate.
package core
