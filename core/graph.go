// File: graph.go
// Role: Request Graph Builder and read-only queries.
// Determinism:
//   - Vertices() sorted lex asc; vertex index == position in Vertices().
//   - Successors/Predecessors index slices sorted asc.
//   - Edges() sorted by (From, To).
// Concurrency:
//   - Immutable after construction; no locks needed for readers.

package core

import (
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/request"
)

// NewRequestGraph turns a flat request list into the directed request graph.
//
// Steps:
//  1. Validate reqs (request.Validate) unless WithoutValidation is set.
//  2. Collect participants, sort them, assign indices.
//  3. Group requests by (from,to) preserving input order; pick representatives.
//  4. Build sorted successor/predecessor index lists.
//
// Complexity: O(n + V log V + E log E).
func NewRequestGraph(reqs []request.SwapRequest, opts ...GraphOption) (*Graph, error) {
	cfg := graphConfig{policy: FirstInInput, validate: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Validation
	if cfg.validate {
		if err := request.Validate(reqs); err != nil {
			return nil, err
		}
	}

	g := &Graph{
		policy: cfg.policy,
		index:  make(map[string]int),
		edges:  make(map[request.Pair]*Edge),
		reqs:   append([]request.SwapRequest(nil), reqs...),
	}

	// 2) Participants in sorted order
	var r request.SwapRequest
	for _, r = range g.reqs {
		g.index[r.From] = 0
		g.index[r.To] = 0
	}
	g.vertices = make([]string, 0, len(g.index))
	for id := range g.index {
		g.vertices = append(g.vertices, id)
	}
	sort.Strings(g.vertices)
	for i, id := range g.vertices {
		g.index[id] = i
	}

	// 3) Collapse parallel requests
	g.succ = make([][]int, len(g.vertices))
	g.pred = make([][]int, len(g.vertices))
	for _, r = range g.reqs {
		g.total += r.Weight
		key := r.Pair()
		e, ok := g.edges[key]
		if !ok {
			e = &Edge{From: r.From, To: r.To, Representative: r}
			g.edges[key] = e
			u, v := g.index[r.From], g.index[r.To]
			g.succ[u] = append(g.succ[u], v)
			g.pred[v] = append(g.pred[v], u)
		} else if g.policy == HeaviestWeight && r.Weight > e.Representative.Weight {
			e.Representative = r
		}
		e.Requests = append(e.Requests, r)
	}

	// 4) Sorted adjacency for deterministic traversal
	for i := range g.vertices {
		sort.Ints(g.succ[i])
		sort.Ints(g.pred[i])
	}

	return g, nil
}

// Policy reports the representative policy the graph was built with.
func (g *Graph) Policy() RepresentativePolicy { return g.policy }

// Vertices returns a copy of all participant IDs in ascending order.
func (g *Graph) Vertices() []string {
	if g == nil {
		return nil
	}

	return append([]string(nil), g.vertices...)
}

// VertexCount returns |V|.
func (g *Graph) VertexCount() int {
	if g == nil {
		return 0
	}

	return len(g.vertices)
}

// EdgeCount returns the number of structural (collapsed) edges.
func (g *Graph) EdgeCount() int {
	if g == nil {
		return 0
	}

	return len(g.edges)
}

// Index returns the vertex index of participant id.
func (g *Graph) Index(id string) (int, bool) {
	if g == nil {
		return 0, false
	}
	i, ok := g.index[id]

	return i, ok
}

// Vertex returns the participant ID at index i. It panics on an out-of-range
// index, like a slice access.
func (g *Graph) Vertex(i int) string { return g.vertices[i] }

// Successors returns the sorted successor indices of vertex i.
//
// AI-HINT: returned slice is shared with the graph; treat as read-only.
func (g *Graph) Successors(i int) []int { return g.succ[i] }

// Predecessors returns the sorted predecessor indices of vertex i.
//
// AI-HINT: returned slice is shared with the graph; treat as read-only.
func (g *Graph) Predecessors(i int) []int { return g.pred[i] }

// SuccessorIDs returns participant IDs reachable by one request from id, sorted.
func (g *Graph) SuccessorIDs(id string) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	u, ok := g.index[id]
	if !ok {
		return nil, errors.Wrapf(ErrVertexNotFound, "%q", id)
	}
	out := make([]string, len(g.succ[u]))
	for k, v := range g.succ[u] {
		out[k] = g.vertices[v]
	}

	return out, nil
}

// HasEdge reports whether at least one request from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	if g == nil {
		return false
	}
	_, ok := g.edges[request.Pair{From: from, To: to}]

	return ok
}

// Edge returns the structural edge from→to.
func (g *Graph) Edge(from, to string) (*Edge, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	e, ok := g.edges[request.Pair{From: from, To: to}]
	if !ok {
		return nil, errors.Wrapf(ErrEdgeNotFound, "%s→%s", from, to)
	}

	return e, nil
}

// EdgeAt returns the structural edge between vertex indices u→v, or nil.
func (g *Graph) EdgeAt(u, v int) *Edge {
	return g.edges[request.Pair{From: g.vertices[u], To: g.vertices[v]}]
}

// Edges returns all structural edges sorted by (From, To).
func (g *Graph) Edges() []*Edge {
	if g == nil {
		return nil
	}
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// Requests returns a copy of the original request list in input order.
func (g *Graph) Requests() []request.SwapRequest {
	if g == nil {
		return nil
	}

	return append([]request.SwapRequest(nil), g.reqs...)
}

// TotalWeight returns Σ Weight over all original requests, parallel ones included.
func (g *Graph) TotalWeight() int64 {
	if g == nil {
		return 0
	}

	return g.total
}
