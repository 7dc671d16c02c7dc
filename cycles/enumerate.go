// File: enumerate.go
// Role: bounded simple-cycle enumeration.
//
// Enumerate walks each root s in ascending vertex order and runs a depth-first
// search restricted to vertices ordered after s. Whenever the current path
// (s … u) sees an edge u→s, the path is a simple cycle rooted at its smallest
// participant and is emitted. Each simple cycle has exactly one smallest
// participant, so it is emitted exactly once.
//
// Pruning: a path of L vertices ending at v can only close into a cycle of
// L + dist(v→s) − 1 participants, so branches with L + dist > bound are cut.

package cycles

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/core"
)

// enumEngine holds the search state for one Enumerate call.
type enumEngine struct {
	ctx   context.Context
	g     *core.Graph
	bound int
	limit int

	root   int
	dist   []int
	queue  []int
	onPath []bool
	path   []int

	steps int
	out   []Cycle
	err   error
}

// Enumerate returns every simple directed cycle of g with 2 ≤ length ≤ |maxSteps|.
//
// Contract:
//   - g must be non-nil (ErrNilGraph).
//   - |maxSteps| < 2 yields an empty CandidateSet, not an error.
//   - Result is sorted by canonical vertex-index sequence (stable across runs).
//   - More than Options.MaxCycles cycles → ErrTooManyCycles; nothing partial is returned.
//   - ctx cancellation → ctx.Err() wrapped.
func Enumerate(ctx context.Context, g *core.Graph, maxSteps int, opts ...Option) (CandidateSet, error) {
	if g == nil {
		return CandidateSet{}, ErrNilGraph
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	bound := EffectiveBound(maxSteps)
	n := g.VertexCount()
	cs := CandidateSet{Bound: bound, Universe: n}
	if bound < minCycleLen || n < minCycleLen {
		return cs, nil
	}
	if bound > n {
		bound = n // a simple cycle cannot be longer than |V|
	}

	e := &enumEngine{
		ctx:    ctx,
		g:      g,
		bound:  bound,
		limit:  o.MaxCycles,
		dist:   make([]int, n),
		onPath: make([]bool, n),
		path:   make([]int, 0, bound),
	}

	var s int
	for s = 0; s < n-1; s++ {
		// A root with no predecessor after it cannot close any cycle.
		if !hasLaterPredecessor(g, s) {
			continue
		}
		e.root = s
		e.queue = returnDistances(g, s, bound-1, e.dist, e.queue)
		e.path = append(e.path[:0], s)
		e.onPath[s] = true
		e.visit(s)
		e.onPath[s] = false
		if e.err != nil {
			return CandidateSet{}, e.err
		}
	}

	sort.SliceStable(e.out, func(i, j int) bool {
		return Compare(e.out[i].Index, e.out[j].Index) < 0
	})
	cs.Cycles = e.out

	return cs, nil
}

// hasLaterPredecessor reports whether some vertex ordered after s points to s.
func hasLaterPredecessor(g *core.Graph, s int) bool {
	pred := g.Predecessors(s)

	return len(pred) > 0 && pred[len(pred)-1] > s
}

// visit extends the current path from u. It stops early once e.err is set.
func (e *enumEngine) visit(u int) {
	e.steps++
	if e.steps&ctxCheckMask == 0 {
		if err := e.ctx.Err(); err != nil {
			e.err = errors.Wrap(err, "cycles: enumeration cancelled")
			return
		}
	}

	var (
		v int
		L = len(e.path)
	)
	for _, v = range e.g.Successors(u) {
		if v == e.root {
			if L >= minCycleLen {
				e.emit()
				if e.err != nil {
					return
				}
			}
			continue
		}
		if v < e.root || e.onPath[v] || L >= e.bound {
			continue
		}
		if d := e.dist[v]; d == unreachable || L+d > e.bound {
			continue
		}

		e.onPath[v] = true
		e.path = append(e.path, v)
		e.visit(v)
		e.path = e.path[:len(e.path)-1]
		e.onPath[v] = false
		if e.err != nil {
			return
		}
	}
}

// emit records the current path as a cycle, enforcing the cap.
func (e *enumEngine) emit() {
	if len(e.out) >= e.limit {
		e.err = errors.Wrapf(ErrTooManyCycles, "more than %d cycles with bound %d", e.limit, e.bound)
		return
	}
	idx := append([]int(nil), e.path...)
	vs := make([]string, len(idx))
	for i, v := range idx {
		vs[i] = e.g.Vertex(v)
	}
	e.out = append(e.out, Cycle{Vertices: vs, Index: idx})
}
