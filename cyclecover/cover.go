package cyclecover

import (
	"container/heap"
	"context"
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/cycles"
	"github.com/katalvlaran/dutyswap/score"
)

// ctxCheckMask sets how often Cover polls ctx (every 64 rows).
const ctxCheckMask = 63

// Cover is the outcome of one cycle-cover solve.
type Cover struct {
	// Cycles are the non-trivial cycles of the optimal assignment, canonical
	// and sorted by vertex-index sequence.
	Cycles cycles.CandidateSet

	// Objective is Σ (W·len + weight) over Cycles, comparable with the
	// bounded-cycle objective.
	Objective int64

	// Longest is the participant count of the longest chain (0 if none).
	Longest int
}

// assignment holds the successive-shortest-path state.
type assignment struct {
	n    int
	arcs [][]arc

	u, v     []int64 // row / column potentials
	rowMatch []int
	colMatch []int

	dist    []int64
	settled []bool
	predRow []int
	touched []int
	order   []int // columns in settle order for the current search
	pq      columnPQ
}

// Solve returns the maximum-score set of vertex-disjoint chains of any length.
//
// Contract:
//   - g must be non-nil (ErrNilGraph).
//   - Deterministic: arcs are scanned in column order and heap ties break by column.
//   - ctx cancellation → ctx.Err() wrapped.
func Solve(ctx context.Context, g *core.Graph) (Cover, error) {
	if g == nil {
		return Cover{}, ErrNilGraph
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		n  = g.VertexCount()
		w  = score.Scale(g)
		as = newAssignment(g, w)
		i  int
	)
	for i = 0; i < n; i++ {
		if i&ctxCheckMask == 0 {
			if err := ctx.Err(); err != nil {
				return Cover{}, errors.Wrap(err, "cyclecover: solve cancelled")
			}
		}
		if err := as.augment(i); err != nil {
			return Cover{}, errors.Wrapf(err, "row %d", i)
		}
	}

	out := Cover{Cycles: cycles.CandidateSet{Bound: n, Universe: n}}
	visited := make([]bool, n)
	for i = 0; i < n; i++ {
		if visited[i] || as.rowMatch[i] == i {
			continue
		}
		var idx []int
		for j := i; !visited[j]; j = as.rowMatch[j] {
			visited[j] = true
			idx = append(idx, j)
		}
		c := cycles.FromIndices(g, idx)
		s, err := score.Cycle(g, c, w)
		if err != nil {
			return Cover{}, errors.AssertionFailedf("cyclecover: %v", err)
		}
		out.Cycles.Cycles = append(out.Cycles.Cycles, c)
		out.Objective += s
		if c.Len() > out.Longest {
			out.Longest = c.Len()
		}
	}
	sort.SliceStable(out.Cycles.Cycles, func(a, b int) bool {
		return cycles.Compare(out.Cycles.Cycles[a].Index, out.Cycles.Cycles[b].Index) < 0
	})

	return out, nil
}

// newAssignment builds the sparse cost rows: every request edge plus the self
// arc, sorted by column.
func newAssignment(g *core.Graph, w int64) *assignment {
	var (
		n      = g.VertexCount()
		maxW   int64
		e      *core.Edge
		i, col int
	)
	for _, e = range g.Edges() {
		if e.Weight() > maxW {
			maxW = e.Weight()
		}
	}
	top := w + maxW

	as := &assignment{
		n:        n,
		arcs:     make([][]arc, n),
		u:        make([]int64, n),
		v:        make([]int64, n),
		rowMatch: make([]int, n),
		colMatch: make([]int, n),
		dist:     make([]int64, n),
		settled:  make([]bool, n),
		predRow:  make([]int, n),
	}
	for i = 0; i < n; i++ {
		as.rowMatch[i] = unassigned
		as.colMatch[i] = unassigned
		as.dist[i] = math.MaxInt64

		succ := g.Successors(i)
		row := make([]arc, 0, len(succ)+1)
		self := false
		for _, col = range succ {
			if !self && col > i {
				row = append(row, arc{to: i, cost: top})
				self = true
			}
			e = g.EdgeAt(i, col)
			row = append(row, arc{to: col, cost: top - (w + e.Weight())})
		}
		if !self {
			row = append(row, arc{to: i, cost: top})
		}
		as.arcs[i] = row
	}

	return as
}

// relax scans the arcs of row r reached at distance base.
func (as *assignment) relax(r int, base int64) {
	var nd int64
	for _, a := range as.arcs[r] {
		if as.settled[a.to] {
			continue
		}
		nd = base + a.cost - as.u[r] - as.v[a.to]
		if nd < as.dist[a.to] {
			if as.dist[a.to] == math.MaxInt64 {
				as.touched = append(as.touched, a.to)
			}
			as.dist[a.to] = nd
			as.predRow[a.to] = r
			heap.Push(&as.pq, columnItem{col: a.to, dist: nd})
		}
	}
}

// augment assigns row i by a shortest augmenting path over reduced costs,
// then updates potentials so every reduced cost stays non-negative and every
// matched arc has reduced cost zero.
func (as *assignment) augment(i int) error {
	as.pq = as.pq[:0]
	as.order = as.order[:0]
	as.relax(i, 0)

	var (
		t    = unassigned
		item columnItem
	)
	for as.pq.Len() > 0 {
		item = heap.Pop(&as.pq).(columnItem)
		if as.settled[item.col] || item.dist != as.dist[item.col] {
			continue // stale entry
		}
		as.settled[item.col] = true
		as.order = append(as.order, item.col)
		if as.colMatch[item.col] == unassigned {
			t = item.col
			break
		}
		as.relax(as.colMatch[item.col], item.dist)
	}
	if t == unassigned {
		as.reset()
		return ErrNoAugmentingPath
	}

	// Potentials.
	var (
		d     = as.dist[t]
		delta int64
	)
	as.u[i] += d
	for _, j := range as.order {
		delta = d - as.dist[j]
		as.v[j] -= delta
		if j != t {
			as.u[as.colMatch[j]] += delta
		}
	}

	// Flip the alternating path.
	var r, next int
	for j := t; ; j = next {
		r = as.predRow[j]
		next = as.rowMatch[r]
		as.rowMatch[r] = j
		as.colMatch[j] = r
		if r == i {
			break
		}
	}
	as.reset()

	return nil
}

// reset clears the per-search scratch touched by the last augment.
func (as *assignment) reset() {
	for _, j := range as.touched {
		as.dist[j] = math.MaxInt64
		as.settled[j] = false
	}
	as.touched = as.touched[:0]
}
