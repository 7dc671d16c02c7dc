package pairing

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/assemble"
	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/cycles"
	"github.com/katalvlaran/dutyswap/packing"
	"github.com/katalvlaran/dutyswap/request"
)

// ErrNilGraph is returned when a nil graph is passed to a pairing strategy.
var ErrNilGraph = errors.New("pairing: graph is nil")

// Pairs returns every reciprocal pair of g in discovery order: a pair is
// discovered at the first request whose reverse direction was seen earlier.
// Each returned cycle is canonical (smaller participant first).
//
// Complexity: O(R) over the requests of g.
func Pairs(g *core.Graph) []cycles.Cycle {
	var (
		seen  = make(map[request.Pair]struct{})
		taken = make(map[request.Pair]struct{})
		out   []cycles.Cycle
	)
	for _, r := range g.Requests() {
		p := r.Pair()
		seen[p] = struct{}{}
		if _, ok := seen[p.Reverse()]; !ok {
			continue
		}
		key := p
		if key.To < key.From {
			key = key.Reverse()
		}
		if _, dup := taken[key]; dup {
			continue
		}
		taken[key] = struct{}{}

		a, _ := g.Index(key.From)
		b, _ := g.Index(key.To)
		out = append(out, cycles.FromIndices(g, []int{a, b}))
	}

	return out
}

// Greedy keeps every discovered pair whose participants are both still free.
func Greedy(g *core.Graph) ([]assemble.Chain, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	var (
		busy = make([]bool, g.VertexCount())
		out  []assemble.Chain
	)
	for _, c := range Pairs(g) {
		a, b := c.Index[0], c.Index[1]
		if busy[a] || busy[b] {
			continue
		}
		busy[a], busy[b] = true, true
		ch, err := assemble.FromCycle(g, c)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}

	return out, nil
}

// Weighted selects the maximum-weight set of disjoint pairs with solver.
// A pair scores w(a→b) + w(b→a), twice its mean weight, which ranks
// selections identically. Pairs are offered to the solver in canonical order.
func Weighted(ctx context.Context, g *core.Graph, solver packing.Solver) ([]assemble.Chain, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if solver == nil {
		solver = packing.NewBranchAndBound()
	}

	pairs := Pairs(g)
	cs := cycles.CandidateSet{Bound: 2, Universe: g.VertexCount(), Cycles: pairs}
	sortCanonical(cs.Cycles)

	prob := packing.Problem{
		Sets:     cs.Sets(),
		Scores:   make([]int64, cs.Len()),
		Universe: cs.Universe,
	}
	for i, c := range cs.Cycles {
		fwd := g.EdgeAt(c.Index[0], c.Index[1])
		back := g.EdgeAt(c.Index[1], c.Index[0])
		prob.Scores[i] = fwd.Weight() + back.Weight()
	}

	sel, err := solver.Solve(ctx, prob)
	if err != nil {
		return nil, err
	}
	chains, _, err := assemble.Chains(g, cs, sel)

	return chains, err
}
