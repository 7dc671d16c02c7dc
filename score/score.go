package score

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/cycles"
	"github.com/katalvlaran/dutyswap/request"
)

var (
	// ErrNilGraph is returned when Scores receives a nil graph.
	ErrNilGraph = errors.New("score: graph is nil")

	// ErrMissingEdge indicates a cycle walks an edge absent from the graph.
	ErrMissingEdge = errors.New("score: cycle uses a missing edge")

	// ErrOverflow indicates the objective would not fit in int64.
	ErrOverflow = errors.New("score: objective overflows int64")
)

// Scale returns W = Σ weights + 1 for g.
func Scale(g *core.Graph) int64 {
	return g.TotalWeight() + 1
}

// WeightSum returns the sum of representative weights of the edges walked by c.
func WeightSum(g *core.Graph, c cycles.Cycle) (int64, error) {
	var (
		sum int64
		k   = len(c.Index)
		e   *core.Edge
	)
	for i := 0; i < k; i++ {
		e = g.EdgeAt(c.Index[i], c.Index[(i+1)%k])
		if e == nil {
			return 0, errors.Wrapf(ErrMissingEdge, "%s→%s",
				c.Vertices[i], c.Vertices[(i+1)%k])
		}
		sum += e.Weight()
	}

	return sum, nil
}

// Cycle returns W·len(c) + WeightSum(c).
func Cycle(g *core.Graph, c cycles.Cycle, w int64) (int64, error) {
	ws, err := WeightSum(g, c)
	if err != nil {
		return 0, err
	}

	return w*int64(c.Len()) + ws, nil
}

// Scores computes one score per candidate, aligned with cs.Cycles.
//
// Complexity: O(Σ len(c)).
func Scores(g *core.Graph, cs cycles.CandidateSet) ([]int64, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	total := g.TotalWeight()
	if total > request.MaxTotalWeight {
		return nil, errors.Wrapf(ErrOverflow, "total weight %d", total)
	}
	w := total + 1

	out := make([]int64, len(cs.Cycles))
	for i, c := range cs.Cycles {
		s, err := Cycle(g, c, w)
		if err != nil {
			return nil, errors.Wrapf(err, "candidate %d", i)
		}
		out[i] = s
	}

	return out, nil
}

// Split decomposes a summed objective back into (participants, weight).
// It inverts Σ score(c) = W·Σk + Σweight because Σweight < W.
func Split(total, w int64) (participants int, weight int64) {
	if w <= 0 {
		return 0, 0
	}

	return int(total / w), total % w
}
