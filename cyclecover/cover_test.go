package cyclecover_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dutyswap/builder"
	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/cyclecover"
	"github.com/katalvlaran/dutyswap/cycles"
	"github.com/katalvlaran/dutyswap/packing"
	"github.com/katalvlaran/dutyswap/request"
	"github.com/katalvlaran/dutyswap/score"
)

func TestSolve_TriangleAndPair(t *testing.T) {
	g, err := core.NewRequestGraph([]request.SwapRequest{
		{ID: "id1", From: "A", To: "B", Weight: 1},
		{ID: "id2", From: "B", To: "C", Weight: 1},
		{ID: "id3", From: "C", To: "A", Weight: 1},
		{ID: "id4", From: "D", To: "E", Weight: 1},
		{ID: "id5", From: "E", To: "D", Weight: 1},
		{ID: "id6", From: "E", To: "F", Weight: 1},
	})
	require.NoError(t, err)

	cov, err := cyclecover.Solve(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 2, cov.Cycles.Len())
	assert.Equal(t, "A→B→C", cov.Cycles.Cycles[0].Signature())
	assert.Equal(t, "D→E", cov.Cycles.Cycles[1].Signature())
	assert.Equal(t, 3, cov.Longest)

	w := score.Scale(g)
	assert.Equal(t, 5*w+5, cov.Objective)
}

func TestSolve_LongRingBeatsPairs(t *testing.T) {
	reqs, err := builder.BuildPool(nil, builder.Ring(7), builder.Path(3))
	require.NoError(t, err)
	g, err := core.NewRequestGraph(reqs)
	require.NoError(t, err)

	cov, err := cyclecover.Solve(context.Background(), g)
	require.NoError(t, err)
	require.Equal(t, 1, cov.Cycles.Len())
	assert.Equal(t, 7, cov.Longest)
}

func TestSolve_NoCycle(t *testing.T) {
	reqs, err := builder.BuildPool(nil, builder.Path(5))
	require.NoError(t, err)
	g, err := core.NewRequestGraph(reqs)
	require.NoError(t, err)

	cov, err := cyclecover.Solve(context.Background(), g)
	require.NoError(t, err)
	assert.Zero(t, cov.Cycles.Len())
	assert.Zero(t, cov.Objective)
	assert.Zero(t, cov.Longest)
}

// The unbounded cover must reach the same objective as exact packing over
// every simple cycle.
func TestSolve_MatchesFullEnumeration(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		reqs, err := builder.BuildPool(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithWeightFn(builder.UniformWeightFn(0, 9))},
			builder.RandomSparse(7, 0.3),
		)
		require.NoError(t, err)
		if len(reqs) == 0 {
			continue
		}
		g, err := core.NewRequestGraph(reqs)
		require.NoError(t, err)

		cs, err := cycles.Enumerate(context.Background(), g, g.VertexCount())
		require.NoError(t, err)
		scores, err := score.Scores(g, cs)
		require.NoError(t, err)
		sel, err := packing.NewBranchAndBound().Solve(context.Background(),
			packing.Problem{Sets: cs.Sets(), Scores: scores, Universe: cs.Universe})
		require.NoError(t, err)

		cov, err := cyclecover.Solve(context.Background(), g)
		require.NoError(t, err)
		assert.Equal(t, sel.Objective, cov.Objective, "seed %d", seed)

		used := make(map[string]bool)
		for _, c := range cov.Cycles.Cycles {
			for _, p := range c.Pairs() {
				assert.True(t, g.HasEdge(p.From, p.To))
			}
			for _, v := range c.Vertices {
				assert.False(t, used[v], "participant %s reused", v)
				used[v] = true
			}
		}
	}
}

func TestSolve_Errors(t *testing.T) {
	_, err := cyclecover.Solve(context.Background(), nil)
	assert.True(t, errors.Is(err, cyclecover.ErrNilGraph))

	reqs, err := builder.BuildPool(nil, builder.Ring(4))
	require.NoError(t, err)
	g, err := core.NewRequestGraph(reqs)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = cyclecover.Solve(ctx, g)
	assert.True(t, errors.Is(err, context.Canceled))
}
