package swap_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dutyswap/builder"
	"github.com/katalvlaran/dutyswap/packing"
	"github.com/katalvlaran/dutyswap/request"
	"github.com/katalvlaran/dutyswap/swap"
)

// randomPools returns reproducible pools of 6..12 participants.
func randomPools(t *testing.T) [][]request.SwapRequest {
	t.Helper()
	var pools [][]request.SwapRequest
	for seed := int64(1); seed <= 12; seed++ {
		n := 6 + int(seed%7)
		reqs, err := builder.BuildPool(
			[]builder.BuilderOption{
				builder.WithSeed(seed),
				builder.WithWeightFn(builder.Percent()),
				builder.WithIDScheme(builder.RosterIDFn),
			},
			builder.RandomSparse(n, 0.25),
		)
		require.NoError(t, err)
		if len(reqs) > 0 {
			pools = append(pools, reqs)
		}
	}
	require.NotEmpty(t, pools)
	return pools
}

// assertValid checks disjointness, chain validity and the swap count.
func assertValid(t *testing.T, reqs []request.SwapRequest, res swap.Result) {
	t.Helper()
	byID := make(map[string]request.SwapRequest, len(reqs))
	for _, r := range reqs {
		byID[r.ID] = r
	}
	var (
		seen  = make(map[string]bool)
		count int
	)
	for _, chain := range res.Result {
		require.GreaterOrEqual(t, len(chain), 2)
		for i, l := range chain {
			r, ok := byID[l.ID]
			require.True(t, ok, "unknown id %s", l.ID)
			assert.Equal(t, r.From, l.From)
			assert.Equal(t, r.To, l.To)
			assert.Equal(t, chain[(i+1)%len(chain)].From, l.To, "chain does not close")
			assert.False(t, seen[l.From], "participant %s in two chains", l.From)
			seen[l.From] = true
		}
		count += len(chain)
	}
	assert.Equal(t, count, res.SwapCount)
}

func TestProperties_ValidAndDisjoint(t *testing.T) {
	for _, reqs := range randomPools(t) {
		for _, name := range swap.Names() {
			for steps := 2; steps <= 4; steps++ {
				res, err := swap.Optimize(context.Background(), reqs, steps, swap.WithStrategy(name))
				require.NoError(t, err, name)
				assertValid(t, reqs, res)
				if name == swap.StrategyVariable {
					for _, chain := range res.Result {
						assert.LessOrEqual(t, len(chain), steps)
					}
				}
			}
		}
	}
}

func TestProperties_Idempotent(t *testing.T) {
	for _, reqs := range randomPools(t) {
		a, err := swap.Optimize(context.Background(), reqs, 4)
		require.NoError(t, err)
		b, err := swap.Optimize(context.Background(), reqs, 4)
		require.NoError(t, err)
		assert.Equal(t, a.Result, b.Result)
		assert.Equal(t, a.SwapCount, b.SwapCount)
		assert.Equal(t, a.TotalWeight, b.TotalWeight)
	}
}

func TestProperties_MonotoneInMaxSteps(t *testing.T) {
	for _, reqs := range randomPools(t) {
		prev := -1
		for steps := 2; steps <= 6; steps++ {
			res, err := swap.Optimize(context.Background(), reqs, steps)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, res.SwapCount, prev, "maxSteps=%d", steps)
			prev = res.SwapCount
		}

		unl, err := swap.Optimize(context.Background(), reqs, 0, swap.WithStrategy(swap.StrategyUnlimited))
		require.NoError(t, err)
		assert.GreaterOrEqual(t, unl.SwapCount, prev)
	}
}

func TestProperties_SolversAgree(t *testing.T) {
	for _, reqs := range randomPools(t) {
		lp, err := swap.Optimize(context.Background(), reqs, 3)
		require.NoError(t, err)
		share, err := swap.Optimize(context.Background(), reqs, 3,
			swap.WithSolver(packing.NewBranchAndBound(packing.WithBound(packing.BoundShare))))
		require.NoError(t, err)
		assert.Equal(t, lp.Result, share.Result)
		assert.Equal(t, lp.TotalWeight, share.TotalWeight)
	}
}
