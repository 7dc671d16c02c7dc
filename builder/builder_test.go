// Package builder_test contains functional tests for the pool constructors,
// verifying request counts, naming, ID assignment and determinism.
package builder_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dutyswap/builder"
	"github.com/katalvlaran/dutyswap/request"
)

// pairsOf projects requests to their (from,to) endpoints.
func pairsOf(reqs []request.SwapRequest) []request.Pair {
	out := make([]request.Pair, len(reqs))
	for i, r := range reqs {
		out[i] = r.Pair()
	}
	return out
}

func TestBuilders_Shapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		want  []request.Pair
		count int
	}{
		{
			name: "Ring(3)",
			ctor: builder.Ring(3),
			want: []request.Pair{{From: "P0", To: "P1"}, {From: "P1", To: "P2"}, {From: "P2", To: "P0"}},
		},
		{
			name: "Path(3)",
			ctor: builder.Path(3),
			want: []request.Pair{{From: "P0", To: "P1"}, {From: "P1", To: "P2"}},
		},
		{
			name: "Reciprocal(5)",
			ctor: builder.Reciprocal(5),
			want: []request.Pair{
				{From: "P0", To: "P1"}, {From: "P1", To: "P0"},
				{From: "P2", To: "P3"}, {From: "P3", To: "P2"},
			},
		},
		{name: "Complete(4)", ctor: builder.Complete(4), count: 12},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			reqs, err := builder.BuildPool(nil, tc.ctor)
			require.NoError(t, err)
			require.NoError(t, request.Validate(reqs))
			if tc.want != nil {
				assert.Equal(t, tc.want, pairsOf(reqs))
			} else {
				assert.Len(t, reqs, tc.count)
			}
			for _, r := range reqs {
				assert.Equal(t, builder.DefaultWeight, r.Weight)
			}
		})
	}
}

func TestBuildPool_IDsSpanConstructors(t *testing.T) {
	reqs, err := builder.BuildPool(
		[]builder.BuilderOption{builder.WithRequestPrefix("r"), builder.WithIDScheme(builder.RosterIDFn)},
		builder.Reciprocal(2),
		builder.Ring(3),
	)
	require.NoError(t, err)
	require.Len(t, reqs, 5)

	ids := make([]string, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID
	}
	assert.Equal(t, []string{"r1", "r2", "r3", "r4", "r5"}, ids)
	assert.Equal(t, request.Pair{From: "Adam", To: "Beth"}, reqs[0].Pair())
	assert.Equal(t, request.Pair{From: "Cleo", To: "Adam"}, reqs[4].Pair())
}

func TestBuildPool_Errors(t *testing.T) {
	_, err := builder.BuildPool(nil, nil)
	assert.True(t, errors.Is(err, builder.ErrConstructFailed))

	_, err = builder.BuildPool(nil, builder.Ring(1))
	assert.True(t, errors.Is(err, builder.ErrTooFewVertices))

	_, err = builder.BuildPool(nil, builder.RandomSparse(4, 0.5))
	assert.True(t, errors.Is(err, builder.ErrNeedRandSource))

	_, err = builder.BuildPool([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomSparse(4, 1.5))
	assert.True(t, errors.Is(err, builder.ErrInvalidProbability))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.Percent())}
	}
	a, err := builder.BuildPool(opts(), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildPool(opts(), builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	require.NoError(t, request.Validate(a))
	for _, r := range a {
		assert.GreaterOrEqual(t, r.Weight, int64(0))
		assert.LessOrEqual(t, r.Weight, int64(100))
	}
}

func TestRandomSparse_Extremes(t *testing.T) {
	none, err := builder.BuildPool([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(5, 0))
	require.NoError(t, err)
	assert.Empty(t, none)

	all, err := builder.BuildPool([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(5, 1))
	require.NoError(t, err)
	assert.Len(t, all, 20)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithRequestPrefix("") })
	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.PaddedIDFn(0) })
}

func TestIDFns(t *testing.T) {
	assert.Equal(t, "P12", builder.DefaultIDFn(12))
	assert.Equal(t, "P007", builder.PaddedIDFn(3)(7))
	assert.Equal(t, "Adam", builder.RosterIDFn(0))
	assert.Equal(t, "P10", builder.RosterIDFn(10))
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 9)(nil))
}
