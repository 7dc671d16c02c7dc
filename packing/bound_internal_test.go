package packing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineFor(p Problem) *bbEngine {
	sp := extract(p, allIndices(p.Len()))
	return &bbEngine{
		ctx:       context.Background(),
		bound:     BoundLP,
		lpMaxCols: 64,
		sets:      sp.sets,
		scores:    sp.scores,
		used:      make([]bool, sp.nv),
		chosen:    make([]bool, len(sp.sets)),
		bestSet:   make([]bool, len(sp.sets)),
		share:     make([]float64, sp.nv),
		rowOf:     make([]int, sp.nv),
	}
}

func allIndices(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestBounds_LPTighterThanShare(t *testing.T) {
	e := engineFor(Problem{Sets: [][]int{{0, 1}, {1, 2}}, Scores: []int64{2, 2}, Universe: 3})
	open := e.openCandidates(0, nil)
	require.Equal(t, []int{0, 1}, open)

	assert.InDelta(t, 3.0, e.shareBound(open), 1e-9)
	lpv, ok := e.lpBound(open)
	require.True(t, ok)
	assert.InDelta(t, 2.0, lpv, 1e-6)
}

func TestBounds_FractionalTriangle(t *testing.T) {
	e := engineFor(Problem{Sets: [][]int{{0, 1}, {1, 2}, {0, 2}}, Scores: []int64{1, 1, 1}, Universe: 3})
	open := e.openCandidates(0, nil)
	lpv, ok := e.lpBound(open)
	require.True(t, ok)
	assert.InDelta(t, 1.5, lpv, 1e-6)
	assert.Equal(t, int64(1), floorBound(lpv))
}

func TestBounds_RespectsOccupiedVertices(t *testing.T) {
	e := engineFor(Problem{Sets: [][]int{{0, 1}, {1, 2}, {3, 4}}, Scores: []int64{5, 7, 9}, Universe: 5})
	e.occupy(0, true)
	open := e.openCandidates(1, nil)
	assert.Equal(t, []int{2}, open)
	assert.Equal(t, int64(9+5), e.upperBound(1, 5))
}

func TestBounds_LPSkippedAboveThreshold(t *testing.T) {
	e := engineFor(Problem{Sets: [][]int{{0, 1}, {1, 2}}, Scores: []int64{2, 2}, Universe: 3})
	e.lpMaxCols = 1
	_, ok := e.lpBound([]int{0, 1})
	assert.False(t, ok)
}

func TestComponents(t *testing.T) {
	p := Problem{
		Sets:     [][]int{{0, 1}, {5}, {1, 2}, {6, 7}, {7, 5}},
		Scores:   []int64{1, 1, 1, 1, 1},
		Universe: 8,
	}
	assert.Equal(t, [][]int{{0, 2}, {1, 3, 4}}, components(p))

	sp := extract(p, []int{1, 3, 4})
	assert.Equal(t, 3, sp.nv)
	assert.Equal(t, [][]int{{0}, {1, 2}, {2, 0}}, sp.sets)
}
