package core_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/request"
)

func sampleRequests() []request.SwapRequest {
	return []request.SwapRequest{
		{ID: "id1", From: "Bert", To: "Anna", Weight: 2},
		{ID: "id2", From: "Anna", To: "Bert", Weight: 5},
		{ID: "id3", From: "Coen", To: "Bert", Weight: 2},
		{ID: "id4", From: "Coen", To: "Bert", Weight: 9},
		{ID: "id5", From: "Bert", To: "Coen", Weight: 1},
	}
}

// TestNewRequestGraph_Structure checks sorted vertices, collapsed edges and adjacency.
func TestNewRequestGraph_Structure(t *testing.T) {
	g, err := core.NewRequestGraph(sampleRequests())
	require.NoError(t, err)

	assert.Equal(t, []string{"Anna", "Bert", "Coen"}, g.Vertices())
	assert.Equal(t, 3, g.VertexCount())
	assert.Equal(t, 4, g.EdgeCount()) // id3/id4 collapse
	assert.Equal(t, int64(19), g.TotalWeight())

	bert, ok := g.Index("Bert")
	require.True(t, ok)
	assert.Equal(t, 1, bert)
	assert.Equal(t, "Bert", g.Vertex(bert))
	assert.Equal(t, []int{0, 2}, g.Successors(bert))
	assert.Equal(t, []int{0, 2}, g.Predecessors(bert))

	ids, err := g.SuccessorIDs("Coen")
	require.NoError(t, err)
	assert.Equal(t, []string{"Bert"}, ids)

	assert.True(t, g.HasEdge("Anna", "Bert"))
	assert.False(t, g.HasEdge("Anna", "Coen"))
}

// TestNewRequestGraph_Representative covers both representative policies.
func TestNewRequestGraph_Representative(t *testing.T) {
	g, err := core.NewRequestGraph(sampleRequests())
	require.NoError(t, err)
	e, err := g.Edge("Coen", "Bert")
	require.NoError(t, err)
	assert.Equal(t, "id3", e.Representative.ID)
	assert.Equal(t, int64(2), e.Weight())
	require.Len(t, e.Requests, 2)
	assert.Equal(t, "id4", e.Requests[1].ID)

	g, err = core.NewRequestGraph(sampleRequests(), core.WithRepresentative(core.HeaviestWeight))
	require.NoError(t, err)
	e, err = g.Edge("Coen", "Bert")
	require.NoError(t, err)
	assert.Equal(t, "id4", e.Representative.ID)
	assert.Equal(t, core.HeaviestWeight, g.Policy())
}

// TestNewRequestGraph_HeaviestTieKeepsInputOrder ensures ties do not replace the first request.
func TestNewRequestGraph_HeaviestTieKeepsInputOrder(t *testing.T) {
	reqs := []request.SwapRequest{
		{ID: "a", From: "X", To: "Y", Weight: 3},
		{ID: "b", From: "X", To: "Y", Weight: 3},
	}
	g, err := core.NewRequestGraph(reqs, core.WithRepresentative(core.HeaviestWeight))
	require.NoError(t, err)
	e, err := g.Edge("X", "Y")
	require.NoError(t, err)
	assert.Equal(t, "a", e.Representative.ID)
}

func TestNewRequestGraph_Errors(t *testing.T) {
	_, err := core.NewRequestGraph(nil)
	assert.True(t, errors.Is(err, request.ErrEmptyRequests))

	_, err = core.NewRequestGraph([]request.SwapRequest{{ID: "x", From: "A", To: "A"}})
	assert.True(t, errors.Is(err, request.ErrSelfSwap))

	g, err := core.NewRequestGraph(sampleRequests())
	require.NoError(t, err)
	_, err = g.Edge("Anna", "Coen")
	assert.True(t, errors.Is(err, core.ErrEdgeNotFound))
	_, err = g.SuccessorIDs("Nobody")
	assert.True(t, errors.Is(err, core.ErrVertexNotFound))
}

// TestGraph_Edges verifies deterministic ordering and that Requests is a copy.
func TestGraph_Edges(t *testing.T) {
	g, err := core.NewRequestGraph(sampleRequests())
	require.NoError(t, err)

	var pairs []string
	for _, e := range g.Edges() {
		pairs = append(pairs, e.From+">"+e.To)
	}
	assert.Equal(t, []string{"Anna>Bert", "Bert>Anna", "Bert>Coen", "Coen>Bert"}, pairs)

	reqs := g.Requests()
	reqs[0].ID = "mutated"
	assert.Equal(t, "id1", g.Requests()[0].ID)
}

func TestGraph_NilSafe(t *testing.T) {
	var g *core.Graph
	assert.Nil(t, g.Vertices())
	assert.Zero(t, g.VertexCount())
	assert.Zero(t, g.EdgeCount())
	assert.False(t, g.HasEdge("A", "B"))
	_, err := g.Edge("A", "B")
	assert.True(t, errors.Is(err, core.ErrNilGraph))
}

func TestParseRepresentative(t *testing.T) {
	p, err := core.ParseRepresentative("heaviest")
	require.NoError(t, err)
	assert.Equal(t, core.HeaviestWeight, p)
	assert.Equal(t, "heaviest", p.String())

	p, err = core.ParseRepresentative("")
	require.NoError(t, err)
	assert.Equal(t, core.FirstInInput, p)

	_, err = core.ParseRepresentative("random")
	assert.Error(t, err)
}
