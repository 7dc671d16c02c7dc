package cycles

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/request"
)

const (
	// DefaultMaxSteps is the bound used when the caller expresses no preference:
	// simple reciprocal one-on-one swaps.
	DefaultMaxSteps = 2

	// DefaultMaxCycles caps enumeration when WithMaxCycles is not given.
	DefaultMaxCycles = 200000

	// minCycleLen is the shortest exchange chain (a reciprocal pair).
	minCycleLen = 2

	// ctxCheckMask sets how often the search polls ctx (every 1024 node visits).
	ctxCheckMask = 1023
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed to Enumerate.
	ErrNilGraph = errors.New("cycles: graph is nil")

	// ErrTooManyCycles indicates the candidate count exceeded the configured cap.
	ErrTooManyCycles = errors.New("cycles: enumeration too large")

	// ErrBadMaxCycles indicates a non-positive cap passed to WithMaxCycles.
	ErrBadMaxCycles = errors.New("cycles: MaxCycles must be positive")
)

// Option configures Enumerate.
type Option func(*Options)

// Options holds enumeration limits.
type Options struct {
	// MaxCycles is the hard cap on emitted cycles. Default DefaultMaxCycles.
	MaxCycles int
}

// DefaultOptions returns Options{MaxCycles: DefaultMaxCycles}.
func DefaultOptions() Options {
	return Options{MaxCycles: DefaultMaxCycles}
}

// WithMaxCycles sets the hard cap on emitted cycles.
// Panics if n <= 0.
func WithMaxCycles(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadMaxCycles.Error())
		}
		o.MaxCycles = n
	}
}

// EffectiveBound maps a caller-supplied maxSteps to the bound actually used.
func EffectiveBound(maxSteps int) int {
	if maxSteps < 0 {
		return -maxSteps
	}

	return maxSteps
}

// Cycle is one candidate exchange chain.
//
// Vertices holds distinct participants in traversal order, starting at the
// smallest one; Index holds the matching core.Graph vertex indices. Following
// Vertices in order and wrapping around walks only existing request edges.
type Cycle struct {
	Vertices []string
	Index    []int
}

// Len returns the number of participants served by the cycle.
func (c Cycle) Len() int { return len(c.Vertices) }

// Signature returns the canonical textual form, e.g. "A→B→C".
func (c Cycle) Signature() string { return JoinSig(c.Vertices) }

// Contains reports whether participant id is part of the cycle.
func (c Cycle) Contains(id string) bool { return IndexOf(c.Vertices, id) >= 0 }

// Pairs returns the (from,to) edges walked by the cycle, closing edge last.
func (c Cycle) Pairs() []request.Pair {
	n := len(c.Vertices)
	out := make([]request.Pair, n)
	for i := 0; i < n; i++ {
		out[i] = request.Pair{From: c.Vertices[i], To: c.Vertices[(i+1)%n]}
	}

	return out
}

// CandidateSet is the immutable collection of cycles for one call, sorted by
// canonical vertex-index order.
type CandidateSet struct {
	// Bound is the effective maxSteps used for enumeration.
	Bound int

	// Universe is the number of participants in the source graph.
	Universe int

	// Cycles are the candidates.
	Cycles []Cycle
}

// Len returns the number of candidates.
func (cs CandidateSet) Len() int { return len(cs.Cycles) }

// Sets returns, per candidate, the participant indices it occupies. This is
// the shape the disjointness solver consumes.
func (cs CandidateSet) Sets() [][]int {
	out := make([][]int, len(cs.Cycles))
	for i, c := range cs.Cycles {
		out[i] = c.Index
	}

	return out
}

// FromIndices builds a canonical Cycle from graph vertex indices in traversal
// order, rotating so it starts at its smallest participant.
func FromIndices(g *core.Graph, idx []int) Cycle {
	rot := rotateMin(idx)
	vs := make([]string, len(rot))
	for i, v := range rot {
		vs[i] = g.Vertex(v)
	}

	return Cycle{Vertices: vs, Index: rot}
}
