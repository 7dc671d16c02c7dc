package packing

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
)

var (
	// ErrInvalidProblem indicates malformed Sets/Scores/Universe.
	ErrInvalidProblem = errors.New("packing: invalid problem")

	// ErrNoOptimalSolution indicates the solver could not prove optimality.
	ErrNoOptimalSolution = errors.New("packing: optimal solution not found")

	// ErrTimeLimit indicates the time budget expired during search.
	ErrTimeLimit = errors.New("packing: time limit exceeded")

	// ErrTooManyCandidates indicates Exhaustive refused an oversized problem.
	ErrTooManyCandidates = errors.New("packing: too many candidates for exhaustive search")

	// ErrNotDisjoint indicates a selection that reuses a vertex.
	ErrNotDisjoint = errors.New("packing: selection is not disjoint")
)

// MaxExhaustiveCandidates caps the Exhaustive solver.
const MaxExhaustiveCandidates = 30

// Problem is one weighted set-packing instance.
type Problem struct {
	// Sets lists, per candidate, the vertex indices it occupies.
	Sets [][]int

	// Scores holds one non-negative objective coefficient per candidate.
	Scores []int64

	// Universe is the vertex count; every entry of Sets lies in [0, Universe).
	Universe int
}

// Len returns the number of candidates.
func (p Problem) Len() int { return len(p.Sets) }

// Selection is a solution: ascending candidate indices plus their summed score.
type Selection struct {
	Indices   []int
	Objective int64
}

// Solver finds a maximum-score disjoint selection.
type Solver interface {
	Solve(ctx context.Context, p Problem) (Selection, error)
}

// BoundAlgo selects the upper bound used for pruning.
type BoundAlgo int

const (
	// BoundNone disables pruning (testing only).
	BoundNone BoundAlgo = iota

	// BoundShare sums, over free vertices, the best per-vertex share score/|set|.
	BoundShare

	// BoundLP solves the LP relaxation with the gonum simplex; it falls back
	// to BoundShare when the LP is too large or fails.
	BoundLP
)

// String returns the bound name.
func (b BoundAlgo) String() string {
	switch b {
	case BoundNone:
		return "none"
	case BoundShare:
		return "share"
	case BoundLP:
		return "lp"
	default:
		return "unknown"
	}
}

// Options configures BranchAndBound.
type Options struct {
	// TimeLimit bounds the whole Solve call. Zero disables it.
	TimeLimit time.Duration

	// Bound selects the pruning bound. Default BoundLP.
	Bound BoundAlgo

	// Parallelism caps concurrently solved components. 1 runs sequentially.
	Parallelism int

	// LPMaxColumns skips the LP bound at nodes with more open candidates.
	LPMaxColumns int
}

// DefaultOptions returns the recommended settings.
func DefaultOptions() Options {
	return Options{
		Bound:        BoundLP,
		Parallelism:  4,
		LPMaxColumns: 512,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithTimeLimit sets the solve budget. Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("packing: WithTimeLimit(d<0)")
	}
	return func(o *Options) { o.TimeLimit = d }
}

// WithBound selects the pruning bound. Panics on an unknown value.
func WithBound(b BoundAlgo) Option {
	if b < BoundNone || b > BoundLP {
		panic("packing: WithBound(unknown)")
	}
	return func(o *Options) { o.Bound = b }
}

// WithParallelism caps concurrently solved components. Panics if n < 1.
func WithParallelism(n int) Option {
	if n < 1 {
		panic("packing: WithParallelism(n<1)")
	}
	return func(o *Options) { o.Parallelism = n }
}

// WithLPMaxColumns sets the LP size threshold. Panics if n < 1.
func WithLPMaxColumns(n int) Option {
	if n < 1 {
		panic("packing: WithLPMaxColumns(n<1)")
	}
	return func(o *Options) { o.LPMaxColumns = n }
}
