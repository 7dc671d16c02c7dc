package swap

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/assemble"
	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/logger"
	"github.com/katalvlaran/dutyswap/packing"
	"github.com/katalvlaran/dutyswap/request"
)

// Strategy names.
const (
	StrategyVariable        = "variable"
	StrategyMaximalMatching = "maximal_matching"
	StrategyBipartite       = "bipartite"
	StrategyUnlimited       = "unlimited"
)

// Error kinds. Every error returned by Optimize matches exactly one of them.
var (
	ErrInput             = errors.New("swap: invalid input")
	ErrEnumerationLimit  = errors.New("swap: enumeration too large")
	ErrNoOptimalSolution = errors.New("swap: optimal solution not found")
	ErrInternal          = errors.New("swap: internal error")

	// ErrUnknownStrategy is wrapped into ErrInput for unregistered names.
	ErrUnknownStrategy = errors.New("swap: unknown strategy")
)

// Problem is what a Strategy receives: a validated pool plus the knobs that
// shape the search.
type Problem struct {
	Requests       []request.SwapRequest
	MaxSteps       int
	Representative core.RepresentativePolicy
	MaxCycles      int
	Solver         packing.Solver
	Log            logger.Logger
}

// Outcome is what a Strategy returns.
type Outcome struct {
	Chains    []assemble.Chain
	SwapCount int

	// MaxSteps is the bound reported back: the effective bound for bounded
	// strategies, 2 for pairings, the longest chain for unlimited.
	MaxSteps int

	// Candidates counts the cycles or pairs offered to the solver.
	Candidates int
}

// Strategy finds a set of disjoint exchange chains for a request pool.
type Strategy interface {
	Name() string
	FindSwaps(ctx context.Context, p Problem) (Outcome, error)
}

// Result is the envelope returned to callers and serialized by the server.
type Result struct {
	Type        string            `json:"type,omitempty"`
	Pool        string            `json:"pool,omitempty"`
	Success     bool              `json:"success"`
	SwapCount   int               `json:"swapCount"`
	MaxSteps    int               `json:"maxSteps"`
	TotalWeight int64             `json:"totalWeight"`
	Runtime     float64           `json:"runtime"`
	Result      [][]assemble.Link `json:"result"`
	Error       string            `json:"error,omitempty"`
}

// Options configures Optimize.
type Options struct {
	Strategy       Strategy
	Pool           string
	MaxCycles      int
	TimeLimit      time.Duration
	Solver         packing.Solver
	Log            logger.Logger
	Representative core.RepresentativePolicy
}

// Option mutates Options.
type Option func(*Options)
