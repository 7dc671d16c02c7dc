package swap

import (
	"fmt"
	"time"

	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/cycles"
	"github.com/katalvlaran/dutyswap/logger"
	"github.com/katalvlaran/dutyswap/packing"
)

// DefaultOptions returns the variable strategy with default caps and no
// time limit or logger.
func DefaultOptions() Options {
	return Options{
		Strategy:       Variable{},
		MaxCycles:      cycles.DefaultMaxCycles,
		Representative: core.FirstInInput,
	}
}

// WithStrategy selects a built-in strategy by name. Panics on an unknown name;
// use Lookup to validate untrusted input first.
func WithStrategy(name string) Option {
	s, err := Lookup(name)
	if err != nil {
		panic(err.Error())
	}
	return WithStrategyImpl(s)
}

// WithStrategyImpl installs s directly. Panics on nil.
func WithStrategyImpl(s Strategy) Option {
	if s == nil {
		panic("swap: WithStrategyImpl(nil)")
	}
	return func(o *Options) { o.Strategy = s }
}

// WithPool labels the result with a pool name.
func WithPool(pool string) Option {
	return func(o *Options) { o.Pool = pool }
}

// WithMaxCycles caps cycle enumeration. Panics if n <= 0.
func WithMaxCycles(n int) Option {
	if n <= 0 {
		panic(fmt.Sprintf("swap: WithMaxCycles(%d)", n))
	}
	return func(o *Options) { o.MaxCycles = n }
}

// WithTimeLimit bounds the whole call. Zero disables it. Panics if d < 0.
func WithTimeLimit(d time.Duration) Option {
	if d < 0 {
		panic("swap: WithTimeLimit(d<0)")
	}
	return func(o *Options) { o.TimeLimit = d }
}

// WithSolver replaces the set-packing solver. Panics on nil.
func WithSolver(s packing.Solver) Option {
	if s == nil {
		panic("swap: WithSolver(nil)")
	}
	return func(o *Options) { o.Solver = s }
}

// WithLogger enables stage logging.
func WithLogger(log logger.Logger) Option {
	return func(o *Options) { o.Log = log }
}

// WithRepresentative selects which parallel request stands for an edge.
func WithRepresentative(p core.RepresentativePolicy) Option {
	return func(o *Options) { o.Representative = p }
}
