package swap

//go:generate mockgen -source types.go -destination strategy_mock.go -package swap

import (
	"context"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/assemble"
	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/cyclecover"
	"github.com/katalvlaran/dutyswap/cycles"
	"github.com/katalvlaran/dutyswap/packing"
	"github.com/katalvlaran/dutyswap/pairing"
	"github.com/katalvlaran/dutyswap/score"
)

// builtin is read-only after init.
var builtin = map[string]Strategy{
	StrategyVariable:        Variable{},
	StrategyMaximalMatching: MaximalMatching{},
	StrategyBipartite:       Bipartite{},
	StrategyUnlimited:       Unlimited{},
}

// Lookup returns the built-in strategy registered under name.
func Lookup(name string) (Strategy, error) {
	s, ok := builtin[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", name)
	}

	return s, nil
}

// Names lists the built-in strategy names, sorted.
func Names() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Builtin returns a fresh copy of the name → strategy table.
func Builtin() map[string]Strategy {
	out := make(map[string]Strategy, len(builtin))
	for k, v := range builtin {
		out[k] = v
	}

	return out
}

// graphFor builds the request graph for an already validated pool.
func graphFor(p Problem) (*core.Graph, error) {
	return core.NewRequestGraph(p.Requests,
		core.WithRepresentative(p.Representative),
		core.WithoutValidation(),
	)
}

// Variable enumerates cycles up to |MaxSteps| participants and picks the
// best disjoint subset exactly.
type Variable struct{}

// Name implements Strategy.
func (Variable) Name() string { return StrategyVariable }

// FindSwaps implements Strategy.
func (Variable) FindSwaps(ctx context.Context, p Problem) (Outcome, error) {
	g, err := graphFor(p)
	if err != nil {
		return Outcome{}, err
	}

	var eopts []cycles.Option
	if p.MaxCycles > 0 {
		eopts = append(eopts, cycles.WithMaxCycles(p.MaxCycles))
	}
	cs, err := cycles.Enumerate(ctx, g, p.MaxSteps, eopts...)
	if err != nil {
		return Outcome{}, err
	}
	if p.Log != nil {
		p.Log.Debugf("%d participants, %d edges, %d candidate cycles (bound %d)",
			g.VertexCount(), g.EdgeCount(), cs.Len(), cs.Bound)
	}

	scores, err := score.Scores(g, cs)
	if err != nil {
		return Outcome{}, err
	}
	solver := p.Solver
	if solver == nil {
		solver = packing.NewBranchAndBound()
	}
	sel, err := solver.Solve(ctx, packing.Problem{Sets: cs.Sets(), Scores: scores, Universe: cs.Universe})
	if err != nil {
		return Outcome{}, err
	}

	chains, count, err := assemble.Chains(g, cs, sel)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Chains: chains, SwapCount: count, MaxSteps: cs.Bound, Candidates: cs.Len()}, nil
}

// MaximalMatching keeps reciprocal pairs greedily in input order.
type MaximalMatching struct{}

// Name implements Strategy.
func (MaximalMatching) Name() string { return StrategyMaximalMatching }

// FindSwaps implements Strategy. MaxSteps is ignored.
func (MaximalMatching) FindSwaps(ctx context.Context, p Problem) (Outcome, error) {
	g, err := graphFor(p)
	if err != nil {
		return Outcome{}, err
	}
	chains, err := pairing.Greedy(g)
	if err != nil {
		return Outcome{}, err
	}

	return pairOutcome(chains, len(pairing.Pairs(g))), nil
}

// Bipartite picks the maximum-weight set of disjoint reciprocal pairs.
type Bipartite struct{}

// Name implements Strategy.
func (Bipartite) Name() string { return StrategyBipartite }

// FindSwaps implements Strategy. MaxSteps is ignored.
func (Bipartite) FindSwaps(ctx context.Context, p Problem) (Outcome, error) {
	g, err := graphFor(p)
	if err != nil {
		return Outcome{}, err
	}
	chains, err := pairing.Weighted(ctx, g, p.Solver)
	if err != nil {
		return Outcome{}, err
	}

	return pairOutcome(chains, len(pairing.Pairs(g))), nil
}

func pairOutcome(chains []assemble.Chain, candidates int) Outcome {
	return Outcome{Chains: chains, SwapCount: 2 * len(chains), MaxSteps: 2, Candidates: candidates}
}

// Unlimited forms chains of any length. MaxSteps is ignored and reported
// back as the longest chain found.
type Unlimited struct{}

// Name implements Strategy.
func (Unlimited) Name() string { return StrategyUnlimited }

// FindSwaps implements Strategy.
func (Unlimited) FindSwaps(ctx context.Context, p Problem) (Outcome, error) {
	g, err := graphFor(p)
	if err != nil {
		return Outcome{}, err
	}
	cov, err := cyclecover.Solve(ctx, g)
	if err != nil {
		return Outcome{}, err
	}
	sel := packing.Selection{Objective: cov.Objective}
	for i := range cov.Cycles.Cycles {
		sel.Indices = append(sel.Indices, i)
	}
	chains, count, err := assemble.Chains(g, cov.Cycles, sel)
	if err != nil {
		return Outcome{}, err
	}

	return Outcome{Chains: chains, SwapCount: count, MaxSteps: cov.Longest, Candidates: cov.Cycles.Len()}, nil
}
