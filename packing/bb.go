// File: bb.go
// Role: Branch-and-Bound (exact search with admissible upper bounds).
//
// BranchAndBound solves each conflict component with a depth-first search over
// candidates in input order, deciding "include" before "exclude".
//
// Rationale (succinct):
//  1. Components never share a vertex, so their optima combine independently;
//     they are solved concurrently under an errgroup.
//  2. An incumbent threshold is seeded by a greedy packing in descending
//     score order. The threshold sits one below the greedy objective so the
//     first optimum met in include-first order still replaces it.
//  3. A node is pruned when cur + bound ≤ best. The share bound is tried
//     first; the LP relaxation runs only when the share bound cannot prune.
//  4. A leaf replaces the incumbent only on strict improvement, so ties keep
//     the selection found first (lexicographically greatest inclusion vector).
//  5. Budget: ctx and the time limit are polled every 1024 nodes.
//
// Complexity:
//   - Worst case exponential in the component size (exact search).
//   - Per node: O(Σ|set|) for the share bound, one simplex solve for BoundLP.
//   - Memory: O(m + nv) per component plus the LP matrix.

package packing

import (
	"context"
	"sort"
	"time"

	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"
)

// budgetMask sets how often the search polls ctx and the deadline.
const budgetMask = 1023

// BranchAndBound is the default exact Solver.
type BranchAndBound struct {
	opts Options
}

// NewBranchAndBound returns a BranchAndBound with DefaultOptions and opts applied.
func NewBranchAndBound(opts ...Option) *BranchAndBound {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &BranchAndBound{opts: o}
}

// Options returns a copy of the solver settings.
func (s *BranchAndBound) Options() Options { return s.opts }

// bbEngine holds the search state for one component.
type bbEngine struct {
	ctx         context.Context
	bound       BoundAlgo
	lpMaxCols   int
	useDeadline bool
	deadline    time.Time
	steps       int

	sets   [][]int
	scores []int64

	used   []bool // local vertex occupied by the current partial selection
	chosen []bool // local candidate included on the current path

	best    int64
	bestSet []bool
	found   bool

	open  []int
	share []float64
	rowOf []int

	err error
}

// Solve returns the maximum-score disjoint selection of p.
//
// Errors:
//   - ErrInvalidProblem for malformed input.
//   - ErrNoOptimalSolution (also matching ErrTimeLimit on deadline) when the
//     budget expires or ctx is cancelled.
//   - ErrNotDisjoint if the final post-check fails.
func (s *BranchAndBound) Solve(ctx context.Context, p Problem) (Selection, error) {
	if err := p.Validate(); err != nil {
		return Selection{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	if s.opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.TimeLimit)
		defer cancel()
	}

	var (
		groups   = components(p)
		results  = make([][]int, len(groups))
		eg, gctx = errgroup.WithContext(ctx)
	)
	eg.SetLimit(s.opts.Parallelism)
	for k := range groups {
		k := k
		eg.Go(func() error {
			picked, err := s.solveComponent(gctx, extract(p, groups[k]))
			if err != nil {
				return err
			}
			results[k] = picked
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Selection{}, budgetError(err)
		}
		return Selection{}, err
	}

	var sel Selection
	for _, picked := range results {
		sel.Indices = append(sel.Indices, picked...)
	}
	sort.Ints(sel.Indices)
	for _, c := range sel.Indices {
		sel.Objective += p.Scores[c]
	}
	if err := Verify(p, sel); err != nil {
		return Selection{}, err
	}

	return sel, nil
}

// budgetError classifies a context error from the search.
func budgetError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		err = errors.Mark(errors.Wrap(ErrTimeLimit, err.Error()), context.DeadlineExceeded)
	}

	return errors.Mark(err, ErrNoOptimalSolution)
}

// solveComponent runs the engine on one component and maps the result back
// to global candidate indices.
func (s *BranchAndBound) solveComponent(ctx context.Context, sp subproblem) ([]int, error) {
	m := len(sp.sets)
	if m == 1 {
		return []int{sp.global[0]}, nil
	}

	e := &bbEngine{
		ctx:       ctx,
		bound:     s.opts.Bound,
		lpMaxCols: s.opts.LPMaxColumns,
		sets:      sp.sets,
		scores:    sp.scores,
		used:      make([]bool, sp.nv),
		chosen:    make([]bool, m),
		bestSet:   make([]bool, m),
		open:      make([]int, 0, m),
		share:     make([]float64, sp.nv),
		rowOf:     make([]int, sp.nv),
	}
	if dl, ok := ctx.Deadline(); ok {
		e.useDeadline = true
		e.deadline = dl
	}
	e.best = e.seedGreedy() - 1

	e.dfs(0, 0)
	if e.err != nil {
		return nil, e.err
	}
	if !e.found {
		return nil, errors.AssertionFailedf("packing: search ended without an incumbent")
	}

	var out []int
	for i, in := range e.bestSet {
		if in {
			out = append(out, sp.global[i])
		}
	}

	return out, nil
}

// seedGreedy returns the objective of a greedy packing in descending score
// order (index tie-break). It only seeds the pruning threshold.
func (e *bbEngine) seedGreedy() int64 {
	order := make([]int, len(e.sets))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return e.scores[order[a]] > e.scores[order[b]]
	})

	var total int64
	for _, j := range order {
		if e.fits(j) {
			e.occupy(j, true)
			total += e.scores[j]
		}
	}
	for v := range e.used {
		e.used[v] = false
	}

	return total
}

// fits reports whether candidate j avoids every occupied vertex.
func (e *bbEngine) fits(j int) bool {
	for _, v := range e.sets[j] {
		if e.used[v] {
			return false
		}
	}

	return true
}

// occupy marks (or releases) the vertices of candidate j.
func (e *bbEngine) occupy(j int, on bool) {
	for _, v := range e.sets[j] {
		e.used[v] = on
	}
}

// budgetExceeded performs a rare ctx/deadline test.
func (e *bbEngine) budgetExceeded() bool {
	e.steps++
	if e.steps&budgetMask != 0 {
		return false
	}
	if err := e.ctx.Err(); err != nil {
		e.err = err
		return true
	}
	if e.useDeadline && time.Now().After(e.deadline) {
		e.err = context.DeadlineExceeded
		return true
	}

	return false
}

// dfs decides candidate i given the partial objective cur.
func (e *bbEngine) dfs(i int, cur int64) {
	if e.err != nil || e.budgetExceeded() {
		return
	}

	if i == len(e.sets) {
		if cur > e.best {
			e.best = cur
			copy(e.bestSet, e.chosen)
			e.found = true
		}
		return
	}

	if e.bound != BoundNone && e.upperBound(i, cur) <= e.best {
		return
	}

	if e.fits(i) {
		e.occupy(i, true)
		e.chosen[i] = true
		e.dfs(i+1, cur+e.scores[i])
		e.chosen[i] = false
		e.occupy(i, false)
	}
	e.dfs(i+1, cur)
}
