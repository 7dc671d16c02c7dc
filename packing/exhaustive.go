package packing

import (
	"context"

	"github.com/cockroachdb/errors"
)

// Exhaustive enumerates every disjoint combination without pruning.
// It refuses problems with more than MaxExhaustiveCandidates candidates and
// applies the same tie-break as BranchAndBound.
type Exhaustive struct{}

// Solve implements Solver.
func (Exhaustive) Solve(ctx context.Context, p Problem) (Selection, error) {
	if err := p.Validate(); err != nil {
		return Selection{}, err
	}
	if p.Len() > MaxExhaustiveCandidates {
		return Selection{}, errors.Wrapf(ErrTooManyCandidates, "%d > %d", p.Len(), MaxExhaustiveCandidates)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	var (
		used    = make([]bool, p.Universe)
		path    = make([]int, 0, p.Len())
		best    = int64(-1)
		bestSel []int
		steps   int
		err     error
		walk    func(i int, cur int64)
	)
	walk = func(i int, cur int64) {
		if err != nil {
			return
		}
		steps++
		if steps&budgetMask == 0 {
			if cerr := ctx.Err(); cerr != nil {
				err = cerr
				return
			}
		}
		if i == p.Len() {
			if cur > best {
				best = cur
				bestSel = append(bestSel[:0], path...)
			}
			return
		}
		free := true
		for _, v := range p.Sets[i] {
			if used[v] {
				free = false
				break
			}
		}
		if free {
			for _, v := range p.Sets[i] {
				used[v] = true
			}
			path = append(path, i)
			walk(i+1, cur+p.Scores[i])
			path = path[:len(path)-1]
			for _, v := range p.Sets[i] {
				used[v] = false
			}
		}
		walk(i+1, cur)
	}
	walk(0, 0)
	if err != nil {
		return Selection{}, budgetError(err)
	}

	sel := Selection{Indices: bestSel, Objective: best}
	if err := Verify(p, sel); err != nil {
		return Selection{}, err
	}

	return sel, nil
}
