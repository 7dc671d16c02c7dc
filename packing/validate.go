package packing

import (
	"sort"

	"github.com/cockroachdb/errors"
)

// Validate checks the structural invariants of p.
func (p Problem) Validate() error {
	if len(p.Sets) != len(p.Scores) {
		return errors.Wrapf(ErrInvalidProblem, "%d sets but %d scores", len(p.Sets), len(p.Scores))
	}
	if p.Universe < 0 {
		return errors.Wrapf(ErrInvalidProblem, "universe %d", p.Universe)
	}

	seen := make([]int, p.Universe)
	for i := range seen {
		seen[i] = -1
	}
	for i, set := range p.Sets {
		if len(set) == 0 {
			return errors.Wrapf(ErrInvalidProblem, "set %d is empty", i)
		}
		if p.Scores[i] < 0 {
			return errors.Wrapf(ErrInvalidProblem, "set %d has negative score %d", i, p.Scores[i])
		}
		for _, v := range set {
			if v < 0 || v >= p.Universe {
				return errors.Wrapf(ErrInvalidProblem, "set %d: vertex %d outside [0,%d)", i, v, p.Universe)
			}
			if seen[v] == i {
				return errors.Wrapf(ErrInvalidProblem, "set %d repeats vertex %d", i, v)
			}
			seen[v] = i
		}
	}

	return nil
}

// Verify checks that sel is a sorted, in-range, pairwise disjoint selection
// whose Objective equals the sum of its scores.
func Verify(p Problem, sel Selection) error {
	if !sort.IntsAreSorted(sel.Indices) {
		return errors.Wrap(ErrNotDisjoint, "indices not sorted")
	}
	used := make([]int, p.Universe)
	for i := range used {
		used[i] = -1
	}
	var sum int64
	for _, c := range sel.Indices {
		if c < 0 || c >= len(p.Sets) {
			return errors.Wrapf(ErrNotDisjoint, "candidate %d out of range", c)
		}
		for _, v := range p.Sets[c] {
			if used[v] >= 0 {
				return errors.Wrapf(ErrNotDisjoint, "vertex %d in candidates %d and %d", v, used[v], c)
			}
			used[v] = c
		}
		sum += p.Scores[c]
	}
	if sum != sel.Objective {
		return errors.Wrapf(ErrNotDisjoint, "objective %d, recomputed %d", sel.Objective, sum)
	}

	return nil
}
