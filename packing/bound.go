package packing

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

const (
	// simplexTol is the reduced-cost tolerance handed to lp.Simplex.
	simplexTol = 1e-10

	// boundSlack inflates float bounds relative to their magnitude so that
	// rounding never makes a bound inadmissible.
	boundSlack = 1e-9
)

// floorBound converts an admissible float upper bound into an integer one.
func floorBound(x float64) int64 {
	return int64(math.Floor(x + boundSlack*math.Max(1, math.Abs(x))))
}

// openCandidates appends to dst every candidate j ≥ i whose vertices are all free.
func (e *bbEngine) openCandidates(i int, dst []int) []int {
	dst = dst[:0]
	for j := i; j < len(e.sets); j++ {
		if e.fits(j) {
			dst = append(dst, j)
		}
	}

	return dst
}

// shareBound sums, over free vertices, the largest score/|set| among open
// candidates covering the vertex. Any disjoint completion assigns each vertex
// to at most one set, so this never under-estimates.
//
// Complexity: O(nv + Σ|open set|).
func (e *bbEngine) shareBound(open []int) float64 {
	var (
		v   int
		r   float64
		sum float64
	)
	for v = range e.share {
		e.share[v] = 0
	}
	for _, j := range open {
		r = float64(e.scores[j]) / float64(len(e.sets[j]))
		for _, v = range e.sets[j] {
			if r > e.share[v] {
				e.share[v] = r
			}
		}
	}
	for _, r = range e.share {
		sum += r
	}

	return sum
}

// lpBound solves the LP relaxation over the open candidates:
//
//	max Σ s_j x_j  s.t.  Σ_{j ∋ v} x_j + slack_v = 1,  x, slack ≥ 0
//
// Scores are normalized by the largest one to keep the simplex well scaled.
// ok is false when the LP is skipped or fails; callers fall back to shareBound.
func (e *bbEngine) lpBound(open []int) (bound float64, ok bool) {
	if len(open) == 0 {
		return 0, true
	}
	if len(open) > e.lpMaxCols {
		return 0, false
	}

	var (
		rowOf = e.rowOf
		rows  int
		scale float64
	)
	for v := range rowOf {
		rowOf[v] = -1
	}
	for _, j := range open {
		for _, v := range e.sets[j] {
			if rowOf[v] < 0 {
				rowOf[v] = rows
				rows++
			}
		}
		if s := float64(e.scores[j]); s > scale {
			scale = s
		}
	}
	if scale == 0 {
		return 0, true
	}

	var (
		cols = len(open) + rows
		A    = mat.NewDense(rows, cols, nil)
		c    = make([]float64, cols)
		b    = make([]float64, rows)
		base = make([]int, rows)
	)
	for k, j := range open {
		c[k] = -float64(e.scores[j]) / scale
		for _, v := range e.sets[j] {
			A.Set(rowOf[v], k, 1)
		}
	}
	for r := 0; r < rows; r++ {
		A.Set(r, len(open)+r, 1)
		b[r] = 1
		base[r] = len(open) + r
	}

	optF, _, err := lp.Simplex(c, A, b, simplexTol, base)
	if err != nil || math.IsNaN(optF) || math.IsInf(optF, 0) {
		return 0, false
	}
	val := -optF + simplexTol*float64(cols)

	return val * scale, true
}

// upperBound returns an admissible integer bound on any completion of the
// current partial selection that decides candidates i, i+1, … next.
func (e *bbEngine) upperBound(i int, cur int64) int64 {
	e.open = e.openCandidates(i, e.open)
	if len(e.open) == 0 {
		return cur
	}

	share := e.shareBound(e.open)
	if e.bound == BoundShare || floorBound(float64(cur)+share) <= e.best {
		return floorBound(float64(cur) + share)
	}
	if lpv, ok := e.lpBound(e.open); ok && lpv < share {
		return floorBound(float64(cur) + lpv)
	}

	return floorBound(float64(cur) + share)
}
