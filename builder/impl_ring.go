// SPDX-License-Identifier: MIT
// Package: dutyswap/builder
//
// impl_ring.go - deterministic shapes: Ring, Path, Reciprocal, Complete.
//
// Contract:
//   • Participants are named cfg.idFn(0..n-1).
//   • Requests are emitted in ascending index order; weights come from cfg.weightFn.
//   • Complexity: O(n) except Complete, which is O(n²).

package builder

const (
	methodRing       = "Ring"
	methodPath       = "Path"
	methodReciprocal = "Reciprocal"
	methodComplete   = "Complete"

	minRingNodes       = 2
	minPathNodes       = 2
	minReciprocalNodes = 2
	minCompleteNodes   = 2
)

// Ring returns a Constructor emitting the n-participant exchange ring
// P0→P1→…→P(n-1)→P0. With n = 2 it is a reciprocal pair.
func Ring(n int) Constructor {
	return func(p *Pool, cfg builderConfig) error {
		if n < minRingNodes {
			return builderErrorf(methodRing, ErrTooFewVertices, "n=%d < min=%d", n, minRingNodes)
		}
		var i int
		for i = 0; i < n; i++ {
			p.Add(cfg.idFn(i), cfg.idFn((i+1)%n), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Path returns a Constructor emitting the one-way chain P0→P1→…→P(n-1).
// A path never closes, so it contributes no exchange.
func Path(n int) Constructor {
	return func(p *Pool, cfg builderConfig) error {
		if n < minPathNodes {
			return builderErrorf(methodPath, ErrTooFewVertices, "n=%d < min=%d", n, minPathNodes)
		}
		var i int
		for i = 0; i+1 < n; i++ {
			p.Add(cfg.idFn(i), cfg.idFn(i+1), cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Reciprocal returns a Constructor emitting n/2 disjoint reciprocal pairs
// P0⇄P1, P2⇄P3, …. An odd trailing participant is left out.
func Reciprocal(n int) Constructor {
	return func(p *Pool, cfg builderConfig) error {
		if n < minReciprocalNodes {
			return builderErrorf(methodReciprocal, ErrTooFewVertices, "n=%d < min=%d", n, minReciprocalNodes)
		}
		var (
			i    int
			a, b string
		)
		for i = 0; i+1 < n; i += 2 {
			a, b = cfg.idFn(i), cfg.idFn(i+1)
			p.Add(a, b, cfg.weightFn(cfg.rng))
			p.Add(b, a, cfg.weightFn(cfg.rng))
		}

		return nil
	}
}

// Complete returns a Constructor emitting every ordered pair i≠j, row by row.
// It produces the largest candidate space for a given n.
func Complete(n int) Constructor {
	return func(p *Pool, cfg builderConfig) error {
		if n < minCompleteNodes {
			return builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				p.Add(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng))
			}
		}

		return nil
	}
}
