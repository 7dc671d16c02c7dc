// SPDX-License-Identifier: MIT
// Package: dutyswap/builder
//
// impl_random_sparse.go - Erdős–Rényi style request pool.
//
// Contract:
//   • Each ordered pair (i,j), i≠j, is emitted independently with probability p.
//   • Requires n ≥ 2, p ∈ [0,1] and an RNG (WithSeed or WithRand).
//   • Emission order is row-major over (i,j), so a seed fixes the whole pool.
//   • Complexity: O(n²) Bernoulli trials.

package builder

const (
	methodRandomSparse  = "RandomSparse"
	minRandomSparseNode = 2
)

// RandomSparse returns a Constructor emitting a random pool over n participants.
func RandomSparse(n int, prob float64) Constructor {
	return func(p *Pool, cfg builderConfig) error {
		if n < minRandomSparseNode {
			return builderErrorf(methodRandomSparse, ErrTooFewVertices, "n=%d < min=%d", n, minRandomSparseNode)
		}
		if prob < 0 || prob > 1 {
			return builderErrorf(methodRandomSparse, ErrInvalidProbability, "p=%.3f", prob)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomSparse, ErrNeedRandSource, "n=%d", n)
		}

		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i == j {
					continue
				}
				if cfg.rng.Float64() < prob {
					p.Add(cfg.idFn(i), cfg.idFn(j), cfg.weightFn(cfg.rng))
				}
			}
		}

		return nil
	}
}
