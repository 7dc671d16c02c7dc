// SPDX-License-Identifier: MIT
// Package: dutyswap/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Context is attached by wrapping, never baked into the sentinel text.
//   • Constructors never panic; option constructors (WithX) may.

package builder

import (
	"github.com/cockroachdb/errors"
)

// ErrTooFewVertices indicates a participant count below the constructor minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or an otherwise unbuildable pool.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf wraps err with "<method>: <formatted message>".
func builderErrorf(method string, err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, method+": "+format, args...)
}
