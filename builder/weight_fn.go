// File: weight_fn.go
// Role: weight generators for request constructors.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultWeight is the weight given to every request when no WeightFn is set.
const DefaultWeight int64 = 1

// WeightFn produces a request weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn samples uniformly in [min, max] inclusive.
// Panics unless 0 ≤ min ≤ max. With a nil rng it yields min.
func UniformWeightFn(min, max int64) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}

// Percent returns UniformWeightFn(0, 100), the range swap clients usually send.
func Percent() WeightFn { return UniformWeightFn(0, 100) }
