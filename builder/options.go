// SPDX-License-Identifier: MIT
// Package: dutyswap/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: randomness only through WithSeed or WithRand.
//   • Later options override earlier ones.
//
// Deterministic defaults:
//   • idFn          = DefaultIDFn   ("P0","P1",...)
//   • rng           = nil
//   • weightFn      = ConstantWeightFn(DefaultWeight)
//   • requestPrefix = "id"

package builder

import (
	"math/rand"
)

const defaultRequestPrefix = "id"

// builderConfig aggregates all knobs used by constructors. Passed by value.
type builderConfig struct {
	idFn          IDFn
	rng           *rand.Rand
	weightFn      WeightFn
	requestPrefix string
}

// BuilderOption customizes builderConfig before constructors run.
type BuilderOption func(*builderConfig)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:          DefaultIDFn,
		weightFn:      ConstantWeightFn(DefaultWeight),
		requestPrefix: defaultRequestPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithIDScheme sets the participant naming function idx -> name.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a seeded RNG for reproducible stochastic pools.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithWeightFn overrides the per-request weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) { c.weightFn = fn }
}

// WithRequestPrefix sets the request ID prefix ("id" → "id1","id2",...).
// Panics on an empty prefix.
func WithRequestPrefix(prefix string) BuilderOption {
	if prefix == "" {
		panic("builder: WithRequestPrefix(\"\")")
	}
	return func(c *builderConfig) { c.requestPrefix = prefix }
}
