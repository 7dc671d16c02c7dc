// SPDX-License-Identifier: MIT
// Package: dutyswap/builder
//
// Package builder assembles deterministic swap-request pools for tests,
// benchmarks, examples and the `dutyswap generate` command.
//
// One orchestrator, BuildPool(bopts, cons...), resolves the functional options
// into an immutable builderConfig and runs each Constructor in order against a
// shared Pool. Constructors append requests; the Pool assigns request IDs
// ("id1", "id2", … by default) in emission order.
//
// Constructors:
//
//	Ring(n)            – one n-participant exchange ring P0→P1→…→P(n-1)→P0.
//	Path(n)            – one-way chain P0→P1→…→P(n-1); contains no cycle.
//	Reciprocal(n)      – n/2 disjoint reciprocal pairs (P0⇄P1, P2⇄P3, …).
//	Complete(n)        – every ordered pair i≠j; the worst case for enumeration.
//	RandomSparse(n, p) – each ordered pair i≠j independently with probability p.
//
// Determinism: same options, same seed and same constructor order ⇒ identical
// request lists (IDs, endpoints, weights).
//
// Errors: ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed, all wrapped with method context.
package builder
