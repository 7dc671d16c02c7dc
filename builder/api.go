// SPDX-License-Identifier: MIT
// Package: dutyswap/builder
//
// api.go - public entry-point and the Pool accumulator.
//
// Design contract:
//   - One orchestrator: BuildPool(bopts, cons...). Resolves cfg, runs cons in order.
//   - Constructors emit requests through Pool.Add so ID assignment stays central.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical pools.

package builder

import (
	"strconv"

	"github.com/katalvlaran/dutyswap/request"
)

// Constructor appends requests to p using the resolved builderConfig.
// Constructors validate parameters early and return sentinel errors (no panics).
type Constructor func(p *Pool, cfg builderConfig) error

// Pool accumulates generated requests and assigns their IDs.
type Pool struct {
	prefix string
	reqs   []request.SwapRequest
}

// Add appends a request from→to with weight w and returns its generated ID.
func (p *Pool) Add(from, to string, w int64) string {
	id := p.prefix + strconv.Itoa(len(p.reqs)+1)
	p.reqs = append(p.reqs, request.SwapRequest{ID: id, From: from, To: to, Weight: w})

	return id
}

// Len returns the number of requests emitted so far.
func (p *Pool) Len() int { return len(p.reqs) }

// BuildPool resolves bopts and applies all constructors in order, returning the
// generated request list. Constructor errors are wrapped with "BuildPool".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildPool(bopts []BuilderOption, cons ...Constructor) ([]request.SwapRequest, error) {
	cfg := newBuilderConfig(bopts...)
	p := &Pool{prefix: cfg.requestPrefix}

	for i, fn := range cons {
		if fn == nil {
			return nil, builderErrorf("BuildPool", ErrConstructFailed, "nil constructor at index %d", i)
		}
		if err := fn(p, cfg); err != nil {
			return nil, builderErrorf("BuildPool", err, "constructor %d", i)
		}
	}

	return p.reqs, nil
}
