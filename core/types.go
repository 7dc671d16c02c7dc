// File: types.go
// Role: the request Graph, its Edge type, options and sentinel errors.

package core

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/request"
)

// Sentinel errors for request graph operations.
var (
	// ErrNilGraph indicates an operation on a nil *Graph.
	ErrNilGraph = errors.New("core: graph is nil")

	// ErrVertexNotFound indicates an operation referenced a non-existent participant.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates no request exists for the requested (from,to) pair.
	ErrEdgeNotFound = errors.New("core: edge not found")
)

// RepresentativePolicy decides which of several parallel requests speaks for
// their collapsed structural edge.
type RepresentativePolicy int

const (
	// FirstInInput picks the earliest request in input order.
	FirstInInput RepresentativePolicy = iota

	// HeaviestWeight picks the request with the highest weight; ties go to input order.
	HeaviestWeight
)

// String returns the policy name used in flags and logs.
func (p RepresentativePolicy) String() string {
	switch p {
	case FirstInInput:
		return "first"
	case HeaviestWeight:
		return "heaviest"
	default:
		return "unknown"
	}
}

// ParseRepresentative maps a policy name back to its value.
func ParseRepresentative(name string) (RepresentativePolicy, error) {
	switch name {
	case "", "first":
		return FirstInInput, nil
	case "heaviest":
		return HeaviestWeight, nil
	default:
		return FirstInInput, errors.Newf("core: unknown representative policy %q", name)
	}
}

// Edge is one structural edge From→To.
//
// Requests lists every original request for this pair in input order.
// Representative is the request selected by the graph's policy; its ID and
// Weight are what scoring and assembly observe.
type Edge struct {
	// From is the participant giving up the duty.
	From string

	// To is the participant receiving the duty.
	To string

	// Requests are all parallel requests From→To, in input order.
	Requests []request.SwapRequest

	// Representative is the request chosen for this edge.
	Representative request.SwapRequest
}

// Weight returns the representative request's weight.
func (e *Edge) Weight() int64 { return e.Representative.Weight }

// GraphOption configures NewRequestGraph.
type GraphOption func(*graphConfig)

type graphConfig struct {
	policy   RepresentativePolicy
	validate bool
}

// WithRepresentative sets the representative policy for collapsed edges.
func WithRepresentative(p RepresentativePolicy) GraphOption {
	return func(c *graphConfig) { c.policy = p }
}

// WithoutValidation skips request.Validate. Use only when the caller has
// already validated the exact same slice.
func WithoutValidation() GraphOption {
	return func(c *graphConfig) { c.validate = false }
}

// Graph is the immutable directed request graph.
//
// vertices is sorted ascending; index is its inverse. succ/pred hold sorted
// vertex indices per vertex. edges is keyed by (from,to).
type Graph struct {
	policy RepresentativePolicy

	vertices []string
	index    map[string]int

	succ [][]int
	pred [][]int

	edges map[request.Pair]*Edge
	reqs  []request.SwapRequest
	total int64
}
