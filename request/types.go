// Package request defines the SwapRequest record and the validation rules
// applied before any graph is built.
//
// A SwapRequest is a directed offer: From gives their duty to To, with a
// non-negative integer desirability Weight. Requests are immutable for the
// whole optimization call; every downstream stage (graph, enumerator, scorer,
// solver, assembler) reads them and never writes back.
//
// Errors (sentinel, check with errors.Is):
//
//	ErrEmptyRequests     - the request list is empty.
//	ErrEmptyID           - a request has an empty ID.
//	ErrEmptyParticipant  - a request has an empty From or To.
//	ErrSelfSwap          - a request has From == To.
//	ErrNegativeWeight    - a request has Weight < 0.
//	ErrDuplicateID       - two requests share the same ID.
//	ErrWeightOverflow    - the summed weight exceeds MaxTotalWeight.
package request

import (
	"github.com/cockroachdb/errors"
)

// MaxTotalWeight caps Σ Weight over one request list. Scores are computed as
// W*k + Σw with W = Σ Weight + 1, so this bound keeps every score well inside int64.
const MaxTotalWeight int64 = 1 << 40

// Sentinel errors for request validation.
var (
	// ErrEmptyRequests indicates that no requests were supplied.
	ErrEmptyRequests = errors.New("request: request list is empty")

	// ErrEmptyID indicates a request without an identifier.
	ErrEmptyID = errors.New("request: request ID is empty")

	// ErrEmptyParticipant indicates a request with an empty From or To participant.
	ErrEmptyParticipant = errors.New("request: participant is empty")

	// ErrSelfSwap indicates a request where a participant gives a duty to themselves.
	ErrSelfSwap = errors.New("request: from and to are the same participant")

	// ErrNegativeWeight indicates a request with a weight below zero.
	ErrNegativeWeight = errors.New("request: negative weight")

	// ErrDuplicateID indicates two requests carrying the same identifier.
	ErrDuplicateID = errors.New("request: duplicate request ID")

	// ErrWeightOverflow indicates the summed weight is too large to score safely.
	ErrWeightOverflow = errors.New("request: total weight too large")
)

// SwapRequest is one candidate swap: From gives their duty to To.
type SwapRequest struct {
	// ID uniquely identifies the request within one call.
	ID string `json:"id"`

	// From is the participant giving up their duty.
	From string `json:"from"`

	// To is the participant receiving the duty.
	To string `json:"to"`

	// Weight is the desirability of this swap; zero is allowed.
	Weight int64 `json:"weight"`
}

// Pair returns the (From, To) key shared by parallel requests.
func (r SwapRequest) Pair() Pair {
	return Pair{From: r.From, To: r.To}
}

// Pair is the structural identity of a directed edge between two participants.
type Pair struct {
	From string
	To   string
}

// Reverse returns the opposite direction of p.
func (p Pair) Reverse() Pair {
	return Pair{From: p.To, To: p.From}
}
