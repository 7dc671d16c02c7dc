// Package assemble turns a solver selection into ordered match chains.
//
// Each selected cycle v0→v1→…→v(k-1)→v0 becomes a Chain of k Links, one per
// hop, carrying the representative request of that edge. Chains follow the
// candidate order; links within a chain start at the cycle's smallest
// participant.
package assemble

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/dutyswap/core"
	"github.com/katalvlaran/dutyswap/cycles"
	"github.com/katalvlaran/dutyswap/packing"
)

var (
	// ErrMissingEdge indicates a selected cycle walks an edge absent from the graph.
	ErrMissingEdge = errors.New("assemble: selected cycle uses a missing edge")

	// ErrBadSelection indicates a selection index outside the candidate set.
	ErrBadSelection = errors.New("assemble: selection index out of range")
)

// Link is one executed request inside a chain: From hands a duty to To.
type Link struct {
	ID   string `json:"id"`
	From string `json:"from"`
	To   string `json:"to"`
}

// Chain is one closed exchange, in traversal order.
type Chain []Link

// Participants returns the givers of c in order.
func (c Chain) Participants() []string {
	out := make([]string, len(c))
	for i, l := range c {
		out[i] = l.From
	}

	return out
}

// Closed reports whether every link hands over to the next giver and the last
// link returns to the first giver.
func (c Chain) Closed() bool {
	if len(c) < 2 {
		return false
	}
	for i, l := range c {
		if l.To != c[(i+1)%len(c)].From {
			return false
		}
	}

	return true
}

// Chains builds the ordered chains for sel and returns them with the swap
// count (the total number of links, i.e. participants served).
//
// Complexity: O(Σ len(selected cycles)).
func Chains(g *core.Graph, cands cycles.CandidateSet, sel packing.Selection) ([]Chain, int, error) {
	var (
		out   = make([]Chain, 0, len(sel.Indices))
		count int
	)
	for _, idx := range sel.Indices {
		if idx < 0 || idx >= cands.Len() {
			return nil, 0, errors.Wrapf(ErrBadSelection, "index %d of %d", idx, cands.Len())
		}
		ch, err := FromCycle(g, cands.Cycles[idx])
		if err != nil {
			return nil, 0, err
		}
		out = append(out, ch)
		count += len(ch)
	}

	return out, count, nil
}

// FromCycle walks c and emits the representative request of every hop.
func FromCycle(g *core.Graph, c cycles.Cycle) (Chain, error) {
	k := c.Len()
	ch := make(Chain, k)
	for i := 0; i < k; i++ {
		from, to := c.Vertices[i], c.Vertices[(i+1)%k]
		e, err := g.Edge(from, to)
		if err != nil {
			return nil, errors.Mark(errors.Wrapf(err, "%s→%s", from, to), ErrMissingEdge)
		}
		ch[i] = Link{ID: e.Representative.ID, From: from, To: to}
	}

	return ch, nil
}

// Strings renders chains as [][]Link for JSON envelopes.
func Strings(chains []Chain) [][]Link {
	out := make([][]Link, len(chains))
	for i, c := range chains {
		out[i] = []Link(c)
	}

	return out
}
