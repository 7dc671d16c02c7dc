package cyclecover

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrNilGraph is returned when a nil graph is passed to Cover.
	ErrNilGraph = errors.New("cyclecover: graph is nil")

	// ErrNoAugmentingPath indicates a broken invariant: the self arc always
	// provides a free column, so every row must be assignable.
	ErrNoAugmentingPath = errors.New("cyclecover: no augmenting path")
)

// unassigned marks a free row or column.
const unassigned = -1

// arc is one admissible assignment giver→taker with its non-negative cost.
type arc struct {
	to   int
	cost int64
}
