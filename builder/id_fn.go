// File: id_fn.go
// Role: participant naming schemes.

package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based participant index to a participant name.
// It must be pure: the same idx always gives the same name.
type IDFn func(idx int) string

// DefaultIDFn returns "P<idx>", e.g. 0→"P0", 12→"P12".
func DefaultIDFn(idx int) string {
	return "P" + strconv.Itoa(idx)
}

// PaddedIDFn returns "P" followed by idx zero-padded to width digits, so that
// lexicographic and numeric order agree ("P007" < "P010").
// Panics if width < 1.
func PaddedIDFn(width int) IDFn {
	if width < 1 {
		panic(fmt.Sprintf("PaddedIDFn: width must be ≥ 1, got %d", width))
	}

	return func(idx int) string {
		return fmt.Sprintf("P%0*d", width, idx)
	}
}

// roster holds the sample participants used in the duty-swap examples.
var roster = []string{
	"Adam", "Beth", "Cleo", "Drew", "Emma", "Finn", "Gabi", "Hana", "Izzy", "Jill",
}

// RosterIDFn names the first ten participants from a fixed roster
// (Adam, Beth, …, Jill) and falls back to DefaultIDFn beyond it.
func RosterIDFn(idx int) string {
	if idx >= 0 && idx < len(roster) {
		return roster[idx]
	}

	return DefaultIDFn(idx)
}
