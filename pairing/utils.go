package pairing

import (
	"sort"

	"github.com/katalvlaran/dutyswap/cycles"
)

// sortCanonical orders cycles by vertex-index sequence.
func sortCanonical(cs []cycles.Cycle) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cycles.Compare(cs[i].Index, cs[j].Index) < 0
	})
}
