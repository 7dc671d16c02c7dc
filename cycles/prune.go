package cycles

import (
	"github.com/katalvlaran/dutyswap/core"
)

// unreachable marks a vertex that cannot return to the root within the bound.
const unreachable = -1

// returnDistances runs a reverse breadth-first search from root over
// predecessor edges, restricted to vertices with index > root, and records for
// each vertex the fewest requests needed to hand a duty back to root.
// Distances above limit are not explored and stay unreachable.
//
// dist is reused across roots; it must have length g.VertexCount().
// Complexity: O(V + E) per call.
func returnDistances(g *core.Graph, root, limit int, dist []int, queue []int) []int {
	for i := range dist {
		dist[i] = unreachable
	}
	dist[root] = 0
	queue = append(queue[:0], root)

	var (
		head int
		u, p int
	)
	for head < len(queue) {
		u = queue[head]
		head++
		if dist[u] >= limit {
			continue
		}
		for _, p = range g.Predecessors(u) {
			if p <= root || dist[p] != unreachable {
				continue
			}
			dist[p] = dist[u] + 1
			queue = append(queue, p)
		}
	}

	return queue
}
