package packing

// disjointSet is a union-find over candidate indices with path halving and
// union by size.
type disjointSet struct {
	parent []int
	size   []int
}

func newDisjointSet(n int) *disjointSet {
	ds := &disjointSet{parent: make([]int, n), size: make([]int, n)}
	for i := range ds.parent {
		ds.parent[i] = i
		ds.size[i] = 1
	}

	return ds
}

func (ds *disjointSet) find(x int) int {
	for ds.parent[x] != x {
		ds.parent[x] = ds.parent[ds.parent[x]]
		x = ds.parent[x]
	}

	return x
}

func (ds *disjointSet) union(a, b int) {
	ra, rb := ds.find(a), ds.find(b)
	if ra == rb {
		return
	}
	if ds.size[ra] < ds.size[rb] {
		ra, rb = rb, ra
	}
	ds.parent[rb] = ra
	ds.size[ra] += ds.size[rb]
}

// components groups candidates that (transitively) share a vertex.
// Each group lists candidate indices ascending; groups are ordered by their
// smallest member.
//
// Complexity: O(Σ|set| · α(n)).
func components(p Problem) [][]int {
	var (
		n     = len(p.Sets)
		ds    = newDisjointSet(n)
		owner = make([]int, p.Universe)
	)
	for i := range owner {
		owner[i] = -1
	}
	for c, set := range p.Sets {
		for _, v := range set {
			if owner[v] < 0 {
				owner[v] = c
				continue
			}
			ds.union(owner[v], c)
		}
	}

	var (
		slot   = make(map[int]int)
		groups [][]int
	)
	for c := 0; c < n; c++ {
		r := ds.find(c)
		k, ok := slot[r]
		if !ok {
			k = len(groups)
			slot[r] = k
			groups = append(groups, nil)
		}
		groups[k] = append(groups[k], c)
	}

	return groups
}

// subproblem is one component re-indexed onto dense local vertex ids.
type subproblem struct {
	global []int   // local candidate → global candidate index
	sets   [][]int // local vertex ids
	scores []int64
	nv     int // local vertex count
}

// extract re-indexes the candidates in group onto local vertices.
func extract(p Problem, group []int) subproblem {
	var (
		local = make(map[int]int)
		sp    = subproblem{
			global: group,
			sets:   make([][]int, len(group)),
			scores: make([]int64, len(group)),
		}
	)
	for i, c := range group {
		set := make([]int, len(p.Sets[c]))
		for j, v := range p.Sets[c] {
			id, ok := local[v]
			if !ok {
				id = len(local)
				local[v] = id
			}
			set[j] = id
		}
		sp.sets[i] = set
		sp.scores[i] = p.Scores[c]
	}
	sp.nv = len(local)

	return sp
}
