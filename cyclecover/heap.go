package cyclecover

// columnItem is one heap entry: a tentative distance to a column.
type columnItem struct {
	col  int
	dist int64
}

// columnPQ is a min-heap of columnItem ordered by dist, then column index.
// Stale entries are left in place and skipped on Pop (lazy decrease-key).
type columnPQ []columnItem

// Len returns the number of items in the heap.
func (pq columnPQ) Len() int { return len(pq) }

// Less orders by distance, breaking ties by column for determinism.
func (pq columnPQ) Less(i, j int) bool {
	if pq[i].dist == pq[j].dist {
		return pq[i].col < pq[j].col
	}

	return pq[i].dist < pq[j].dist
}

// Swap swaps two elements in the heap.
func (pq columnPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x, which must be a columnItem.
func (pq *columnPQ) Push(x interface{}) { *pq = append(*pq, x.(columnItem)) }

// Pop removes and returns the last element.
func (pq *columnPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
