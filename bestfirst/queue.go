// SPDX-License-Identifier: MIT

package bestfirst

// item is one frontier entry. seq is the push counter used to break
// score ties in first-pushed, first-popped order.
type item struct {
	id    int
	score int
	seq   int
}

// frontier is a min-heap of *item ordered by score, then seq.
// Each node is pushed at most once, so there are no stale entries.
type frontier []*item

// Len returns the number of items in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less orders by score, then by push sequence.
func (pq frontier) Less(i, j int) bool {
	if pq[i].score != pq[j].score {
		return pq[i].score < pq[j].score
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds x onto the heap. Called by heap.Push; x must be *item.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

// Pop removes and returns the last element. Called by heap.Pop.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
