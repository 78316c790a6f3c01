package search

import (
	"container/heap"

	"github.com/matzehuels/hillclimb/pkg/terrain"
)

// frontierItem is a frontier entry. Stale entries (a cheaper g was pushed
// later) are skipped on pop rather than removed.
type frontierItem struct {
	id  terrain.CellID
	g   int    // steps from the source
	f   int    // g + heuristic
	seq uint64 // insertion order, breaks ties on f
}

// frontier is a binary min-heap of frontierItem ordered by (f, seq).
type frontier struct {
	items []frontierItem
	next  uint64
}

func (q *frontier) Len() int { return len(q.items) }

func (q *frontier) Less(i, j int) bool {
	a, b := q.items[i], q.items[j]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

func (q *frontier) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *frontier) Push(x any) { q.items = append(q.items, x.(frontierItem)) }

func (q *frontier) Pop() any {
	n := len(q.items)
	it := q.items[n-1]
	q.items = q.items[:n-1]
	return it
}

func (q *frontier) push(id terrain.CellID, g, f int) {
	heap.Push(q, frontierItem{id: id, g: g, f: f, seq: q.next})
	q.next++
}

func (q *frontier) pop() frontierItem {
	return heap.Pop(q).(frontierItem)
}
