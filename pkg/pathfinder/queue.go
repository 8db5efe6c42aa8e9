package pathfinder

import (
	"container/heap"

	"github.com/chazu/wayfarer/pkg/graph"
)

// queueItem is a single entry in the open set's backing heap, grounded
// on the teacher's pathNode/nodeHeap pair (pkg/unit/pathfind.go) but
// generalized with a lookup map for true decrease-key support instead
// of plain re-push, and a monotonic sequence number for FIFO
// tie-breaking among equal keys — both required by spec.md §9.
type queueItem struct {
	vertex *graph.Vertex
	key    float64
	seq    int
	index  int
}

type itemHeap []*queueItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap) Push(x interface{}) {
	item := x.(*queueItem)
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// openSet is a keyed min-priority queue: pushing a vertex already present
// updates its key in place (decrease-key) instead of creating a
// duplicate entry.
type openSet struct {
	heap  itemHeap
	items map[string]*queueItem
	seq   int
}

func newOpenSet() *openSet {
	return &openSet{items: make(map[string]*queueItem)}
}

func (o *openSet) push(v *graph.Vertex, key float64) {
	if item, ok := o.items[v.ID()]; ok {
		if key < item.key {
			item.key = key
			heap.Fix(&o.heap, item.index)
		}
		return
	}
	item := &queueItem{vertex: v, key: key, seq: o.seq}
	o.seq++
	o.items[v.ID()] = item
	heap.Push(&o.heap, item)
}

func (o *openSet) pop() *graph.Vertex {
	item := heap.Pop(&o.heap).(*queueItem)
	delete(o.items, item.vertex.ID())
	return item.vertex
}

func (o *openSet) len() int { return len(o.heap) }
