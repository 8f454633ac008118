package benchmark_test

import (
	"container/heap"
	"sort"
)

type topKItem struct {
	idx  int
	dist float64
}

// topKHeap is a max-heap by dist so the largest (worst) distance is popped first.
type topKHeap []topKItem

func (h topKHeap) Len() int           { return len(h) }
func (h topKHeap) Less(i, j int) bool { return h[i].dist > h[j].dist }
func (h topKHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *topKHeap) Push(x any)        { *h = append(*h, x.(topKItem)) }
func (h *topKHeap) Pop() any          { old := *h; n := len(old); x := old[n-1]; *h = old[:n-1]; return x }

// heapTopK returns the indices of the k smallest distances in ascending order.
// Distances are assumed distinct.
func heapTopK(distances []float64, k int) []int {
	h := make(topKHeap, 0, k)
	for i, d := range distances {
		if len(h) < k {
			heap.Push(&h, topKItem{idx: i, dist: d})
			continue
		}
		if d < h[0].dist {
			h[0] = topKItem{idx: i, dist: d}
			heap.Fix(&h, 0)
		}
	}

	out := make([]topKItem, len(h))
	copy(out, h)
	sort.Slice(out, func(i, j int) bool { return out[i].dist < out[j].dist })

	idx := make([]int, len(out))
	for i, it := range out {
		idx[i] = it.idx
	}
	return idx
}
