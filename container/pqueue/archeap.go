package pqueue

import "github.com/lrleon/Aleph-w-sub008/core"

// ArcHeap encapsulates the usage pattern shared by Dijkstra and Prim:
// given a (target, arc) pair, PutArc either inserts a new entry keyed by
// the arc's weight, or — if target already has a bound entry — keeps
// whichever of the two arcs is better, discarding the loser. This
// guarantees the heap never holds two entries for the same target and
// avoids the "stale entry" problem without any marking.
//
// Tie-break policy: when the incoming arc's weight equals the
// incumbent's, the incumbent is kept.
type ArcHeap[N, A any] struct {
	heap    *Heap[int64, arcHeapItem[N, A]]
	binding map[*core.Node[N]]*Entry[int64, arcHeapItem[N, A]]
}

type arcHeapItem[N, A any] struct {
	target *core.Node[N]
	arc    *core.Arc[N, A]
}

// NewArcHeap returns an empty ArcHeap ordered by ascending arc weight.
func NewArcHeap[N, A any]() *ArcHeap[N, A] {
	return &ArcHeap[N, A]{
		heap:    NewHeap[int64, arcHeapItem[N, A]](func(a, b int64) bool { return a < b }),
		binding: make(map[*core.Node[N]]*Entry[int64, arcHeapItem[N, A]]),
	}
}

// Len returns the number of distinct targets currently bound.
func (h *ArcHeap[N, A]) Len() int { return h.heap.Len() }

// PutArc offers arc as a candidate best-arc reaching target with the given
// weight. If target has no bound entry, arc is inserted. If it does, arc
// replaces the incumbent only when weight is strictly smaller.
func (h *ArcHeap[N, A]) PutArc(target *core.Node[N], arc *core.Arc[N, A], weight int64) {
	if e, ok := h.binding[target]; ok {
		if weight < e.Key() {
			_ = h.heap.DecreaseKey(e, weight)
			e.value.arc = arc
		}
		return
	}
	e := h.heap.Insert(weight, arcHeapItem[N, A]{target: target, arc: arc})
	h.binding[target] = e
}

// ExtractMinArc returns the globally best (target, arc, weight) triple and
// clears the target→entry binding for its target. The target is returned
// explicitly because, for an undirected arc, the caller cannot otherwise
// recover which endpoint this binding was keyed on.
func (h *ArcHeap[N, A]) ExtractMinArc() (*core.Node[N], *core.Arc[N, A], int64, error) {
	weight, item, err := h.heap.ExtractMin()
	if err != nil {
		return nil, nil, 0, err
	}
	delete(h.binding, item.target)
	return item.target, item.arc, weight, nil
}

// Has reports whether target currently has a bound entry.
func (h *ArcHeap[N, A]) Has(target *core.Node[N]) bool {
	_, ok := h.binding[target]
	return ok
}
