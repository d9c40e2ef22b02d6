package maxflow

import (
	"github.com/lrleon/Aleph-w-sub008/container/pqueue"
	"github.com/lrleon/Aleph-w-sub008/container/queue"
	"github.com/lrleon/Aleph-w-sub008/core"
)

// selector picks which active node (positive excess, not source or sink)
// to discharge next. PreflowFIFO, PreflowMaxHeight and PreflowRandom are
// the same generic push-relabel loop parameterized by one of these.
type selector[N any] interface {
	Add(v *core.Node[N])
	Empty() bool
	Next() *core.Node[N]
}

// fifoSelector discharges active nodes in the order they first became
// active, skipping a node already queued.
type fifoSelector[N any] struct {
	q      *queue.Queue[*core.Node[N]]
	queued map[*core.Node[N]]bool
}

func newFIFOSelector[N any]() *fifoSelector[N] {
	return &fifoSelector[N]{q: queue.New[*core.Node[N]](), queued: make(map[*core.Node[N]]bool)}
}

func (s *fifoSelector[N]) Add(v *core.Node[N]) {
	if s.queued[v] {
		return
	}
	s.queued[v] = true
	s.q.Push(v)
}

func (s *fifoSelector[N]) Empty() bool { return s.q.Empty() }

func (s *fifoSelector[N]) Next() *core.Node[N] {
	v := s.q.Pop()
	s.queued[v] = false
	return v
}

// maxHeightSelector always discharges the active node with the greatest
// current height, the classical push-relabel heuristic that bounds the
// number of relabels tightly. It keys the addressable heap by "a sorts
// before b iff a > b", so the largest height extracts first; since height
// only ever increases, every re-key during a node's lifetime is a valid
// DecreaseKey call under that flipped order.
type maxHeightSelector[N any] struct {
	height map[*core.Node[N]]int64
	heap   *pqueue.Heap[int64, *core.Node[N]]
	bound  map[*core.Node[N]]*pqueue.Entry[int64, *core.Node[N]]
}

func newMaxHeightSelector[N any](height map[*core.Node[N]]int64) *maxHeightSelector[N] {
	return &maxHeightSelector[N]{
		height: height,
		heap:   pqueue.NewHeap[int64, *core.Node[N]](func(a, b int64) bool { return a > b }),
		bound:  make(map[*core.Node[N]]*pqueue.Entry[int64, *core.Node[N]]),
	}
}

func (s *maxHeightSelector[N]) Add(v *core.Node[N]) {
	h := s.height[v]
	if e, ok := s.bound[v]; ok {
		if h > e.Key() {
			_ = s.heap.DecreaseKey(e, h)
		}
		return
	}
	s.bound[v] = s.heap.Insert(h, v)
}

func (s *maxHeightSelector[N]) Empty() bool { return s.heap.Len() == 0 }

func (s *maxHeightSelector[N]) Next() *core.Node[N] {
	_, v, _ := s.heap.ExtractMin()
	delete(s.bound, v)
	return v
}

// selectorFactory builds a fresh selector bound to the run's height map
// (maxHeightSelector reads it; the others ignore it).
type selectorFactory[N any] func(height map[*core.Node[N]]int64) selector[N]

// preflowPush runs the generic push-relabel loop: saturate every arc out of
// source, then repeatedly discharge the node sel picks until none remain
// active. Flow is mutated directly on the network's own arcs — there is no
// separate residual graph to copy back from, consistent with augment's
// approach for the two augmenting-path algorithms.
func preflowPush[N, A any](nw *core.Network[N, A], source, sink *core.Node[N], newSel selectorFactory[N]) (int64, error) {
	if source == nil || sink == nil {
		return 0, ErrNilTerminal
	}
	nw.ResetFlow()

	height := make(map[*core.Node[N]]int64)
	excess := make(map[*core.Node[N]]int64)
	height[source] = int64(nw.NumNodes())

	sel := newSel(height)
	activate := func(v *core.Node[N]) {
		if v == source || v == sink || excess[v] <= 0 {
			return
		}
		sel.Add(v)
	}

	out := nw.OutArcs(source)
	for out.HasNext() {
		a, err := out.Next()
		if err != nil {
			break
		}
		w := nw.GetTgtNode(a)
		if w == source || a.Capacity <= 0 {
			continue
		}
		a.Flow = a.Capacity
		excess[w] += a.Capacity
		excess[source] -= a.Capacity
		activate(w)
	}

	for !sel.Empty() {
		u := sel.Next()
		if excess[u] <= 0 {
			continue
		}
		discharge[N, A](nw, u, height, excess, activate)
	}

	if err := nw.VerifyFlowConservation(source, sink); err != nil {
		return 0, err
	}
	return excess[sink], nil
}

// discharge pushes u's excess along every admissible residual arc (one
// whose other endpoint sits exactly one level below u), relabeling u to the
// lowest admissible height whenever no admissible arc remains, until u's
// excess is drained or u has no residual neighbor left at all (only
// possible when sink is unreachable from u, in which case the excess sits
// there permanently).
func discharge[N, A any](nw *core.Network[N, A], u *core.Node[N], height, excess map[*core.Node[N]]int64, activate func(*core.Node[N])) {
	for excess[u] > 0 {
		pushed := false

		out := nw.OutArcs(u)
		for out.HasNext() {
			a, err := out.Next()
			if err != nil {
				break
			}
			w := nw.GetTgtNode(a)
			if w == u || excess[u] <= 0 {
				continue
			}
			if r := nw.ForwardResidual(a); r > 0 && height[u] == height[w]+1 {
				amt := min64(excess[u], r)
				a.Flow += amt
				excess[u] -= amt
				excess[w] += amt
				activate(w)
				pushed = true
			}
		}

		if excess[u] > 0 {
			in := nw.InArcs(u)
			for in.HasNext() {
				a, err := in.Next()
				if err != nil {
					break
				}
				w := nw.GetSrcNode(a)
				if w == u || excess[u] <= 0 {
					continue
				}
				if r := nw.BackwardResidual(a); r > 0 && height[u] == height[w]+1 {
					amt := min64(excess[u], r)
					a.Flow -= amt
					excess[u] -= amt
					excess[w] += amt
					activate(w)
					pushed = true
				}
			}
		}

		if excess[u] == 0 {
			return
		}
		if pushed {
			continue
		}
		if !relabel(nw, u, height) {
			return
		}
	}
}

// relabel raises u's height to one more than the lowest height among its
// residual neighbors, the minimum increase that makes at least one arc
// admissible again. It reports false if u has no residual neighbor at all.
func relabel[N, A any](nw *core.Network[N, A], u *core.Node[N], height map[*core.Node[N]]int64) bool {
	min := int64(-1)
	consider := func(w *core.Node[N]) {
		if w == u {
			return
		}
		if min == -1 || height[w] < min {
			min = height[w]
		}
	}

	out := nw.OutArcs(u)
	for out.HasNext() {
		a, err := out.Next()
		if err != nil {
			break
		}
		if nw.ForwardResidual(a) > 0 {
			consider(nw.GetTgtNode(a))
		}
	}
	in := nw.InArcs(u)
	for in.HasNext() {
		a, err := in.Next()
		if err != nil {
			break
		}
		if nw.BackwardResidual(a) > 0 {
			consider(nw.GetSrcNode(a))
		}
	}

	if min == -1 {
		return false
	}
	height[u] = min + 1
	return true
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

// PreflowFIFO computes max-flow by push-relabel, discharging active nodes
// in first-activated-first-discharged order.
func PreflowFIFO[N, A any](nw *core.Network[N, A], source, sink *core.Node[N]) (int64, error) {
	return preflowPush[N, A](nw, source, sink, func(map[*core.Node[N]]int64) selector[N] { return newFIFOSelector[N]() })
}

// PreflowMaxHeight computes max-flow by push-relabel, always discharging
// the active node currently at the greatest height.
func PreflowMaxHeight[N, A any](nw *core.Network[N, A], source, sink *core.Node[N]) (int64, error) {
	return preflowPush[N, A](nw, source, sink, func(height map[*core.Node[N]]int64) selector[N] { return newMaxHeightSelector[N](height) })
}
