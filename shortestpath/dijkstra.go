package shortestpath

import (
	"github.com/lrleon/Aleph-w-sub008/container/pqueue"
	"github.com/lrleon/Aleph-w-sub008/core"
)

// options configures a single Dijkstra run.
type options[N, A any] struct {
	target *core.Node[N]
}

// Option configures Dijkstra.
type Option[N, A any] func(*options[N, A])

// WithTarget stops the walk as soon as target settles, instead of painting
// the full shortest-path tree.
func WithTarget[N, A any](target *core.Node[N]) Option[N, A] {
	return func(o *options[N, A]) { o.target = target }
}

// Dijkstra computes single-source shortest distances over g from source:
// reset all marks; the source's tentative distance is
// 0, every other node's is Infinite; repeatedly extract the globally
// closest unsettled node from the arc-heap, mark it BitProcessed, and
// relax its outgoing arcs. Each settled node's predecessor arc is painted
// with BitSpanningTree so the result also reads as a shortest-path tree.
//
// Arc.Weight must be non-negative. A negative weight is an unchecked
// precondition violation: Dijkstra's result is undefined in
// that case, and a caller that cannot rule it out must use BellmanFord.
func Dijkstra[N, A any](g *core.Graph[N, A], source *core.Node[N], opts ...Option[N, A]) (*Result[N, A], error) {
	if source == nil {
		return nil, ErrNilSource
	}
	cfg := options[N, A]{}
	for _, o := range opts {
		o(&cfg)
	}

	g.ResetNodes()
	g.ResetArcs()

	res := newResult[N, A](source)
	settled := make(map[*core.Node[N]]bool)
	heap := pqueue.NewArcHeap[N, A]()

	relax := func(v *core.Node[N], dv int64) {
		out := g.OutArcs(v)
		for out.HasNext() {
			a, err := out.Next()
			if err != nil {
				break
			}
			w, err := g.GetConnectedNode(a, v)
			if err != nil || settled[w] {
				continue
			}
			nd := dv + a.Weight
			if cur, ok := res.Distance[w]; !ok || nd < cur {
				res.Distance[w] = nd
				res.Predecessor[w] = a
				heap.PutArc(w, a, nd)
			}
		}
	}

	settle := func(v *core.Node[N]) {
		v.SetBit(core.BitProcessed)
		settled[v] = true
		res.Order = append(res.Order, v)
	}

	settle(source)
	relax(source, 0)

	for cfg.target == nil || !settled[cfg.target] {
		v, _, d, err := heap.ExtractMinArc()
		if err != nil {
			break // heap exhausted: remaining nodes are unreachable
		}
		if settled[v] {
			continue // stale binding from before a better arc replaced it
		}
		settle(v)
		relax(v, d)
	}

	paintTree(res)
	return res, nil
}
