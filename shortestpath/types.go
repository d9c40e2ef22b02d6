package shortestpath

import (
	"errors"
	"math"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// Infinite is the sentinel distance reported for a node the algorithm
// never reached.
const Infinite int64 = math.MaxInt64

// ErrNilSource is returned when the caller passes a nil source node.
var ErrNilSource = errors.New("shortestpath: nil source node")

// ErrNegativeCycle is returned by BellmanFord when a negative-weight
// cycle reachable from the source is found.
var ErrNegativeCycle = errors.New("shortestpath: negative cycle reachable from source")

// Result is a single-source shortest-path tree: the settled distance and
// predecessor arc for every node Dijkstra or BellmanFord reached.
type Result[N, A any] struct {
	Distance    map[*core.Node[N]]int64
	Predecessor map[*core.Node[N]]*core.Arc[N, A]
	Order       []*core.Node[N]
}

func newResult[N, A any](source *core.Node[N]) *Result[N, A] {
	return &Result[N, A]{
		Distance:    map[*core.Node[N]]int64{source: 0},
		Predecessor: make(map[*core.Node[N]]*core.Arc[N, A]),
	}
}

// DistanceOf returns the settled distance to v, or Infinite if v was never
// reached.
func (r *Result[N, A]) DistanceOf(v *core.Node[N]) int64 {
	if d, ok := r.Distance[v]; ok {
		return d
	}
	return Infinite
}

// Reached reports whether v has a known finite distance.
func (r *Result[N, A]) Reached(v *core.Node[N]) bool {
	_, ok := r.Distance[v]
	return ok
}

// PathTo reconstructs the shortest path from source to target, returning
// an empty Path if target was never reached; "no path" is distinguished
// from an error by checking emptiness.
func (r *Result[N, A]) PathTo(g *core.Graph[N, A], source, target *core.Node[N]) *core.Path[N, A] {
	if !r.Reached(target) && source != target {
		return core.NewPath[N, A](g)
	}
	return core.BuildPath(g, source, target, r.Predecessor)
}

// paintTree sets the spanning-tree bit on every arc recorded as a
// predecessor, so a caller can recover the shortest-path tree via a
// filter-iterator the same way Kruskal/Prim's output is consumed.
func paintTree[N, A any](r *Result[N, A]) {
	for _, a := range r.Predecessor {
		a.SetBit(core.BitSpanningTree)
	}
}
