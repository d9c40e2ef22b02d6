package traversal

import (
	"github.com/lrleon/Aleph-w-sub008/container/queue"
	"github.com/lrleon/Aleph-w-sub008/core"
)

// BFS walks g from start in non-decreasing hop-count order, ties broken by
// insertion order in the adjacency list.
func BFS[N, A any](g *core.Graph[N, A], start *core.Node[N], visit Visitor[N]) *Result[N, A] {
	return walk[N, A](g, start, nil, queue.New[*core.Arc[N, A]](), visit)
}

// BFSTo walks g from start until target is first reached, which — because
// BFS settles nodes in hop-count order — also yields a shortest unweighted
// path via Result.Parent.
func BFSTo[N, A any](g *core.Graph[N, A], start, target *core.Node[N]) *Result[N, A] {
	return walk[N, A](g, start, target, queue.New[*core.Arc[N, A]](), nil)
}

// Path reconstructs the path from start to target out of r.Parent
// (empty if target was never reached).
func Path[N, A any](g *core.Graph[N, A], start, target *core.Node[N], r *Result[N, A]) *core.Path[N, A] {
	if !r.Reached && start != target {
		return core.NewPath[N, A](g)
	}
	return core.BuildPath(g, start, target, r.Parent)
}
