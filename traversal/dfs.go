package traversal

import (
	"github.com/lrleon/Aleph-w-sub008/container/stack"
	"github.com/lrleon/Aleph-w-sub008/core"
)

// DFS walks g from start in depth-first order: the first-discovered arc to
// a node wins when two paths race to it. visit may be nil to
// just compute the reachable component and its DFS tree.
func DFS[N, A any](g *core.Graph[N, A], start *core.Node[N], visit Visitor[N]) *Result[N, A] {
	return walk[N, A](g, start, nil, stack.New[*core.Arc[N, A]](), visit)
}

// DFSTo walks g from start until target is first reached (or the
// reachable component is exhausted), returning Result.Reached to
// distinguish "found" from "unreachable".
func DFSTo[N, A any](g *core.Graph[N, A], start, target *core.Node[N]) *Result[N, A] {
	return walk[N, A](g, start, target, stack.New[*core.Arc[N, A]](), nil)
}
