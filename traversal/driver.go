package traversal

import "github.com/lrleon/Aleph-w-sub008/core"

// Visitor is invoked once per node the first time it becomes current.
// Returning false cancels the walk at the next safe point; the graph is
// left with internally consistent bit state.
type Visitor[N any] func(v *core.Node[N]) bool

// frontier is the scratch-container abstraction shared by DFS (LIFO) and
// BFS (FIFO); container/stack.Stack and container/queue.Queue both
// satisfy it.
type frontier[T any] interface {
	Push(T)
	Pop() T
	Empty() bool
}

// Result carries the traversal order and the parent-arc map a caller can
// use to reconstruct a path back to the start node.
type Result[N, A any] struct {
	Order   []*core.Node[N]
	Parent  map[*core.Node[N]]*core.Arc[N, A]
	Reached bool // whether a Target node (if one was requested) was visited
}

// walk runs the shared traversal kernel using frontier f as
// the scratch container (a stack.Stack gives DFS order, a queue.Queue
// gives BFS order). target may be nil to visit the whole reachable
// component.
func walk[N, A any](g *core.Graph[N, A], start *core.Node[N], target *core.Node[N], f frontier[*core.Arc[N, A]], visit Visitor[N]) *Result[N, A] {
	g.ResetNodes()
	g.ResetArcs()

	res := &Result[N, A]{Parent: make(map[*core.Node[N]]*core.Arc[N, A])}

	start.SetBit(core.BitProcessed)
	res.Order = append(res.Order, start)
	if target != nil && start == target {
		res.Reached = true
	}
	if visit != nil && !visit(start) {
		return res
	}
	if res.Reached && target != nil {
		return res
	}

	pushFrom := func(v *core.Node[N]) {
		out := g.OutArcs(v)
		for out.HasNext() {
			a, err := out.Next()
			if err != nil {
				break
			}
			if a.TestBit(core.BitProcessed) || a.TestBit(core.BitProcessing) {
				continue
			}
			w, err := g.GetConnectedNode(a, v)
			if err != nil {
				continue
			}
			if w.TestBit(core.BitProcessed) || w.TestBit(core.BitProcessing) {
				a.SetBit(core.BitProcessed)
				continue
			}
			a.SetBit(core.BitProcessing)
			w.SetBit(core.BitProcessing)
			res.Parent[w] = a
			f.Push(a)
		}
	}

	pushFrom(start)

	for !f.Empty() {
		a := f.Pop()
		src := g.GetSrcNode(a)
		tgt := g.GetTgtNode(a)
		var cur *core.Node[N]
		switch {
		case !src.TestBit(core.BitProcessed):
			cur = src
		case !tgt.TestBit(core.BitProcessed):
			cur = tgt
		default:
			continue // both endpoints already processed: stale frontier entry
		}

		cur.SetBit(core.BitProcessed)
		a.SetBit(core.BitProcessed)
		res.Order = append(res.Order, cur)

		if target != nil && cur == target {
			res.Reached = true
			return res
		}
		if visit != nil && !visit(cur) {
			return res
		}
		pushFrom(cur)
	}

	return res
}
