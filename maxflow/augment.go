package maxflow

import (
	"math"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// semiStep is one hop of a residual path: push additional flow forward
// along arc, or cancel flow already pushed backward along it, depending on
// dir. A semi-path is the ordered slice of these steps from source to sink;
// it stands in for a materialized residual arc without ever allocating one.
type semiStep[N, A any] struct {
	arc *core.Arc[N, A]
	dir direction
}

// frontier is the minimal shape DFS (stack) and BFS (queue) share, letting
// findAugmentingPath stay oblivious to which search order it is running
// (mirrors traversal.frontier).
type frontier[T any] interface {
	Push(T)
	Pop() T
	Empty() bool
}

// findAugmentingPath searches f's traversal order for a residual path from
// source to sink: at each node it considers both forward residual arcs
// (capacity - flow > 0, walked via OutArcs) and backward residual arcs
// (flow > 0, walked via InArcs, which lets already-pushed flow be
// canceled). Self-loops never contribute a step. Returns nil if sink is
// unreachable in the residual graph.
func findAugmentingPath[N, A any](nw *core.Network[N, A], source, sink *core.Node[N], f frontier[*core.Node[N]]) []semiStep[N, A] {
	nw.ResetNodes()
	visited := map[*core.Node[N]]bool{source: true}
	step := make(map[*core.Node[N]]semiStep[N, A])
	from := make(map[*core.Node[N]]*core.Node[N])

	f.Push(source)
	reached := false
	for !f.Empty() {
		v := f.Pop()
		if v == sink {
			reached = true
			break
		}

		out := nw.OutArcs(v)
		for out.HasNext() {
			a, err := out.Next()
			if err != nil {
				break
			}
			w := nw.GetTgtNode(a)
			if w == v || visited[w] || nw.ForwardResidual(a) <= 0 {
				continue
			}
			visited[w] = true
			step[w] = semiStep[N, A]{arc: a, dir: forward}
			from[w] = v
			f.Push(w)
		}

		in := nw.InArcs(v)
		for in.HasNext() {
			a, err := in.Next()
			if err != nil {
				break
			}
			w := nw.GetSrcNode(a)
			if w == v || visited[w] || nw.BackwardResidual(a) <= 0 {
				continue
			}
			visited[w] = true
			step[w] = semiStep[N, A]{arc: a, dir: backward}
			from[w] = v
			f.Push(w)
		}
	}

	if !reached {
		return nil
	}

	var path []semiStep[N, A]
	for cur := sink; cur != source; cur = from[cur] {
		path = append(path, step[cur])
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// slack returns the bottleneck residual capacity along path: the maximum
// amount that can be pushed through every step at once.
func slack[N, A any](nw *core.Network[N, A], path []semiStep[N, A]) int64 {
	min := int64(math.MaxInt64)
	for _, s := range path {
		var r int64
		if s.dir == forward {
			r = nw.ForwardResidual(s.arc)
		} else {
			r = nw.BackwardResidual(s.arc)
		}
		if r < min {
			min = r
		}
	}
	return min
}

// pushFlow increases flow forward along each forward step and decreases it
// along each backward step, by amount.
func pushFlow[N, A any](path []semiStep[N, A], amount int64) {
	for _, s := range path {
		if s.dir == forward {
			s.arc.Flow += amount
		} else {
			s.arc.Flow -= amount
		}
	}
}

// augment repeatedly finds an augmenting path via newFrontier's traversal
// order and pushes its bottleneck amount until none remains, then verifies
// flow conservation holds at every internal node. This is the shared body
// of FordFulkerson and EdmondsKarp; they differ only in whether newFrontier
// returns a stack or a queue.
func augment[N, A any](nw *core.Network[N, A], source, sink *core.Node[N], newFrontier func() frontier[*core.Node[N]]) (int64, error) {
	if source == nil || sink == nil {
		return 0, ErrNilTerminal
	}
	nw.ResetFlow()

	var total int64
	for {
		path := findAugmentingPath[N, A](nw, source, sink, newFrontier())
		if path == nil {
			break
		}
		amt := slack(nw, path)
		pushFlow(path, amt)
		total += amt
	}

	if err := nw.VerifyFlowConservation(source, sink); err != nil {
		return 0, err
	}
	return total, nil
}
