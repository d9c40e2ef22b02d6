package shortestpath

import (
	"github.com/lrleon/Aleph-w-sub008/container/queue"
	"github.com/lrleon/Aleph-w-sub008/core"
)

func collectNodes[N, A any](g *core.Graph[N, A]) []*core.Node[N] {
	out := make([]*core.Node[N], 0, g.NumNodes())
	it := g.Nodes()
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, v)
	}
	return out
}

// relaxAll performs one round of relaxation over every outgoing arc of
// every node with a known distance, returning whether any distance
// improved and (arbitrarily) one node that did improve, which the
// classical variant uses to start cycle-witness extraction.
func relaxAll[N, A any](g *core.Graph[N, A], res *Result[N, A], nodes []*core.Node[N]) (*core.Node[N], bool) {
	var improved *core.Node[N]
	changed := false
	for _, v := range nodes {
		dv, ok := res.Distance[v]
		if !ok {
			continue
		}
		out := g.OutArcs(v)
		for out.HasNext() {
			a, err := out.Next()
			if err != nil {
				break
			}
			w, err := g.GetConnectedNode(a, v)
			if err != nil {
				continue
			}
			nd := dv + a.Weight
			if cur, ok := res.Distance[w]; !ok || nd < cur {
				res.Distance[w] = nd
				res.Predecessor[w] = a
				changed = true
				improved = w
			}
		}
	}
	return improved, changed
}

// BellmanFord is the classical variant: V-1 rounds relaxing
// every arc, then a final round that — if it still finds an improvement —
// witnesses a negative-weight cycle reachable from source. On success the
// predecessor arcs are painted with BitSpanningTree, exactly as Dijkstra's
// result is. On a negative cycle, it returns ErrNegativeCycle together
// with the cycle itself.
func BellmanFord[N, A any](g *core.Graph[N, A], source *core.Node[N]) (*Result[N, A], *core.Path[N, A], error) {
	if source == nil {
		return nil, nil, ErrNilSource
	}
	g.ResetNodes()
	g.ResetArcs()

	res := newResult[N, A](source)
	nodes := collectNodes(g)
	n := len(nodes)

	for i := 0; i < n-1; i++ {
		if _, changed := relaxAll(g, res, nodes); !changed {
			break
		}
	}

	witness, changed := relaxAll(g, res, nodes)
	if !changed {
		paintTree(res)
		return res, nil, nil
	}
	cycle := ComputeNegativeCycle(g, res, witness, n)
	return res, cycle, ErrNegativeCycle
}

// ComputeNegativeCycle is cycle-witness procedure (a): starting from a
// node known to still be relaxable after V-1 rounds, it walks predecessors
// V times to guarantee landing strictly inside the cycle, then follows
// predecessors again until a node repeats, which by construction is
// guaranteed to lie on a negative cycle.
func ComputeNegativeCycle[N, A any](g *core.Graph[N, A], res *Result[N, A], witness *core.Node[N], n int) *core.Path[N, A] {
	v := witness
	for i := 0; i < n; i++ {
		a, ok := res.Predecessor[v]
		if !ok {
			return core.NewPath[N, A](g)
		}
		prev, err := g.GetConnectedNode(a, v)
		if err != nil {
			return core.NewPath[N, A](g)
		}
		v = prev
	}
	start := v

	type step struct {
		node *core.Node[N]
		arc  *core.Arc[N, A]
	}
	var chain []step
	cur := start
	for {
		a, ok := res.Predecessor[cur]
		if !ok {
			return core.NewPath[N, A](g)
		}
		prev, err := g.GetConnectedNode(a, cur)
		if err != nil {
			return core.NewPath[N, A](g)
		}
		chain = append(chain, step{node: cur, arc: a})
		cur = prev
		if cur == start {
			break
		}
	}

	path := core.NewPath[N, A](g)
	path.Append(start, nil)
	for i := len(chain) - 1; i >= 0; i-- {
		path.Append(chain[i].node, chain[i].arc)
	}
	return path
}

// SearchNegativeCycle is cycle-witness procedure (b), an independent
// SPFA-style (fast Bellman-Ford) run: a FIFO of nodes whose distance just
// improved, relaxing only their outgoing arcs. A node that enters the
// queue more than n times witnesses a negative cycle. Returns the number
// of queue pops (nodes whose outgoing arcs were relaxed) consumed alongside
// the result, for diagnostic callers.
func SearchNegativeCycle[N, A any](g *core.Graph[N, A], source *core.Node[N]) (*Result[N, A], *core.Path[N, A], int, error) {
	if source == nil {
		return nil, nil, 0, ErrNilSource
	}
	g.ResetNodes()
	g.ResetArcs()

	res := newResult[N, A](source)
	n := g.NumNodes()

	enters := make(map[*core.Node[N]]int)
	inQueue := make(map[*core.Node[N]]bool)
	q := queue.New[*core.Node[N]]()
	q.Push(source)
	inQueue[source] = true
	enters[source] = 1

	iterations := 0
	for !q.Empty() {
		v := q.Pop()
		inQueue[v] = false
		iterations++

		dv := res.Distance[v]
		out := g.OutArcs(v)
		for out.HasNext() {
			a, err := out.Next()
			if err != nil {
				break
			}
			w, err := g.GetConnectedNode(a, v)
			if err != nil {
				continue
			}
			nd := dv + a.Weight
			cur, ok := res.Distance[w]
			if ok && nd >= cur {
				continue
			}
			res.Distance[w] = nd
			res.Predecessor[w] = a
			if inQueue[w] {
				continue
			}
			enters[w]++
			if enters[w] > n {
				cycle := ComputeNegativeCycle(g, res, w, n)
				return res, cycle, iterations, ErrNegativeCycle
			}
			q.Push(w)
			inQueue[w] = true
		}
	}

	paintTree(res)
	return res, nil, iterations, nil
}
