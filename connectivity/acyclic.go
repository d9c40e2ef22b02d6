package connectivity

import "github.com/lrleon/Aleph-w-sub008/core"

// IsAcyclicUndirected reports whether an undirected g is free of cycles
//. It short-circuits to "has a cycle" whenever E >= V (any
// forest has at most V-1 arcs); otherwise it runs a DFS that reports the
// first back edge it finds as the cycle witness. It is a standalone check:
// no other package in this module calls it, and mst.Kruskal / mst.KruskalTree
// do not run it on the trees they build.
func IsAcyclicUndirected[N, A any](g *core.Graph[N, A]) (bool, *core.Path[N, A], error) {
	if g.Directed() {
		return false, nil, ErrDirectedGraph
	}
	if g.NumArcs() >= g.NumNodes() {
		cycle, _ := findUndirectedCycle[N, A](g)
		return false, cycle, nil
	}
	cycle, found := findUndirectedCycle[N, A](g)
	return !found, cycle, nil
}

// findUndirectedCycle runs the DFS itself, skipping only the literal arc
// object the search arrived through (not merely "the parent node"), so a
// second parallel arc between the same pair of nodes is correctly reported
// as a cycle.
func findUndirectedCycle[N, A any](g *core.Graph[N, A]) (*core.Path[N, A], bool) {
	g.ResetNodes()

	type frame struct {
		node *core.Node[N]
		via  *core.Arc[N, A]
		it   *core.OutIterator[N, A]
	}
	pred := make(map[*core.Node[N]]*core.Arc[N, A])

	nit := g.Nodes()
	for nit.HasNext() {
		root, err := nit.Next()
		if err != nil {
			break
		}
		if root.TestBit(core.BitProcessed) {
			continue
		}

		var stack []frame
		root.SetBit(core.BitProcessed)
		stack = append(stack, frame{node: root, it: g.OutArcs(root)})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if !top.it.HasNext() {
				stack = stack[:len(stack)-1]
				continue
			}
			a, err := top.it.Next()
			if err != nil {
				break
			}
			if a == top.via {
				continue
			}
			w, err := g.GetConnectedNode(a, top.node)
			if err != nil {
				continue
			}

			if w == top.node {
				path := core.NewPath[N, A](g)
				path.Append(w, nil)
				path.Append(w, a)
				return path, true
			}
			if w.TestBit(core.BitProcessed) {
				path := core.BuildPath[N, A](g, w, top.node, pred)
				path.Append(w, a)
				return path, true
			}
			pred[w] = a
			w.SetBit(core.BitProcessed)
			stack = append(stack, frame{node: w, via: a, it: g.OutArcs(w)})
		}
	}

	return nil, false
}
