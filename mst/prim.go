package mst

import (
	"github.com/lrleon/Aleph-w-sub008/container/pqueue"
	"github.com/lrleon/Aleph-w-sub008/core"
)

// Prim builds a minimum spanning tree of g starting from root, growing the
// tree one arc at a time via the addressable arc-heap: at each step it extracts the globally cheapest arc reaching an
// unprocessed node, marks that node BitProcessed, paints the arc
// BitSpanningTree, and feeds the node's outgoing arcs back into the heap
//. Fails with ErrNotConnected if root cannot reach every node.
func Prim[N, A any](g *core.Graph[N, A], root *core.Node[N]) (*Forest[N, A], error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	if root == nil {
		return nil, ErrNilRoot
	}
	g.ResetNodes()
	g.ResetArcs()

	processed := make(map[*core.Node[N]]bool)
	heap := pqueue.NewArcHeap[N, A]()

	feed := func(v *core.Node[N]) {
		out := g.OutArcs(v)
		for out.HasNext() {
			a, err := out.Next()
			if err != nil {
				break
			}
			w, err := g.GetConnectedNode(a, v)
			if err != nil || processed[w] {
				continue
			}
			heap.PutArc(w, a, a.Weight)
		}
	}

	root.SetBit(core.BitProcessed)
	processed[root] = true
	feed(root)

	forest := &Forest[N, A]{}
	for heap.Len() > 0 {
		tgt, a, weight, err := heap.ExtractMinArc()
		if err != nil {
			break
		}
		if processed[tgt] {
			continue // stale binding from before a better arc replaced it
		}
		tgt.SetBit(core.BitProcessed)
		processed[tgt] = true
		a.SetBit(core.BitSpanningTree)
		forest.Arcs = append(forest.Arcs, a)
		forest.TotalWeight += weight
		feed(tgt)
	}

	if len(processed) != g.NumNodes() {
		return nil, ErrNotConnected
	}
	forest.Components = 1
	return forest, nil
}
