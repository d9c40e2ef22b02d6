package mst

import (
	"sort"

	"github.com/lrleon/Aleph-w-sub008/container/dsu"
	"github.com/lrleon/Aleph-w-sub008/core"
)

// Kruskal builds a minimum spanning tree (or, on a disconnected graph, a
// minimum spanning forest) of g by sorting arcs by weight and adding each
// one that does not close a cycle, tracked by a fixed-size disjoint-set-
// union keyed by node insertion order. Arc.Weight ties are
// broken by sort.Slice's relative input order, which is not required to
// be stable across representations.
//
// Kruskal paints BitSpanningTree on every chosen arc and leaves it there
// for the caller; see KruskalTree for the "build separate tree" surface
// form.
func Kruskal[N, A any](g *core.Graph[N, A]) (*Forest[N, A], error) {
	if g.Directed() {
		return nil, ErrDirectedGraph
	}
	g.ResetArcs()

	id := make(map[*core.Node[N]]int, g.NumNodes())
	nit := g.Nodes()
	for nit.HasNext() {
		v, err := nit.Next()
		if err != nil {
			break
		}
		id[v] = len(id)
	}

	arcs := make([]*core.Arc[N, A], 0, g.NumArcs())
	ait := g.Arcs()
	for ait.HasNext() {
		a, err := ait.Next()
		if err != nil {
			break
		}
		arcs = append(arcs, a)
	}
	sort.Slice(arcs, func(i, j int) bool { return arcs[i].Weight < arcs[j].Weight })

	d := dsu.NewFixed(len(id))
	forest := &Forest[N, A]{}
	for _, a := range arcs {
		u := id[g.GetSrcNode(a)]
		v := id[g.GetTgtNode(a)]
		connected, err := d.Connected(u, v)
		if err != nil {
			return nil, err
		}
		if connected {
			continue
		}
		if err := d.Union(u, v); err != nil {
			return nil, err
		}
		a.SetBit(core.BitSpanningTree)
		forest.Arcs = append(forest.Arcs, a)
		forest.TotalWeight += a.Weight
		if d.NumBlocks() == 1 {
			break
		}
	}
	forest.Components = d.NumBlocks()
	return forest, nil
}

// KruskalTree runs Kruskal and additionally builds a standalone Graph
// holding the chosen arcs, with every node and arc mapped back to its
// counterpart in g via core.MapNode / core.MapArc.
func KruskalTree[N, A any](g *core.Graph[N, A]) (*core.Graph[N, A], *Forest[N, A], error) {
	forest, err := Kruskal(g)
	if err != nil {
		return nil, nil, err
	}

	g.ResetMapping()
	tree := core.NewListGraph[N, A](false)

	nit := g.Nodes()
	for nit.HasNext() {
		v, err := nit.Next()
		if err != nil {
			break
		}
		dst := tree.InsertNode(v.Payload)
		g.MapNode(v, dst)
	}

	for _, a := range forest.Arcs {
		srcDst, _ := g.MappedNode(g.GetSrcNode(a))
		tgtDst, _ := g.MappedNode(g.GetTgtNode(a))
		newArc, err := tree.InsertArc(srcDst, tgtDst, a.Payload)
		if err != nil {
			return nil, nil, err
		}
		newArc.Weight = a.Weight
		g.MapArc(a, newArc)
	}

	return tree, forest, nil
}
