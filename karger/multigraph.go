package karger

import (
	"math/rand"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// auxNode is a super-node of the auxiliary multigraph: the list of
// original nodes it currently represents. A merged-away super-node is set
// to nil in its slot rather than removed, so arc endpoint indices stay
// valid throughout a contraction run.
type auxNode[N any] struct {
	members []*core.Node[N]
}

// auxArc carries a back-pointer to the original arc it was snapshotted
// from, so the final cut can be reported in terms of the caller's graph.
type auxArc[N, A any] struct {
	u, v   int
	source *core.Arc[N, A]
}

// multigraph is the auxiliary structure contraction operates on.
type multigraph[N, A any] struct {
	nodes []*auxNode[N]
	arcs  []*auxArc[N, A]
	live  int
}

// snapshot copies g's current topology into a fresh multigraph, dropping
// self-loops (a self-loop can never be part of a minimum cut).
func snapshot[N, A any](g *core.Graph[N, A]) *multigraph[N, A] {
	id := make(map[*core.Node[N]]int, g.NumNodes())
	mg := &multigraph[N, A]{}

	nit := g.Nodes()
	for nit.HasNext() {
		v, err := nit.Next()
		if err != nil {
			break
		}
		id[v] = len(mg.nodes)
		mg.nodes = append(mg.nodes, &auxNode[N]{members: []*core.Node[N]{v}})
	}
	mg.live = len(mg.nodes)

	ait := g.Arcs()
	for ait.HasNext() {
		a, err := ait.Next()
		if err != nil {
			break
		}
		u, v := id[g.GetSrcNode(a)], id[g.GetTgtNode(a)]
		if u == v {
			continue
		}
		mg.arcs = append(mg.arcs, &auxArc[N, A]{u: u, v: v, source: a})
	}
	return mg
}

// clone deep-copies mg so two independent contraction runs (Karger-Stein's
// two recursive branches) can proceed from the same starting point.
func (mg *multigraph[N, A]) clone() *multigraph[N, A] {
	nodes := make([]*auxNode[N], len(mg.nodes))
	for i, nd := range mg.nodes {
		if nd == nil {
			continue
		}
		members := make([]*core.Node[N], len(nd.members))
		copy(members, nd.members)
		nodes[i] = &auxNode[N]{members: members}
	}
	arcs := make([]*auxArc[N, A], len(mg.arcs))
	for i, a := range mg.arcs {
		cp := *a
		arcs[i] = &cp
	}
	return &multigraph[N, A]{nodes: nodes, arcs: arcs, live: mg.live}
}

// contract repeatedly picks a uniformly random arc and merges its
// endpoints until targetNodes super-nodes remain (2 for a plain Karger
// trial, or Karger-Stein's intermediate target otherwise). Every arc
// between the merged pair becomes a self-loop and is
// dropped; every other arc touching either endpoint is rebound to the
// surviving super-node.
func (mg *multigraph[N, A]) contract(rng *rand.Rand, targetNodes int) {
	for mg.live > targetNodes {
		picked := mg.arcs[rng.Intn(len(mg.arcs))]
		u, v := picked.u, picked.v

		mg.nodes[u].members = append(mg.nodes[u].members, mg.nodes[v].members...)
		mg.nodes[v] = nil
		mg.live--

		kept := mg.arcs[:0]
		for _, a := range mg.arcs {
			switch {
			case a.u == v:
				a.u = u
			case a.v == v:
				a.v = u
			}
			if a.u == a.v {
				continue
			}
			kept = append(kept, a)
		}
		mg.arcs = kept
	}
}

// cutResult reads off the current partition and crossing arcs as a Cut.
// Meaningful once mg.live == 2.
func (mg *multigraph[N, A]) cutResult() *Cut[N, A] {
	var sides [][]*core.Node[N]
	for _, nd := range mg.nodes {
		if nd != nil {
			sides = append(sides, nd.members)
		}
	}
	arcs := make([]*core.Arc[N, A], len(mg.arcs))
	for i, a := range mg.arcs {
		arcs[i] = a.source
	}
	return &Cut[N, A]{Size: len(arcs), Arcs: arcs, Side: sides}
}
