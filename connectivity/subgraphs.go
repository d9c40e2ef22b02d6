package connectivity

import "github.com/lrleon/Aleph-w-sub008/core"

// Subgraphs materializes one standalone directed Graph per component of r,
// together with the inter-component arcs of g (the condensation's arc set
// as actual arcs, parallel arcs included). Every subgraph node and every
// copied intra-component arc is mapped back to its counterpart in g via
// g.MapNode / g.MapArc; the mapping registers are reset on entry.
func Subgraphs[N, A any](g *core.Graph[N, A], r *Result[N, A]) ([]*core.Graph[N, A], []*core.Arc[N, A], error) {
	g.ResetMapping()

	subs := make([]*core.Graph[N, A], len(r.Components))
	for i, comp := range r.Components {
		sub := core.NewListGraph[N, A](true)
		for _, v := range comp {
			g.MapNode(v, sub.InsertNode(v.Payload))
		}
		subs[i] = sub
	}

	var inter []*core.Arc[N, A]
	ait := g.Arcs()
	for ait.HasNext() {
		a, err := ait.Next()
		if err != nil {
			return nil, nil, err
		}
		src, tgt := g.GetSrcNode(a), g.GetTgtNode(a)
		cs, ct := r.ComponentOf[src], r.ComponentOf[tgt]
		if cs != ct {
			inter = append(inter, a)
			continue
		}
		srcDst, _ := g.MappedNode(src)
		tgtDst, _ := g.MappedNode(tgt)
		copied, err := subs[cs].InsertArc(srcDst, tgtDst, a.Payload)
		if err != nil {
			return nil, nil, err
		}
		copied.Weight = a.Weight
		g.MapArc(a, copied)
	}

	return subs, inter, nil
}
