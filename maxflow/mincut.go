package maxflow

import "github.com/lrleon/Aleph-w-sub008/core"

// Cut is an s-t cut: the set of nodes reachable from source over
// residual-capable arcs, and the arcs crossing from that set to its
// complement.
type Cut[N, A any] struct {
	Reachable map[*core.Node[N]]bool
	Arcs      []*core.Arc[N, A]
	Capacity  int64
}

// MinCut finds the minimum cut separating source from sink in a network
// that has already had a max-flow algorithm run on it: it explores the
// nodes reachable from source over arcs with positive residual capacity,
// then collects every arc crossing from that reachable set to its
// complement. Capacity sums to the max-flow value exactly
// when nw carries a maximum flow; use VerifyCut to check that against a
// known flow value.
func MinCut[N, A any](nw *core.Network[N, A], source *core.Node[N]) *Cut[N, A] {
	reachable := map[*core.Node[N]]bool{source: true}
	pending := []*core.Node[N]{source}
	for len(pending) > 0 {
		v := pending[0]
		pending = pending[1:]

		out := nw.OutArcs(v)
		for out.HasNext() {
			a, err := out.Next()
			if err != nil {
				break
			}
			w := nw.GetTgtNode(a)
			if w == v || reachable[w] || nw.ForwardResidual(a) <= 0 {
				continue
			}
			reachable[w] = true
			pending = append(pending, w)
		}

		in := nw.InArcs(v)
		for in.HasNext() {
			a, err := in.Next()
			if err != nil {
				break
			}
			w := nw.GetSrcNode(a)
			if w == v || reachable[w] || nw.BackwardResidual(a) <= 0 {
				continue
			}
			reachable[w] = true
			pending = append(pending, w)
		}
	}

	cut := &Cut[N, A]{Reachable: reachable}
	ait := nw.Arcs()
	for ait.HasNext() {
		a, err := ait.Next()
		if err != nil {
			break
		}
		src, tgt := nw.GetSrcNode(a), nw.GetTgtNode(a)
		if reachable[src] && !reachable[tgt] {
			cut.Arcs = append(cut.Arcs, a)
			cut.Capacity += a.Capacity
		}
	}
	return cut
}

// VerifyCut fails with ErrCutMismatch unless cut's total capacity equals
// flowValue, the certificate that the flow is maximal.
func VerifyCut[N, A any](cut *Cut[N, A], flowValue int64) error {
	if cut.Capacity != flowValue {
		return ErrCutMismatch
	}
	return nil
}
