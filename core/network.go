package core

import "math"

// InfiniteCapacity is the sentinel used for super-source/super-sink arcs,
// which must never be the bottleneck of a max-flow computation.
const InfiniteCapacity = math.MaxInt64

// Network is a directed Graph whose arcs additionally carry Capacity and
// Flow. It tracks the super-source/super-sink it may have
// materialized so UnmakeSuperSource/UnmakeSuperSink can restore the
// original multi-terminal graph exactly: make+unmake is an identity on
// observable state.
type Network[N, A any] struct {
	*Graph[N, A]

	superSource   *Node[N]
	superSourceOk bool
	superSink     *Node[N]
	superSinkOk   bool
}

// NewNetwork wraps a directed Graph as a Network. Capacity/flow invariants
// (capacity >= 0, flow in [0, capacity]) are the caller's responsibility
// when inserting arcs; max-flow algorithms reset Flow to 0 on entry.
func NewNetwork[N, A any](g *Graph[N, A]) *Network[N, A] {
	return &Network[N, A]{Graph: g}
}

// InsertCapacitatedArc inserts a directed arc with the given capacity,
// rejecting a negative one.
func (nw *Network[N, A]) InsertCapacitatedArc(src, tgt *Node[N], capacity int64, payload A) (*Arc[N, A], error) {
	if capacity < 0 {
		return nil, ErrNegativeCapacity
	}
	a, err := nw.InsertArc(src, tgt, payload)
	if err != nil {
		return nil, err
	}
	a.Capacity = capacity
	return a, nil
}

// ResetFlow zeroes Flow on every arc, as every max-flow algorithm does on
// entry.
func (nw *Network[N, A]) ResetFlow() {
	it := nw.Arcs()
	for it.HasNext() {
		a, _ := it.Next()
		a.Flow = 0
	}
}

// ForwardResidual returns the residual capacity available to push
// additional flow along a in its natural direction: capacity - flow.
func (nw *Network[N, A]) ForwardResidual(a *Arc[N, A]) int64 { return a.Capacity - a.Flow }

// BackwardResidual returns the residual capacity available to cancel flow
// already pushed along a: flow.
func (nw *Network[N, A]) BackwardResidual(a *Arc[N, A]) int64 { return a.Flow }

// sourcesAndSinks returns every in-degree-0 node (source candidate) and
// every out-degree-0 node (sink candidate), excluding any already-
// materialized super-terminal.
func (nw *Network[N, A]) sourcesAndSinks() (sources, sinks []*Node[N]) {
	it := nw.Nodes()
	for it.HasNext() {
		v, _ := it.Next()
		if v == nw.superSource || v == nw.superSink {
			continue
		}
		if nw.InDegree(v) == 0 {
			sources = append(sources, v)
		}
		if nw.OutDegree(v) == 0 {
			sinks = append(sinks, v)
		}
	}
	return sources, sinks
}

// Source returns the network's single source (in-degree 0 node). It fails
// with ErrNoSource if none exists, or ErrMultipleSources if more than one
// does and no super-source has been materialized yet.
func (nw *Network[N, A]) Source() (*Node[N], error) {
	if nw.superSourceOk {
		return nw.superSource, nil
	}
	sources, _ := nw.sourcesAndSinks()
	switch len(sources) {
	case 0:
		return nil, ErrNoSource
	case 1:
		return sources[0], nil
	default:
		return nil, ErrMultipleSources
	}
}

// Sink returns the network's single sink (out-degree 0 node), with the
// same multi-terminal semantics as Source.
func (nw *Network[N, A]) Sink() (*Node[N], error) {
	if nw.superSinkOk {
		return nw.superSink, nil
	}
	_, sinks := nw.sourcesAndSinks()
	switch len(sinks) {
	case 0:
		return nil, ErrNoSink
	case 1:
		return sinks[0], nil
	default:
		return nil, ErrMultipleSinks
	}
}

// MakeSuperSource materializes a virtual node with an infinite-capacity
// arc to every true source (in-degree-0 node), reducing a multi-source
// instance to the canonical single-source form. A network that already has
// exactly one source is not rejected: it gets a super-source with a single
// fan-out arc.
func (nw *Network[N, A]) MakeSuperSource(payload N, arcPayload A) (*Node[N], error) {
	if nw.superSourceOk {
		return nw.superSource, nil
	}
	sources, _ := nw.sourcesAndSinks()
	if len(sources) == 0 {
		return nil, ErrNoSource
	}
	s := nw.InsertNode(payload)
	for _, src := range sources {
		if _, err := nw.InsertCapacitatedArc(s, src, InfiniteCapacity, arcPayload); err != nil {
			return nil, err
		}
	}
	nw.superSource = s
	nw.superSourceOk = true
	return s, nil
}

// UnmakeSuperSource removes the super-source and its fan-out arcs,
// restoring the network to its pre-materialization state.
func (nw *Network[N, A]) UnmakeSuperSource() error {
	if !nw.superSourceOk {
		return ErrNoSuperSource
	}
	if err := nw.RemoveNode(nw.superSource); err != nil {
		return err
	}
	nw.superSource = nil
	nw.superSourceOk = false
	return nil
}

// MakeSuperSink materializes a virtual node with an infinite-capacity arc
// from every true sink (out-degree-0 node). A network that already has
// exactly one sink is not rejected: it gets a super-sink with a single
// fan-in arc.
func (nw *Network[N, A]) MakeSuperSink(payload N, arcPayload A) (*Node[N], error) {
	if nw.superSinkOk {
		return nw.superSink, nil
	}
	_, sinks := nw.sourcesAndSinks()
	if len(sinks) == 0 {
		return nil, ErrNoSink
	}
	t := nw.InsertNode(payload)
	for _, snk := range sinks {
		if _, err := nw.InsertCapacitatedArc(snk, t, InfiniteCapacity, arcPayload); err != nil {
			return nil, err
		}
	}
	nw.superSink = t
	nw.superSinkOk = true
	return t, nil
}

// UnmakeSuperSink removes the super-sink and its fan-in arcs.
func (nw *Network[N, A]) UnmakeSuperSink() error {
	if !nw.superSinkOk {
		return ErrNoSuperSink
	}
	if err := nw.RemoveNode(nw.superSink); err != nil {
		return err
	}
	nw.superSink = nil
	nw.superSinkOk = false
	return nil
}

// VerifyFlowConservation checks that, for every node other than source and
// sink, total inflow equals total outflow — the invariant every max-flow
// algorithm must preserve after each augmentation.
func (nw *Network[N, A]) VerifyFlowConservation(source, sink *Node[N]) error {
	it := nw.Nodes()
	for it.HasNext() {
		v, _ := it.Next()
		if v == source || v == sink {
			continue
		}
		var in, out int64
		outIt := nw.OutArcs(v)
		for outIt.HasNext() {
			a, _ := outIt.Next()
			if a.src == v {
				out += a.Flow
			} else {
				in += a.Flow
			}
		}
		if nw.Directed() {
			inIt := nw.InArcs(v)
			for inIt.HasNext() {
				a, _ := inIt.Next()
				if a.src != v {
					in += a.Flow
				}
			}
		}
		if in != out {
			return ErrFlowConservationBroken
		}
	}
	return nil
}
