package core

// Node is a vertex owned by exactly one Graph. Its payload is opaque to the
// core; algorithms never inspect N directly.
type Node[N any] struct {
	marks

	// Payload is the user-supplied value attached to this node.
	Payload N

	id    uint64 // insertion sequence; gives iteration a stable, observable order
	graph any    // the owning Graph, compared by identity in foreign-node checks
	adj   any    // representation-private adjacency bookkeeping (see adjacency.go)
}

// ID returns the node's insertion-order sequence number. It is stable for
// the lifetime of the node and is used by Node-index and by algorithms
// (Kruskal) that need a dense integer key without a separate lookup.
func (v *Node[N]) ID() uint64 { return v.id }

// Arc is a directed or undirected relation between two nodes of the same
// Graph, owned by that Graph. For undirected graphs there is exactly one
// Arc object per relation; GetConnectedNode resolves "the other endpoint".
type Arc[N, A any] struct {
	marks

	// Payload is the user-supplied value attached to this arc.
	Payload A

	id  uint64
	src *Node[N]
	tgt *Node[N]

	// Weight is general-purpose edge weight consumed by Dijkstra, Kruskal,
	// and Prim. It is meaningless (and ignored) for algorithms that don't
	// use it, exactly as a Network's Capacity/Flow are meaningless outside
	// flow algorithms.
	Weight int64

	// Capacity and Flow are the Network extension: capacity >= 0, flow in
	// [0, capacity]. Non-flow algorithms ignore them.
	Capacity int64
	Flow     int64

	graph     any
	connected bool // false while detached via DisconnectArc
	linkData  any  // representation-private per-endpoint bookkeeping (see adjacency.go)
}

// ID returns the arc's insertion-order sequence number.
func (a *Arc[N, A]) ID() uint64 { return a.id }

// Connected reports whether the arc is currently attached to its graph (see
// DisconnectArc / ConnectArc).
func (a *Arc[N, A]) Connected() bool { return a.connected }
