package core

// Graph is the core in-memory graph data structure. It holds the set of nodes, the set of arcs, and a directed/undirected
// discriminator; num_nodes/num_arcs are O(1).
//
// The same Graph[N, A] type backs all three representations —
// NewListGraph, NewSListGraph, NewArrayGraph differ only in which
// adjacencyStore they install, so algorithm code never needs to special-
// case a representation.
type Graph[N, A any] struct {
	directed bool

	nodes map[uint64]*Node[N]
	arcs  map[uint64]*Arc[N, A]

	nextNodeID uint64
	nextArcID  uint64

	adj adjacencyStore[N, A]

	// nodeMap / arcMap hold explicit cross-graph correspondence for derived
	// graphs, kept as graph-level maps rather than a per-element slot.
	nodeMap map[*Node[N]]*Node[N]
	arcMap  map[*Arc[N, A]]*Arc[N, A]

	// mutationSeq is bumped by any topology change and is snapshotted by
	// every iterator at construction time, so a stale iterator can detect
	// invalidation.
	mutationSeq uint64
}

// GraphOption configures a Graph at construction time.
type GraphOption[N, A any] func(g *Graph[N, A])

func newGraph[N, A any](directed bool, store adjacencyStore[N, A], opts ...GraphOption[N, A]) *Graph[N, A] {
	g := &Graph[N, A]{
		directed: directed,
		nodes:    make(map[uint64]*Node[N]),
		arcs:     make(map[uint64]*Arc[N, A]),
		adj:      store,
		nodeMap:  make(map[*Node[N]]*Node[N]),
		arcMap:   make(map[*Arc[N, A]]*Arc[N, A]),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// NewListGraph builds a Graph backed by doubly-linked adjacency lists:
// O(1) node removal, heavier per-element footprint. This is the
// general-purpose default representation.
func NewListGraph[N, A any](directed bool, opts ...GraphOption[N, A]) *Graph[N, A] {
	return newGraph[N, A](directed, dlistStore[N, A]{}, opts...)
}

// NewSListGraph builds a Graph backed by singly-linked adjacency lists:
// smaller per-element footprint, O(E(v)) node removal (the store scans the
// list to unlink each incident arc).
func NewSListGraph[N, A any](directed bool, opts ...GraphOption[N, A]) *Graph[N, A] {
	return newGraph[N, A](directed, slistStore[N, A]{}, opts...)
}

// NewArrayGraph builds a Graph backed by per-node dynamic-array adjacency:
// cache-friendly, O(1) arc insertion, O(E(v)) node removal.
func NewArrayGraph[N, A any](directed bool, opts ...GraphOption[N, A]) *Graph[N, A] {
	return newGraph[N, A](directed, arrayStore[N, A]{}, opts...)
}

// Directed reports whether this Graph treats its arcs as directed.
func (g *Graph[N, A]) Directed() bool { return g.directed }

// NumNodes returns the number of live nodes, in O(1).
func (g *Graph[N, A]) NumNodes() int { return len(g.nodes) }

// NumArcs returns the number of connected arcs, in O(1).
func (g *Graph[N, A]) NumArcs() int { return len(g.arcs) }

// InsertNode creates and attaches a fresh isolated node carrying payload.
func (g *Graph[N, A]) InsertNode(payload N) *Node[N] {
	g.nextNodeID++
	v := &Node[N]{Payload: payload, id: g.nextNodeID, graph: g}
	g.nodes[v.id] = v
	g.mutationSeq++
	return v
}

// belongsHere reports whether v was created by this Graph.
func (g *Graph[N, A]) belongsHere(v *Node[N]) bool { return v != nil && v.graph == g }

// InsertArc creates an arc src->tgt carrying payload and attaches it to
// both endpoints' adjacency. For an undirected Graph, exactly one Arc
// object represents the relation, but it appears in both endpoints'
// out-neighbor iteration.
func (g *Graph[N, A]) InsertArc(src, tgt *Node[N], payload A) (*Arc[N, A], error) {
	if src == nil || tgt == nil {
		return nil, ErrNilNode
	}
	if !g.belongsHere(src) {
		return nil, ErrForeignNode
	}
	if !g.belongsHere(tgt) {
		return nil, ErrForeignNode
	}
	g.nextArcID++
	a := &Arc[N, A]{Payload: payload, id: g.nextArcID, src: src, tgt: tgt, graph: g, connected: true}
	g.arcs[a.id] = a
	g.adj.attach(src, a)
	if tgt != src {
		g.adj.attach(tgt, a)
	}
	g.mutationSeq++
	return a, nil
}

// RemoveArc unlinks and forgets a, updating both endpoints' adjacency.
func (g *Graph[N, A]) RemoveArc(a *Arc[N, A]) error {
	if a == nil {
		return ErrNilArc
	}
	if a.graph != g {
		return ErrForeignArc
	}
	if a.connected {
		g.adj.detach(a.src, a)
		if a.tgt != a.src {
			g.adj.detach(a.tgt, a)
		}
	}
	delete(g.arcs, a.id)
	a.connected = false
	g.mutationSeq++
	return nil
}

// RemoveNode removes all arcs incident to v, then forgets v. Complexity
// depends on the representation bound at construction.
func (g *Graph[N, A]) RemoveNode(v *Node[N]) error {
	if v == nil {
		return ErrNilNode
	}
	if !g.belongsHere(v) {
		return ErrForeignNode
	}
	for _, a := range g.adj.outArcs(v) {
		_ = g.RemoveArc(a)
	}
	delete(g.nodes, v.id)
	g.mutationSeq++
	return nil
}

// DisconnectArc detaches a from the graph's adjacency without destroying
// it; a becomes invisible to iterators but its endpoint pointers remain
// valid. Used by the residual-graph machinery and by super-source/sink
// construction.
func (g *Graph[N, A]) DisconnectArc(a *Arc[N, A]) error {
	if a == nil {
		return ErrNilArc
	}
	if a.graph != g {
		return ErrForeignArc
	}
	if !a.connected {
		return ErrArcDisconnected
	}
	g.adj.detach(a.src, a)
	if a.tgt != a.src {
		g.adj.detach(a.tgt, a)
	}
	delete(g.arcs, a.id)
	a.connected = false
	g.mutationSeq++
	return nil
}

// ConnectArc reattaches a previously disconnected arc.
func (g *Graph[N, A]) ConnectArc(a *Arc[N, A]) error {
	if a == nil {
		return ErrNilArc
	}
	if a.graph != g {
		return ErrForeignArc
	}
	if a.connected {
		return ErrAlreadyConnected
	}
	g.adj.attach(a.src, a)
	if a.tgt != a.src {
		g.adj.attach(a.tgt, a)
	}
	g.arcs[a.id] = a
	a.connected = true
	g.mutationSeq++
	return nil
}

// GetSrcNode returns a's source endpoint.
func (g *Graph[N, A]) GetSrcNode(a *Arc[N, A]) *Node[N] { return a.src }

// GetTgtNode returns a's target endpoint.
func (g *Graph[N, A]) GetTgtNode(a *Arc[N, A]) *Node[N] { return a.tgt }

// GetConnectedNode returns the endpoint of a that is not v; it fails if v
// is not an endpoint of a.
func (g *Graph[N, A]) GetConnectedNode(a *Arc[N, A], v *Node[N]) (*Node[N], error) {
	switch v {
	case a.src:
		return a.tgt, nil
	case a.tgt:
		return a.src, nil
	default:
		return nil, ErrNotEndpoint
	}
}

// OutDegree returns the number of arcs leaving v (for undirected graphs,
// every arc touching v).
func (g *Graph[N, A]) OutDegree(v *Node[N]) int {
	n := 0
	for _, a := range g.adj.outArcs(v) {
		if !g.directed || a.src == v || a.src == a.tgt {
			n++
		}
	}
	return n
}

// InDegree returns the number of arcs entering v. For undirected graphs
// this equals OutDegree.
func (g *Graph[N, A]) InDegree(v *Node[N]) int {
	if !g.directed {
		return g.OutDegree(v)
	}
	n := 0
	for _, a := range g.adj.outArcs(v) {
		if a.tgt == v {
			n++
		}
	}
	return n
}

// ResetNodes clears all bits on every node, in O(V).
func (g *Graph[N, A]) ResetNodes() {
	for _, v := range g.nodes {
		v.ClearAllBits()
	}
}

// ResetArcs clears all bits on every arc, in O(E).
func (g *Graph[N, A]) ResetArcs() {
	for _, a := range g.arcs {
		a.ClearAllBits()
	}
}
