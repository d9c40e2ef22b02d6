package core

// MapNode binds dst as src's cross-graph counterpart. Used whenever an
// algorithm produces a derived graph (a spanning tree, a residual net, a
// contracted graph) and needs to point back to the original. The mapping
// is an explicit map scoped to the Graph that owns it, so a second
// algorithm run doesn't have to remember to clear a per-element slot it
// never wrote.
func (g *Graph[N, A]) MapNode(src, dst *Node[N]) {
	g.nodeMap[src] = dst
}

// MappedNode reads back a binding created by MapNode.
func (g *Graph[N, A]) MappedNode(src *Node[N]) (*Node[N], bool) {
	dst, ok := g.nodeMap[src]
	return dst, ok
}

// MapArc binds dst as src's cross-graph counterpart.
func (g *Graph[N, A]) MapArc(src, dst *Arc[N, A]) {
	g.arcMap[src] = dst
}

// MappedArc reads back a binding created by MapArc.
func (g *Graph[N, A]) MappedArc(src *Arc[N, A]) (*Arc[N, A], bool) {
	dst, ok := g.arcMap[src]
	return dst, ok
}

// ResetMapping clears every node and arc binding. Any algorithm that
// produces a derived graph and uses the mapping registers must call this
// on entry, since the registers are shared mutable state across algorithm
// invocations.
func (g *Graph[N, A]) ResetMapping() {
	g.nodeMap = make(map[*Node[N]]*Node[N])
	g.arcMap = make(map[*Arc[N, A]]*Arc[N, A])
}
