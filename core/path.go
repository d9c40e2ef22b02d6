package core

// PathStep is one (node, incoming-arc) pair in a Path. Arc is nil only for
// the root step.
type PathStep[N, A any] struct {
	Node *Node[N]
	Arc  *Arc[N, A]
}

// Path is an ordered sequence of (node, incoming-arc) pairs rooted at a
// source node, plus a reference to the graph it is a subgraph of. It is
// the return shape of shortest-path, augmenting-path, and
// cycle-witness routines; an empty Path signals "no path" rather than an
// error.
type Path[N, A any] struct {
	graph *Graph[N, A]
	steps []PathStep[N, A]
}

// NewPath returns an empty path over g.
func NewPath[N, A any](g *Graph[N, A]) *Path[N, A] {
	return &Path[N, A]{graph: g}
}

// Graph returns the graph this path is a subgraph of.
func (p *Path[N, A]) Graph() *Graph[N, A] { return p.graph }

// Append adds (via, node) to the end of the path. via is nil only when
// node is the root of an otherwise-empty path.
func (p *Path[N, A]) Append(node *Node[N], via *Arc[N, A]) {
	p.steps = append(p.steps, PathStep[N, A]{Node: node, Arc: via})
}

// Empty reports whether the path has no nodes at all.
func (p *Path[N, A]) Empty() bool { return len(p.steps) == 0 }

// Len returns the number of nodes on the path.
func (p *Path[N, A]) Len() int { return len(p.steps) }

// First returns the root node, or nil if the path is empty.
func (p *Path[N, A]) First() *Node[N] {
	if p.Empty() {
		return nil
	}
	return p.steps[0].Node
}

// Last returns the final node, or nil if the path is empty.
func (p *Path[N, A]) Last() *Node[N] {
	if p.Empty() {
		return nil
	}
	return p.steps[len(p.steps)-1].Node
}

// Steps returns the path's (node, incoming-arc) pairs in traversal order.
func (p *Path[N, A]) Steps() []PathStep[N, A] { return p.steps }

// Nodes returns just the node sequence, in traversal order.
func (p *Path[N, A]) Nodes() []*Node[N] {
	out := make([]*Node[N], len(p.steps))
	for i, s := range p.steps {
		out[i] = s.Node
	}
	return out
}

// Arcs returns the incoming arcs in traversal order (len(Arcs()) ==
// len(Nodes())-1 for a non-empty path).
func (p *Path[N, A]) Arcs() []*Arc[N, A] {
	var out []*Arc[N, A]
	for _, s := range p.steps {
		if s.Arc != nil {
			out = append(out, s.Arc)
		}
	}
	return out
}

// reversePrepend builds a Path by walking a predecessor chain backwards
// from target to source (as produced by Dijkstra/Bellman-Ford/BFS) and
// reversing it into forward order. pred maps a node to the arc that
// reaches it on the shortest/augmenting path; the walk stops at source.
func reversePrepend[N, A any](g *Graph[N, A], source, target *Node[N], pred map[*Node[N]]*Arc[N, A]) *Path[N, A] {
	var chain []PathStep[N, A]
	cur := target
	for cur != source {
		a, ok := pred[cur]
		if !ok {
			return NewPath[N, A](g) // unreachable: empty path
		}
		chain = append(chain, PathStep[N, A]{Node: cur, Arc: a})
		next, err := g.GetConnectedNode(a, cur)
		if err != nil {
			return NewPath[N, A](g)
		}
		cur = next
	}
	chain = append(chain, PathStep[N, A]{Node: source, Arc: nil})

	p := NewPath[N, A](g)
	for i := len(chain) - 1; i >= 0; i-- {
		p.steps = append(p.steps, chain[i])
	}
	return p
}

// BuildPath is the exported form of reversePrepend, used by algorithm
// packages that reconstruct a path from a predecessor-arc map (Dijkstra,
// Bellman-Ford, BFS, the augmenting-path finders).
func BuildPath[N, A any](g *Graph[N, A], source, target *Node[N], pred map[*Node[N]]*Arc[N, A]) *Path[N, A] {
	if source == target {
		p := NewPath[N, A](g)
		p.Append(source, nil)
		return p
	}
	return reversePrepend(g, source, target, pred)
}
