package connectivity

import (
	"errors"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// ErrDirectedGraph is returned by IsAcyclicUndirected when given a directed
// graph; the E >= V short-circuit and back-edge DFS both assume an
// undirected adjacency convention.
var ErrDirectedGraph = errors.New("connectivity: undirected acyclicity check given a directed graph")

// CondensationArc is one arc of the SCC condensation: an edge from
// component From to component To, deduplicated across parallel inter-SCC
// arcs in the source graph.
type CondensationArc struct {
	From, To int
}

// Result is Tarjan's output: every node's component assignment, the
// components themselves in discovery order, and the condensation's arc
// set. Subgraphs materializes the components as standalone graphs.
type Result[N, A any] struct {
	Components   [][]*core.Node[N]
	ComponentOf  map[*core.Node[N]]int
	Condensation []CondensationArc

	hasCycle bool
}

// IsStronglyConnected reports whether g collapses to a single component.
func (r *Result[N, A]) IsStronglyConnected() bool { return len(r.Components) == 1 }

// HasCycle reports whether g contains any directed cycle: an SCC of size
// greater than one, or a self-loop.
func (r *Result[N, A]) HasCycle() bool { return r.hasCycle }

// IsDag reports the complement of HasCycle.
func (r *Result[N, A]) IsDag() bool { return !r.hasCycle }
