package mst

import (
	"errors"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// ErrDirectedGraph is the domain error raised when Kruskal or Prim is
// invoked on a directed graph.
var ErrDirectedGraph = errors.New("mst: algorithm requires an undirected graph")

// ErrNilRoot is raised when Prim is given a nil root node.
var ErrNilRoot = errors.New("mst: nil root node")

// ErrNotConnected is raised when Prim's root cannot reach every node in g.
var ErrNotConnected = errors.New("mst: graph is not connected from root")

// Forest is the output of Kruskal or Prim: the chosen arcs (painted with
// core.BitSpanningTree), their total weight, and the number of connected
// components the forest spans.
type Forest[N, A any] struct {
	Arcs        []*core.Arc[N, A]
	TotalWeight int64
	Components  int
}
