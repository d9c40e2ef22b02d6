package karger

import (
	"errors"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// ErrDirectedGraph is returned when given a directed graph: edge
// contraction is only meaningful over an undirected multigraph.
var ErrDirectedGraph = errors.New("karger: given a directed graph")

// ErrTooFewNodes is returned when g has fewer than two nodes, so no cut
// exists to find.
var ErrTooFewNodes = errors.New("karger: graph has fewer than two nodes")

// Cut is the outcome of a contraction run: the surviving two-way partition
// of the original nodes and the original arcs crossing it.
type Cut[N, A any] struct {
	Size int
	Arcs []*core.Arc[N, A]
	Side [][]*core.Node[N]
}
