// Package mst implements minimum spanning tree construction over an
// undirected core.Graph: Kruskal (arc-sort plus a disjoint-set-union) and
// Prim (an addressable arc-heap), both O((V+E) log V).
//
// Both algorithms paint core.BitSpanningTree on the arcs they choose, so a
// caller can recover the tree from the source graph with a
// core.FilterIterator; KruskalTree additionally builds a standalone Graph
// whose nodes and arcs are cross-referenced back to the source via
// core.MapNode / core.MapArc.
//
// On a disconnected graph, Kruskal produces a spanning forest: Forest.Arcs
// has fewer than NumNodes()-1 entries and Forest.Components reports how
// many connected components it spans. Prim requires a connected graph and
// fails with ErrNotConnected otherwise, since it only ever grows from one
// root.
package mst
