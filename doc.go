// Package alephw is an in-memory graph toolkit: a generic node/arc data
// model, topology-preserving iterators, and the family of algorithms built
// on top of them — traversal, shortest paths, minimum spanning trees,
// maximum flow and min-cut, strongly connected components, and randomized
// min-cut.
//
// What is Aleph-w?
//
//	A single-threaded, synchronous library that brings together:
//
//	  - Core primitives: Node and Arc carry a user payload plus the bit
//	    marks and scratch counter every algorithm in this module shares;
//	    cross-graph mappings live in per-graph registers (core.MapNode /
//	    core.MapArc).
//	  - Three interchangeable representations (doubly-linked, singly-
//	    linked, dynamic-array adjacency) behind one Graph[N, A] type.
//	  - Classic algorithms: DFS/BFS, Dijkstra, Bellman-Ford, Kruskal/Prim,
//	    Ford-Fulkerson/Edmonds-Karp/preflow-push, Tarjan SCC, Karger.
//
// Under the hood, everything is organized into focused subpackages:
//
//	core/          — Graph, Node, Arc, Path, Network, iterators, marks.
//	container/     — the collaborators the core consumes: stack, queue,
//	                 addressable pqueue + arc-heap, disjoint-set-union.
//	index/         — ordered node/arc indices layered on a balanced tree.
//	traversal/     — the shared DFS/BFS kernel.
//	shortestpath/  — Dijkstra and Bellman-Ford.
//	mst/           — Kruskal and Prim.
//	maxflow/       — Ford-Fulkerson, Edmonds-Karp, preflow-push, min-cut.
//	connectivity/  — Tarjan SCC, undirected acyclicity, cycle witnesses.
//	karger/        — randomized min-cut (Karger and Karger-Stein).
//
// A Graph is a single-owner structure: nodes and arcs are owned exclusively
// by the Graph that created them and are freed on its destruction. Derived
// graphs (spanning trees, SCC subgraphs) never alias the source's storage;
// they point back to it through the explicit mapping registers in
// core.MapNode / core.MapArc. Karger's contracted multigraph is not a
// core.Graph and keeps its own back-pointers to the original nodes and arcs.
package alephw
