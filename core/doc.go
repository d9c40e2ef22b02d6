// Package core defines the graph data model: Node, Arc, and the three
// interchangeable Graph representations (doubly-linked adjacency,
// singly-linked adjacency, dynamic-array adjacency) that every algorithm
// package in this module builds on.
//
// A Graph owns its Nodes and Arcs; once a Graph becomes unreachable its
// elements are reclaimed by the garbage collector. Nodes and Arcs carry a
// small bit field (processed / processing / spanning-tree / test-cycle /
// four user-available bits) and a 64-bit scratch counter that algorithms
// repurpose for distance, discovery time, DSU rank, low-link, or preflow
// excess — see marks.go.
//
// Three constructors produce the same Graph[N, A] interface:
//
//	NewListGraph[N, A](directed, opts...)  — doubly-linked adjacency, O(1) node removal.
//	NewSListGraph[N, A](directed, opts...) — singly-linked adjacency, smaller, O(E) node removal.
//	NewArrayGraph[N, A](directed, opts...) — dynamic-array adjacency, cache-friendly, O(E) node removal.
//
// Algorithm packages (traversal, shortestpath, mst, maxflow, connectivity,
// karger) are written against Graph[N, A] and never assume a particular
// representation.
//
// This package is single-threaded by design: no internal locking is
// performed. A Graph may be read by one reader at a time provided no
// algorithm is running on it; concurrent mutation from more than one
// algorithm invocation is unsupported and will corrupt the bit marks.
package core
