// Package index implements ordered node and arc indices layered on a
// balanced B-tree (github.com/google/btree)
// giving O(log n) insert/search/delete. They are the standard way to look
// up a node by payload without scanning, reject duplicate arcs, and
// implement cross-graph node equivalence.
package index
