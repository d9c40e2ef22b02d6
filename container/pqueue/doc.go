// Package pqueue implements an addressable priority queue:
// a binary heap keyed by an ordered Key, with in-place decrease-key
// addressed through an Entry back-pointer, and the ArcHeap wrapper used by
// Dijkstra and Prim to keep exactly one best-arc entry per target node.
package pqueue
