// Package dsu implements a disjoint-set-union:
// weighted quick-union with path compression, in a
// fixed-size flavor (DSU) and a growable flavor (GrowableDSU), plus a
// value-keyed wrapper (RelationT) for arbitrary comparable key domains.
//
// Complexity: find_root and union are O(alpha(n)) amortized, where alpha
// is the inverse Ackermann function; num_blocks and connected are O(1) and
// O(alpha(n)) respectively.
package dsu
