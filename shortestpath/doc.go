// Package shortestpath implements single-source shortest paths over a
// core.Graph: Dijkstra for non-negative weights and Bellman-Ford (with a
// classical and an SPFA-style fast variant) for arbitrary weights, with
// negative-cycle detection.
//
// Dijkstra settles every node exactly once via the addressable arc-heap in
// container/pqueue; an arc with negative Weight is an unchecked
// precondition violation; callers who cannot rule that out
// must use BellmanFord instead.
//
// Bellman-Ford relaxes every arc V-1 times (or, in the fast variant, only
// the outgoing arcs of nodes whose distance just improved) and exposes two
// cycle-witness procedures when a negative cycle reachable from the source
// exists: ComputeNegativeCycle walks predecessors until a node repeats,
// and SearchNegativeCycle runs the SPFA relaxation itself and reports the
// cycle plus the number of queue pops consumed.
package shortestpath
