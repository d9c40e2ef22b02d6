// Package maxflow computes maximum flow and minimum cut over a
// core.Network: Ford-Fulkerson and Edmonds-Karp augment along
// a residual path found by DFS or BFS respectively; the three preflow-push
// variants (FIFO, max-height, random selection) relax flow conservation
// during the run and drain the resulting excess back to the source.
//
// None of these algorithms materializes a second residual graph. Forward
// residual capacity of an arc (capacity - flow) and backward residual
// capacity (flow) are computed directly off the Network's own arcs, and a
// "semi-path" — an ordered sequence of (arc, direction) pairs — stands in
// for a path through that implicit residual graph.
//
// MinCut partitions the nodes reachable from the source over
// residual-capable arcs after any max-flow run and extracts the cut arcs
// whose capacity sum equals the flow value.
package maxflow
