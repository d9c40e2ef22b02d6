// Package traversal implements the DFS and BFS drivers:
// one shared kernel parameterized by its scratch container (a LIFO
// stack for DFS, a FIFO queue for BFS), marking nodes and arcs with
// core.BitProcessed / core.BitProcessing as it goes and invoking a
// caller-supplied visitor that may cancel the walk by returning false.
package traversal
