// Package connectivity implements Tarjan's strongly-connected-components
// algorithm and cycle detection: a single DFS pass with a
// discovery index, a low-link value, and an explicit DFS stack (to avoid
// relying on the call stack's own depth, matching the rest of this module's
// traversal style), plus a standalone undirected acyclicity check with an
// E >= V short-circuit (not called by the mst package).
package connectivity
