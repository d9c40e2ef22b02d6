// Package karger implements randomized min-cut by edge contraction:
// repeatedly picking a uniformly random arc and merging its
// endpoints until two super-nodes remain, over an auxiliary multigraph
// whose nodes carry the list of original nodes they represent and whose
// arcs carry a back-pointer to the original arc they came from. MinCut runs
// many independent trials and keeps the smallest cut found; KargerStein
// recursively contracts to a smaller target node count before branching,
// the standard refinement that lowers the total work to O(n^2 log^3 n).
package karger
