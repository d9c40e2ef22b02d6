package connectivity

import "github.com/lrleon/Aleph-w-sub008/core"

// ComputeCycle searches a directed graph for a cycle via one DFS pass
//: a node carries BitProcessing while it is on the current DFS
// stack, so an arc into a BitProcessing node (or a self-loop) is a back
// edge, and the tree path from that node down to the current one, closed by
// the back edge, is the cycle witness. Returns (nil, false) if g is a DAG.
func ComputeCycle[N, A any](g *core.Graph[N, A]) (*core.Path[N, A], bool) {
	g.ResetNodes()

	type frame struct {
		node *core.Node[N]
		it   *core.OutIterator[N, A]
	}
	pred := make(map[*core.Node[N]]*core.Arc[N, A])

	nit := g.Nodes()
	for nit.HasNext() {
		root, err := nit.Next()
		if err != nil {
			break
		}
		if root.TestBit(core.BitProcessed) {
			continue
		}

		var stack []frame
		root.SetBit(core.BitProcessing)
		stack = append(stack, frame{node: root, it: g.OutArcs(root)})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if !top.it.HasNext() {
				top.node.ClearBit(core.BitProcessing)
				top.node.SetBit(core.BitProcessed)
				stack = stack[:len(stack)-1]
				continue
			}
			a, err := top.it.Next()
			if err != nil {
				break
			}
			w, err := g.GetConnectedNode(a, top.node)
			if err != nil {
				continue
			}

			if w == top.node {
				path := core.NewPath[N, A](g)
				path.Append(w, nil)
				path.Append(w, a)
				return path, true
			}
			if w.TestBit(core.BitProcessing) {
				path := core.BuildPath[N, A](g, w, top.node, pred)
				path.Append(w, a)
				return path, true
			}
			if !w.TestBit(core.BitProcessed) {
				pred[w] = a
				w.SetBit(core.BitProcessing)
				stack = append(stack, frame{node: w, it: g.OutArcs(w)})
			}
		}
	}

	return nil, false
}
