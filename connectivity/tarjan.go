package connectivity

import "github.com/lrleon/Aleph-w-sub008/core"

// Tarjan computes the strongly-connected components of a directed graph in
// a single DFS pass, using each node's counter as its discovery index and
// an external low-link table — a second scratch value per node beyond what
// the counter alone can hold. The DFS walks an explicit
// stack of (node, next-neighbor-index) frames rather than the call stack,
// matching the rest of this module's iterative traversal style.
func Tarjan[N, A any](g *core.Graph[N, A]) (*Result[N, A], error) {
	g.ResetNodes()

	adj := make(map[*core.Node[N]][]*core.Node[N], g.NumNodes())
	selfLoop := make(map[*core.Node[N]]bool)
	order := make([]*core.Node[N], 0, g.NumNodes())

	nit := g.Nodes()
	for nit.HasNext() {
		v, err := nit.Next()
		if err != nil {
			return nil, err
		}
		order = append(order, v)

		out := g.OutArcs(v)
		var ns []*core.Node[N]
		for out.HasNext() {
			a, err := out.Next()
			if err != nil {
				break
			}
			w, err := g.GetConnectedNode(a, v)
			if err != nil {
				continue
			}
			if w == v {
				selfLoop[v] = true
				continue
			}
			ns = append(ns, w)
		}
		adj[v] = ns
	}

	lowlink := make(map[*core.Node[N]]int64, len(order))
	onStack := make(map[*core.Node[N]]bool, len(order))
	var tarjanStack []*core.Node[N]
	var nextIndex int64

	type frame struct {
		node *core.Node[N]
		next int
	}
	var dfsStack []frame

	result := &Result[N, A]{ComponentOf: make(map[*core.Node[N]]int)}

	push := func(v *core.Node[N]) {
		v.SetBit(core.BitProcessed)
		v.SetCounter(nextIndex)
		lowlink[v] = nextIndex
		nextIndex++
		tarjanStack = append(tarjanStack, v)
		onStack[v] = true
		dfsStack = append(dfsStack, frame{node: v})
	}

	for _, root := range order {
		if root.TestBit(core.BitProcessed) {
			continue
		}
		push(root)

		for len(dfsStack) > 0 {
			top := &dfsStack[len(dfsStack)-1]
			v := top.node

			if top.next < len(adj[v]) {
				w := adj[v][top.next]
				top.next++
				if !w.TestBit(core.BitProcessed) {
					push(w)
				} else if onStack[w] {
					if w.Counter() < lowlink[v] {
						lowlink[v] = w.Counter()
					}
				}
				continue
			}

			dfsStack = dfsStack[:len(dfsStack)-1]
			if len(dfsStack) > 0 {
				parent := &dfsStack[len(dfsStack)-1]
				if lowlink[v] < lowlink[parent.node] {
					lowlink[parent.node] = lowlink[v]
				}
			}

			if lowlink[v] == v.Counter() {
				var comp []*core.Node[N]
				for {
					w := tarjanStack[len(tarjanStack)-1]
					tarjanStack = tarjanStack[:len(tarjanStack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == v {
						break
					}
				}
				idx := len(result.Components)
				for _, w := range comp {
					result.ComponentOf[w] = idx
				}
				result.Components = append(result.Components, comp)
				if len(comp) > 1 || selfLoop[comp[0]] {
					result.hasCycle = true
				}
			}
		}
	}

	seen := make(map[CondensationArc]bool)
	for v, ns := range adj {
		cv := result.ComponentOf[v]
		for _, w := range ns {
			cw := result.ComponentOf[w]
			if cv == cw {
				continue
			}
			arc := CondensationArc{From: cv, To: cw}
			if !seen[arc] {
				seen[arc] = true
				result.Condensation = append(result.Condensation, arc)
			}
		}
	}

	return result, nil
}
