package maxflow

import (
	"github.com/lrleon/Aleph-w-sub008/container/stack"
	"github.com/lrleon/Aleph-w-sub008/core"
)

// FordFulkerson computes the maximum flow from source to sink by
// repeatedly finding an augmenting residual path via depth-first search and
// saturating it, until none remains. Termination and the
// integral max-flow value both rely on every capacity being a non-negative
// integer, which core.Network's construction already enforces.
func FordFulkerson[N, A any](nw *core.Network[N, A], source, sink *core.Node[N]) (int64, error) {
	return augment[N, A](nw, source, sink, func() frontier[*core.Node[N]] { return stack.New[*core.Node[N]]() })
}
