package maxflow

import (
	"github.com/lrleon/Aleph-w-sub008/container/queue"
	"github.com/lrleon/Aleph-w-sub008/core"
)

// EdmondsKarp computes the maximum flow from source to sink the same way
// FordFulkerson does, but finds each augmenting path by breadth-first
// search, which bounds the number of augmentations at O(V*E) independently
// of the capacities involved.
func EdmondsKarp[N, A any](nw *core.Network[N, A], source, sink *core.Node[N]) (int64, error) {
	return augment[N, A](nw, source, sink, func() frontier[*core.Node[N]] { return queue.New[*core.Node[N]]() })
}
