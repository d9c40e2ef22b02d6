package index

import (
	"errors"

	"github.com/google/btree"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// ErrDuplicateArc is returned by Insert when an arc for the same (src,
// tgt) pair is already indexed.
var ErrDuplicateArc = errors.New("index: duplicate (src, tgt) pair")

type arcKey struct{ src, tgt uint64 }

type arcItem[N, A any] struct {
	key arcKey
	arc *core.Arc[N, A]
}

func lessArcKey(a, b arcKey) bool {
	if a.src != b.src {
		return a.src < b.src
	}
	return a.tgt < b.tgt
}

// ArcIndex is an ordered map from the pair (src, tgt) to *core.Arc[N, A]
//. For an undirected graph, pass directed=false at
// construction: the pair is canonicalized by node-identity order before
// comparison, and Search falls back to the swapped pair if the first
// lookup misses.
type ArcIndex[N, A any] struct {
	directed bool
	tree     *btree.BTreeG[arcItem[N, A]]
}

// NewArcIndex returns an empty ArcIndex. directed must match the Graph
// it indexes.
func NewArcIndex[N, A any](directed bool) *ArcIndex[N, A] {
	less := func(x, y arcItem[N, A]) bool { return lessArcKey(x.key, y.key) }
	return &ArcIndex[N, A]{directed: directed, tree: btree.NewG[arcItem[N, A]](btreeDegree, less)}
}

func (ix *ArcIndex[N, A]) canonical(src, tgt *core.Node[N]) arcKey {
	if ix.directed || src.ID() <= tgt.ID() {
		return arcKey{src: src.ID(), tgt: tgt.ID()}
	}
	return arcKey{src: tgt.ID(), tgt: src.ID()}
}

// Insert indexes a under (src, tgt), rejecting a duplicate pair.
func (ix *ArcIndex[N, A]) Insert(src, tgt *core.Node[N], a *core.Arc[N, A]) error {
	key := ix.canonical(src, tgt)
	if _, ok := ix.tree.Get(arcItem[N, A]{key: key}); ok {
		return ErrDuplicateArc
	}
	ix.tree.ReplaceOrInsert(arcItem[N, A]{key: key, arc: a})
	return nil
}

// Search looks up the arc between src and tgt. For a directed index a
// miss is final; for an undirected index, a miss on (src, tgt) retries the
// swapped pair before giving up.
func (ix *ArcIndex[N, A]) Search(src, tgt *core.Node[N]) (*core.Arc[N, A], bool) {
	if item, ok := ix.tree.Get(arcItem[N, A]{key: ix.canonical(src, tgt)}); ok {
		return item.arc, true
	}
	if ix.directed {
		return nil, false
	}
	if item, ok := ix.tree.Get(arcItem[N, A]{key: ix.canonical(tgt, src)}); ok {
		return item.arc, true
	}
	return nil, false
}

// Remove deletes the (src, tgt) entry.
func (ix *ArcIndex[N, A]) Remove(src, tgt *core.Node[N]) {
	ix.tree.Delete(arcItem[N, A]{key: ix.canonical(src, tgt)})
}

// Len returns the number of indexed entries.
func (ix *ArcIndex[N, A]) Len() int { return ix.tree.Len() }
