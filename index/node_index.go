package index

import (
	"errors"

	"github.com/google/btree"

	"github.com/lrleon/Aleph-w-sub008/core"
)

// ErrDuplicateKey is returned by Insert when a node with the same payload
// (under the index's comparator) is already present.
var ErrDuplicateKey = errors.New("index: duplicate node key")

// ErrKeyNotFound is returned by Remove when the key isn't present.
var ErrKeyNotFound = errors.New("index: key not found")

const btreeDegree = 32

// NodeIndex is an ordered map from node payload to *core.Node[N], under a
// caller-supplied comparator.
type NodeIndex[N, A any] struct {
	cmp  func(a, b N) int
	tree *btree.BTreeG[nodeItem[N]]
}

type nodeItem[N any] struct {
	key  N
	node *core.Node[N]
}

// NewNodeIndex returns an empty NodeIndex ordered by cmp (cmp(a, b) < 0
// means a sorts before b).
func NewNodeIndex[N, A any](cmp func(a, b N) int) *NodeIndex[N, A] {
	less := func(x, y nodeItem[N]) bool { return cmp(x.key, y.key) < 0 }
	return &NodeIndex[N, A]{cmp: cmp, tree: btree.NewG[nodeItem[N]](btreeDegree, less)}
}

// Insert adds v under key, rejecting a duplicate key.
func (ix *NodeIndex[N, A]) Insert(key N, v *core.Node[N]) error {
	if _, ok := ix.tree.Get(nodeItem[N]{key: key}); ok {
		return ErrDuplicateKey
	}
	ix.tree.ReplaceOrInsert(nodeItem[N]{key: key, node: v})
	return nil
}

// Search returns the node stored under key, if any.
func (ix *NodeIndex[N, A]) Search(key N) (*core.Node[N], bool) {
	item, ok := ix.tree.Get(nodeItem[N]{key: key})
	if !ok {
		return nil, false
	}
	return item.node, true
}

// Remove deletes the entry for key.
func (ix *NodeIndex[N, A]) Remove(key N) error {
	_, ok := ix.tree.Delete(nodeItem[N]{key: key})
	if !ok {
		return ErrKeyNotFound
	}
	return nil
}

// Len returns the number of indexed entries.
func (ix *NodeIndex[N, A]) Len() int { return ix.tree.Len() }

// InsertOrFind returns the node already indexed under key, or — if none
// exists — inserts a fresh node into g with that payload and indexes it.
// This is the standard O(log V) "find-or-create" pattern for
// deduplicated graph construction.
func (ix *NodeIndex[N, A]) InsertOrFind(g *core.Graph[N, A], key N) *core.Node[N] {
	if v, ok := ix.Search(key); ok {
		return v
	}
	v := g.InsertNode(key)
	ix.tree.ReplaceOrInsert(nodeItem[N]{key: key, node: v})
	return v
}
