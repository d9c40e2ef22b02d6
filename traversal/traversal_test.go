package traversal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/Aleph-w-sub008/core"
	"github.com/lrleon/Aleph-w-sub008/traversal"
)

func buildChain(t *testing.T) (*core.Graph[string, int], map[string]*core.Node[string]) {
	t.Helper()
	g := core.NewListGraph[string, int](true)
	nodes := map[string]*core.Node[string]{
		"a": g.InsertNode("a"),
		"b": g.InsertNode("b"),
		"c": g.InsertNode("c"),
		"d": g.InsertNode("d"),
	}
	_, err := g.InsertArc(nodes["a"], nodes["b"], 0)
	require.NoError(t, err)
	_, err = g.InsertArc(nodes["b"], nodes["c"], 0)
	require.NoError(t, err)
	_, err = g.InsertArc(nodes["a"], nodes["c"], 0)
	require.NoError(t, err)
	_, err = g.InsertArc(nodes["c"], nodes["d"], 0)
	require.NoError(t, err)
	return g, nodes
}

func TestBFSHopOrder(t *testing.T) {
	g, n := buildChain(t)
	res := traversal.BFS[string, int](g, n["a"], nil)
	require.Len(t, res.Order, 4)
	assert.Same(t, n["a"], res.Order[0])
	// b and c are both one hop from a; d is two hops and must come last.
	assert.Same(t, n["d"], res.Order[3])
}

func TestDFSReachesAll(t *testing.T) {
	g, n := buildChain(t)
	res := traversal.DFS[string, int](g, n["a"], nil)
	assert.Len(t, res.Order, 4)
	seen := make(map[*core.Node[string]]bool)
	for _, v := range res.Order {
		seen[v] = true
	}
	for _, v := range n {
		assert.True(t, seen[v])
	}
}

func TestBFSToBuildsShortestPath(t *testing.T) {
	g, n := buildChain(t)
	res := traversal.BFSTo[string, int](g, n["a"], n["d"])
	require.True(t, res.Reached)
	p := traversal.Path[string, int](g, n["a"], n["d"], res)
	require.False(t, p.Empty())
	// a->c->d is 2 hops, shorter than a->b->c->d.
	assert.Equal(t, 3, p.Len())
	assert.Same(t, n["a"], p.First())
	assert.Same(t, n["d"], p.Last())
}

func TestVisitorCancellation(t *testing.T) {
	g, n := buildChain(t)
	var visited []*core.Node[string]
	res := traversal.BFS[string, int](g, n["a"], func(v *core.Node[string]) bool {
		visited = append(visited, v)
		return v != n["b"]
	})
	assert.LessOrEqual(t, len(res.Order), 3)
	assert.Contains(t, visited, n["b"])
}

func TestUnreachableTargetYieldsEmptyPath(t *testing.T) {
	g := core.NewListGraph[string, int](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	res := traversal.BFSTo[string, int](g, a, b)
	assert.False(t, res.Reached)
	p := traversal.Path[string, int](g, a, b, res)
	assert.True(t, p.Empty())
}
