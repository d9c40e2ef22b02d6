package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/Aleph-w-sub008/core"
)

func countNodes[N, A any](t *testing.T, g *core.Graph[N, A]) int {
	t.Helper()
	n := 0
	it := g.Nodes()
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		n++
	}
	return n
}

func countArcs[N, A any](t *testing.T, g *core.Graph[N, A]) int {
	t.Helper()
	n := 0
	it := g.Arcs()
	for it.HasNext() {
		_, err := it.Next()
		require.NoError(t, err)
		n++
	}
	return n
}

// TestRepresentations exercises the same topology across all three graph
// representations; algorithm code is representation-agnostic, so the
// observable behavior must match.
func TestRepresentations(t *testing.T) {
	ctors := map[string]func(bool) *core.Graph[string, int]{
		"list":  func(d bool) *core.Graph[string, int] { return core.NewListGraph[string, int](d) },
		"slist": func(d bool) *core.Graph[string, int] { return core.NewSListGraph[string, int](d) },
		"array": func(d bool) *core.Graph[string, int] { return core.NewArrayGraph[string, int](d) },
	}

	for name, ctor := range ctors {
		t.Run(name, func(t *testing.T) {
			g := ctor(true)
			a := g.InsertNode("a")
			b := g.InsertNode("b")
			c := g.InsertNode("c")

			_, err := g.InsertArc(a, b, 1)
			require.NoError(t, err)
			_, err = g.InsertArc(b, c, 2)
			require.NoError(t, err)

			assert.Equal(t, 3, g.NumNodes())
			assert.Equal(t, 2, g.NumArcs())
			assert.Equal(t, 3, countNodes(t, g))
			assert.Equal(t, 2, countArcs(t, g))

			assert.Equal(t, 1, g.OutDegree(a))
			assert.Equal(t, 0, g.InDegree(a))
			assert.Equal(t, 1, g.InDegree(b))

			require.NoError(t, g.RemoveNode(b))
			assert.Equal(t, 2, g.NumNodes())
			assert.Equal(t, 0, g.NumArcs())
		})
	}
}

func TestUndirectedOutNeighbors(t *testing.T) {
	g := core.NewListGraph[string, int](false)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	arc, err := g.InsertArc(a, b, 1)
	require.NoError(t, err)

	it := g.OutArcs(a)
	require.True(t, it.HasNext())
	got, err := it.Next()
	require.NoError(t, err)
	assert.Same(t, arc, got)

	it = g.OutArcs(b)
	require.True(t, it.HasNext())
	got, err = it.Next()
	require.NoError(t, err)
	assert.Same(t, arc, got)

	other, err := g.GetConnectedNode(arc, a)
	require.NoError(t, err)
	assert.Same(t, b, other)
}

func TestDirectedInArcs(t *testing.T) {
	g := core.NewListGraph[string, int](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	ab, err := g.InsertArc(a, b, 1)
	require.NoError(t, err)
	_, err = g.InsertArc(b, c, 2)
	require.NoError(t, err)

	it := g.InArcs(b)
	require.True(t, it.HasNext())
	got, err := it.Next()
	require.NoError(t, err)
	assert.Same(t, ab, got)
	assert.False(t, it.HasNext())

	assert.False(t, g.InArcs(a).HasNext())
}

func TestDisconnectConnectIsIdentity(t *testing.T) {
	g := core.NewListGraph[string, int](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	arc, err := g.InsertArc(a, b, 7)
	require.NoError(t, err)

	wantNodes, wantArcs := g.NumNodes(), g.NumArcs()

	require.NoError(t, g.DisconnectArc(arc))
	assert.Equal(t, wantArcs-1, g.NumArcs())
	assert.Equal(t, 0, g.OutDegree(a))

	require.NoError(t, g.ConnectArc(arc))
	assert.Equal(t, wantNodes, g.NumNodes())
	assert.Equal(t, wantArcs, g.NumArcs())
	assert.Equal(t, 1, g.OutDegree(a))
}

func TestIteratorInvalidation(t *testing.T) {
	g := core.NewListGraph[string, int](true)
	g.InsertNode("a")
	it := g.Nodes()
	g.InsertNode("b")

	require.True(t, it.HasNext())
	_, err := it.Next()
	assert.ErrorIs(t, err, core.ErrIteratorInvalidated)
}

func TestBitMarksAndCounter(t *testing.T) {
	g := core.NewListGraph[string, int](true)
	a := g.InsertNode("a")

	assert.False(t, a.TestBit(core.BitProcessed))
	a.SetBit(core.BitProcessed)
	assert.True(t, a.TestBit(core.BitProcessed))
	a.SetCounter(42)
	assert.Equal(t, int64(42), a.Counter())

	g.ResetNodes()
	assert.False(t, a.TestBit(core.BitProcessed))
}

func TestMappingRegisters(t *testing.T) {
	src := core.NewListGraph[string, int](true)
	dst := core.NewListGraph[string, int](true)

	sv := src.InsertNode("a")
	dv := dst.InsertNode("a-copy")
	src.MapNode(sv, dv)

	got, ok := src.MappedNode(sv)
	require.True(t, ok)
	assert.Same(t, dv, got)

	_, ok = src.MappedNode(dst.InsertNode("unmapped"))
	assert.False(t, ok)
}

func TestFilterIterator(t *testing.T) {
	g := core.NewListGraph[string, int](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	arc1, err := g.InsertArc(a, b, 1)
	require.NoError(t, err)
	_, err = g.InsertArc(a, c, 2)
	require.NoError(t, err)

	arc1.SetBit(core.BitSpanningTree)

	fi := core.NewFilterIterator[*core.Arc[string, int]](g.Arcs(), func(a *core.Arc[string, int]) bool {
		return a.TestBit(core.BitSpanningTree)
	})

	var got []*core.Arc[string, int]
	for fi.HasNext() {
		v, err := fi.Next()
		require.NoError(t, err)
		got = append(got, v)
	}
	require.Len(t, got, 1)
	assert.Same(t, arc1, got[0])
}
