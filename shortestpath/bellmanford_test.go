package shortestpath_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/Aleph-w-sub008/core"
	"github.com/lrleon/Aleph-w-sub008/shortestpath"
)

// buildNegCycleGraph builds a directed graph on A,B,C,D with a negative
// cycle A->B->C->A and a dangling arc A->D.
func buildNegCycleGraph(t *testing.T) (*core.Graph[string, int], map[string]*core.Node[string]) {
	t.Helper()
	g := core.NewListGraph[string, int](true)
	nodes := map[string]*core.Node[string]{
		"A": g.InsertNode("A"),
		"B": g.InsertNode("B"),
		"C": g.InsertNode("C"),
		"D": g.InsertNode("D"),
	}
	type arc struct {
		from, to string
		w        int64
	}
	for _, a := range []arc{{"A", "B", 1}, {"B", "C", -3}, {"C", "A", 1}, {"A", "D", 5}} {
		created, err := g.InsertArc(nodes[a.from], nodes[a.to], 0)
		require.NoError(t, err)
		created.Weight = a.w
	}
	return g, nodes
}

func cycleWeight[N, A any](g *core.Graph[N, A], p *core.Path[N, A]) int64 {
	var total int64
	for _, a := range p.Arcs() {
		total += a.Weight
	}
	return total
}

func TestBellmanFordClassicalDetectsNegativeCycle(t *testing.T) {
	g, n := buildNegCycleGraph(t)

	res, cycle, err := shortestpath.BellmanFord[string, int](g, n["A"])
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
	require.NotNil(t, res)
	require.False(t, cycle.Empty())

	assert.Equal(t, int64(-1), cycleWeight(g, cycle))

	seen := make(map[string]bool)
	for _, v := range cycle.Nodes() {
		seen[v.Payload] = true
	}
	assert.True(t, seen["A"] && seen["B"] && seen["C"])
	assert.False(t, seen["D"])
}

func TestSearchNegativeCycleMatchesClassical(t *testing.T) {
	g, n := buildNegCycleGraph(t)

	_, cycle, iterations, err := shortestpath.SearchNegativeCycle[string, int](g, n["A"])
	require.ErrorIs(t, err, shortestpath.ErrNegativeCycle)
	require.False(t, cycle.Empty())
	assert.Equal(t, int64(-1), cycleWeight(g, cycle))
	assert.Greater(t, iterations, 0)
}

func TestBellmanFordAgreesWithDijkstraOnNonNegativeGraph(t *testing.T) {
	g, n := buildWeightedPentagon(t)

	dijkstraRes, err := shortestpath.Dijkstra[int, string](g, n[0])
	require.NoError(t, err)

	bfRes, cycle, err := shortestpath.BellmanFord[int, string](g, n[0])
	require.NoError(t, err)
	assert.Nil(t, cycle)

	for _, v := range n {
		assert.Equal(t, dijkstraRes.DistanceOf(v), bfRes.DistanceOf(v))
	}
}

func TestBellmanFordNilSource(t *testing.T) {
	g := core.NewListGraph[string, int](true)
	_, _, err := shortestpath.BellmanFord[string, int](g, nil)
	assert.ErrorIs(t, err, shortestpath.ErrNilSource)
}
