package connectivity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/Aleph-w-sub008/connectivity"
	"github.com/lrleon/Aleph-w-sub008/core"
)

// buildCycleChain builds a directed graph on {1,2,3,4,5} with
// 1->2, 2->3, 3->1, 3->4, 4->5.
func buildCycleChain(t *testing.T) (*core.Graph[int, string], map[int]*core.Node[int]) {
	t.Helper()
	g := core.NewListGraph[int, string](true)
	nodes := map[int]*core.Node[int]{}
	for _, n := range []int{1, 2, 3, 4, 5} {
		nodes[n] = g.InsertNode(n)
	}
	for _, e := range [][2]int{{1, 2}, {2, 3}, {3, 1}, {3, 4}, {4, 5}} {
		_, err := g.InsertArc(nodes[e[0]], nodes[e[1]], "")
		require.NoError(t, err)
	}
	return g, nodes
}

func TestTarjanMixedComponents(t *testing.T) {
	g, n := buildCycleChain(t)

	result, err := connectivity.Tarjan[int, string](g)
	require.NoError(t, err)

	require.Len(t, result.Components, 3)
	assert.True(t, result.HasCycle())
	assert.False(t, result.IsDag())
	assert.False(t, result.IsStronglyConnected())

	bySize := func(v *core.Node[int]) int { return len(result.Components[result.ComponentOf[v]]) }
	assert.Equal(t, 3, bySize(n[1]))
	assert.Equal(t, bySize(n[1]), bySize(n[2]))
	assert.Equal(t, bySize(n[1]), bySize(n[3]))
	assert.Equal(t, 1, bySize(n[4]))
	assert.Equal(t, 1, bySize(n[5]))

	cBig := result.ComponentOf[n[1]]
	c4 := result.ComponentOf[n[4]]
	c5 := result.ComponentOf[n[5]]
	assert.ElementsMatch(t, []connectivity.CondensationArc{{From: cBig, To: c4}, {From: c4, To: c5}}, result.Condensation)
}

func TestTarjanOnDAGYieldsAllSingletons(t *testing.T) {
	g := core.NewListGraph[string, string](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	_, err := g.InsertArc(a, b, "")
	require.NoError(t, err)
	_, err = g.InsertArc(b, c, "")
	require.NoError(t, err)

	result, err := connectivity.Tarjan[string, string](g)
	require.NoError(t, err)
	assert.Len(t, result.Components, 3)
	assert.False(t, result.HasCycle())
	assert.True(t, result.IsDag())
}

func TestSubgraphsSplitsComponents(t *testing.T) {
	g, n := buildCycleChain(t)

	result, err := connectivity.Tarjan[int, string](g)
	require.NoError(t, err)

	subs, inter, err := connectivity.Subgraphs(g, result)
	require.NoError(t, err)
	require.Len(t, subs, 3)

	big := subs[result.ComponentOf[n[1]]]
	assert.Equal(t, 3, big.NumNodes())
	assert.Equal(t, 3, big.NumArcs())

	require.Len(t, inter, 2)
	for _, a := range inter {
		assert.NotEqual(t, result.ComponentOf[g.GetSrcNode(a)], result.ComponentOf[g.GetTgtNode(a)])
	}

	mapped, ok := g.MappedNode(n[4])
	require.True(t, ok)
	assert.Equal(t, 4, mapped.Payload)
}

func TestComputeCycleFindsWitness(t *testing.T) {
	g, n := buildCycleChain(t)

	path, found := connectivity.ComputeCycle[int, string](g)
	require.True(t, found)

	payloads := make(map[int]bool)
	for _, v := range path.Nodes() {
		payloads[v.Payload] = true
	}
	assert.True(t, payloads[1] || payloads[2] || payloads[3])
	assert.Equal(t, path.First(), path.Last())

	_ = n
}

func TestComputeCycleOnDAGFindsNothing(t *testing.T) {
	g := core.NewListGraph[string, string](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	_, err := g.InsertArc(a, b, "")
	require.NoError(t, err)

	_, found := connectivity.ComputeCycle[string, string](g)
	assert.False(t, found)
}

func TestIsAcyclicUndirectedShortCircuitsOnEdgeCount(t *testing.T) {
	g := core.NewListGraph[string, string](false)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	_, err := g.InsertArc(a, b, "")
	require.NoError(t, err)
	_, err = g.InsertArc(b, c, "")
	require.NoError(t, err)
	_, err = g.InsertArc(a, c, "")
	require.NoError(t, err)

	acyclic, cycle, err := connectivity.IsAcyclicUndirected[string, string](g)
	require.NoError(t, err)
	assert.False(t, acyclic)
	require.NotNil(t, cycle)
	assert.Equal(t, 4, cycle.Len())
}

func TestIsAcyclicUndirectedOnATree(t *testing.T) {
	g := core.NewListGraph[string, string](false)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	_, err := g.InsertArc(a, b, "")
	require.NoError(t, err)
	_, err = g.InsertArc(b, c, "")
	require.NoError(t, err)

	acyclic, cycle, err := connectivity.IsAcyclicUndirected[string, string](g)
	require.NoError(t, err)
	assert.True(t, acyclic)
	assert.Nil(t, cycle)
}

func TestIsAcyclicUndirectedRejectsDirectedGraph(t *testing.T) {
	g := core.NewListGraph[string, string](true)
	_, _, err := connectivity.IsAcyclicUndirected[string, string](g)
	assert.ErrorIs(t, err, connectivity.ErrDirectedGraph)
}
