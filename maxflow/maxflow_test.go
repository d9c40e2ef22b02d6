package maxflow_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/Aleph-w-sub008/core"
	"github.com/lrleon/Aleph-w-sub008/maxflow"
)

// buildDiamondNet builds a directed network s,a,b,t with
// s->a:3, s->b:2, a->b:1, a->t:2, b->t:3. Expected max-flow 5.
func buildDiamondNet(t *testing.T) (*core.Network[string, string], map[string]*core.Node[string]) {
	t.Helper()
	g := core.NewListGraph[string, string](true)
	nw := core.NewNetwork[string, string](g)
	nodes := map[string]*core.Node[string]{
		"s": g.InsertNode("s"),
		"a": g.InsertNode("a"),
		"b": g.InsertNode("b"),
		"t": g.InsertNode("t"),
	}
	type arc struct {
		u, v string
		cap  int64
	}
	for _, a := range []arc{{"s", "a", 3}, {"s", "b", 2}, {"a", "b", 1}, {"a", "t", 2}, {"b", "t", 3}} {
		_, err := nw.InsertCapacitatedArc(nodes[a.u], nodes[a.v], a.cap, "")
		require.NoError(t, err)
	}
	return nw, nodes
}

func TestFordFulkersonDiamondNet(t *testing.T) {
	nw, n := buildDiamondNet(t)
	value, err := maxflow.FordFulkerson[string, string](nw, n["s"], n["t"])
	require.NoError(t, err)
	assert.Equal(t, int64(5), value)
}

func TestEdmondsKarpDiamondNet(t *testing.T) {
	nw, n := buildDiamondNet(t)
	value, err := maxflow.EdmondsKarp[string, string](nw, n["s"], n["t"])
	require.NoError(t, err)
	assert.Equal(t, int64(5), value)

	cut := maxflow.MinCut[string, string](nw, n["s"])
	assert.Equal(t, int64(5), cut.Capacity)
	require.NoError(t, maxflow.VerifyCut[string, string](cut, value))

	var crossing []string
	for _, a := range cut.Arcs {
		crossing = append(crossing, nw.GetSrcNode(a).Payload+"->"+nw.GetTgtNode(a).Payload)
	}
	assert.ElementsMatch(t, []string{"s->a", "s->b"}, crossing)
}

func TestPreflowFIFOMatchesEdmondsKarp(t *testing.T) {
	nw1, n1 := buildDiamondNet(t)
	nw2, n2 := buildDiamondNet(t)

	want, err := maxflow.EdmondsKarp[string, string](nw1, n1["s"], n1["t"])
	require.NoError(t, err)

	got, err := maxflow.PreflowFIFO[string, string](nw2, n2["s"], n2["t"])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPreflowMaxHeightMatchesEdmondsKarp(t *testing.T) {
	nw1, n1 := buildDiamondNet(t)
	nw2, n2 := buildDiamondNet(t)

	want, err := maxflow.EdmondsKarp[string, string](nw1, n1["s"], n1["t"])
	require.NoError(t, err)

	got, err := maxflow.PreflowMaxHeight[string, string](nw2, n2["s"], n2["t"])
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestPreflowRandomIsReproducibleForASeed(t *testing.T) {
	nw1, n1 := buildDiamondNet(t)
	nw2, n2 := buildDiamondNet(t)

	got1, err := maxflow.PreflowRandom[string, string](nw1, n1["s"], n1["t"], 7)
	require.NoError(t, err)
	got2, err := maxflow.PreflowRandom[string, string](nw2, n2["s"], n2["t"], 7)
	require.NoError(t, err)

	assert.Equal(t, int64(5), got1)
	assert.Equal(t, got1, got2)
}

func TestFordFulkersonNilTerminal(t *testing.T) {
	nw, n := buildDiamondNet(t)
	_, err := maxflow.FordFulkerson[string, string](nw, nil, n["t"])
	assert.ErrorIs(t, err, maxflow.ErrNilTerminal)
}
