package karger_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lrleon/Aleph-w-sub008/core"
	"github.com/lrleon/Aleph-w-sub008/karger"
)

// buildBridgedClusters builds two dense clusters joined
// by a single bridge arc. Each cluster is a 3-node triangle; the bridge
// connects one node from each.
func buildBridgedClusters(t *testing.T) *core.Graph[string, string] {
	t.Helper()
	g := core.NewListGraph[string, string](false)
	left := []*core.Node[string]{g.InsertNode("l0"), g.InsertNode("l1"), g.InsertNode("l2")}
	right := []*core.Node[string]{g.InsertNode("r0"), g.InsertNode("r1"), g.InsertNode("r2")}

	tri := func(ns []*core.Node[string]) {
		for i := 0; i < len(ns); i++ {
			for j := i + 1; j < len(ns); j++ {
				_, err := g.InsertArc(ns[i], ns[j], "")
				require.NoError(t, err)
			}
		}
	}
	tri(left)
	tri(right)

	_, err := g.InsertArc(left[0], right[0], "bridge")
	require.NoError(t, err)

	return g
}

func TestMinCutFindsTheBridge(t *testing.T) {
	g := buildBridgedClusters(t)

	cut, err := karger.MinCut[string, string](g, 7, 200)
	require.NoError(t, err)

	assert.Equal(t, 1, cut.Size)
	require.Len(t, cut.Arcs, 1)
	assert.Equal(t, "bridge", cut.Arcs[0].Payload)
}

func TestMinCutIsReproducibleForASeed(t *testing.T) {
	g := buildBridgedClusters(t)

	cut1, err := karger.MinCut[string, string](g, 42, 200)
	require.NoError(t, err)
	cut2, err := karger.MinCut[string, string](g, 42, 200)
	require.NoError(t, err)

	assert.Equal(t, cut1.Size, cut2.Size)
	assert.Equal(t, cut1.Arcs[0].Payload, cut2.Arcs[0].Payload)
}

func TestKargerSteinFindsTheBridge(t *testing.T) {
	g := buildBridgedClusters(t)

	cut, err := karger.KargerStein[string, string](g, 11)
	require.NoError(t, err)
	assert.Equal(t, 1, cut.Size)
	assert.Equal(t, "bridge", cut.Arcs[0].Payload)
}

func TestMinCutRejectsDirectedGraph(t *testing.T) {
	g := core.NewListGraph[string, string](true)
	_, err := karger.MinCut[string, string](g, 1, 10)
	assert.ErrorIs(t, err, karger.ErrDirectedGraph)
}

func TestMinCutRejectsTooFewNodes(t *testing.T) {
	g := core.NewListGraph[string, string](false)
	g.InsertNode("solo")
	_, err := karger.MinCut[string, string](g, 1, 10)
	assert.ErrorIs(t, err, karger.ErrTooFewNodes)
}

func ExampleMinCut() {
	g := core.NewListGraph[string, string](false)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")
	_, _ = g.InsertArc(a, b, "")
	_, _ = g.InsertArc(b, c, "")

	cut, _ := karger.MinCut[string, string](g, 3, 50)
	fmt.Println(cut.Size)
	// Output: 1
}
