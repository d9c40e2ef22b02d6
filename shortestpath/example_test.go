package shortestpath_test

import (
	"fmt"

	"github.com/lrleon/Aleph-w-sub008/core"
	"github.com/lrleon/Aleph-w-sub008/shortestpath"
)

func ExampleDijkstra() {
	g := core.NewListGraph[string, string](true)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")

	ab, _ := g.InsertArc(a, b, "")
	ab.Weight = 1
	bc, _ := g.InsertArc(b, c, "")
	bc.Weight = 2

	res, _ := shortestpath.Dijkstra[string, string](g, a)
	fmt.Println(res.DistanceOf(c))
	// Output: 3
}
