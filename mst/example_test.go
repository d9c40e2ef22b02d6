package mst_test

import (
	"fmt"

	"github.com/lrleon/Aleph-w-sub008/core"
	"github.com/lrleon/Aleph-w-sub008/mst"
)

func ExampleKruskal() {
	g := core.NewListGraph[string, string](false)
	a := g.InsertNode("a")
	b := g.InsertNode("b")
	c := g.InsertNode("c")

	ab, _ := g.InsertArc(a, b, "")
	ab.Weight = 1
	bc, _ := g.InsertArc(b, c, "")
	bc.Weight = 2
	ac, _ := g.InsertArc(a, c, "")
	ac.Weight = 5

	forest, _ := mst.Kruskal[string, string](g)
	fmt.Println(forest.TotalWeight)
	// Output: 3
}
