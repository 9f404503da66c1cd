package core_test

import (
	"fmt"

	"github.com/no-hao/GraphTraversalCLI/core"
)

// ExampleGraph_Neighbors shows that neighbor order follows edge insertion,
// exactly as rows would be listed in a CSV adjacency file.
func ExampleGraph_Neighbors() {
	g := core.NewGraph()
	// Row "A,B,C" of an adjacency file becomes two ordered edges.
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")

	nbrs, _ := g.Neighbors("A")
	fmt.Println(nbrs)
	fmt.Println(g.Nodes())
	// Output:
	// [B C]
	// [A B C D]
}
