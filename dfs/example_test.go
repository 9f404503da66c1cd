package dfs_test

import (
	"fmt"

	"github.com/no-hao/GraphTraversalCLI/core"
	"github.com/no-hao/GraphTraversalCLI/dfs"
)

// ExampleDFS demonstrates goal-directed depth-first search on the diamond
// graph {A:[B,C], B:[D], C:[D]}. The first listed branch (through B) is
// followed to the goal.
func ExampleDFS() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")
	_ = g.AddEdge("B", "D")
	_ = g.AddEdge("C", "D")

	res, err := dfs.DFS(g, "A", dfs.WithGoal("D"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	path, _ := res.PathTo("D")
	fmt.Println(path)
	// Output:
	// [A B D]
}

// ExampleDFS_trace shows visit and backtrack tracing, the exact events the
// CLI's debug mode prints for DFS.
func ExampleDFS_trace() {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("B", "C")

	_, _ = dfs.DFS(g, "A",
		dfs.WithOnVisit(func(id string, depth, stack int) error {
			fmt.Printf("visit %s depth=%d stack=%d\n", id, depth, stack)
			return nil
		}),
		dfs.WithOnBacktrack(func(id string, depth int) {
			fmt.Printf("backtrack %s depth=%d\n", id, depth)
		}),
	)
	// Output:
	// visit A depth=0 stack=1
	// visit B depth=1 stack=2
	// visit C depth=2 stack=3
	// backtrack C depth=2
	// backtrack B depth=1
	// backtrack A depth=0
}
