package dfs_test

import (
	"fmt"
	"testing"

	"github.com/no-hao/GraphTraversalCLI/core"
	"github.com/no-hao/GraphTraversalCLI/dfs"
)

// BenchmarkDFS_Chain measures the iterative walker on a deep chain, the
// worst case for the frame stack.
func BenchmarkDFS_Chain(b *testing.B) {
	const N = 10000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}
	goal := fmt.Sprintf("v%d", N)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = dfs.DFS(g, "v0", dfs.WithGoal(goal))
	}
}
