package bfs_test

import (
	"fmt"
	"testing"

	"github.com/no-hao/GraphTraversalCLI/bfs"
	"github.com/no-hao/GraphTraversalCLI/core"
)

// BenchmarkBFS_Chain measures BFS on a linear chain graph of size N.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 10000
	// build a chain of N+1 nodes, N edges
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(fmt.Sprintf("v%d", i), fmt.Sprintf("v%d", i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "v0", bfs.WithGoal(fmt.Sprintf("v%d", N)))
	}
}

// BenchmarkBFS_Grid measures BFS corner-to-corner on a 100×100 grid.
func BenchmarkBFS_Grid(b *testing.B) {
	const side = 100
	g := core.NewGraph(core.WithMirroredEdges())
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			if j+1 < side {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1))
			}
			if i+1 < side {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j))
			}
		}
	}
	goal := fmt.Sprintf("%d_%d", side-1, side-1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, "0_0", bfs.WithGoal(goal))
	}
}
