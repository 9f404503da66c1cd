// Command graphtraversal loads a graph from a CSV adjacency list and
// finds a path between two nodes with BFS and DFS.
//
// Run it with no arguments for the interactive prompt flow, or fully
// scripted:
//
//	graphtraversal --file routes.csv --from A --to D --print
//	graphtraversal generate --shape grid --rows 4 --cols 4 --out grid.csv
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
