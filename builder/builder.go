package builder

import (
	"errors"
	"fmt"

	"github.com/no-hao/GraphTraversalCLI/core"
)

// ErrTooFewNodes is returned when a constructor is asked for fewer nodes
// than its topology needs.
var ErrTooFewNodes = errors.New("builder: too few nodes")

// Minimum sizes per topology.
const (
	minCycleNodes    = 3
	minPathNodes     = 2
	minStarNodes     = 2
	minCompleteNodes = 2
	minGridSide      = 1
)

// nodeID is the shared ID scheme for index-based topologies.
func nodeID(i int) string {
	return fmt.Sprintf("N%d", i)
}

// gridID is the ID scheme for grid cells.
func gridID(row, col int) string {
	return fmt.Sprintf("%d_%d", row, col)
}

// Cycle builds the n-node ring C_n: N0→N1→…→N(n-1)→N0, mirrored so the
// ring can be walked in both directions.
// Requires n ≥ 3.
func Cycle(n int) (*core.Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}

	g := core.NewGraph(core.WithMirroredEdges())
	for i := 0; i < n; i++ {
		if err := g.AddEdge(nodeID(i), nodeID((i+1)%n)); err != nil {
			return nil, fmt.Errorf("cycle: %w", err)
		}
	}

	return g, nil
}

// Path builds the n-node line graph N0—N1—…—N(n-1), mirrored.
// Requires n ≥ 2.
func Path(n int) (*core.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewNodes)
	}

	g := core.NewGraph(core.WithMirroredEdges())
	for i := 0; i+1 < n; i++ {
		if err := g.AddEdge(nodeID(i), nodeID(i+1)); err != nil {
			return nil, fmt.Errorf("path: %w", err)
		}
	}

	return g, nil
}

// Star builds an n-node star: hub N0 connected to N1..N(n-1), mirrored.
// Requires n ≥ 2.
func Star(n int) (*core.Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}

	g := core.NewGraph(core.WithMirroredEdges())
	for i := 1; i < n; i++ {
		if err := g.AddEdge(nodeID(0), nodeID(i)); err != nil {
			return nil, fmt.Errorf("star: %w", err)
		}
	}

	return g, nil
}

// Complete builds the complete graph K_n: every pair of distinct nodes
// connected, mirrored. Requires n ≥ 2.
func Complete(n int) (*core.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}

	g := core.NewGraph(core.WithMirroredEdges())
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if err := g.AddEdge(nodeID(i), nodeID(j)); err != nil {
				return nil, fmt.Errorf("complete: %w", err)
			}
		}
	}

	return g, nil
}

// Grid builds a rows×cols lattice with 4-neighborhood connectivity and
// "<row>_<col>" IDs, mirrored. Requires rows ≥ 1 and cols ≥ 1.
func Grid(rows, cols int) (*core.Graph, error) {
	if rows < minGridSide || cols < minGridSide {
		return nil, fmt.Errorf("grid: %dx%d: %w", rows, cols, ErrTooFewNodes)
	}

	g := core.NewGraph(core.WithMirroredEdges())
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			// single cell: make sure it still exists as a node
			if err := g.AddNode(gridID(r, c)); err != nil {
				return nil, fmt.Errorf("grid: %w", err)
			}
			if c+1 < cols {
				if err := g.AddEdge(gridID(r, c), gridID(r, c+1)); err != nil {
					return nil, fmt.Errorf("grid: %w", err)
				}
			}
			if r+1 < rows {
				if err := g.AddEdge(gridID(r, c), gridID(r+1, c)); err != nil {
					return nil, fmt.Errorf("grid: %w", err)
				}
			}
		}
	}

	return g, nil
}
