package builder

import (
	"encoding/csv"
	"fmt"
	"io"
)

// graphSource is the read-only slice of core.Graph that WriteCSV needs.
// Declared locally so any adjacency-shaped type can be serialized.
type graphSource interface {
	Nodes() []string
	Neighbors(id string) ([]string, error)
}

// WriteCSV serializes g as an adjacency-list CSV: one row per node in
// insertion order, neighbors in listed order. The output round-trips
// through csvgraph.Parse (mirrored links appear on both rows, so a plain
// directed re-load reproduces the same traversal behavior).
func WriteCSV(w io.Writer, g graphSource) error {
	cw := csv.NewWriter(w)
	for _, id := range g.Nodes() {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("builder: neighbors of %q: %w", id, err)
		}
		row := append([]string{id}, nbrs...)
		if err = cw.Write(row); err != nil {
			return fmt.Errorf("builder: write row for %q: %w", id, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("builder: flush: %w", err)
	}

	return nil
}
