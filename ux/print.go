package ux

import (
	"fmt"
	"io"
	"strings"
)

// arrow separates nodes in adjacency and path listings.
const arrow = " -> "

// graphSource is the read-only slice of core.Graph the printers need.
type graphSource interface {
	Nodes() []string
	Neighbors(id string) ([]string, error)
}

// PrintAdjacency writes the adjacency list one node per line:
//
//	A -> B -> C
//	B -> D
//
// Nodes appear in insertion order, neighbors in listed order.
func PrintAdjacency(w io.Writer, g graphSource) error {
	fmt.Fprintln(w, Styles.Title.Render("Graph:"))
	for _, id := range g.Nodes() {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("ux: neighbors of %q: %w", id, err)
		}
		parts := make([]string, 0, len(nbrs)+1)
		parts = append(parts, Styles.Node.Render(id))
		for _, nbr := range nbrs {
			parts = append(parts, Styles.Node.Render(nbr))
		}
		fmt.Fprintln(w, strings.Join(parts, Styles.Arrow.Render(arrow)))
	}

	return nil
}

// PrintPath writes a discovered path under the algorithm's heading:
//
//	Breadth-first traversal
//	A -> B -> D
func PrintPath(w io.Writer, algorithm string, path []string) {
	fmt.Fprintln(w, Styles.Title.Render(algorithm))
	styled := make([]string, len(path))
	for i, id := range path {
		styled[i] = Styles.Path.Render(id)
	}
	fmt.Fprintln(w, strings.Join(styled, Styles.Arrow.Render(arrow)))
}

// PrintNoPath reports the legitimate "no path" outcome for an algorithm.
func PrintNoPath(w io.Writer, algorithm string) {
	fmt.Fprintln(w, Styles.Warning.Render(fmt.Sprintf("No path found in %s", algorithm)))
}

// Errorf writes a styled error line.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Styles.Error.Render(fmt.Sprintf(format, args...)))
}

// Successf writes a styled success line.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Styles.Success.Render(fmt.Sprintf(format, args...)))
}

// Infof writes a muted informational line.
func Infof(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, Styles.Muted.Render(fmt.Sprintf(format, args...)))
}
