// Package viz renders a graph and a discovered path as Graphviz DOT,
// the tool's answer to "visualize the graph and the path found".
//
// The output is a digraph in which nodes and edges on the path are
// colored and thickened; render it with any Graphviz installation:
//
//	dot -Tpng out.dot -o out.png
package viz

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/encoding"
	"gonum.org/v1/gonum/graph/encoding/dot"
	"gonum.org/v1/gonum/graph/simple"
)

// Path highlight attributes.
const (
	highlightColor = "red"
	highlightWidth = "2.0"
)

// graphSource is the read-only slice of core.Graph the exporter needs.
type graphSource interface {
	Nodes() []string
	Neighbors(id string) ([]string, error)
}

// node adapts a string node ID to gonum's integer-ID graph model while
// keeping the original ID as the DOT identifier.
type node struct {
	id     int64
	dotID  string
	onPath bool
}

func (n node) ID() int64     { return n.id }
func (n node) DOTID() string { return n.dotID }

func (n node) Attributes() []encoding.Attribute {
	if !n.onPath {
		return nil
	}

	return []encoding.Attribute{
		{Key: "color", Value: highlightColor},
		{Key: "penwidth", Value: highlightWidth},
	}
}

// edge carries the highlight flag for path edges.
type edge struct {
	from, to node
	onPath   bool
}

func (e edge) From() graph.Node { return e.from }
func (e edge) To() graph.Node   { return e.to }

func (e edge) ReversedEdge() graph.Edge {
	return edge{from: e.to, to: e.from, onPath: e.onPath}
}

func (e edge) Attributes() []encoding.Attribute {
	if !e.onPath {
		return nil
	}

	return []encoding.Attribute{
		{Key: "color", Value: highlightColor},
		{Key: "penwidth", Value: highlightWidth},
	}
}

// WriteDOT writes g to w as a Graphviz digraph, highlighting the nodes
// and consecutive edges of path. An empty path exports the plain graph.
// Self-loops are omitted: gonum's simple graphs cannot represent them,
// and they never appear on a simple path anyway.
func WriteDOT(w io.Writer, g graphSource, path []string) error {
	onPath := make(map[string]bool, len(path))
	for _, id := range path {
		onPath[id] = true
	}
	pathEdge := make(map[[2]string]bool, len(path))
	for i := 0; i+1 < len(path); i++ {
		pathEdge[[2]string{path[i], path[i+1]}] = true
	}

	// integer IDs follow node insertion order, keeping output stable
	ids := g.Nodes()
	index := make(map[string]node, len(ids))
	dg := simple.NewDirectedGraph()
	for i, id := range ids {
		n := node{id: int64(i), dotID: id, onPath: onPath[id]}
		index[id] = n
		dg.AddNode(n)
	}

	for _, id := range ids {
		nbrs, err := g.Neighbors(id)
		if err != nil {
			return fmt.Errorf("viz: neighbors of %q: %w", id, err)
		}
		for _, nbr := range nbrs {
			if nbr == id {
				continue
			}
			dg.SetEdge(edge{
				from:   index[id],
				to:     index[nbr],
				onPath: pathEdge[[2]string{id, nbr}],
			})
		}
	}

	data, err := dot.Marshal(dg, "graphtraversal", "", "  ")
	if err != nil {
		return fmt.Errorf("viz: marshal: %w", err)
	}
	if _, err = w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("viz: write: %w", err)
	}

	return nil
}
