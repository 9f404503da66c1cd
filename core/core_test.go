package core_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/no-hao/GraphTraversalCLI/core"
)

// TestAddNode_Errors verifies empty-ID rejection and idempotent inserts.
func TestAddNode_Errors(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddNode(""), core.ErrEmptyNodeID)

	assert.NoError(t, g.AddNode("A"))
	assert.NoError(t, g.AddNode("A")) // no-op, not an error
	assert.Equal(t, 1, g.NodeCount())
}

// TestAddEdge_AutoAddsEndpoints checks that both endpoints exist after AddEdge.
func TestAddEdge_AutoAddsEndpoints(t *testing.T) {
	g := core.NewGraph()
	if err := g.AddEdge("A", "B"); err != nil {
		t.Fatalf("AddEdge: %v", err)
	}
	if !g.HasNode("A") || !g.HasNode("B") {
		t.Errorf("endpoints missing after AddEdge: A=%v B=%v", g.HasNode("A"), g.HasNode("B"))
	}
	// directed-as-listed: B has no neighbors
	nbrs, err := g.Neighbors("B")
	if err != nil {
		t.Fatalf("Neighbors(B): %v", err)
	}
	if len(nbrs) != 0 {
		t.Errorf("Neighbors(B) = %v; want empty", nbrs)
	}
}

// TestNeighbors_ListedOrder checks that neighbor order matches AddEdge order.
func TestNeighbors_ListedOrder(t *testing.T) {
	g := core.NewGraph()
	for _, to := range []string{"C", "A", "B"} {
		if err := g.AddEdge("X", to); err != nil {
			t.Fatalf("AddEdge(X,%s): %v", to, err)
		}
	}
	nbrs, err := g.Neighbors("X")
	if err != nil {
		t.Fatal(err)
	}
	if want := []string{"C", "A", "B"}; !reflect.DeepEqual(nbrs, want) {
		t.Errorf("Neighbors(X) = %v; want %v (listed order)", nbrs, want)
	}
}

// TestNeighbors_Errors verifies the empty and unknown ID sentinels.
func TestNeighbors_Errors(t *testing.T) {
	g := core.NewGraph()
	_, err := g.Neighbors("")
	assert.ErrorIs(t, err, core.ErrEmptyNodeID)
	_, err = g.Neighbors("ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestNodes_InsertionOrder ensures Nodes() reflects first-seen order,
// including endpoints auto-added by AddEdge.
func TestNodes_InsertionOrder(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("B", "A")
	_ = g.AddNode("D")
	_ = g.AddEdge("A", "C")

	if want := []string{"B", "A", "D", "C"}; !reflect.DeepEqual(g.Nodes(), want) {
		t.Errorf("Nodes() = %v; want %v", g.Nodes(), want)
	}
}

// TestDuplicateEdgePolicy covers the default ignore policy and WithMultiEdges.
func TestDuplicateEdgePolicy(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "B")
	nbrs, _ := g.Neighbors("A")
	assert.Equal(t, []string{"B"}, nbrs, "duplicates ignored by default")
	assert.Equal(t, 1, g.EdgeCount())

	gm := core.NewGraph(core.WithMultiEdges())
	_ = gm.AddEdge("A", "B")
	_ = gm.AddEdge("A", "B")
	nbrs, _ = gm.Neighbors("A")
	assert.Equal(t, []string{"B", "B"}, nbrs, "duplicates kept with WithMultiEdges")
	assert.Equal(t, 2, gm.EdgeCount())
}

// TestMirroredEdges verifies the undirected reading of edges.
func TestMirroredEdges(t *testing.T) {
	g := core.NewGraph(core.WithMirroredEdges())
	_ = g.AddEdge("A", "B")

	a, _ := g.Neighbors("A")
	b, _ := g.Neighbors("B")
	assert.Equal(t, []string{"B"}, a)
	assert.Equal(t, []string{"A"}, b)
	assert.Equal(t, 2, g.EdgeCount())

	// self-loop is not doubled
	_ = g.AddEdge("C", "C")
	c, _ := g.Neighbors("C")
	assert.Equal(t, []string{"C"}, c)
}

// TestClone ensures deep copies share no neighbor slices.
func TestClone(t *testing.T) {
	g := core.NewGraph()
	_ = g.AddEdge("A", "B")
	_ = g.AddEdge("A", "C")

	c := g.Clone()
	assert.Equal(t, g.Nodes(), c.Nodes())
	assert.Equal(t, g.EdgeCount(), c.EdgeCount())

	// mutating the clone must not leak into the original
	_ = c.AddEdge("A", "Z")
	orig, _ := g.Neighbors("A")
	assert.Equal(t, []string{"B", "C"}, orig)
}
