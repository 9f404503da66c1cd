package builder_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/no-hao/GraphTraversalCLI/bfs"
	"github.com/no-hao/GraphTraversalCLI/builder"
	"github.com/no-hao/GraphTraversalCLI/csvgraph"
)

func TestCycle(t *testing.T) {
	_, err := builder.Cycle(2)
	assert.ErrorIs(t, err, builder.ErrTooFewNodes)

	g, err := builder.Cycle(5)
	require.NoError(t, err)
	assert.Equal(t, 5, g.NodeCount())
	// every node has exactly two distinct neighbors in a ring
	for _, id := range g.Nodes() {
		nbrs, nerr := g.Neighbors(id)
		require.NoError(t, nerr)
		assert.Len(t, nbrs, 2, "node %s", id)
	}
}

func TestPath(t *testing.T) {
	g, err := builder.Path(4)
	require.NoError(t, err)

	// endpoints have one neighbor, inner nodes two
	for i, want := range []int{1, 2, 2, 1} {
		nbrs, _ := g.Neighbors(g.Nodes()[i])
		assert.Len(t, nbrs, want)
	}
}

func TestStar(t *testing.T) {
	g, err := builder.Star(6)
	require.NoError(t, err)

	hub, _ := g.Neighbors("N0")
	assert.Len(t, hub, 5)
	leaf, _ := g.Neighbors("N3")
	assert.Equal(t, []string{"N0"}, leaf)
}

func TestComplete(t *testing.T) {
	g, err := builder.Complete(4)
	require.NoError(t, err)
	// K4: each node adjacent to the other three
	for _, id := range g.Nodes() {
		nbrs, _ := g.Neighbors(id)
		assert.Len(t, nbrs, 3)
	}
}

func TestGrid(t *testing.T) {
	g, err := builder.Grid(3, 3)
	require.NoError(t, err)
	assert.Equal(t, 9, g.NodeCount())

	corner, _ := g.Neighbors("0_0")
	assert.Len(t, corner, 2)
	center, _ := g.Neighbors("1_1")
	assert.Len(t, center, 4)

	// single cell still yields a node
	g1, err := builder.Grid(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"0_0"}, g1.Nodes())
}

// TestWriteCSV_RoundTrip serializes a generated graph and re-loads it,
// checking that traversal behavior survives the trip.
func TestWriteCSV_RoundTrip(t *testing.T) {
	g, err := builder.Cycle(6)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, builder.WriteCSV(&buf, g))

	loaded, err := csvgraph.Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Nodes(), loaded.Nodes())

	// shortest ring distance from N0 to N3 is 3 either way
	res, err := bfs.BFS(loaded, "N0", bfs.WithGoal("N3"))
	require.NoError(t, err)
	path, err := res.PathTo("N3")
	require.NoError(t, err)
	assert.Len(t, path, 4)
}
