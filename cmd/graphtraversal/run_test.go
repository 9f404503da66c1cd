package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/no-hao/GraphTraversalCLI/config"
)

// diamondCSV is a directed graph where two branches from A rejoin at D.
const diamondCSV = "A,B,C\nB,D\nC,D\nD\n"

func writeTempCSV(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func newTestSession(in string) (*session, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errw := &bytes.Buffer{}
	s := &session{
		cfg:  config.Default(),
		in:   strings.NewReader(in),
		out:  out,
		errw: errw,
	}
	return s, out, errw
}

func TestInteractiveFindsPathBothWays(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	// file, start, end, then Enter through the three option prompts
	s, out, _ := newTestSession(path + "\nA\nD\n\n\n\n")

	require.NoError(t, s.runInteractive())

	got := out.String()
	assert.Contains(t, got, bfsHeading)
	assert.Contains(t, got, dfsHeading)
	assert.Contains(t, got, "A -> B -> D")
	assert.NotContains(t, got, "No path found")
}

func TestInteractiveExitAtFirstPrompt(t *testing.T) {
	s, out, _ := newTestSession("exit\n")

	require.NoError(t, s.runInteractive())
	assert.Contains(t, out.String(), "Exiting...")
}

func TestInteractiveExitAtNodePrompt(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	s, out, _ := newTestSession(path + "\nexit\n")

	require.NoError(t, s.runInteractive())
	assert.Contains(t, out.String(), "Exiting...")
	assert.NotContains(t, out.String(), bfsHeading)
}

func TestInteractiveRetriesOnMissingFile(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	s, out, _ := newTestSession("no_such_file.csv\n" + path + "\nA\nD\n\n\n\n")

	require.NoError(t, s.runInteractive())

	got := out.String()
	assert.Contains(t, got, "Error loading graph")
	assert.Contains(t, got, "A -> B -> D")
}

func TestInteractiveRetriesOnUnknownNode(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	// first pair references a node that does not exist; second pair is valid
	s, out, _ := newTestSession(path + "\nA\nZ\nA\nD\n\n\n\n")

	require.NoError(t, s.runInteractive())

	got := out.String()
	assert.Contains(t, got, "node ID not present in the graph")
	assert.Contains(t, got, "A -> B -> D")
}

func TestInteractivePrintFlagShowsAdjacency(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	s, out, _ := newTestSession(path + "\nA\nD\np\n\n\n")

	require.NoError(t, s.runInteractive())

	got := out.String()
	assert.Contains(t, got, "Graph:")
	assert.Contains(t, got, "A -> B -> C")
}

func TestScriptedFindsPath(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	s, out, _ := newTestSession("")

	err := s.runScripted(scriptedArgs{file: path, from: "A", to: "D"})
	require.NoError(t, err)

	got := out.String()
	assert.Contains(t, got, bfsHeading)
	assert.Contains(t, got, "A -> B -> D")
}

func TestScriptedNoPathIsNotAnError(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	s, out, _ := newTestSession("")

	// the diamond is directed, so D cannot reach A
	err := s.runScripted(scriptedArgs{file: path, from: "D", to: "A"})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No path found")
}

func TestScriptedUnknownNodeFails(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	s, _, _ := newTestSession("")

	err := s.runScripted(scriptedArgs{file: path, from: "A", to: "Z"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not present in the graph")
}

func TestScriptedRequiresFromAndTo(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	s, _, _ := newTestSession("")

	err := s.runScripted(scriptedArgs{file: path, from: "A"})
	require.Error(t, err)
}

func TestScriptedDebugTracesToStderr(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	s, _, errw := newTestSession("")

	err := s.runScripted(scriptedArgs{
		file: path, from: "A", to: "D",
		debugBFS: true, debugDFS: true,
	})
	require.NoError(t, err)

	trace := errw.String()
	assert.Contains(t, trace, "bfs: expand A")
	assert.Contains(t, trace, "dfs: visit A")
	assert.Contains(t, trace, "dfs: backtrack")
}

func TestScriptedVisualizeWritesDOTFiles(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	prefix := filepath.Join(t.TempDir(), "diamond")
	s, _, _ := newTestSession("")

	err := s.runScripted(scriptedArgs{
		file: path, from: "A", to: "D", visualize: prefix,
	})
	require.NoError(t, err)

	for _, suffix := range []string{"_bfs.dot", "_dfs.dot"} {
		data, rerr := os.ReadFile(prefix + suffix)
		require.NoError(t, rerr)
		assert.Contains(t, string(data), "color=red")
	}
}

func TestScriptedMirroredReachesBackward(t *testing.T) {
	path := writeTempCSV(t, diamondCSV)
	s, out, _ := newTestSession("")
	s.cfg.Mirrored = true

	err := s.runScripted(scriptedArgs{file: path, from: "D", to: "A"})
	require.NoError(t, err)
	assert.NotContains(t, out.String(), "No path found")
}

func TestBuildShapeRejectsUnknown(t *testing.T) {
	_, err := buildShape("torus")
	require.Error(t, err)
}
