// Package core defines the Graph type, its construction options,
// and sentinel errors.
//
// This file declares Graph, GraphOption, and the NewGraph constructor.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithMirroredEdges makes AddEdge insert the reverse neighbor link as well,
// giving an undirected reading of the input (A,B ⇒ B∈adj(A) and A∈adj(B)).
// Off by default: rows are followed exactly as listed.
func WithMirroredEdges() GraphOption {
	return func(g *Graph) { g.mirrored = true }
}

// WithMultiEdges keeps duplicate neighbor entries instead of ignoring them.
// A node listed twice on the same row will then be expanded twice (the
// visited set still prevents revisiting, so traversal results are unchanged;
// only diagnostics and edge counts differ).
func WithMultiEdges() GraphOption {
	return func(g *Graph) { g.allowMulti = true }
}

// Graph is the core in-memory adjacency structure.
//
// order preserves node insertion sequence; adjacency preserves the
// listed order of each node's neighbors. mu guards both.
type Graph struct {
	mu sync.RWMutex

	// Configuration flags
	mirrored   bool // insert reverse neighbor links on AddEdge
	allowMulti bool // keep duplicate neighbor entries

	// Storage
	order     []string            // node IDs in insertion order
	adjacency map[string][]string // node ID → neighbor IDs in listed order
	edgeCount int                 // total neighbor links stored
}

// NewGraph creates an empty Graph with the given options.
// By default edges are directed-as-listed and duplicates are ignored.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		adjacency: make(map[string][]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
