// Package core provides the fundamental in-memory Graph implementation
// used by the traversal packages (bfs, dfs) and the CSV loader.
//
// What
//
//   - Graph: a mapping from node ID to an ordered list of neighbor IDs.
//   - Neighbor order is the order in which edges were added; traversals
//     rely on that order for reproducible results.
//   - Edges are directed-as-listed: AddEdge("A", "B") makes B a neighbor
//     of A only. Use WithMirroredEdges to insert the reverse link too.
//   - Thread-safe: all mutations acquire a write lock, queries a read lock.
//
// Why
//
//   - A CSV adjacency list is inherently ordered; preserving that order is
//     what makes "first path found" a well-defined, testable outcome.
//   - Sorted or map-ordered neighbor iteration would silently change which
//     of several equal-length paths BFS returns.
//
// Determinism
//
//	Nodes() returns nodes in insertion order and Neighbors(id) returns
//	neighbors in listed order, so any algorithm driven by those two
//	methods is fully reproducible for the same input file.
//
// Errors
//
//   - ErrEmptyNodeID  if a node ID is the empty string.
//   - ErrNodeNotFound if a queried node does not exist.
package core
