// Package graphtraversalcli finds paths in graphs loaded from CSV
// adjacency lists, using breadth-first and depth-first search.
//
// 🚀 What is GraphTraversalCLI?
//
//	A small, thread-safe toolkit plus a command-line front end:
//		• Core primitives: an insertion-ordered adjacency-list Graph
//		• Loading: CSV adjacency lists (node,neighbor1,neighbor2,...)
//		• Traversals: BFS and DFS with goal search & path reconstruction
//		• Hooks: OnEnqueue, OnDequeue, OnVisit, OnBacktrack for tracing
//		• Guards: depth, frontier and stack limits, context cancellation
//		• Output: colored console rendering and Graphviz DOT export
//
// ✨ Why this shape?
//
//   - Deterministic – neighbors expand in the order the CSV listed them,
//     so every run of the same input produces the same answer
//   - Rock-solid guarantees – R/W locks, explicit sentinel errors,
//     "no path" reported as an outcome rather than a failure
//   - Extensible – functional options on every entry point
//
// Everything is organized under flat subpackages:
//
//	core/     — the Graph type & thread-safe mutation primitives
//	csvgraph/ — CSV adjacency-list loading
//	bfs/      — breadth-first search, shortest paths by edge count
//	dfs/      — depth-first search with an explicit stack
//	builder/  — generators for well-known shapes (cycle, star, grid…)
//	prompt/   — interactive console input with a uniform exit command
//	ux/       — styled terminal output
//	viz/      — Graphviz DOT export with path highlighting
//	config/   — YAML-backed limits and defaults
//	cmd/graphtraversal — the CLI itself
//
// Quick ASCII example:
//
//	    A──▶B
//	    │   │
//	    ▼   ▼
//	    C──▶D
//
//	loaded from "A,B,C\nB,D\nC,D\nD", BFS from A to D answers A→B→D.
//
//	go get github.com/no-hao/GraphTraversalCLI
package graphtraversalcli
