// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (edge count) from a start node.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (edges) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Goal-directed mode via WithGoal: the search stops as soon as the goal
//     node is dequeued, and Result.PathTo reconstructs the discovered path.
//   - Supports functional hooks at three stages:
//   - OnEnqueue (when a node is first discovered)
//   - OnDequeue (immediately before expanding; receives the frontier size)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth and MaxFrontier limits and neighbor filtering.
//
// Why
//
//   - Compute unweighted shortest paths in O(V + E) time.
//   - The parent of each node is fixed at first discovery, so any path
//     reconstructed from Parent has the minimum number of edges.
//
// Determinism
//
//	core.Neighbors returns neighbors in listed (file) order, and BFS enqueues
//	them in that order, so the visit sequence — and therefore which of several
//	equal-length paths is found first — is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (frontier, Depth map, Parent map, visited set)
//
// Usage
//
//	result, err := bfs.BFS(g, "A", bfs.WithGoal("D"))
//	if err != nil {
//	    // handle ErrGraphNil, ErrStartNodeNotFound, ErrOptionViolation,
//	    // ErrFrontierOverflow, context errors, or hook errors
//	}
//	path, err := result.PathTo("D")
//	if errors.Is(err, bfs.ErrNoPath) {
//	    // unreachable goal: a normal outcome, not a search failure
//	}
//
// Options
//
//   - DefaultOptions(): background Context, no goal, no-op hooks, no limits.
//   - WithContext(ctx):        set a custom context for cancellation.
//   - WithGoal(id):            stop the search once id is dequeued.
//   - WithMaxDepth(d):         stop exploring beyond depth d (>0).
//   - WithMaxFrontier(n):      abort with ErrFrontierOverflow if the frontier
//     grows past n (>0); a safety valve for adversarial inputs.
//   - WithFilterNeighbor(fn):  skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):       hook when a node is first discovered.
//   - WithOnDequeue(fn):       hook immediately before expanding a node.
//   - WithOnVisit(fn):         hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil           if the graph pointer is nil.
//   - ErrStartNodeNotFound  if the start node does not exist.
//   - ErrOptionViolation    if an invalid Option was supplied.
//   - ErrFrontierOverflow   if MaxFrontier was exceeded.
//   - ErrNoPath             from Result.PathTo for unreached destinations.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
