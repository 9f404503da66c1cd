// Package dfs implements depth-first search on a core.Graph, with
// goal-directed early exit, visit and backtrack hooks, depth and stack
// limits, and cancellation.
//
// Key features:
//   - DFS(g, startID, opts...): pre-order traversal from a start node
//   - WithGoal(id): stop as soon as the goal is visited; Result.PathTo
//     reconstructs the discovered path from parent links
//   - Hooks: OnVisit (pre-order, may abort with error) & OnBacktrack
//     (when a branch is exhausted)
//   - Limits: MaxDepth, MaxStack, FilterNeighbor
//   - Cancellation via context.Context
//
// The traversal uses an explicit stack of frames, each holding a node and
// a cursor into its neighbor list, so large or degenerate graphs cannot
// exhaust the call stack. Frames descend into neighbors in listed order,
// which makes the visit sequence identical to the textbook recursive
// formulation.
//
// Unlike BFS, the path found is *some* simple path, not necessarily the
// shortest: the first branch that reaches the goal wins.
//
// Complexity:
//
//   - Time:   O(V + E) for traversal, plus overhead of hooks and filters.
//   - Memory: O(V) for the frame stack and metadata maps.
//
// Options:
//
//   - WithContext(ctx)        allows cancellation via context.Context.
//   - WithGoal(id)            stop the search once id is visited.
//   - WithOnVisit(fn)         pre-order hook; error aborts traversal.
//   - WithOnBacktrack(fn)     hook when a frame is popped with no
//     unvisited neighbors left.
//   - WithMaxDepth(d)         stops descending beyond depth d (>0).
//   - WithMaxStack(n)         aborts with ErrStackOverflow past n frames.
//   - WithFilterNeighbor(fn)  filters neighbors; return false to skip.
//
// Errors:
//
//   - ErrGraphNil            if g is nil.
//   - ErrStartNodeNotFound   if startID is missing.
//   - ErrOptionViolation     for invalid option values.
//   - ErrStackOverflow       if MaxStack was exceeded.
//   - ErrNoPath              from Result.PathTo for unreached destinations.
//   - context.Canceled       if ctx is done.
//   - any error returned by OnVisit.
package dfs
