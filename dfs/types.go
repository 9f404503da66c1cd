// Package dfs defines types and options for depth-first traversal,
// including cancellation, hooks, depth/stack limits, and neighbor filtering.
package dfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound indicates that the specified start node ID
	// does not exist in the graph.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("dfs: invalid option supplied")

	// ErrStackOverflow is returned when the frame stack grows past MaxStack.
	ErrStackOverflow = errors.New("dfs: stack size limit exceeded")

	// ErrNoPath is returned by Result.PathTo when the destination was
	// never visited. An unreachable goal is a legitimate outcome.
	ErrNoPath = errors.New("dfs: no path found")
)

// Option configures optional behavior of DFS traversal.
// Use with DFS(g, startID, opts...).
type Option func(*Options)

// Options holds configurable parameters for DFS traversal.
// It controls the goal, hooks, limits, and filtering.
// Complexity remains O(V+E) when filters and hooks are O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Goal, if non-empty, stops the search as soon as this node is visited.
	// An absent or unreachable goal leaves Result.FoundGoal false.
	Goal string

	// OnVisit, if non-nil, is invoked immediately upon discovering a node
	// (pre-order). Receives the node ID, its depth, and the stack size.
	// Returning an error aborts traversal with that error.
	OnVisit func(id string, depth, stack int) error

	// OnBacktrack, if non-nil, is invoked when a node's branch is exhausted
	// and its frame is popped.
	OnBacktrack func(id string, depth int)

	// MaxDepth, if > 0, stops descending beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxStack, if > 0, aborts the search with ErrStackOverflow once the
	// frame stack would exceed this many frames.
	MaxStack int

	// FilterNeighbor, if non-nil, is called for each neighbor before descent.
	// Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - no goal (full traversal of the start component)
//   - no hooks
//   - no depth or stack limit
//   - no neighbor filtering
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Goal:           "",
		OnVisit:        nil,
		OnBacktrack:    nil,
		MaxDepth:       0,
		MaxStack:       0,
		FilterNeighbor: nil,
		err:            nil,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithGoal stops the search once the given node is visited.
// An empty ID clears the goal (full traversal).
func WithGoal(id string) Option {
	return func(o *Options) {
		o.Goal = id
	}
}

// WithOnVisit returns an Option that installs fn as a pre-order hook.
// The hook is called when a node is first discovered.
func WithOnVisit(fn func(id string, depth, stack int) error) Option {
	return func(o *Options) {
		o.OnVisit = fn
	}
}

// WithOnBacktrack returns an Option that installs fn as a backtrack hook.
// The hook is called when a node's branch is exhausted and abandoned.
func WithOnBacktrack(fn func(id string, depth int)) Option {
	return func(o *Options) {
		o.OnBacktrack = fn
	}
}

// WithMaxDepth stops descending at the given depth (exclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxStack aborts the search once the frame stack exceeds n frames.
//
//	n > 0: limit the stack to n
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStack(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxStack cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxStack = 0
		default:
			o.MaxStack = n
		}
	}
}

// WithFilterNeighbor returns an Option that filters neighbors before descent.
// If fn(curr, neighbor) == false, that neighbor is skipped.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}

// Result captures the outcome of a depth-first traversal:
//   - Order: nodes in the sequence they were discovered (pre-order).
//   - Depth: map from node ID to its discovery depth from the start.
//   - Parent: map from node ID to the node from which it was reached.
//   - Goal / FoundGoal: the goal requested via WithGoal and whether the
//     search actually visited it.
type Result struct {
	Order     []string
	Depth     map[string]int
	Parent    map[string]string
	Goal      string
	FoundGoal bool
}

// PathTo reconstructs the path from the start node to dest by walking
// parent links backward and reversing. Returns ErrNoPath if dest was
// never visited. The path is simple (no repeated nodes) but carries no
// length guarantee.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: to %q", ErrNoPath, dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
