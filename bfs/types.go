// Package bfs provides tunable options and error definitions
// for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrFrontierOverflow is returned when the frontier grows past MaxFrontier.
	ErrFrontierOverflow = errors.New("bfs: frontier size limit exceeded")

	// ErrNoPath is returned by Result.PathTo when the destination was
	// never discovered. An unreachable goal is a legitimate outcome,
	// distinct from the input errors above.
	ErrNoPath = errors.New("bfs: no path found")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Goal, if non-empty, stops the search as soon as this node is dequeued.
	// The goal does not need to exist in the graph; an absent or unreachable
	// goal simply leaves Result.FoundGoal false.
	Goal string

	// OnEnqueue is called when a node is first discovered and enqueued.
	// Receives the node ID and its depth from the start.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called immediately before expanding a node.
	// Receives the node ID, its depth, and the remaining frontier size.
	OnDequeue func(id string, depth, frontier int)

	// OnVisit is called when visiting a node. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id string, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// MaxFrontier, if > 0, aborts the search with ErrFrontierOverflow
	// once the frontier holds more than MaxFrontier nodes.
	MaxFrontier int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with sane defaults:
//   - Context.Background()
//   - no goal (full traversal of the start component)
//   - no depth or frontier limit
//   - no filtering (all neighbors allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Goal:           "",
		OnEnqueue:      func(string, int) {},
		OnDequeue:      func(string, int, int) {},
		OnVisit:        func(string, int) error { return nil },
		MaxDepth:       0,
		MaxFrontier:    0,
		FilterNeighbor: func(_, _ string) bool { return true },
		err:            nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithGoal stops the search once the given node is dequeued.
// An empty ID clears the goal (full traversal).
func WithGoal(id string) Option {
	return func(o *Options) {
		o.Goal = id
	}
}

// WithOnEnqueue registers a callback to run on first discovery.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id string, depth, frontier int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (exclusive).
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
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithMaxFrontier aborts the search once the frontier exceeds n nodes.
//
//	n > 0: limit the frontier to n
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxFrontier(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxFrontier cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.MaxFrontier = 0
		default:
			o.MaxFrontier = n
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal:
//   - Order: nodes visited, in visit sequence.
//   - Depth: map from node ID to its distance (in edges) from the start.
//   - Parent: map from node ID to its predecessor in the BFS tree.
//   - Goal / FoundGoal: the goal requested via WithGoal and whether the
//     search actually dequeued it.
type Result struct {
	Order     []string
	Depth     map[string]int
	Parent    map[string]string
	Goal      string
	FoundGoal bool
}

// PathTo reconstructs the path from the start node to dest by walking
// predecessor links backward and reversing. Returns ErrNoPath if dest
// was never discovered.
func (r *Result) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w: to %q", ErrNoPath, dest)
	}
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
