package dfs

import (
	"fmt"

	"github.com/no-hao/GraphTraversalCLI/core"
)

// frame is one level of the explicit traversal stack: a node plus a
// cursor into its neighbor list.
type frame struct {
	id        string
	depth     int
	next      int // index of the next neighbor to consider
	neighbors []string
}

// walker encapsulates mutable DFS state.
type walker struct {
	graph   *core.Graph
	opts    Options
	stack   []frame
	visited map[string]bool
	res     *Result
}

// DFS performs depth-first search on graph g from startID, applying any
// number of functional Options. The traversal is iterative: an explicit
// frame stack replaces recursion, with the exact same visit order as the
// recursive formulation (first listed neighbor first, backtrack when a
// branch is exhausted).
// Returns Result or an error if aborted by context, limit, or hook.
func DFS(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasNode(startID) {
		return nil, ErrStartNodeNotFound
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		stack:   make([]frame, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
			Goal:   o.Goal,
		},
	}

	return w.res, w.run(startID)
}

// run seeds the stack with the start node and processes frames until the
// goal is visited, the stack empties, or an abort condition fires.
func (w *walker) run(startID string) error {
	if err := w.push(startID, 0, ""); err != nil {
		return err
	}

	for len(w.stack) > 0 && !w.res.FoundGoal {
		// cancellation check (once per step)
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		top := &w.stack[len(w.stack)-1]
		nbr, ok := w.advance(top)
		if !ok {
			// branch exhausted: backtrack
			if w.opts.OnBacktrack != nil {
				w.opts.OnBacktrack(top.id, top.depth)
			}
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		if err := w.push(nbr, top.depth+1, top.id); err != nil {
			return err
		}
	}

	return nil
}

// advance moves f's cursor to the next admissible unvisited neighbor and
// returns it. ok is false when the frame has nothing left to explore.
func (w *walker) advance(f *frame) (nbr string, ok bool) {
	for f.next < len(f.neighbors) {
		cand := f.neighbors[f.next]
		f.next++

		if w.visited[cand] {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(f.id, cand) {
			continue
		}
		if w.opts.MaxDepth > 0 && f.depth+1 > w.opts.MaxDepth {
			continue
		}

		return cand, true
	}

	return "", false
}

// push visits id at depth d: marks it visited, records parent and
// pre-order position, fires OnVisit, checks the goal, and — unless the
// goal was just reached — pushes a frame with id's neighbor list.
func (w *walker) push(id string, d int, parent string) error {
	if w.opts.MaxStack > 0 && len(w.stack)+1 > w.opts.MaxStack {
		return fmt.Errorf("%w: %d > %d", ErrStackOverflow, len(w.stack)+1, w.opts.MaxStack)
	}

	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.res.Order = append(w.res.Order, id)

	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id, d, len(w.stack)+1); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %q: %w", id, err)
		}
	}

	if w.opts.Goal != "" && id == w.opts.Goal {
		w.res.FoundGoal = true
		return nil
	}

	neighbors, err := w.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: neighbors of %q: %w", id, err)
	}
	w.stack = append(w.stack, frame{id: id, depth: d, neighbors: neighbors})

	return nil
}
