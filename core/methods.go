package core

// AddNode inserts a node with the given ID if absent.
// Adding an existing node is a no-op.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (g *Graph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(id)

	return nil
}

// addNodeLocked registers id in adjacency and order if unseen.
// Caller must hold the write lock.
func (g *Graph) addNodeLocked(id string) {
	if _, exists := g.adjacency[id]; exists {
		return
	}
	g.adjacency[id] = nil
	g.order = append(g.order, id)
}

// AddEdge appends to as a neighbor of from, auto-adding both endpoints.
// Duplicate neighbor entries are ignored unless WithMultiEdges was set.
// With WithMirroredEdges the reverse link from∈adj(to) is inserted too.
// Thread-safe: acquires a write lock.
//
// Complexity: O(d) where d = len(adj(from)), due to the duplicate scan;
// O(1) amortized when multi-edges are allowed.
func (g *Graph) AddEdge(from, to string) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.addNodeLocked(from)
	g.addNodeLocked(to)

	g.linkLocked(from, to)
	if g.mirrored && from != to {
		g.linkLocked(to, from)
	}

	return nil
}

// linkLocked appends to to adj(from), honoring the duplicate policy.
// Caller must hold the write lock.
func (g *Graph) linkLocked(from, to string) {
	if !g.allowMulti {
		for _, nbr := range g.adjacency[from] {
			if nbr == to {
				return
			}
		}
	}
	g.adjacency[from] = append(g.adjacency[from], to)
	g.edgeCount++
}

// HasNode reports whether the graph contains a node with the given ID.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adjacency[id]

	return ok
}

// Neighbors returns a copy of id's neighbor list in listed order.
// Returns ErrEmptyNodeID for an empty ID and ErrNodeNotFound for an
// unknown one. Thread-safe: acquires a read lock.
//
// Complexity: O(d) where d = len(adj(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]string, len(nbrs))
	copy(out, nbrs)

	return out, nil
}

// Nodes returns a copy of all node IDs in insertion order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, len(g.order))
	copy(out, g.order)

	return out
}

// NodeCount returns the number of nodes.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.order)
}

// EdgeCount returns the number of stored neighbor links.
// Mirrored links count individually.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// Clone returns a deep copy of the graph sharing no state with the
// original. Configuration flags are preserved.
// Thread-safe: acquires a read lock on the source.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		mirrored:   g.mirrored,
		allowMulti: g.allowMulti,
		order:      make([]string, len(g.order)),
		adjacency:  make(map[string][]string, len(g.adjacency)),
		edgeCount:  g.edgeCount,
	}
	copy(c.order, g.order)
	for id, nbrs := range g.adjacency {
		if nbrs == nil {
			c.adjacency[id] = nil
			continue
		}
		dup := make([]string, len(nbrs))
		copy(dup, nbrs)
		c.adjacency[id] = dup
	}

	return c
}
