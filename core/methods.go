// Package core: Digraph method implementations.
//
// This file provides O(1) (amortized) operations for node and edge
// management on the Digraph type defined in types.go. Adjacency is stored
// as a map of insertion-ordered neighbor slices, so existence checks are
// constant time while traversal order stays reproducible.

package core

import "slices"

// AddNode inserts a new node with the given ID into the Digraph.
// Returns ErrEmptyNodeID if id is empty.
// If the node already exists, this is a no-op (idempotent).
// Complexity: O(1) amortized.
func (g *Digraph) AddNode(id string) error {
	// Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyNodeID
	}
	// No-op for existing node
	if _, exists := g.adj[id]; exists {
		return nil
	}
	// Register with a nil neighbor slice and remember insertion order
	g.adj[id] = nil
	g.order = append(g.order, id)

	return nil
}

// HasNode reports whether a node with the given ID exists in the graph.
// Complexity: O(1).
func (g *Digraph) HasNode(id string) bool {
	if id == "" {
		return false // empty ID considered absent
	}
	_, exists := g.adj[id]

	return exists
}

// AddEdge appends the directed edge u→v to the adjacency relation.
// Both endpoints are inserted first if absent, so the relation never holds
// a dangling neighbor reference. Self-loops and parallel edges are accepted;
// deduplication is deliberately not performed.
// Returns ErrEmptyNodeID if either endpoint ID is empty.
// Complexity: O(1) amortized.
func (g *Digraph) AddEdge(u, v string) error {
	// 1) Input validation
	if u == "" || v == "" {
		return ErrEmptyNodeID
	}
	// 2) Ensure both endpoints exist (idempotent)
	if err := g.AddNode(u); err != nil {
		return err
	}
	if err := g.AddNode(v); err != nil {
		return err
	}
	// 3) Append v to u's neighbor sequence, preserving insertion order
	g.adj[u] = append(g.adj[u], v)
	g.edges++

	return nil
}

// HasEdge reports true if at least one edge from u to v exists.
// Complexity: O(deg(u)).
func (g *Digraph) HasEdge(u, v string) bool {
	if u == "" || v == "" {
		return false
	}

	return slices.Contains(g.adj[u], v)
}

// Nodes returns all node IDs in insertion order.
// The result is a copy; mutating it does not affect the graph.
// Complexity: O(V).
func (g *Digraph) Nodes() []string {
	return slices.Clone(g.order)
}

// OutNeighbors returns the out-neighbors of id in edge-insertion order,
// including duplicates for parallel edges.
// Returns ErrEmptyNodeID or ErrNodeNotFound on bad input.
// The result is a copy; mutating it does not affect the graph.
// Complexity: O(deg(id)).
func (g *Digraph) OutNeighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyNodeID
	}
	nbrs, ok := g.adj[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return slices.Clone(nbrs), nil
}

// outNeighbors exposes the live neighbor slice to sibling algorithm packages
// via Adjacency; callers must treat it as read-only.
func (g *Digraph) outNeighbors(id string) []string {
	return g.adj[id]
}

// Adjacency returns a read-only view of the live adjacency relation keyed in
// node-insertion order. It exists for traversal packages that walk neighbor
// slices without paying a copy per visited node.
// The returned slices must not be mutated.
// Complexity: O(1) per neighbor lookup.
func (g *Digraph) Adjacency() AdjacencyView {
	return AdjacencyView{g: g}
}

// NodeCount returns the total number of nodes. O(1).
func (g *Digraph) NodeCount() int {
	return len(g.order)
}

// EdgeCount returns the total number of edges, counting parallel edges
// individually. O(1).
func (g *Digraph) EdgeCount() int {
	return g.edges
}

// Clone returns a deep copy of the Digraph: node order, adjacency, and edge
// count. Neighbor slices are copied, so mutations of the clone never leak
// into the original.
// Complexity: O(V + E).
func (g *Digraph) Clone() *Digraph {
	clone := &Digraph{
		adj:   make(map[string][]string, len(g.adj)),
		order: slices.Clone(g.order),
		edges: g.edges,
	}
	for id, nbrs := range g.adj {
		clone.adj[id] = slices.Clone(nbrs)
	}

	return clone
}

// Clear resets the graph to the empty state.
func (g *Digraph) Clear() {
	g.adj = make(map[string][]string)
	g.order = nil
	g.edges = 0
}
