// File: view.go
// Role: Non-mutating read views over a Digraph's adjacency relation.
//
// Traversal packages (dfs, bfs) walk every neighbor slice of the graph; going
// through OutNeighbors would copy each slice once per visited node. The
// AdjacencyView hands out the live storage instead, under a read-only
// contract: views never mutate the graph, and callers must not mutate what a
// view returns.

package core

// AdjacencyView is a read-only window onto a Digraph's live storage.
// It is valid as long as the underlying graph is not mutated concurrently.
type AdjacencyView struct {
	g *Digraph
}

// Out returns the live out-neighbor slice of id, in edge-insertion order.
// A missing node yields nil, which callers treat as "no neighbors".
// The slice must not be mutated. Complexity: O(1).
func (v AdjacencyView) Out(id string) []string {
	return v.g.outNeighbors(id)
}

// Order returns the live node-insertion order slice.
// The slice must not be mutated. Complexity: O(1).
func (v AdjacencyView) Order() []string {
	return v.g.order
}

// First returns the first-inserted node ID and true, or "" and false for an
// empty graph. Traversals use it as the default start. Complexity: O(1).
func (v AdjacencyView) First() (string, bool) {
	if len(v.g.order) == 0 {
		return "", false
	}

	return v.g.order[0], true
}

// Len returns the node count. Complexity: O(1).
func (v AdjacencyView) Len() int {
	return len(v.g.order)
}
