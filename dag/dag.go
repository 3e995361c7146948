// Package dag implements AcyclicGraph: a core.Digraph wrapped with a
// reachability pre-check on edge insertion, so the adjacency relation can
// never hold a directed cycle.
//
// The wrapper composes a private Digraph rather than extending it; only edge
// insertion changes behavior, every read delegates unchanged.
package dag

import (
	"github.com/katalvlaran/dagr/core"
	"github.com/katalvlaran/dagr/dfs"
)

// AcyclicGraph is a directed graph that rejects cycle-closing edges.
//
// Per edge-insertion attempt there are exactly two outcomes: committed
// (validated, now part of the adjacency) or rejected (CycleError, no state
// change). The check runs strictly before any mutation, so no partial state
// is ever observable.
//
// Like core.Digraph, AcyclicGraph is not safe for concurrent mutation.
type AcyclicGraph struct {
	g *core.Digraph
}

// New creates an empty AcyclicGraph.
// Complexity: O(1)
func New() *AcyclicGraph {
	return &AcyclicGraph{g: core.New()}
}

// AddNode inserts a node; idempotent. A bare node can never create a cycle.
// Returns core.ErrEmptyNodeID for an empty ID.
// Complexity: O(1) amortized.
func (d *AcyclicGraph) AddNode(id string) error {
	return d.g.AddNode(id)
}

// AddEdge inserts the directed edge u→v after proving it cannot close a
// cycle: if a directed path v⇝u already exists, committing u→v would
// complete a loop, so the operation fails with *CycleError and the graph is
// left byte-for-byte unmodified. Self-loops are always rejected, even for a
// fresh node, because every node reaches itself by the zero-edge path.
//
// On success both endpoints are auto-inserted and v is appended to u's
// neighbor sequence, exactly as core.Digraph.AddEdge does.
// Returns core.ErrEmptyNodeID or *CycleError.
// Complexity: O(V + E) for the reachability check, O(1) for the commit.
func (d *AcyclicGraph) AddEdge(u, v string) error {
	// 1) Validate before touching anything
	if u == "" || v == "" {
		return core.ErrEmptyNodeID
	}
	// 2) Self-loop: v⇝u holds trivially when u == v
	if u == v {
		return &CycleError{From: u, To: v}
	}
	// 3) Path pre-check: only possible when v is already present; a fresh v
	//    has no outgoing edges and cannot reach u
	if d.g.HasNode(v) {
		reach, err := dfs.Reachable(d.g, v, u)
		if err != nil {
			return err
		}
		if reach {
			return &CycleError{From: u, To: v}
		}
	}
	// 4) Validated: commit via the base insertion
	return d.g.AddEdge(u, v)
}

// TopologicalSort returns a linear ordering of all nodes consistent with
// every edge direction. The acyclicity invariant makes the cycle branch of
// the underlying sort unreachable here.
// Complexity: O(V + E).
func (d *AcyclicGraph) TopologicalSort() ([]string, error) {
	return dfs.TopologicalSort(d.g)
}

// Graph exposes the underlying Digraph for read-only use with the dfs and
// bfs walkers. Mutating it directly bypasses the acyclicity check.
func (d *AcyclicGraph) Graph() *core.Digraph {
	return d.g
}

// HasNode reports whether id exists. O(1).
func (d *AcyclicGraph) HasNode(id string) bool {
	return d.g.HasNode(id)
}

// HasEdge reports whether at least one edge u→v exists. O(deg(u)).
func (d *AcyclicGraph) HasEdge(u, v string) bool {
	return d.g.HasEdge(u, v)
}

// Nodes returns all node IDs in insertion order. O(V).
func (d *AcyclicGraph) Nodes() []string {
	return d.g.Nodes()
}

// OutNeighbors returns the out-neighbors of id in edge-insertion order.
// O(deg(id)).
func (d *AcyclicGraph) OutNeighbors(id string) ([]string, error) {
	return d.g.OutNeighbors(id)
}

// NodeCount returns the total number of nodes. O(1).
func (d *AcyclicGraph) NodeCount() int {
	return d.g.NodeCount()
}

// EdgeCount returns the total number of edges. O(1).
func (d *AcyclicGraph) EdgeCount() int {
	return d.g.EdgeCount()
}
