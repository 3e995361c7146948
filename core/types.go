// Package core defines the central Digraph type and provides deterministic
// primitives for building, querying, and cloning directed graphs.
//
// A Digraph is a plain in-memory adjacency relation: every node maps to the
// ordered sequence of its out-neighbors, and both node iteration and neighbor
// iteration follow insertion order, never Go map order. The structure is NOT
// safe for concurrent mutation; callers that share a Digraph across
// goroutines must serialize writes externally.
//
// This file declares Digraph, sentinel errors, and the New constructor.
//
// Errors:
//
//	ErrEmptyNodeID  - node ID is the empty string.
//	ErrNodeNotFound - requested node does not exist.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that an operation received an empty node ID.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Digraph is the core in-memory directed-graph data structure.
//
// Storage is a map from node ID to the ordered slice of its out-neighbors.
// Parallel edges are permitted and never deduplicated: adding u→v twice
// leaves v twice in u's neighbor sequence. Self-loops are permitted at this
// layer (the dag package is where acyclicity is enforced).
//
// order records node insertion order so that Nodes(), and every algorithm
// driven by it, stays deterministic for a fixed insertion history.
type Digraph struct {
	adj   map[string][]string // node ID → out-neighbor IDs, insertion order
	order []string            // node IDs in first-insertion order
	edges int                 // running edge count
}

// New creates an empty Digraph.
// Complexity: O(1)
func New() *Digraph {
	return &Digraph{adj: make(map[string][]string)}
}
