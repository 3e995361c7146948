// Package core provides the foundational Digraph type used across dagr:
// a deterministic, insertion-ordered, in-memory directed-graph store.
//
// What
//
//   - Digraph: map from node ID to its ordered out-neighbor sequence.
//   - AddNode is idempotent; AddEdge auto-inserts both endpoints, so a
//     neighbor reference can never dangle.
//   - Parallel edges and self-loops are stored verbatim (no deduplication);
//     acyclicity is a property of the dag package, not of core.
//   - Nodes() and OutNeighbors() report insertion order, never map order.
//   - Clone() produces a fully independent deep copy; Clear() resets in place.
//   - Adjacency() exposes a zero-copy read view for traversal packages.
//
// Why
//
//   - Deterministic iteration makes traversal and topological-sort output
//     reproducible for a fixed insertion history, which keeps tests honest.
//   - A minimal storage core lets every algorithm live in its own package
//     (dfs, bfs, dag) instead of growing one monolithic graph type.
//
// Concurrency
//
//	Digraph has no internal locking. Reads may be shared; mutation requires
//	external serialization. Traversals only read, so a quiescent graph can be
//	walked by many goroutines at once, each with its own visited set.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - AddNode / AddEdge / HasNode: O(1) amortized
//   - HasEdge: O(deg(u))
//   - Nodes: O(V); OutNeighbors: O(deg(id)); Clone: O(V + E)
//
// Errors
//
//   - ErrEmptyNodeID  for empty node identifiers
//   - ErrNodeNotFound when a queried node is absent
package core
