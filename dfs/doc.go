// Package dfs implements depth-first traversal, reachability, and
// topological sort on a core.Digraph.
//
// What:
//
//   - Walk: a lazy, pull-driven pre-order depth-first sequence (iter.Seq).
//     Elements are computed only as the consumer ranges over them; breaking
//     out mid-sequence is safe and leaves no trace. Supports:
//   - Cancellation via context.Context
//   - Depth limiting
//   - Neighbor filtering
//   - Reachable: directed-path existence query (from, to), true for
//     from == to by definition; cycle-proof via a call-local visited set.
//   - TopologicalSort: linear ordering of all nodes consistent with every
//     edge direction, returning ErrCycleDetected if the graph is cyclic.
//
// Why:
//
//   - Determine safe execution orders in dependency graphs
//   - Answer "would this edge close a cycle?" for the dag package
//   - Explore reachable subgraphs without materializing the whole walk
//
// Determinism
//
//	core.Digraph reports nodes in insertion order and neighbors in
//	edge-insertion order, so every function here is fully reproducible for a
//	fixed insertion history.
//
// Implementation note
//
//	All three algorithms are iterative, driven by an explicit stack of
//	(node, next-neighbor) frames. Recursion depth is therefore independent of
//	graph depth - a million-node chain walks fine.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Walk:            Time O(V+E) fully consumed, Memory O(V)
//   - Reachable:       Time O(V+E), Memory O(V)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil        graph pointer is nil
//   - ErrStartNotFound   explicit start node not in graph
//   - ErrCycleDetected   cycle discovered during TopologicalSort
//   - context.Canceled   TopologicalSort canceled via WithCancelContext
package dfs
