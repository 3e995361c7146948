// Package bfs provides lazy breadth-first traversal over a core.Digraph,
// yielding nodes in non-decreasing edge-distance from a start node.
//
// What
//
//   - Walk: a pull-driven iter.Seq over the nodes reachable from the start,
//     each yielded exactly once, frontier order (FIFO), neighbors examined in
//     edge-insertion order. Visited-marking happens at enqueue time, so no
//     node is ever enqueued twice.
//   - Distances: eager map from node → edge-distance from the start, the
//     unweighted shortest-path layering.
//   - Options: WithContext (cancellation), WithMaxDepth (frontier cutoff),
//     WithFilterNeighbor (per-edge pruning).
//
// Why
//
//   - Level-order exploration and unweighted shortest paths in O(V + E).
//   - The lazy form lets a consumer stop after the first few layers without
//     paying for the rest of the graph, and without observable side effects.
//
// Determinism
//
//	core.Digraph reports neighbors in edge-insertion order and Walk enqueues
//	them in that order, so the visit sequence is fully reproducible.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Time:   O(V + E)   (each node and edge seen at most once)
//   - Memory: O(V)       (queue and visited set)
//
// Errors
//
//   - ErrGraphNil      if the graph pointer is nil.
//   - ErrStartNotFound if an explicit start node does not exist.
package bfs
