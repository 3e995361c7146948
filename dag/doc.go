// Package dag provides AcyclicGraph, a directed graph whose edge insertion
// refuses to create cycles.
//
// What
//
//   - AcyclicGraph wraps a private core.Digraph (composition, no inheritance
//     chain) and overrides exactly one behavior: AddEdge runs a depth-first
//     reachability pre-check before committing.
//   - If a directed path v⇝u already exists, adding u→v would close a cycle:
//     the call fails with *CycleError (unwrapping to ErrCycle) and the
//     adjacency relation is left untouched - the check strictly precedes any
//     mutation, so rejection is atomic.
//   - Self-loops are always rejected: reachability treats every node as
//     reaching itself by the zero-edge path, so u⇝u holds even for a node
//     the graph has never seen.
//   - Reads (Nodes, OutNeighbors, HasEdge, counts) delegate unchanged, and
//     Graph() exposes the wrapped Digraph to the dfs/bfs walkers.
//
// Why
//
//   - Dependency graphs, build plans, and schedules must stay acyclic at all
//     times; validating at insertion is cheaper to reason about than
//     re-checking the whole graph before every sort.
//   - Because the invariant holds continuously, TopologicalSort on an
//     AcyclicGraph can never fail with a cycle.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - AddEdge: O(V + E) worst case for the pre-check, O(1) commit
//   - All read accessors: same as core.Digraph
//
// Errors
//
//   - core.ErrEmptyNodeID for empty endpoint IDs
//   - ErrCycle / *CycleError when an insertion is rejected; the CycleError
//     carries the offending (From, To) pair
package dag
