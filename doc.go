// Package dagr is a small in-memory library for directed graphs:
// build an adjacency relation, traverse it lazily, sort it topologically,
// and — when acyclicity matters — let the DAG wrapper refuse any edge
// that would close a cycle.
//
// 🚀 What is dagr?
//
//	A compact, deterministic library that brings together:
//		• Core primitives: insertion-ordered digraph storage (core)
//		• Traversals: lazy depth-first and breadth-first walks via iter.Seq (dfs, bfs)
//		• Ordering: topological sort with explicit cycle detection (dfs)
//		• Safety: a cycle-rejecting DAG wrapper with atomic edge insertion (dag)
//
// ✨ Why choose dagr?
//
//   - Minimal API, clear naming - AddNode, AddEdge, Walk, TopologicalSort
//   - Deterministic - output order follows insertion order, never map order
//   - Lazy by default - traversals produce elements only as the consumer pulls them
//   - Honest errors - sentinel values checked with errors.Is, a typed
//     CycleError carrying the rejected pair, no silent bogus orders
//
// Everything is organized under four subpackages:
//
//	core/ — the Digraph type: node/edge insertion, adjacency queries, cloning
//	dfs/  — depth-first walk, reachability, topological sort
//	bfs/  — breadth-first walk and unweighted distance layering
//	dag/  — AcyclicGraph wrapper that validates edges before committing them
//
// Quick ASCII example:
//
//	    shirt──►tie──►jacket
//	      │            ▲
//	      └───►belt────┘
//
//	dag.AddEdge("jacket", "shirt") is rejected: a jacket→shirt edge would
//	close the cycle shirt→tie→jacket→shirt, and the graph stays untouched.
//
// The cmd/dagr binary is an illustrative CLI (demo walkthrough plus a
// tsort-like edge sorter); it is not part of the library contract.
package dagr
