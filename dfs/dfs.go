// Package dfs implements lazy depth-first traversal on core.Digraph.
// Walk returns a pull-driven iter.Seq: nothing is explored until the consumer
// requests the next element, and breaking out of the range loop abandons the
// traversal with no observable side effect.
//
// Key properties:
//   - Pre-order: a node is marked visited and yielded before its descendants.
//   - Neighbor order is edge-insertion order, so output is deterministic for
//     a fixed insertion history.
//   - Iterative: an explicit stack of (node, next-neighbor) frames replaces
//     recursion, so deep graphs cannot exhaust the call stack.
//   - Single-source: nodes unreachable from the start are never yielded.
//
// Complexity:
//
//   - Time:   O(V + E) for a fully consumed walk
//   - Memory: O(V) for the visited set and frame stack
//
// Errors:
//
//   - ErrGraphNil      if g is nil.
//   - ErrStartNotFound if an explicit start is missing from the graph.
package dfs

import (
	"iter"

	"github.com/katalvlaran/dagr/core"
)

// frame is one suspended exploration step: a node and the index of the next
// out-neighbor to examine when the walk returns to it.
type frame struct {
	id   string
	next int
}

// Walk returns a lazy pre-order depth-first sequence over g starting at
// start. An empty start selects the first-inserted node; on an empty graph
// the sequence is empty. Each call starts a fresh traversal with its own
// visited set; sequences are not restartable.
//
// Validation is eager: ErrGraphNil and ErrStartNotFound are reported before
// any element is produced. Cancelling the walk's context simply ends the
// sequence early.
func Walk(g *core.Digraph, start string, opts ...Option) (iter.Seq[string], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Resolve the start node
	view := g.Adjacency()
	if start == "" {
		first, ok := view.First()
		if !ok {
			// Empty graph: empty sequence, not an error
			return func(yield func(string) bool) {}, nil
		}
		start = first
	} else if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	// 4. Build the lazy walker; state lives inside the closure so every
	//    consumption runs an independent traversal
	seq := func(yield func(string) bool) {
		visited := make(map[string]bool, view.Len())
		stack := make([]frame, 0, view.Len())

		// Visit the root: mark, yield, then suspend on its neighbor list
		visited[start] = true
		if !yield(start) {
			return
		}
		stack = append(stack, frame{id: start})

		for len(stack) > 0 {
			// Cooperative cancellation between elements
			if o.Ctx.Err() != nil {
				return
			}

			top := &stack[len(stack)-1]
			nbrs := view.Out(top.id)
			if top.next >= len(nbrs) {
				// Branch exhausted: backtrack
				stack = stack[:len(stack)-1]
				continue
			}
			nbr := nbrs[top.next]
			top.next++

			if visited[nbr] {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(nbr) {
				continue
			}
			// Depth of nbr equals current stack height; skip past the limit
			if o.MaxDepth >= 0 && len(stack) > o.MaxDepth {
				continue
			}

			visited[nbr] = true
			if !yield(nbr) {
				return
			}
			stack = append(stack, frame{id: nbr})
		}
	}

	return seq, nil
}
