// Package dfs provides topological sorting over a core.Digraph.
//
// TopologicalSort computes a linear ordering of nodes such that for every
// directed edge u→v, u appears before v in the ordering. If the graph
// contains a cycle, ErrCycleDetected is returned instead of a bogus order:
// a visited-set-only implementation would silently emit an ordering that
// violates the edge constraint, which is worse than failing.
//
// Complexity:
//
//   - Time:   O(V + E) (each node and edge examined once)
//   - Memory: O(V)     (state map, frame stack, output)
package dfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dagr/core"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently only cancellation.
type topoOptions struct {
	ctx context.Context // allows cancellation; defaults to Background
}

// defaultTopoOptions returns the default options (Background context).
func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort computes a topological ordering of all nodes in g.
// Every node appears exactly once, disconnected components included: the
// sort is driven from each node in insertion order, skipping those already
// explored, so the result is deterministic for a fixed insertion history.
//
// If g is nil, returns ErrGraphNil.
// If a cycle is detected, returns ErrCycleDetected (wrapped with the back
// edge that closed it). You may pass WithCancelContext(ctx) for cancellation.
func TopologicalSort(g *core.Digraph, options ...TopoOption) ([]string, error) {
	// 1. Validate graph pointer
	if g == nil {
		return nil, ErrGraphNil
	}
	// 2. Apply optional settings
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	// 3. Initialize sorter state; all nodes start White (0)
	view := g.Adjacency()
	n := view.Len()
	state := make(map[string]int, n)
	order := make([]string, 0, n)
	var stack []frame

	// 4. Drive an iterative DFS from every unexplored node, in insertion order
	for _, root := range view.Order() {
		if state[root] != White {
			continue
		}
		state[root] = Gray
		stack = append(stack[:0], frame{id: root})

		for len(stack) > 0 {
			// Cancellation check once per step
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}

			top := &stack[len(stack)-1]
			nbrs := view.Out(top.id)
			if top.next < len(nbrs) {
				nbr := nbrs[top.next]
				top.next++
				switch state[nbr] {
				case White:
					// Descend into an unexplored neighbor
					state[nbr] = Gray
					stack = append(stack, frame{id: nbr})
				case Gray:
					// Back edge onto the exploration stack: a cycle
					return nil, fmt.Errorf("%w: back edge %s→%s", ErrCycleDetected, top.id, nbr)
				}
				// Black neighbors are already finished: skip
				continue
			}
			// 5. All descendants finished: record post-order and backtrack
			state[top.id] = Black
			order = append(order, top.id)
			stack = stack[:len(stack)-1]
		}
	}

	// 6. Reverse post-order to produce the topological order
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
