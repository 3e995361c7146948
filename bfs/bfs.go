// Package bfs implements lazy breadth-first traversal over a core.Digraph,
// visiting nodes in non-decreasing edge-distance from a start node.
//
// Walk returns a pull-driven iter.Seq with a FIFO frontier. Nodes are marked
// visited at enqueue time, not dequeue time, so a node can never sit in the
// frontier twice. Distances materializes the unweighted shortest-path
// layering as an eager map.
package bfs

import (
	"iter"

	"github.com/katalvlaran/dagr/core"
)

// item pairs a node ID with its edge-distance from the start.
type item struct {
	id    string
	depth int
}

// Walk returns a lazy breadth-first sequence over g starting at start.
// An empty start selects the first-inserted node; on an empty graph the
// sequence is empty. Only nodes reachable from the start are yielded, each
// exactly once, in first-in-first-out frontier order with neighbors examined
// in edge-insertion order.
//
// Validation is eager (ErrGraphNil, ErrStartNotFound); traversal is lazy and
// each consumption of the sequence runs an independent walk. Cancelling the
// context ends the sequence early; breaking out of the range loop is safe
// and side-effect-free.
// Complexity: O(V + E) fully consumed, O(V) memory.
func Walk(g *core.Digraph, start string, opts ...Option) (iter.Seq[string], error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	// 3. Resolve the start node
	view := g.Adjacency()
	if start == "" {
		first, ok := view.First()
		if !ok {
			return func(yield func(string) bool) {}, nil
		}
		start = first
	} else if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	// 4. Build the lazy walker
	seq := func(yield func(string) bool) {
		visited := make(map[string]bool, view.Len())
		visited[start] = true
		queue := make([]item, 0, view.Len())
		queue = append(queue, item{id: start})

		for len(queue) > 0 {
			// Cooperative cancellation between elements
			if o.Ctx.Err() != nil {
				return
			}

			cur := queue[0]
			queue = queue[1:]
			if !yield(cur.id) {
				return
			}

			for _, nbr := range view.Out(cur.id) {
				if visited[nbr] {
					continue
				}
				if o.FilterNeighbor != nil && !o.FilterNeighbor(cur.id, nbr) {
					continue
				}
				if o.MaxDepth >= 0 && cur.depth+1 > o.MaxDepth {
					continue
				}
				// Mark at enqueue time to avoid duplicate enqueues
				visited[nbr] = true
				queue = append(queue, item{id: nbr, depth: cur.depth + 1})
			}
		}
	}

	return seq, nil
}

// Distances returns the edge-distance from start to every reachable node,
// including start itself at distance 0. Unreachable nodes are absent from
// the map. An empty start selects the first-inserted node; an empty graph
// yields an empty map.
//
// Returns ErrGraphNil or ErrStartNotFound on invalid input.
// Complexity: O(V + E) time, O(V) memory.
func Distances(g *core.Digraph, start string) (map[string]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	view := g.Adjacency()
	if start == "" {
		first, ok := view.First()
		if !ok {
			return map[string]int{}, nil
		}
		start = first
	} else if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	dist := make(map[string]int, view.Len())
	dist[start] = 0
	queue := []string{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range view.Out(cur) {
			if _, seen := dist[nbr]; seen {
				continue
			}
			dist[nbr] = dist[cur] + 1
			queue = append(queue, nbr)
		}
	}

	return dist, nil
}
