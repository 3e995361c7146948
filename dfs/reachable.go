// Package dfs: reachability query over a core.Digraph.
//
// Reachable is the primitive behind dag.AddEdge's cycle pre-check: before
// committing u→v, the dag package asks whether v already reaches u.

package dfs

import "github.com/katalvlaran/dagr/core"

// Reachable reports whether a directed path of zero or more edges leads from
// 'from' to 'to'. By definition every node reaches itself, so from == to is
// true without touching the adjacency relation.
//
// The search is an iterative depth-first scan with a call-local visited set,
// so it terminates even when the graph contains cycles elsewhere.
//
// Returns ErrGraphNil if g is nil, ErrStartNotFound if 'from' is absent.
// An absent 'to' is not an error: it is simply unreachable.
// Complexity: O(V + E) worst case, O(1) for the self-reachability base case.
func Reachable(g *core.Digraph, from, to string) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	// Self-reachability holds even for nodes with no edges
	if from == to {
		if !g.HasNode(from) {
			return false, ErrStartNotFound
		}

		return true, nil
	}
	if !g.HasNode(from) {
		return false, ErrStartNotFound
	}

	view := g.Adjacency()
	visited := make(map[string]bool, view.Len())
	visited[from] = true
	stack := []string{from}

	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, nbr := range view.Out(id) {
			if nbr == to {
				return true, nil
			}
			if !visited[nbr] {
				visited[nbr] = true
				stack = append(stack, nbr)
			}
		}
	}

	return false, nil
}
