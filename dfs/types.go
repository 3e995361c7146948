// Package dfs defines types and options for depth-first traversal,
// reachability queries, and topological sorting over a core.Digraph.
package dfs

import (
	"context"
	"errors"
)

// Visitation states shared by the depth-first algorithms in this package.
const (
	White = iota // White: the node has not been visited yet.
	Gray         // Gray: the node is on the exploration stack (visiting).
	Black        // Black: the node and all its descendants are fully explored.
)

var (
	// ErrGraphNil is returned when a nil *core.Digraph is passed to Walk,
	// Reachable, or TopologicalSort.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates that an explicitly requested start node
	// does not exist in the graph.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrCycleDetected indicates that a cycle was encountered during
	// TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of a depth-first walk.
// Use with Walk(g, start, opts...).
type Option func(*Options)

// Options holds configurable parameters for a depth-first walk.
// Complexity of the walk remains O(V+E) when the filter is O(1).
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Once the context is done the lazy sequence stops producing elements.
	Ctx context.Context

	// MaxDepth, if non-negative, limits exploration to the given depth.
	// A depth of 0 visits only the start node. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbor ID before it is
	// explored. Return true to traverse into that neighbor, false to skip it.
	FilterNeighbor func(id string) bool
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - No depth limit (MaxDepth = -1)
//   - No neighbor filtering
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithContext returns an Option that sets the Context for the walk.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth returns an Option that limits traversal depth to limit.
// A limit of 0 means only the start node is visited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor returns an Option that filters neighbor IDs.
// If fn(id) == false, that neighbor is skipped.
func WithFilterNeighbor(fn func(id string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
