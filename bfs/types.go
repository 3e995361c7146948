// Package bfs provides tunable options and error definitions
// for breadth-first traversal over a core.Digraph.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when an explicit start node is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")
)

// Option configures BFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters to customize a breadth-first walk.
type Options struct {
	// Ctx allows cancellation and deadlines; once done, the lazy sequence
	// stops producing elements.
	Ctx context.Context

	// MaxDepth, if non-negative, stops exploring beyond this edge-distance
	// from the start. A value of 0 visits only the start node.
	// Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor string) bool
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no depth limit (MaxDepth == -1)
//   - no filtering (all neighbors allowed)
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxDepth:       -1,
		FilterNeighbor: nil,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search beyond the given edge-distance.
// A limit of 0 visits only the start node; negative means no limit.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		o.FilterNeighbor = fn
	}
}
