package bfs_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/katalvlaran/dagr/bfs"
	"github.com/katalvlaran/dagr/core"
)

// BenchmarkWalk_Chain fully consumes a BFS walk over a linear chain.
func BenchmarkWalk_Chain(b *testing.B) {
	const N = 10000
	g := buildChain(N)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, _ := bfs.Walk(g, "N0")
		_ = slices.Collect(seq)
	}
}

// BenchmarkWalk_BinaryTree runs BFS on a complete binary tree of depth 10.
func BenchmarkWalk_BinaryTree(b *testing.B) {
	const depth = 10 // 2^10 − 1 = 1023 nodes
	nodeCount := (1 << depth) - 1
	g := core.New()
	for i := 1; i <= (nodeCount-1)/2; i++ {
		p := fmt.Sprintf("%d", i)
		_ = g.AddEdge(p, fmt.Sprintf("%d", 2*i))
		_ = g.AddEdge(p, fmt.Sprintf("%d", 2*i+1))
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		seq, _ := bfs.Walk(g, "1")
		_ = slices.Collect(seq)
	}
}
