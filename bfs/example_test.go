package bfs_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dagr/bfs"
	"github.com/katalvlaran/dagr/core"
)

// ExampleWalk demonstrates frontier layering on the A/B/C/D diamond:
// the whole depth-1 layer precedes the depth-2 layer.
func ExampleWalk() {
	g := core.New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")

	seq, err := bfs.Walk(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(slices.Collect(seq))
	// Output:
	// [A B C D]
}

// ExampleDistances materializes the unweighted shortest-path layering.
func ExampleDistances() {
	g := core.New()
	g.AddEdge("root", "mid")
	g.AddEdge("mid", "leaf")

	dist, _ := bfs.Distances(g, "root")
	fmt.Println(dist["root"], dist["mid"], dist["leaf"])
	// Output:
	// 0 1 2
}
