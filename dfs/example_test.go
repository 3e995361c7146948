package dfs_test

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dagr/core"
	"github.com/katalvlaran/dagr/dfs"
)

// ExampleWalk shows a lazy depth-first walk over the A/B/C/D diamond:
// one branch is fully exhausted before the next sibling starts.
func ExampleWalk() {
	g := core.New()
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("B", "D")
	g.AddEdge("C", "D")

	seq, err := dfs.Walk(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(slices.Collect(seq))
	// Output:
	// [A B D C]
}

// ExampleWalk_earlyStop demonstrates pull-driven laziness: the consumer
// breaks after two elements and the rest of the graph is never explored.
func ExampleWalk_earlyStop() {
	g := core.New()
	g.AddEdge("a", "b")
	g.AddEdge("b", "c")
	g.AddEdge("c", "d")

	seq, _ := dfs.Walk(g, "a")
	n := 0
	for id := range seq {
		fmt.Println(id)
		n++
		if n == 2 {
			break
		}
	}
	// Output:
	// a
	// b
}

// ExampleTopologicalSort orders the getting-dressed dependency graph.
func ExampleTopologicalSort() {
	g := core.New()
	g.AddEdge("shirt", "tie")
	g.AddEdge("shirt", "belt")
	g.AddEdge("tie", "jacket")
	g.AddEdge("belt", "jacket")
	g.AddEdge("pants", "shoes")
	g.AddEdge("pants", "belt")
	g.AddEdge("socks", "shoes")

	order, err := dfs.TopologicalSort(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(order)
	// Output:
	// [socks pants shoes shirt belt tie jacket]
}
