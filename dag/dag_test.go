package dag_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagr/bfs"
	"github.com/katalvlaran/dagr/core"
	"github.com/katalvlaran/dagr/dag"
	"github.com/katalvlaran/dagr/dfs"
)

// dressingEdges is the classic getting-dressed dependency set.
var dressingEdges = [][2]string{
	{"shirt", "tie"}, {"shirt", "belt"}, {"tie", "jacket"},
	{"belt", "jacket"}, {"pants", "shoes"}, {"pants", "belt"},
	{"socks", "shoes"},
}

// buildDressing constructs the dressing DAG, failing the test on any reject.
func buildDressing(t *testing.T) *dag.AcyclicGraph {
	t.Helper()
	d := dag.New()
	for _, e := range dressingEdges {
		require.NoError(t, d.AddEdge(e[0], e[1]))
	}

	return d
}

// snapshot captures the full adjacency relation for atomicity comparisons.
func snapshot(t *testing.T, d *dag.AcyclicGraph) map[string][]string {
	t.Helper()
	out := make(map[string][]string)
	for _, id := range d.Nodes() {
		nbrs, err := d.OutNeighbors(id)
		require.NoError(t, err)
		out[id] = nbrs
	}

	return out
}

// TestDAG_AddNode delegates idempotent node insertion.
func TestDAG_AddNode(t *testing.T) {
	d := dag.New()
	require.NoError(t, d.AddNode("x"))
	require.NoError(t, d.AddNode("x"))
	assert.Equal(t, 1, d.NodeCount())

	assert.ErrorIs(t, d.AddNode(""), core.ErrEmptyNodeID)
}

// TestDAG_AddEdge_Valid commits edges that keep the graph acyclic.
func TestDAG_AddEdge_Valid(t *testing.T) {
	d := dag.New()
	require.NoError(t, d.AddEdge("a", "b"))
	require.NoError(t, d.AddEdge("b", "c"))
	// A second parallel a→b does not close a cycle and is accepted.
	require.NoError(t, d.AddEdge("a", "b"))

	assert.True(t, d.HasEdge("a", "b"))
	assert.Equal(t, 3, d.EdgeCount())
	nbrs, err := d.OutNeighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "b"}, nbrs)
}

// TestDAG_CycleRejected_Atomic: the rejected insertion leaves the adjacency
// relation byte-for-byte identical to its pre-call state.
func TestDAG_CycleRejected_Atomic(t *testing.T) {
	d := buildDressing(t)
	before := snapshot(t, d)
	beforeNodes := d.Nodes()

	err := d.AddEdge("jacket", "shirt")
	require.Error(t, err)
	assert.ErrorIs(t, err, dag.ErrCycle)

	var cerr *dag.CycleError
	require.ErrorAs(t, err, &cerr)
	assert.Equal(t, "jacket", cerr.From)
	assert.Equal(t, "shirt", cerr.To)

	assert.Equal(t, beforeNodes, d.Nodes())
	assert.Equal(t, before, snapshot(t, d))
}

// TestDAG_SelfLoopAlwaysRejected: even a never-seen node rejects (x, x),
// because reachability's start==end base case holds vacuously.
func TestDAG_SelfLoopAlwaysRejected(t *testing.T) {
	d := dag.New()
	err := d.AddEdge("x", "x")
	assert.ErrorIs(t, err, dag.ErrCycle)
	// The rejected endpoints were never inserted.
	assert.False(t, d.HasNode("x"))
	assert.Equal(t, 0, d.NodeCount())

	// Same once the node exists.
	require.NoError(t, d.AddNode("x"))
	assert.ErrorIs(t, d.AddEdge("x", "x"), dag.ErrCycle)
}

// TestDAG_TwoNodeCycle rejects the immediate back edge.
func TestDAG_TwoNodeCycle(t *testing.T) {
	d := dag.New()
	require.NoError(t, d.AddEdge("u", "v"))
	assert.ErrorIs(t, d.AddEdge("v", "u"), dag.ErrCycle)
}

// TestDAG_EmptyEndpoints validates before the cycle check.
func TestDAG_EmptyEndpoints(t *testing.T) {
	d := dag.New()
	assert.ErrorIs(t, d.AddEdge("", "v"), core.ErrEmptyNodeID)
	assert.ErrorIs(t, d.AddEdge("u", ""), core.ErrEmptyNodeID)
	assert.ErrorIs(t, d.AddEdge("", ""), core.ErrEmptyNodeID)
}

// TestDAG_TopologicalSort runs the end-to-end dressing scenario: every edge
// constraint must hold in the output, which is a permutation of the node set.
func TestDAG_TopologicalSort(t *testing.T) {
	d := buildDressing(t)

	order, err := d.TopologicalSort()
	require.NoError(t, err)
	assert.ElementsMatch(t, d.Nodes(), order)
	for _, e := range dressingEdges {
		assert.Less(t, slices.Index(order, e[0]), slices.Index(order, e[1]),
			"%s must precede %s", e[0], e[1])
	}
}

// TestDAG_WorksWithWalkers: the wrapped Digraph feeds dfs/bfs directly.
func TestDAG_WorksWithWalkers(t *testing.T) {
	d := buildDressing(t)

	seq, err := dfs.Walk(d.Graph(), "shirt")
	require.NoError(t, err)
	got := slices.Collect(seq)
	assert.ElementsMatch(t, []string{"shirt", "tie", "belt", "jacket"}, got)

	bseq, err := bfs.Walk(d.Graph(), "pants")
	require.NoError(t, err)
	assert.Equal(t, []string{"pants", "shoes", "belt", "jacket"}, slices.Collect(bseq))
}

// TestCycleError_Message keeps the rejected pair visible in the text.
func TestCycleError_Message(t *testing.T) {
	err := &dag.CycleError{From: "jacket", To: "shirt"}
	assert.Contains(t, err.Error(), "jacket")
	assert.Contains(t, err.Error(), "shirt")
	assert.True(t, errors.Is(err, dag.ErrCycle))
}
