package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dagr/dag"
)

// newTestCmd wires a sort command to buffers for black-box-ish execution.
func newTestCmd() (*bytes.Buffer, func(input string) error) {
	out := &bytes.Buffer{}
	cmd := newSortCmd()
	cmd.SetOut(out)
	cmd.SetContext(context.Background())

	return out, func(input string) error {
		return runSort(cmd, strings.NewReader(input), "test")
	}
}

// TestSort_Chain sorts a small chain, skipping comments and blank lines.
func TestSort_Chain(t *testing.T) {
	out, run := newTestCmd()
	err := run("# getting dressed\nshirt tie\n\ntie jacket\n")
	require.NoError(t, err)
	assert.Equal(t, "shirt\ntie\njacket\n", out.String())
}

// TestSort_CycleRejected aborts with the offending pair.
func TestSort_CycleRejected(t *testing.T) {
	_, run := newTestCmd()
	err := run("a b\nb c\nc a\n")
	require.Error(t, err)
	assert.ErrorIs(t, err, dag.ErrCycle)
	assert.Contains(t, err.Error(), "test:3")
}

// TestSort_MalformedLine reports the file and line number.
func TestSort_MalformedLine(t *testing.T) {
	_, run := newTestCmd()
	err := run("a b\nlonely\n")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test:2")
}

// TestDemo_EndToEnd replays the full walkthrough.
func TestDemo_EndToEnd(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := newDemoCmd()
	cmd.SetOut(out)
	cmd.SetContext(context.Background())

	require.NoError(t, runDemo(cmd))
	assert.Contains(t, out.String(), "DFS: [A B D C]")
	assert.Contains(t, out.String(), "BFS: [A B C D]")
	assert.Contains(t, out.String(), "Topological sort: [socks pants shoes shirt belt tie jacket]")
	assert.Contains(t, out.String(), "Correctly rejected: dag: adding edge (jacket → shirt) would create a cycle")
}
