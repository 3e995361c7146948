package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dagr/dag"
)

// newSortCmd returns the sort subcommand: a tsort-like topological sorter
// over whitespace-separated edge pairs.
func newSortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [file]",
		Short: "Topologically sort edge pairs read from a file or stdin",
		Long: `Reads directed edges as "from to" pairs, one per line (blank lines and
#-comments are skipped), builds a cycle-safe DAG, and prints the nodes in
topological order, one per line. An edge that would close a cycle aborts the
run and names the offending pair.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("sort: %w", err)
				}
				defer f.Close()
				in, name = f, args[0]
			}

			return runSort(cmd, in, name)
		},
	}
}

// runSort parses edges from r, builds the DAG, and prints the order.
func runSort(cmd *cobra.Command, r io.Reader, name string) error {
	logger := loggerFromContext(cmd.Context())

	d := dag.New()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return fmt.Errorf("sort: %s:%d: expected \"from to\", got %q", name, line, text)
		}
		if err := d.AddEdge(fields[0], fields[1]); err != nil {
			return fmt.Errorf("sort: %s:%d: %w", name, line, err)
		}
		logger.Debug("edge committed", "from", fields[0], "to", fields[1])
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("sort: reading %s: %w", name, err)
	}

	order, err := d.TopologicalSort()
	if err != nil {
		return fmt.Errorf("sort: %w", err)
	}
	logger.Debug("sorted", "nodes", len(order), "edges", d.EdgeCount())

	out := cmd.OutOrStdout()
	for _, id := range order {
		fmt.Fprintln(out, id)
	}

	return nil
}
