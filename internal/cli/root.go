package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the dagr CLI under ctx and returns an error if any command
// fails.
//
// The root command wires up the demo and sort subcommands and configures
// logging based on the --verbose flag. The logger is attached to the context
// and accessible to all commands via loggerFromContext.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "dagr",
		Short:        "dagr explores directed graphs: traversal, topological sort, cycle safety",
		Long:         `dagr is an illustrative CLI around the dagr graph library: walk a sample graph depth- and breadth-first, topologically sort dependency edges, and watch the DAG wrapper reject cycle-closing edges.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newSortCmd())

	return root.ExecuteContext(ctx)
}
