// Package cli implements the ggplot command-line interface, a small
// driver around the faceting library: it reads a CSV dataset, trains a
// facet grid layout and renders the assembled plot to a PNG file.
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the ggplot CLI and returns an error if a command fails.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "ggplot",
		Short:        "ggplot renders faceted plots from CSV data",
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

	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(context.Background())
}
