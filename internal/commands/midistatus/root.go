package midistatus

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is set from main at build time.
var Version = "0.1.0"

// NewRootCmd builds the midistatus command tree. Each call returns fresh
// commands so flag state is never shared between executions.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "midistatus",
		Short:         "Classify MIDI status bytes",
		Long:          `midistatus reports which of the eight MIDI status types (Table I "Summary of Status Bytes") a byte belongs to.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newClassifyCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "midistatus v"+Version)
		},
	}
}
