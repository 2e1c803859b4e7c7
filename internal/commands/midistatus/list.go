package midistatus

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webern/midi/midi"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the status types and their values",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, statusType := range midi.StatusTypes() {
				fmt.Fprintf(cmd.OutOrStdout(), "%#x\t%v\n", statusType.Value(), statusType)
			}
		},
	}
}
