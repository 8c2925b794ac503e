package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vdobler/pjmsplot"
)

func newDashesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashes",
		Short: "List the named dash patterns",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range pjmsplot.DashNames() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, pjmsplot.LineStyles[name])
			}
			return nil
		},
	}
}
