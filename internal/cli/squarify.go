package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/pjmsplot"
)

func newSquarifyCmd() *cobra.Command {
	m := pjmsplot.DefaultMargins

	cmd := &cobra.Command{
		Use:   "squarify WIDTH HEIGHT",
		Short: "Print subplot margins which make the plotted region square",
		Long: `Squarify computes subplot margins for a WIDTH × HEIGHT figure (any
unit) such that the plotted region is square and centered along the longer
side. The margins of the shorter side are kept.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("width: %w", err)
			}
			h, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("height: %w", err)
			}

			sq, err := pjmsplot.Squarify(vg.Length(w), vg.Length(h), m)
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("squarified", "from", m.String(), "to", sq.String())
			fmt.Fprintf(cmd.OutOrStdout(), "left=%.4f right=%.4f top=%.4f bottom=%.4f\n",
				sq.Left, sq.Right, sq.Top, sq.Bottom)
			return nil
		},
	}

	cmd.Flags().Float64Var(&m.Left, "left", m.Left, "left margin (fraction of width)")
	cmd.Flags().Float64Var(&m.Right, "right", m.Right, "right edge of the plotted region (fraction of width)")
	cmd.Flags().Float64Var(&m.Top, "top", m.Top, "top edge of the plotted region (fraction of height)")
	cmd.Flags().Float64Var(&m.Bottom, "bottom", m.Bottom, "bottom margin (fraction of height)")
	return cmd
}
