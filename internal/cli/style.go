package cli

import (
	"github.com/spf13/cobra"

	"github.com/vdobler/pjmsplot"
)

func newStyleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "style",
		Short: "Print the effective theme as TOML",
		Long:  `Style prints the theme in effect, the defaults or the --theme file, in the TOML layout --theme reads.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return pjmsplot.EncodeTheme(cmd.OutOrStdout(), themeFromContext(cmd.Context()))
		},
	}
}
