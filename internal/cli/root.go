package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vdobler/pjmsplot"
)

var version = "dev"

// SetVersion sets the version reported by --version.
func SetVersion(v string) { version = v }

// Execute runs the pjmsplot CLI with the process arguments.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree. Command output goes to out,
// log messages to logw.
func newRootCmd(out, logw io.Writer) *cobra.Command {
	var (
		verbose   bool
		themePath string
	)

	root := &cobra.Command{
		Use:           "pjmsplot",
		Short:         "pjmsplot makes consistent, square plots",
		Long:          `pjmsplot applies sane plotting defaults (font sizes, line widths, 300 dpi tight output) and squares the plotted region of figures.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(logw, level)
			ctx := withLogger(cmd.Context(), logger)

			theme := pjmsplot.DefaultTheme()
			if themePath != "" {
				t, err := pjmsplot.LoadTheme(themePath)
				if err != nil {
					return err
				}
				theme = t
				logger.Debug("loaded theme", "path", themePath)
			}
			cmd.SetContext(withTheme(ctx, theme))
			return nil
		},
	}

	root.SetOut(out)
	root.SetErr(logw)
	root.SetVersionTemplate(fmt.Sprintf("pjmsplot %s\n", version))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&themePath, "theme", "", "TOML theme `file`")

	root.AddCommand(newDemoCmd())
	root.AddCommand(newSquarifyCmd())
	root.AddCommand(newDashesCmd())
	root.AddCommand(newStyleCmd())

	return root
}
