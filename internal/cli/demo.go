package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/pjmsplot"
	"github.com/vdobler/pjmsplot/demo"
)

const (
	kindDiscrete   = "discrete"   // a few sine curves from the color cycle
	kindContinuous = "continuous" // many sine curves from a color map
	kindDashes     = "dashes"     // one line per named dash pattern
)

type demoOpts struct {
	kind   string
	n      int     // number of datasets, 0 for the kind's default
	output string  // output file, format by extension
	width  float64 // inches
	height float64 // inches
}

func newDemoCmd() *cobra.Command {
	opts := demoOpts{
		kind:   kindDiscrete,
		output: "demo.png",
		width:  float64(demo.Width / vg.Inch),
		height: float64(demo.Height / vg.Inch),
	}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a preview figure",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			theme := themeFromContext(cmd.Context())

			fig, err := buildDemo(theme, opts)
			if err != nil {
				return err
			}
			logger.Debug("figure", "width", opts.width, "height", opts.height, "margins", fig.Margins.String())

			if err := fig.Save(opts.output); err != nil {
				return fmt.Errorf("save %s: %w", opts.output, err)
			}
			logger.Info("wrote demo", "kind", opts.kind, "file", opts.output)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.kind, "kind", opts.kind, "demo kind: discrete, continuous or dashes")
	cmd.Flags().IntVarP(&opts.n, "datasets", "n", 0, "number of datasets (default 4 for discrete, 10 for continuous)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file (png, jpg, tiff, svg, pdf or eps)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "figure width in inches")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "figure height in inches")
	return cmd
}

func buildDemo(t pjmsplot.Theme, opts demoOpts) (*pjmsplot.Figure, error) {
	w, h := vg.Length(opts.width)*vg.Inch, vg.Length(opts.height)*vg.Inch
	switch opts.kind {
	case kindDiscrete:
		return demo.Discrete(t, datasets(opts.n, 4), w, h)
	case kindContinuous:
		return demo.Continuous(t, datasets(opts.n, 10), w, h)
	case kindDashes:
		return demo.LineStyles(t, w, h)
	}
	return nil, fmt.Errorf("unknown demo kind %q", opts.kind)
}

func datasets(n, def int) int {
	if n == 0 {
		return def
	}
	return n
}
