package pjmsplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrInvalidTheme is returned (wrapped) for themes which fail validation
// or cannot be decoded.
var ErrInvalidTheme = errors.New("invalid theme")

// FontSizes are given in points. A zero size falls back to Base.
type FontSizes struct {
	Base        float64 `toml:"base"`
	Title       float64 `toml:"title"`        // axes title
	Label       float64 `toml:"label"`        // x and y axis labels
	Tick        float64 `toml:"tick"`         // tick labels
	Legend      float64 `toml:"legend"`       // legend entries
	FigureTitle float64 `toml:"figure_title"` // title above all axes
}

// LineSettings control plotted data lines, in points.
type LineSettings struct {
	Width           float64 `toml:"width"`
	MarkerSize      float64 `toml:"marker_size"` // diameter
	MarkerEdgeWidth float64 `toml:"marker_edge_width"`
}

// EdgeSettings control the axis frame, in points.
type EdgeSettings struct {
	AxesWidth float64 `toml:"axes_width"`
	TickWidth float64 `toml:"tick_width"`
}

// OutputSettings control rasterization and export.
type OutputSettings struct {
	DPI       int     `toml:"dpi"`      // in-memory images
	SaveDPI   int     `toml:"save_dpi"` // files written by Save
	BBox      string  `toml:"bbox"`     // "tight" or "" for the full figure
	PadInches float64 `toml:"pad_inches"`
}

// Theme collects the cosmetic defaults applied to figures.
type Theme struct {
	Palette []string       `toml:"palette,omitempty"`
	Font    FontSizes      `toml:"font"`
	Lines   LineSettings   `toml:"lines"`
	Edges   EdgeSettings   `toml:"edges"`
	Output  OutputSettings `toml:"output"`
}

// DefaultTheme returns the defaults: 10pt text, 15pt labels, ticks and
// legend, 20pt figure titles, 4pt lines with 11pt edgeless markers, a 2pt
// axis frame and 300 dpi output cropped tightly with 0.1in padding.
func DefaultTheme() Theme {
	const small, medium, bigger = 10, 15, 20
	return Theme{
		Font: FontSizes{
			Base:        small,
			Title:       small,
			Label:       medium,
			Tick:        medium,
			Legend:      medium,
			FigureTitle: bigger,
		},
		Lines: LineSettings{
			Width:           4,
			MarkerSize:      11,
			MarkerEdgeWidth: 0,
		},
		Edges: EdgeSettings{
			AxesWidth: 2,
			TickWidth: 2,
		},
		Output: OutputSettings{
			DPI:       300,
			SaveDPI:   300,
			BBox:      "tight",
			PadInches: 0.1,
		},
	}
}

// Validate checks t for sizes and settings a figure cannot be drawn with.
func (t Theme) Validate() error {
	if !(t.Font.Base > 0) || math.IsInf(t.Font.Base, 0) {
		return fmt.Errorf("%w: base font size %g", ErrInvalidTheme, t.Font.Base)
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"title font size", t.Font.Title},
		{"label font size", t.Font.Label},
		{"tick font size", t.Font.Tick},
		{"legend font size", t.Font.Legend},
		{"figure title font size", t.Font.FigureTitle},
		{"line width", t.Lines.Width},
		{"marker size", t.Lines.MarkerSize},
		{"marker edge width", t.Lines.MarkerEdgeWidth},
		{"axes width", t.Edges.AxesWidth},
		{"tick width", t.Edges.TickWidth},
		{"pad", t.Output.PadInches},
	} {
		if !(f.v >= 0) || math.IsInf(f.v, 0) {
			return fmt.Errorf("%w: %s %g is not a finite non-negative number", ErrInvalidTheme, f.name, f.v)
		}
	}
	if t.Output.DPI <= 0 || t.Output.SaveDPI <= 0 {
		return fmt.Errorf("%w: dpi %d, save dpi %d", ErrInvalidTheme, t.Output.DPI, t.Output.SaveDPI)
	}
	switch t.Output.BBox {
	case "", "tight":
	default:
		return fmt.Errorf("%w: unknown bbox %q", ErrInvalidTheme, t.Output.BBox)
	}
	for _, s := range t.Palette {
		if _, err := ParseColor(s); err != nil {
			return fmt.Errorf("%w: palette: %v", ErrInvalidTheme, err)
		}
	}
	return nil
}

func (f FontSizes) size(v float64) vg.Length {
	if v == 0 {
		v = f.Base
	}
	return vg.Points(v)
}

// ApplyDefaultStyle sets the font sizes and frame widths of p from t.
// Nothing outside p is changed.
func ApplyDefaultStyle(p *plot.Plot, t Theme) error {
	if err := t.Validate(); err != nil {
		return err
	}

	p.Title.TextStyle.Font.Size = t.Font.size(t.Font.Title)
	p.Legend.TextStyle.Font.Size = t.Font.size(t.Font.Legend)
	for _, ax := range []*plot.Axis{&p.X, &p.Y} {
		ax.Label.TextStyle.Font.Size = t.Font.size(t.Font.Label)
		ax.Tick.Label.Font.Size = t.Font.size(t.Font.Tick)
		ax.LineStyle.Width = vg.Points(t.Edges.AxesWidth)
		ax.Tick.LineStyle.Width = vg.Points(t.Edges.TickWidth)
	}
	return nil
}

// ApplyGlobals sets the line width and glyph defaults of package plotter
// which all subsequently created lines and scatters start with.
// The returned function restores the previous defaults.
func ApplyGlobals(t Theme) (restore func()) {
	line, glyph := plotter.DefaultLineStyle, plotter.DefaultGlyphStyle
	plotter.DefaultLineStyle.Width = vg.Points(t.Lines.Width)
	plotter.DefaultGlyphStyle = t.GlyphStyle(glyph.Color)
	return func() {
		plotter.DefaultLineStyle, plotter.DefaultGlyphStyle = line, glyph
	}
}

// LineStyle returns a line in the theme's line width dashed with the
// pattern named name (see ParseDash).
func (t Theme) LineStyle(name string, c color.Color) (draw.LineStyle, error) {
	d, err := ParseDash(name)
	if err != nil {
		return draw.LineStyle{}, err
	}
	return d.LineStyle(vg.Points(t.Lines.Width), c), nil
}

// GlyphStyle returns the marker style. Markers without edge are drawn
// filled, all others as rings.
func (t Theme) GlyphStyle(c color.Color) draw.GlyphStyle {
	gs := draw.GlyphStyle{Color: c, Radius: vg.Points(t.Lines.MarkerSize / 2)}
	if t.Lines.MarkerEdgeWidth == 0 {
		gs.Shape = draw.CircleGlyph{}
	} else {
		gs.Shape = draw.RingGlyph{}
	}
	return gs
}

// Color returns the i'th color of the color cycle.
func (t Theme) Color(i int) color.Color {
	n := len(t.Palette)
	if n == 0 {
		n = len(plotutil.DefaultColors)
	}
	i %= n
	if i < 0 {
		i += n
	}
	if len(t.Palette) == 0 {
		return plotutil.Color(i)
	}
	c, err := ParseColor(t.Palette[i])
	if err != nil {
		return plotutil.Color(i)
	}
	return c
}
