package pjmsplot

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

func TestDefaultTheme(t *testing.T) {
	want := Theme{
		Font:   FontSizes{Base: 10, Title: 10, Label: 15, Tick: 15, Legend: 15, FigureTitle: 20},
		Lines:  LineSettings{Width: 4, MarkerSize: 11, MarkerEdgeWidth: 0},
		Edges:  EdgeSettings{AxesWidth: 2, TickWidth: 2},
		Output: OutputSettings{DPI: 300, SaveDPI: 300, BBox: "tight", PadInches: 0.1},
	}
	if diff := cmp.Diff(want, DefaultTheme()); diff != "" {
		t.Errorf("DefaultTheme mismatch (-want +got):\n%s", diff)
	}
	require.NoError(t, DefaultTheme().Validate())

	// Callers get their own copy.
	a := DefaultTheme()
	a.Font.Base = 99
	assert.Equal(t, 10.0, DefaultTheme().Font.Base)
}

func TestThemeValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Theme)
	}{
		{"zero base font", func(t *Theme) { t.Font.Base = 0 }},
		{"NaN base font", func(t *Theme) { t.Font.Base = math.NaN() }},
		{"infinite base font", func(t *Theme) { t.Font.Base = math.Inf(1) }},
		{"NaN line width", func(t *Theme) { t.Lines.Width = math.NaN() }},
		{"infinite pad", func(t *Theme) { t.Output.PadInches = math.Inf(1) }},
		{"negative label font", func(t *Theme) { t.Font.Label = -1 }},
		{"negative line width", func(t *Theme) { t.Lines.Width = -4 }},
		{"negative tick width", func(t *Theme) { t.Edges.TickWidth = -2 }},
		{"zero dpi", func(t *Theme) { t.Output.DPI = 0 }},
		{"negative save dpi", func(t *Theme) { t.Output.SaveDPI = -300 }},
		{"negative pad", func(t *Theme) { t.Output.PadInches = -0.1 }},
		{"unknown bbox", func(t *Theme) { t.Output.BBox = "loose" }},
		{"bad palette", func(t *Theme) { t.Palette = []string{"#zzzzzz"} }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			th := DefaultTheme()
			tc.modify(&th)
			if err := th.Validate(); !errors.Is(err, ErrInvalidTheme) {
				t.Errorf("got %v, want ErrInvalidTheme", err)
			}
		})
	}

	th := DefaultTheme()
	th.Output.BBox = ""
	th.Font.Title = 0
	assert.NoError(t, th.Validate())
}

func TestApplyDefaultStyle(t *testing.T) {
	p, err := plot.New()
	require.NoError(t, err)
	require.NoError(t, ApplyDefaultStyle(p, DefaultTheme()))

	assert.Equal(t, vg.Points(10), p.Title.TextStyle.Font.Size)
	assert.Equal(t, vg.Points(15), p.Legend.TextStyle.Font.Size)
	for _, ax := range []plot.Axis{p.X, p.Y} {
		assert.Equal(t, vg.Points(15), ax.Label.TextStyle.Font.Size)
		assert.Equal(t, vg.Points(15), ax.Tick.Label.Font.Size)
		assert.Equal(t, vg.Points(2), ax.LineStyle.Width)
		assert.Equal(t, vg.Points(2), ax.Tick.LineStyle.Width)
	}

	th := DefaultTheme()
	th.Font.Title = 0
	th.Font.Base = 12
	require.NoError(t, ApplyDefaultStyle(p, th))
	assert.Equal(t, vg.Points(12), p.Title.TextStyle.Font.Size)

	th.Output.DPI = 0
	assert.ErrorIs(t, ApplyDefaultStyle(p, th), ErrInvalidTheme)
}

func TestApplyGlobals(t *testing.T) {
	line, glyph := plotter.DefaultLineStyle, plotter.DefaultGlyphStyle

	restore := ApplyGlobals(DefaultTheme())
	assert.Equal(t, vg.Points(4), plotter.DefaultLineStyle.Width)
	assert.Equal(t, vg.Points(5.5), plotter.DefaultGlyphStyle.Radius)
	assert.IsType(t, draw.CircleGlyph{}, plotter.DefaultGlyphStyle.Shape)

	restore()
	assert.Equal(t, line.Width, plotter.DefaultLineStyle.Width)
	assert.Equal(t, glyph.Radius, plotter.DefaultGlyphStyle.Radius)
}

func TestThemeLineStyle(t *testing.T) {
	th := DefaultTheme()
	ls, err := th.LineStyle("densely dashed", color.Black)
	require.NoError(t, err)
	assert.Equal(t, vg.Points(4), ls.Width)
	assert.Equal(t, []vg.Length{20, 4}, ls.Dashes)

	_, err = th.LineStyle("wiggly", color.Black)
	assert.ErrorIs(t, err, ErrInvalidDash)
}

func TestThemeGlyphStyle(t *testing.T) {
	th := DefaultTheme()
	gs := th.GlyphStyle(color.Black)
	assert.Equal(t, vg.Points(5.5), gs.Radius)
	assert.IsType(t, draw.CircleGlyph{}, gs.Shape)

	th.Lines.MarkerEdgeWidth = 1
	assert.IsType(t, draw.RingGlyph{}, th.GlyphStyle(color.Black).Shape)
}

func TestThemeColor(t *testing.T) {
	th := DefaultTheme()
	for i := 0; i < 3; i++ {
		assert.Equal(t, plotutil.Color(i), th.Color(i))
	}

	th.Palette = []string{"red", "#00ff00"}
	assert.Equal(t, BuiltinColors["red"], th.Color(0))
	assert.Equal(t, color.NRGBA{0, 0xff, 0, 0xff}, th.Color(1))
	assert.Equal(t, BuiltinColors["red"], th.Color(2))
	assert.Equal(t, color.NRGBA{0, 0xff, 0, 0xff}, th.Color(-1))

	th.Palette = []string{"red", "green", "blue"}
	assert.NotPanics(t, func() { th.Color(math.MinInt) })
	assert.Equal(t, BuiltinColors["green"], th.Color(math.MinInt))

	th.Palette = nil
	assert.NotPanics(t, func() { th.Color(-7) })
	assert.NotPanics(t, func() { th.Color(math.MinInt) })
}

func TestThemeValidateReportsFirstInvalidField(t *testing.T) {
	th := DefaultTheme()
	th.Font.Label = -1
	th.Output.PadInches = -1
	for i := 0; i < 20; i++ {
		err := th.Validate()
		require.ErrorIs(t, err, ErrInvalidTheme)
		assert.Contains(t, err.Error(), "label font size")
	}
}
