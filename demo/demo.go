// Package demo builds preview figures showing what plots look like
// with a given theme.
package demo

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/pjmsplot"
)

// Default size of the demo figures.
const (
	Width  = 8 * vg.Inch
	Height = 6 * vg.Inch
)

// sines returns n curves y = sin(x*(i+1)*0.1) sampled at m points
// in [0, 10π].
func sines(n, m int) []plotter.XYs {
	curves := make([]plotter.XYs, n)
	for i := range curves {
		xys := make(plotter.XYs, m)
		for j := range xys {
			x := 10 * math.Pi * float64(j) / float64(m-1)
			xys[j].X = x
			xys[j].Y = math.Sin(x * float64(i+1) * 0.1)
		}
		curves[i] = xys
	}
	return curves
}

func newFigure(t pjmsplot.Theme, w, h vg.Length, title string) (*pjmsplot.Figure, error) {
	fig, err := pjmsplot.NewFigure(w, h, t)
	if err != nil {
		return nil, err
	}
	fig.Plot.Title.Text = title
	fig.Plot.X.Label.Text = "x"
	fig.Plot.Y.Label.Text = "y"
	return fig, nil
}

// Discrete plots on a w × h figure n sine curves in the colors of the theme's color cycle.
func Discrete(t pjmsplot.Theme, n int, w, h vg.Length) (*pjmsplot.Figure, error) {
	if n < 1 {
		return nil, fmt.Errorf("demo: need at least one dataset, got %d", n)
	}
	fig, err := newFigure(t, w, h, "Discrete")
	if err != nil {
		return nil, err
	}
	for i, xys := range sines(n, 100) {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		line.LineStyle = pjmsplot.LineStyles["solid"].LineStyle(vg.Points(t.Lines.Width), t.Color(i))
		fig.Add(line)
	}
	if err := fig.Squarify(); err != nil {
		return nil, err
	}
	return fig, nil
}

// Continuous plots n sine curves colored by a continuous color map
// normalized to [0, n].
func Continuous(t pjmsplot.Theme, n int, w, h vg.Length) (*pjmsplot.Figure, error) {
	if n < 1 {
		return nil, fmt.Errorf("demo: need at least one dataset, got %d", n)
	}
	fig, err := newFigure(t, w, h, "Continuous")
	if err != nil {
		return nil, err
	}
	cmap := moreland.ExtendedKindlmann()
	cmap.SetMin(0)
	cmap.SetMax(float64(n))
	for i, xys := range sines(n, 1000) {
		line, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		c, err := cmap.At(float64(i))
		if err != nil {
			return nil, err
		}
		line.LineStyle = pjmsplot.LineStyles["solid"].LineStyle(vg.Points(t.Lines.Width), c)
		fig.Add(line)
	}
	if err := fig.Squarify(); err != nil {
		return nil, err
	}
	return fig, nil
}

// LineStyles draws one horizontal line for every entry of
// pjmsplot.LineStyles, labeled in the legend.
func LineStyles(t pjmsplot.Theme, w, h vg.Length) (*pjmsplot.Figure, error) {
	fig, err := newFigure(t, w, h, "Line styles")
	if err != nil {
		return nil, err
	}
	fig.Plot.Y.Label.Text = ""
	names := pjmsplot.DashNames()
	for i, name := range names {
		y := float64(len(names) - i)
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: y}, {X: 10, Y: y}})
		if err != nil {
			return nil, err
		}
		line.LineStyle = pjmsplot.LineStyles[name].LineStyle(vg.Points(t.Lines.Width), t.Color(0))
		fig.Add(line)
		fig.Plot.Legend.Add(name, line)
	}
	fig.Plot.Legend.Left = true
	return fig, nil
}
