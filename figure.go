package pjmsplot

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgeps"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
)

// ErrFormat is returned (wrapped) for unsupported output formats.
var ErrFormat = errors.New("unsupported format")

// Figure places a single plot on a canvas of fixed physical size. The
// data area of Plot covers the region described by Margins; title, axis
// labels and tick labels are drawn into the margins.
type Figure struct {
	Plot *plot.Plot

	// Title is drawn centered at the top of the figure.
	Title string

	Width, Height vg.Length
	Margins       Margins
	Theme         Theme
}

// NewFigure returns a w × h figure with an empty plot styled by t.
func NewFigure(w, h vg.Length, t Theme) (*Figure, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: figure size %gpt × %gpt", ErrInvalidGeometry, float64(w), float64(h))
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	if err := ApplyDefaultStyle(p, t); err != nil {
		return nil, err
	}
	return &Figure{
		Plot:    p,
		Width:   w,
		Height:  h,
		Margins: DefaultMargins,
		Theme:   t,
	}, nil
}

// Add adds plotters to the figure's plot.
func (f *Figure) Add(ps ...plot.Plotter) { f.Plot.Add(ps...) }

// Squarify makes the plotted region of f square, see Squarify.
// The margins are left unchanged on error.
func (f *Figure) Squarify() error {
	m, err := Squarify(f.Width, f.Height, f.Margins)
	if err != nil {
		return err
	}
	f.Margins = m
	return nil
}

// AxesRect is the plotted region in figure coordinates.
func (f *Figure) AxesRect() vg.Rectangle {
	return vg.Rectangle{
		Min: vg.Point{X: f.Width * vg.Length(f.Margins.Left), Y: f.Height * vg.Length(f.Margins.Bottom)},
		Max: vg.Point{X: f.Width * vg.Length(f.Margins.Right), Y: f.Height * vg.Length(f.Margins.Top)},
	}
}

// plotRect returns the rectangle the whole plot has to be drawn into for
// its data area to cover axes. The space needed by axes and title depends
// slightly on the size of the plot, so a few rounds are done.
func (f *Figure) plotRect(axes vg.Rectangle) vg.Rectangle {
	outer := axes
	for i := 0; i < 3; i++ {
		da := f.Plot.DataCanvas(draw.Canvas{Rectangle: outer})
		left, right := da.Min.X-outer.Min.X, outer.Max.X-da.Max.X
		bottom, top := da.Min.Y-outer.Min.Y, outer.Max.Y-da.Max.Y
		outer = vg.Rectangle{
			Min: vg.Point{X: axes.Min.X - left, Y: axes.Min.Y - bottom},
			Max: vg.Point{X: axes.Max.X + right, Y: axes.Max.Y + top},
		}
	}
	return outer
}

func (f *Figure) titleStyle() draw.TextStyle {
	sty := f.Plot.Title.TextStyle
	sty.Font.Size = f.Theme.Font.size(f.Theme.Font.FigureTitle)
	sty.XAlign = draw.XCenter
	sty.YAlign = draw.YTop
	return sty
}

// titleRect is the space covered by Title, in figure coordinates.
func (f *Figure) titleRect() vg.Rectangle {
	sty := f.titleStyle()
	w, h := sty.Width(f.Title), sty.Height(f.Title)
	top := f.Height * 0.98
	return vg.Rectangle{
		Min: vg.Point{X: f.Width/2 - w/2, Y: top - h},
		Max: vg.Point{X: f.Width/2 + w/2, Y: top},
	}
}

// Bounds is the area covered by everything drawn, in figure coordinates.
func (f *Figure) Bounds() vg.Rectangle {
	b := f.plotRect(f.AxesRect())
	if f.Title == "" {
		return b
	}
	t := f.titleRect()
	b.Min.X, b.Min.Y = minLength(b.Min.X, t.Min.X), minLength(b.Min.Y, t.Min.Y)
	b.Max.X, b.Max.Y = maxLength(b.Max.X, t.Max.X), maxLength(b.Max.Y, t.Max.Y)
	return b
}

// Draw draws the figure to c which is taken to be Width × Height.
func (f *Figure) Draw(c draw.Canvas) {
	f.drawAt(c, c.Min)
}

// drawAt draws f with the lower left figure corner at origin.
func (f *Figure) drawAt(c draw.Canvas, origin vg.Point) {
	if f.Plot.BackgroundColor != nil {
		c.SetColor(f.Plot.BackgroundColor)
		c.Fill(c.Rectangle.Path())
	}

	outer := f.plotRect(f.AxesRect())
	pc := c
	pc.Rectangle = vg.Rectangle{Min: origin.Add(outer.Min), Max: origin.Add(outer.Max)}
	f.Plot.Draw(pc)

	if f.Title != "" {
		pt := vg.Point{X: f.Width / 2, Y: f.Height * 0.98}
		c.FillText(f.titleStyle(), origin.Add(pt), f.Title)
	}
}

// Image renders the whole figure at the theme's DPI.
func (f *Figure) Image() image.Image {
	c := vgimg.NewWith(vgimg.UseWH(f.Width, f.Height), vgimg.UseDPI(f.Theme.Output.DPI))
	f.Draw(draw.New(c))
	return c.Image()
}

type writerToCanvas interface {
	vg.CanvasSizer
	io.WriterTo
}

func newCanvas(format string, w, h vg.Length, dpi int) (writerToCanvas, error) {
	switch format {
	case "png":
		return vgimg.PngCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))}, nil
	case "svg":
		return vgsvg.New(w, h), nil
	case "pdf":
		return vgpdf.New(w, h), nil
	case "eps":
		return vgeps.New(w, h), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFormat, format)
}

// WriterTo renders the figure in the given format (png, jpg, jpeg, tif,
// tiff, svg, pdf or eps). Raster formats use the theme's save DPI.
// With a "tight" bbox the output is cropped to Bounds plus the theme's
// padding on each side.
func (f *Figure) WriterTo(format string) (io.WriterTo, error) {
	format = strings.ToLower(format)
	w, h := f.Width, f.Height
	var origin vg.Point
	if f.Theme.Output.BBox == "tight" {
		pad := vg.Length(f.Theme.Output.PadInches) * vg.Inch
		b := f.Bounds()
		w, h = b.Max.X-b.Min.X+2*pad, b.Max.Y-b.Min.Y+2*pad
		origin = vg.Point{X: pad - b.Min.X, Y: pad - b.Min.Y}
	}

	c, err := newCanvas(format, w, h, f.Theme.Output.SaveDPI)
	if err != nil {
		return nil, err
	}
	f.drawAt(draw.New(c), origin)
	return c, nil
}

// Save writes the figure to path in the format given by its extension.
func (f *Figure) Save(path string) (err error) {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	wt, err := f.WriterTo(format)
	if err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = wt.WriteTo(out)
	return err
}

func minLength(a, b vg.Length) vg.Length {
	if a < b {
		return a
	}
	return b
}

func maxLength(a, b vg.Length) vg.Length {
	if a > b {
		return a
	}
	return b
}
