// Package pjmsplot provides consistent defaults for gonum/plot figures
// and makes the plotted region of a figure square.
//
// # Figures and Margins
//
// A gonum plot fills whatever canvas it is drawn to. A Figure adds a
// physical size and subplot Margins: the fractions of the figure width
// and height at which the data area starts and ends.
//
//	fig, _ := pjmsplot.NewFigure(8*vg.Inch, 6*vg.Inch, pjmsplot.DefaultTheme())
//	fig.Add(line)
//	fig.Squarify() // data area is now 4.62in × 4.62in
//	fig.Save("sine.png")
//
// Squarify keeps the margins of the shorter side and centers a square
// along the longer one. Landscape figures (width > height) get new left
// and right margins, all others new top and bottom margins.
//
// # Themes
//
// A Theme holds font sizes, line and frame widths and output settings.
// Nothing is changed on import: ApplyDefaultStyle styles one plot,
// ApplyGlobals changes the package-wide defaults of gonum/plot/plotter
// and hands back a function undoing this. Themes can be read from TOML:
//
//	[font]
//	label = 12
//	[output]
//	bbox = "tight"
//	pad_inches = 0.1
//
// # Line Styles
//
// LineStyles maps names like "densely dashdotted" to dash patterns. The
// lengths of a pattern are multiples of the line width:
//
//	line.LineStyle = pjmsplot.LineStyles["loosely dotted"].LineStyle(vg.Points(4), color.Black)
package pjmsplot
