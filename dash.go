package pjmsplot

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrInvalidDash is returned (wrapped) by ParseDash.
var ErrInvalidDash = errors.New("invalid dash pattern")

// Dash describes how a line is stroked: Either by one of the keywords
// "solid", "dotted", "dashed" or "dashdot" or by an explicit Offset and
// Segments, the alternating lengths of drawn and blank parts.
// Offset and Segments are in units of the line width.
type Dash struct {
	Keyword  string
	Offset   float64
	Segments []float64
}

// Keyword patterns as used for lines of width 1.
var keywordPatterns = map[string][]float64{
	"solid":   nil,
	"dashed":  {3.7, 1.6},
	"dotted":  {1, 1.65},
	"dashdot": {6.4, 1.6, 1, 1.6},
}

// IsKeyword reports whether d is given by name instead of by segments.
func (d Dash) IsKeyword() bool { return d.Keyword != "" }

func (d Dash) String() string {
	if d.IsKeyword() {
		return d.Keyword
	}
	segs := make([]string, len(d.Segments))
	for i, s := range d.Segments {
		segs[i] = strconv.FormatFloat(s, 'g', -1, 64)
	}
	return fmt.Sprintf("(%s, (%s))", strconv.FormatFloat(d.Offset, 'g', -1, 64), strings.Join(segs, ", "))
}

// Pattern resolves d to an offset and segment lengths for a line of
// width 1. A solid line has no segments.
func (d Dash) Pattern() (offset float64, segs []float64) {
	if d.IsKeyword() {
		return 0, append([]float64(nil), keywordPatterns[d.Keyword]...)
	}
	return d.Offset, append([]float64(nil), d.Segments...)
}

// LineStyle returns a line style of the given width and color stroked
// with d. The dash lengths scale with width.
func (d Dash) LineStyle(width vg.Length, c color.Color) draw.LineStyle {
	ls := draw.LineStyle{Color: c, Width: width, Dashes: []vg.Length{}}
	if width <= 0 {
		return ls
	}
	off, segs := d.Pattern()
	for _, s := range segs {
		ls.Dashes = append(ls.Dashes, vg.Length(s)*width)
	}
	ls.DashOffs = vg.Length(off) * width
	return ls
}

type namedDash struct {
	name string
	dash Dash
}

func pattern(off float64, segs ...float64) Dash {
	return Dash{Offset: off, Segments: segs}
}

// lineStyleEntries is in definition order; "dotted" and "dashed" appear
// twice and the later entry is the one in LineStyles.
var lineStyleEntries = []namedDash{
	{"solid", Dash{Keyword: "solid"}},
	{"dotted", Dash{Keyword: "dotted"}},
	{"dashed", Dash{Keyword: "dashed"}},
	{"dashdot", Dash{Keyword: "dashdot"}},

	{"loosely dotted", pattern(0, 1, 10)},
	{"dotted", pattern(0, 1, 1)},
	{"densely dotted", pattern(0, 1, 1)},

	{"loosely dashed", pattern(0, 5, 10)},
	{"dashed", pattern(0, 5, 5)},
	{"densely dashed", pattern(0, 5, 1)},

	{"loosely dashdotted", pattern(0, 3, 10, 1, 10)},
	{"dashdotted", pattern(0, 3, 5, 1, 5)},
	{"densely dashdotted", pattern(0, 3, 1, 1, 1)},

	{"dashdotdotted", pattern(0, 3, 5, 1, 5, 1, 5)},
	{"loosely dashdotdotted", pattern(0, 3, 10, 1, 10, 1, 10)},
	{"densely dashdotdotted", pattern(0, 3, 1, 1, 1, 1, 1)},
}

// LineStyles maps descriptive names to dash patterns, e.g.
//
//	ls := LineStyles["loosely dashdotdotted"].LineStyle(vg.Points(2), color.Black)
var LineStyles = makeDashTable(lineStyleEntries)

func makeDashTable(entries []namedDash) map[string]Dash {
	table := make(map[string]Dash, len(entries))
	for _, e := range entries {
		table[e.name] = e.dash
	}
	return table
}

// DashNames returns the names in LineStyles in sorted order.
func DashNames() []string {
	names := make([]string, 0, len(LineStyles))
	for name := range LineStyles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseDash parses s which may be a name from LineStyles, one of the
// shorthands "-", "--", ":" and "-." or an explicit pattern like
// "(0, (3, 5, 1, 5))".
func ParseDash(s string) (Dash, error) {
	s = strings.TrimSpace(s)
	if d, ok := LineStyles[s]; ok {
		return d, nil
	}
	switch s {
	case "-":
		return Dash{Keyword: "solid"}, nil
	case "--":
		return Dash{Keyword: "dashed"}, nil
	case ":":
		return Dash{Keyword: "dotted"}, nil
	case "-.":
		return Dash{Keyword: "dashdot"}, nil
	}
	if strings.HasPrefix(s, "(") {
		return parseDashTuple(s)
	}
	return Dash{}, fmt.Errorf("%w: unknown line style %q", ErrInvalidDash, s)
}

func parseDashTuple(s string) (Dash, error) {
	if !strings.HasSuffix(s, ")") {
		return Dash{}, fmt.Errorf("%w: unbalanced parentheses in %q", ErrInvalidDash, s)
	}
	inner := s[1 : len(s)-1]
	i := strings.Index(inner, ",")
	if i == -1 {
		return Dash{}, fmt.Errorf("%w: missing segments in %q", ErrInvalidDash, s)
	}
	off, err := strconv.ParseFloat(strings.TrimSpace(inner[:i]), 64)
	if err != nil {
		return Dash{}, fmt.Errorf("%w: bad offset in %q: %v", ErrInvalidDash, s, err)
	}
	if !finite(off) || off < 0 {
		return Dash{}, fmt.Errorf("%w: offset in %q is not a finite non-negative number", ErrInvalidDash, s)
	}

	rest := strings.TrimSpace(inner[i+1:])
	if !strings.HasPrefix(rest, "(") || !strings.HasSuffix(rest, ")") {
		return Dash{}, fmt.Errorf("%w: segments in %q are not parenthesized", ErrInvalidDash, s)
	}
	var segs []float64
	for _, f := range strings.Split(rest[1:len(rest)-1], ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue // trailing comma
		}
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Dash{}, fmt.Errorf("%w: bad segment in %q: %v", ErrInvalidDash, s, err)
		}
		if !finite(v) || v <= 0 {
			return Dash{}, fmt.Errorf("%w: segment %g in %q is not a finite positive number", ErrInvalidDash, v, s)
		}
		segs = append(segs, v)
	}
	if len(segs) == 0 || len(segs)%2 != 0 {
		return Dash{}, fmt.Errorf("%w: need an even, non-zero number of segments in %q", ErrInvalidDash, s)
	}
	return Dash{Offset: off, Segments: segs}, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
