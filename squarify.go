package pjmsplot

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
)

// ErrInvalidGeometry is returned (wrapped) for non-positive figure sizes
// and for margins which do not describe a proper plotted region.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Margins are the subplot parameters of a figure: the position of the
// plotted (axes) region given as fractions of the figure size, measured
// from the left and bottom figure edge. Left < Right and Bottom < Top
// must hold.
type Margins struct {
	Left, Right, Top, Bottom float64
}

// DefaultMargins are the subplot parameters a new Figure starts with.
var DefaultMargins = Margins{Left: 0.125, Right: 0.9, Top: 0.88, Bottom: 0.11}

func (m Margins) String() string {
	return fmt.Sprintf("left=%g right=%g top=%g bottom=%g", m.Left, m.Right, m.Top, m.Bottom)
}

// Check reports whether m is usable as subplot parameters.
func (m Margins) Check() error {
	for _, v := range []float64{m.Left, m.Right, m.Top, m.Bottom} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return fmt.Errorf("%w: margin %g outside [0,1]", ErrInvalidGeometry, v)
		}
	}
	if m.Left >= m.Right {
		return fmt.Errorf("%w: left %g not less than right %g", ErrInvalidGeometry, m.Left, m.Right)
	}
	if m.Bottom >= m.Top {
		return fmt.Errorf("%w: bottom %g not less than top %g", ErrInvalidGeometry, m.Bottom, m.Top)
	}
	return nil
}

// Squarify computes margins for a w × h figure such that the plotted
// region becomes square and centered along the longer side.
//
// For landscape figures (w > h) the vertical margins are kept and the
// horizontal ones are recomputed. Otherwise, including w == h, the
// horizontal extent is kept and the vertical margins are recomputed.
//
// Only the margins of the longer side are written, so applying Squarify
// to its own result is a no-op only if the margins of the shorter side
// did not change in between.
func Squarify(w, h vg.Length, m Margins) (Margins, error) {
	if w <= 0 || h <= 0 {
		return m, fmt.Errorf("%w: figure size %gpt × %gpt", ErrInvalidGeometry, float64(w), float64(h))
	}
	if err := m.Check(); err != nil {
		return m, err
	}

	sq := m
	if w > h {
		t, b := m.Top, m.Bottom
		axs := h * vg.Length(t-b)
		l := (1 - float64(axs/w)) / 2
		sq.Left, sq.Right = l, 1-l
	} else {
		// The horizontal extent yields the side of the square.
		t, b := m.Right, m.Left
		axs := w * vg.Length(t-b)
		l := (1 - float64(axs/h)) / 2
		sq.Bottom, sq.Top = l, 1-l
	}

	if err := sq.Check(); err != nil {
		return m, fmt.Errorf("cannot squarify %gpt × %gpt figure with %s: %w",
			float64(w), float64(h), m, err)
	}
	return sq, nil
}
