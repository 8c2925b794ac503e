package demo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/pjmsplot"
)

func TestSines(t *testing.T) {
	curves := sines(3, 100)
	require.Len(t, curves, 3)
	for _, c := range curves {
		require.Len(t, c, 100)
		assert.Equal(t, 0.0, c[0].X)
		assert.InDelta(t, 31.4159, c[99].X, 1e-4)
	}
	// sin(10π * 3 * 0.1) = sin(3π)
	assert.InDelta(t, 0, curves[2][99].Y, 1e-9)
}

func TestDiscrete(t *testing.T) {
	fig, err := Discrete(pjmsplot.DefaultTheme(), 4, Width, Height)
	require.NoError(t, err)

	r := fig.AxesRect()
	assert.InDelta(t, float64(r.Max.X-r.Min.X), float64(r.Max.Y-r.Min.Y), 1e-9)
	assert.Equal(t, "Discrete", fig.Plot.Title.Text)

	_, err = Discrete(pjmsplot.DefaultTheme(), 0, Width, Height)
	assert.Error(t, err)
}

func TestContinuousPortrait(t *testing.T) {
	fig, err := Continuous(pjmsplot.DefaultTheme(), 10, Height, Width)
	require.NoError(t, err)

	r := fig.AxesRect()
	assert.InDelta(t, float64(r.Max.X-r.Min.X), float64(r.Max.Y-r.Min.Y), 1e-9)
	assert.Equal(t, pjmsplot.DefaultMargins.Left, fig.Margins.Left)
	assert.Equal(t, pjmsplot.DefaultMargins.Right, fig.Margins.Right)
}

func TestLineStyles(t *testing.T) {
	fig, err := LineStyles(pjmsplot.DefaultTheme(), Width, Height)
	require.NoError(t, err)
	assert.Equal(t, pjmsplot.DefaultMargins, fig.Margins)

	wt, err := fig.WriterTo("svg")
	require.NoError(t, err)
	assert.NotNil(t, wt)
}
