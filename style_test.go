package pjmsplot

import (
	"image/color"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		s string
		c color.Color
	}{
		{"#1256ab", color.NRGBA{0x12, 0x56, 0xab, 0xff}},
		{"#1256abcd", color.NRGBA{0x12, 0x56, 0xab, 0xcd}},
		{"red", color.NRGBA{0xff, 0x00, 0x00, 0xff}},
		{"Green", color.NRGBA{0x00, 0xff, 0x00, 0xff}},
		{"blue", color.NRGBA{0x00, 0x00, 0xff, 0xff}},
		{"k", color.NRGBA{0x00, 0x00, 0x00, 0xff}},
	}

	for i, tc := range tests {
		got, err := ParseColor(tc.s)
		if err != nil {
			t.Errorf("%d %q: unexpected error %v", i, tc.s, err)
			continue
		}
		rg, gg, bg, ag := got.RGBA()
		rw, gw, bw, aw := tc.c.RGBA()
		if rg != rw || gg != gw || bg != bw || ag != aw {
			t.Errorf("%d %q: got %04X, %04X, %04X, %04X want %04X, %04X, %04X, %04X",
				i, tc.s, rg, gg, bg, ag, rw, gw, bw, aw)
		}
	}

	for _, s := range []string{"nonsens", "#12", "#12345g", "#1234567"} {
		if _, err := ParseColor(s); err == nil {
			t.Errorf("%q: expected error", s)
		}
	}
}

func TestSetAlpha(t *testing.T) {
	tests := []struct {
		c    color.Color
		a    float64
		want color.NRGBA
	}{
		{color.NRGBA{0x12, 0x34, 0x56, 0xff}, 0.5, color.NRGBA{0x12, 0x34, 0x56, 0x80}},
		{color.NRGBA{0x12, 0x34, 0x56, 0x80}, 0.5, color.NRGBA{0x12, 0x34, 0x56, 0x40}},
		{color.Black, 2, color.NRGBA{0, 0, 0, 0xff}},
		{color.White, -1, color.NRGBA{0xff, 0xff, 0xff, 0}},
	}
	for i, tc := range tests {
		got := SetAlpha(tc.c, tc.a).(color.NRGBA)
		if got != tc.want {
			t.Errorf("%d: got %v, want %v", i, got, tc.want)
		}
	}
}
