package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vdobler/pjmsplot"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	if loggerFromContext(ctx) != log.Default() {
		t.Error("expected default logger without attached logger")
	}
	if got := themeFromContext(ctx); got.Font.Base != pjmsplot.DefaultTheme().Font.Base {
		t.Errorf("expected default theme, got %+v", got)
	}

	var buf bytes.Buffer
	l := newLogger(&buf, log.InfoLevel)
	th := pjmsplot.DefaultTheme()
	th.Lines.Width = 1
	ctx = withTheme(withLogger(ctx, l), th)

	if loggerFromContext(ctx) != l {
		t.Error("attached logger not returned")
	}
	if got := themeFromContext(ctx); got.Lines.Width != 1 {
		t.Errorf("attached theme not returned, line width %g", got.Lines.Width)
	}
}
