// Package cli implements the pjmsplot command-line interface.
//
// The commands are:
//   - demo: render a preview figure with the current theme
//   - squarify: print the margins making a figure's plotted region square
//   - dashes: list the named dash patterns
//   - style: print the effective theme as TOML
//
// All commands accept --verbose (-v) for debug logging and --theme to
// read a TOML theme file. Logger and theme travel in the command's
// context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vdobler/pjmsplot"
)

// newLogger creates a logger writing to w with "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	themeKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withTheme(ctx context.Context, t pjmsplot.Theme) context.Context {
	return context.WithValue(ctx, themeKey, t)
}

// themeFromContext returns the theme attached to ctx or the default theme.
func themeFromContext(ctx context.Context) pjmsplot.Theme {
	if t, ok := ctx.Value(themeKey).(pjmsplot.Theme); ok {
		return t
	}
	return pjmsplot.DefaultTheme()
}
