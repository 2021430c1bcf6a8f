package ggplot

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false, so log calls in
// the resolver and painter cost no attribute formatting.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

func silentLogger() *slog.Logger { return slog.New(discard{}) }

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silentLogger())
}

// SetLogger sets where ggplot reports problems it recovers from instead
// of failing. Nothing is logged until it is called; nil silences
// logging again. It may be called while plots are being resolved or
// drawn.
//
// Records logged:
//   - [slog.LevelWarn] "theme element missing", with the property in
//     "element": nothing along its inheritance chain has a value, so it
//     was rendered as nothing
//   - [slog.LevelWarn] "render: no font face", with "family" and
//     "face": a label was skipped
//   - [slog.LevelDebug] a relative size of "element" had no absolute
//     ancestor and was left unset
//
// To see them all on stderr:
//
//	ggplot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one. The
// theme and render packages log through it unless given their own.
func Logger() *slog.Logger {
	return current.Load()
}
