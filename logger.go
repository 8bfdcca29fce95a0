package clove

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/clove/text"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip message formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. It is accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for clove and the text package.
// By default, clove produces no log output.
//
// Pass nil to restore the silent default. SetLogger is safe for concurrent
// use.
//
// Log levels used by clove:
//   - [slog.LevelDebug]: layer lifecycle, merges, font registration, layouts, saves
//   - [slog.LevelWarn]: non-fatal issues (glyphs without an outline are skipped)
//
// Example:
//
//	clove.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	text.SetLogger(l)
}

// Logger returns the current logger used by clove.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
