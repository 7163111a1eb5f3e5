package ttex

import "context"
import "log/slog"
import "sync/atomic"

// nopHandler is a slog.Handler that silently discards all records.
// Enabled returns false so callers skip message formatting entirely,
// keeping disabled logging effectively free.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by ttex. By default the package
// produces no log output. Pass nil to restore the default silent behavior.
//
// Log levels used by ttex:
//   - [slog.LevelDebug]: per-glyph diagnostics (out-of-canvas skips).
//   - [slog.LevelInfo]: session lifecycle events (font loaded).
//   - [slog.LevelWarn]: renders that produced no visible advancement.
func SetLogger(l *slog.Logger) {
	if l == nil { l = newNopLogger() }
	loggerPtr.Store(l)
}

func logger() *slog.Logger { return loggerPtr.Load() }
