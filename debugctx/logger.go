package debugctx

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards all records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger diagnostics are reported to. By default nothing
// is logged. Passing nil restores the default.
//
// Verification failures are logged at slog.LevelError, capability fallbacks
// at slog.LevelWarn.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Verify reports a failed check to l and returns ok. It never panics; a
// failed check is a diagnostic, not an error.
func Verify(l *slog.Logger, ok bool, check string) bool {
	if !ok {
		l.Error("verification failed", "check", check)
	}
	return ok
}
