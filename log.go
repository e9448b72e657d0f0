package stagefit

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// LevelFatal marks unrecoverable configuration errors: the delegate has no
// policy it can resolve and the host cannot render.
const LevelFatal = slog.LevelError + 4

// nopHandler drops everything. Enabled reports false for every level, so
// slog returns before a record is built and a silent delegate pays nothing
// for its log calls.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the package logger. Delegates belong to one goroutine
// each, but SetLogger may run on another one while they log, so the pointer
// is swapped atomically instead of under a lock.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the package logger used by delegates that were not
// given their own via WithLogger. By default stagefit produces no output.
// Pass nil to restore the silent default.
//
// Log levels used by stagefit:
//   - [slog.LevelDebug]: committed layouts, when debug mode is on
//   - [slog.LevelInfo]: rejected design sizes and viewports
//   - [LevelFatal]: no resolution policy could be resolved
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
