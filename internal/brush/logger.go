package brush

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false so callers skip
// formatting.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger sets the logger used by the brush. By default nothing is logged,
// since the host usually owns the terminal. Pass nil to silence it again.
//
// Levels used:
//   - [slog.LevelDebug]: mount cycles, skipped initialization on empty plots
//   - [slog.LevelWarn]: brush not initialized, programmatic set ignored
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current brush logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
