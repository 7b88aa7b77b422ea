// SPDX-License-Identifier: Unlicense OR MIT

// Package terrazzo is a cross-platform GUI toolkit. A widget tree is
// described once with the types in package widget, styled with package
// style, and rendered by whichever backend is registered for the host
// platform.
//
// The toolkit splits in three layers:
//
//   - package style and package layout form the foundational box model:
//     declarative properties in, pixel geometry out.
//   - package widget and package app hold the platform independent
//     widget and application state.
//   - the packages below backend implement that state against a
//     concrete target. The headless backend is always available and is
//     what the probe-based tests run against.
package terrazzo

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Version of the toolkit. Overridable with the -X linker flag.
var Version = "(devel)"

// nopHandler discards all records. Enabled returns false so callers
// skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(nopHandler{}))
}

// SetLogger configures logging for the toolkit and all backends. By
// default no output is produced. Pass nil to restore the silent
// default. Safe for concurrent use.
//
// Backends log window lifecycle at Info and layout diagnostics at
// Debug.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	logger.Store(l)
}

// Logger returns the active logger.
func Logger() *slog.Logger {
	return logger.Load()
}
