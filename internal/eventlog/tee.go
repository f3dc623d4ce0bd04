// Package eventlog wraps a slog.Handler and tees records at or above a
// threshold to a callback. The switch wires the callback to the journal so
// warnings and errors land in the same persistent record as the
// connectivity transitions they explain.
package eventlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"
)

// RecordFunc receives each teed log record.
type RecordFunc func(ts time.Time, level slog.Level, msg string)

// TeeHandler forwards every record to its base handler and additionally
// invokes the callback for records at or above minLevel.
type TeeHandler struct {
	base     slog.Handler
	callback RecordFunc
	minLevel slog.Level
}

// NewTeeHandler wraps base. A nil callback degrades to plain delegation.
func NewTeeHandler(base slog.Handler, minLevel slog.Level, callback RecordFunc) *TeeHandler {
	return &TeeHandler{base: base, callback: callback, minLevel: minLevel}
}

// Enabled delegates visibility to the base handler; the tee threshold only
// gates the callback, never suppresses output.
func (h *TeeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.base.Enabled(ctx, level)
}

// Handle forwards to the base handler, then tees if the level qualifies.
// A panicking callback is contained here: logging must never take the
// process down, and re-logging the panic would recurse into this handler.
func (h *TeeHandler) Handle(ctx context.Context, record slog.Record) error {
	err := h.base.Handle(ctx, record)

	if h.callback != nil && record.Level >= h.minLevel {
		func() {
			defer func() {
				if r := recover(); r != nil {
					fmt.Fprintf(os.Stderr, "[eventlog] callback panicked: %v\n%s\n", r, debug.Stack())
				}
			}()
			h.callback(record.Time, record.Level, record.Message)
		}()
	}

	return err
}

// WithAttrs applies attributes to the base handler, preserving the tee.
func (h *TeeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return &TeeHandler{base: h.base.WithAttrs(attrs), callback: h.callback, minLevel: h.minLevel}
}

// WithGroup wraps the base handler's group, preserving the tee.
func (h *TeeHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &TeeHandler{base: h.base.WithGroup(name), callback: h.callback, minLevel: h.minLevel}
}
