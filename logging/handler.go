// Package logging provides structured logging for the game. The
// terminal belongs to the renderer, so logs go to a file or are
// discarded entirely.
package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// serviceHandler wraps a slog.Handler to stamp every record with the
// service identity.
type serviceHandler struct {
	handler slog.Handler
	service string
	version string
}

func (h *serviceHandler) Handle(ctx context.Context, r slog.Record) error {
	r.AddAttrs(
		slog.String("service", h.service),
		slog.String("version", h.version),
	)
	return h.handler.Handle(ctx, r)
}

func (h *serviceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *serviceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &serviceHandler{
		handler: h.handler.WithAttrs(attrs),
		service: h.service,
		version: h.version,
	}
}

func (h *serviceHandler) WithGroup(name string) slog.Handler {
	return &serviceHandler{
		handler: h.handler.WithGroup(name),
		service: h.service,
		version: h.version,
	}
}

// ParseLevel maps a config string to a slog level, defaulting to info
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup creates a configured slog.Logger writing JSON records to w.
// A nil w discards everything.
func Setup(service, version string, level slog.Level, w io.Writer) *slog.Logger {
	if w == nil {
		w = io.Discard
	}

	base := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(&serviceHandler{
		handler: base,
		service: service,
		version: version,
	})
}

// Open appends to the named log file, creating it if missing
func Open(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
