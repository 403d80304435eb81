package utils

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

// NewLogger builds the process logger. Format "json" is meant for deployed
// environments, anything else falls back to the human-readable dev handler.
func NewLogger(format string) *slog.Logger {
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(os.Stdout, nil))
	default:
		return slog.New(NewLocalDevHandler(os.Stdout))
	}
}

// LocalDevHandler prints "time level message" ahead of the record attributes,
// which a plain TextHandler renders on the rest of the line.
type LocalDevHandler struct {
	attrHandler slog.Handler

	mu *sync.Mutex
	w  io.Writer
}

func NewLocalDevHandler(w io.Writer) *LocalDevHandler {
	opts := slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey || a.Key == slog.MessageKey {
				return slog.Attr{}
			}
			return a
		},
	}
	return &LocalDevHandler{
		attrHandler: slog.NewTextHandler(w, &opts),
		mu:          &sync.Mutex{},
		w:           w,
	}
}

func (h *LocalDevHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.attrHandler.Enabled(ctx, level)
}

func (h *LocalDevHandler) Handle(ctx context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.WriteString(r.Time.Format(time.RFC3339))
	buf.WriteString(" ")
	buf.WriteString(colorizeLevel(r.Level))
	buf.WriteString(" ")
	buf.WriteString(r.Message)
	buf.WriteString(" ")

	h.mu.Lock()
	defer h.mu.Unlock()
	if _, err := h.w.Write(buf.Bytes()); err != nil {
		return err
	}
	return h.attrHandler.Handle(ctx, r)
}

func (h *LocalDevHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &LocalDevHandler{attrHandler: h.attrHandler.WithAttrs(attrs), mu: h.mu, w: h.w}
}

func (h *LocalDevHandler) WithGroup(name string) slog.Handler {
	return &LocalDevHandler{attrHandler: h.attrHandler.WithGroup(name), mu: h.mu, w: h.w}
}

func colorizeLevel(level slog.Level) string {
	var code string
	switch {
	case level < slog.LevelInfo:
		code = "35" // magenta
	case level < slog.LevelWarn:
		code = "34" // blue
	case level < slog.LevelError:
		code = "33" // yellow
	default:
		code = "31" // red
	}
	return "\x1b[" + code + "m" + level.String() + "\x1b[0m"
}
