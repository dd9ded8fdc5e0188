// Package logger provides the slog loggers used across the stylo project,
// with ANSI-colored output when writing to a terminal.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// Options configures logger construction.
type Options struct {
	// Level is the minimum level emitted.
	Level slog.Leveler
	// NoColor disables ANSI colors even on a terminal.
	NoColor bool
}

// NewDefaultLogger returns a logger writing to stderr at the given level.
// Colors are enabled when stderr is a terminal.
func NewDefaultLogger(level slog.Level) *slog.Logger {
	return NewLogger(os.Stderr, Options{Level: level})
}

// NewLogger returns a logger writing to w.
func NewLogger(w io.Writer, opts Options) *slog.Logger {
	color := !opts.NoColor
	if f, ok := w.(*os.File); ok {
		color = color && isatty.IsTerminal(f.Fd())
	} else {
		color = false
	}
	return slog.New(&handler{w: w, level: opts.Level, color: color})
}

// ParseLevel maps a config string to a slog level, defaulting to info.
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

// handler is a compact text handler: timestamp, colored level, message,
// key=value attributes.
type handler struct {
	w     io.Writer
	level slog.Leveler
	color bool
	attrs []slog.Attr
	mu    sync.Mutex
}

func (h *handler) Enabled(_ context.Context, level slog.Level) bool {
	min := slog.LevelInfo
	if h.level != nil {
		min = h.level.Level()
	}
	return level >= min
}

func (h *handler) Handle(_ context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Time.Format(time.DateTime))
	b.WriteByte(' ')
	b.WriteString(h.levelTag(r.Level))
	b.WriteByte(' ')
	b.WriteString(r.Message)

	for _, attr := range h.attrs {
		writeAttr(&b, attr)
	}
	r.Attrs(func(attr slog.Attr) bool {
		writeAttr(&b, attr)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, b.String())
	return err
}

func (h *handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := &handler{w: h.w, level: h.level, color: h.color}
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return clone
}

func (h *handler) WithGroup(name string) slog.Handler {
	// Groups are flattened; the project logs flat key=value pairs only.
	return h
}

func (h *handler) levelTag(level slog.Level) string {
	tag := level.String()
	if !h.color {
		return tag
	}
	switch {
	case level >= slog.LevelError:
		return ansiRed + tag + ansiReset
	case level >= slog.LevelWarn:
		return ansiYellow + tag + ansiReset
	case level >= slog.LevelInfo:
		return ansiGreen + tag + ansiReset
	default:
		return ansiCyan + tag + ansiReset
	}
}

func writeAttr(b *strings.Builder, attr slog.Attr) {
	b.WriteByte(' ')
	b.WriteString(attr.Key)
	b.WriteByte('=')
	fmt.Fprintf(b, "%v", attr.Value.Any())
}
