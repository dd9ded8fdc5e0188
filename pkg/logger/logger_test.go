package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewLogger(&buf, Options{Level: slog.LevelDebug})

	log.Info("fitting vectorizer", "documents", 12, "vocabulary", 100)

	out := buf.String()
	if !strings.Contains(out, "INFO") {
		t.Errorf("expected level tag in output, got %q", out)
	}
	if !strings.Contains(out, "fitting vectorizer") {
		t.Errorf("expected message in output, got %q", out)
	}
	if !strings.Contains(out, "documents=12") {
		t.Errorf("expected attributes in output, got %q", out)
	}
	if strings.Contains(out, "\033[") {
		t.Errorf("expected no ANSI codes for non-file writer, got %q", out)
	}
}

func TestLoggerLevelFilter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewLogger(&buf, Options{Level: slog.LevelWarn})

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") {
		t.Errorf("warn message should pass: %q", out)
	}
}

func TestLoggerWithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := NewLogger(&buf, Options{Level: slog.LevelInfo})

	log.With("corpus", "victorian").Info("loaded")

	out := buf.String()
	if !strings.Contains(out, "corpus=victorian") {
		t.Errorf("expected bound attribute, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
