package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestNewConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "debug", Format: "console", Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("probe completed", String("path", "/tmp/in.mkv"), Int("tracks", 4))
	line := buf.String()
	for _, want := range []string{"INF", "probe completed", "path=/tmp/in.mkv", "tracks=4"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestConsoleHandlerGroupsAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := newConsoleHandler(&buf, slog.LevelInfo, false)
	logger := slog.New(handler).With(String("component", "selector")).WithGroup("job")
	logger.Warn("no subtitle match", String("language", "ja"))
	line := buf.String()
	for _, want := range []string{"WRN", "component=selector", "job.language=ja"} {
		if !strings.Contains(line, want) {
			t.Fatalf("log line %q missing %q", line, want)
		}
	}
}

func TestFromContext(t *testing.T) {
	base := NewNop()
	ctx := WithLogger(context.Background(), base)
	if got := FromContext(ctx, nil); got != base {
		t.Fatal("expected context logger")
	}
	if got := FromContext(context.Background(), base); got != base {
		t.Fatal("expected fallback logger")
	}
	if got := FromContext(context.Background(), nil); got == nil {
		t.Fatal("expected nop logger, got nil")
	}
}
