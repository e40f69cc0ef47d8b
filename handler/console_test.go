package handler

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/runlab/runlog/core"
	"github.com/runlab/runlog/formatter"
)

func testEntry(level core.Level, msg string) *core.Entry {
	return &core.Entry{
		Time:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		Level:   level,
		Logger:  "test",
		Message: msg,
	}
}

func TestConsoleHandler_Threshold(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Level:  core.WarningLevel,
	})

	if err := h.Handle(testEntry(core.InfoLevel, "below threshold")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Info entry emitted despite Warning threshold: %s", buf.String())
	}

	if err := h.Handle(testEntry(core.WarningLevel, "at threshold")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !strings.Contains(buf.String(), "at threshold") {
		t.Errorf("Warning entry not emitted: %s", buf.String())
	}

	buf.Reset()
	if err := h.Handle(testEntry(core.CriticalLevel, "above threshold")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !strings.Contains(buf.String(), "above threshold") {
		t.Errorf("Critical entry not emitted: %s", buf.String())
	}
}

func TestConsoleHandler_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Level:  core.ErrorLevel,
	})

	h.Handle(testEntry(core.InfoLevel, "dropped"))
	if buf.Len() != 0 {
		t.Fatal("Info entry emitted before SetLevel")
	}

	h.SetLevel(core.DebugLevel)
	if h.Level() != core.DebugLevel {
		t.Errorf("Level() = %v after SetLevel(Debug)", h.Level())
	}

	h.Handle(testEntry(core.DebugLevel, "now visible"))
	if !strings.Contains(buf.String(), "now visible") {
		t.Errorf("Debug entry not emitted after lowering threshold: %s", buf.String())
	}
}

func TestConsoleHandler_ColorNeverOnBuffer(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})

	// A bytes.Buffer is not a terminal, so ColorAuto must not emit ANSI codes
	h.Handle(testEntry(core.ErrorLevel, "plain"))
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("ANSI escape written to non-terminal writer: %q", buf.String())
	}
}

func TestConsoleHandler_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Color:  ColorAlways,
	})

	h.Handle(testEntry(core.ErrorLevel, "red"))
	out := buf.String()
	if !strings.Contains(out, "\x1b[31m") {
		t.Errorf("Expected red escape for error entry, got %q", out)
	}
	if !strings.Contains(out, "\x1b[0m") {
		t.Errorf("Expected reset escape, got %q", out)
	}
}

func TestConsoleHandler_JSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
	})

	h.Handle(testEntry(core.InfoLevel, "structured"))
	if !strings.Contains(buf.String(), `"message":"structured"`) {
		t.Errorf("Expected JSON output, got %q", buf.String())
	}
}
