package handler

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"

	"github.com/runlab/runlog/core"
	"github.com/runlab/runlog/formatter"
)

// ColorMode controls ANSI coloring of console output.
type ColorMode int

const (
	// ColorAuto enables color only when the writer is a terminal (default)
	ColorAuto ColorMode = iota
	// ColorAlways forces color on
	ColorAlways
	// ColorNever forces color off
	ColorNever
)

// ConsoleHandler writes log entries to a terminal or arbitrary writer.
type ConsoleHandler struct {
	levelGate
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	color           bool
	mu              sync.Mutex
}

// ConsoleConfig holds configuration for a console handler
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the minimum severity to emit (default: InfoLevel)
	Level core.Level
	// Color controls ANSI level coloring (default: ColorAuto)
	Color ColorMode
}

// NewConsoleHandler creates a new console handler
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{IncludeLoggerName: true})
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		color:     resolveColor(cfg.Color, cfg.Writer),
	}
	h.SetLevel(cfg.Level)

	// Cache WriterFormatter for the no-copy path
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)

	return h
}

func resolveColor(mode ColorMode, w io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ANSI sequences per level, indexed by level - DebugLevel
var levelColors = [...]string{
	"\x1b[2m",    // debug: dim
	"",           // info: terminal default
	"\x1b[33m",   // warning: yellow
	"\x1b[31m",   // error: red
	"\x1b[1;31m", // critical: bold red
}

const colorReset = "\x1b[0m"

// Handle formats and writes an entry if it passes the threshold
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if !h.enabled(entry.Level) {
		return nil
	}

	color := ""
	if idx := int(entry.Level - core.DebugLevel); h.color && idx >= 0 && idx < len(levelColors) {
		color = levelColors[idx]
	}

	if h.writerFormatter != nil && color == "" {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, h.writer)
		h.mu.Unlock()
		return err
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if color != "" {
		if _, err := io.WriteString(h.writer, color); err != nil {
			return err
		}
		// Reset before the trailing newline so the next line starts clean
		if n := len(data); n > 0 && data[n-1] == '\n' {
			data = data[:n-1]
			if _, err := h.writer.Write(data); err != nil {
				return err
			}
			_, err := io.WriteString(h.writer, colorReset+"\n")
			return err
		}
		if _, err := h.writer.Write(data); err != nil {
			return err
		}
		_, err := io.WriteString(h.writer, colorReset)
		return err
	}

	_, err = h.writer.Write(data)
	return err
}

// Close is a no-op for console handlers; the writer is not owned.
func (h *ConsoleHandler) Close() error {
	return nil
}
