package logger

import (
	"fmt"
	"io"

	"github.com/runlab/runlog/core"
	"github.com/runlab/runlog/formatter"
)

// Format selects the output encoding of a handler.
type Format int

const (
	// FormatText emits human-readable lines (default)
	FormatText Format = iota
	// FormatJSON emits one JSON object per line
	FormatJSON
)

func parseFormat(s string) (Format, error) {
	switch s {
	case "", "text":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("unsupported format %q", s)
	}
}

func (f Format) newFormatter() formatter.Formatter {
	cfg := formatter.Config{IncludeLoggerName: true}
	if f == FormatJSON {
		return formatter.NewJSONFormatter(cfg)
	}
	return formatter.NewTextFormatter(cfg)
}

// ConsoleOptions configures AddConsoleHandler. The zero value means
// INFO threshold, text format, stdout.
type ConsoleOptions struct {
	// Level is the handler's minimum severity (default: InfoLevel)
	Level core.Level
	// Format selects text or JSON output (default: FormatText)
	Format Format
	// Writer overrides the output sink (default: os.Stdout)
	Writer io.Writer
}

// FileOptions configures AddFileHandler. The zero value means INFO
// threshold and text format.
type FileOptions struct {
	// Level is the handler's minimum severity (default: InfoLevel)
	Level core.Level
	// Format selects text or JSON output (default: FormatText)
	Format Format
}
