package formatter

import (
	"bytes"
	"io"
	"strconv"

	"github.com/runlab/runlog/core"
)

// TextFormatter formats log entries as human-readable text lines:
//
//	2026-03-14 09:30:00 - [svc][INFO]: ready port=8080
//
// The logger-name segment is omitted unless Config.IncludeLoggerName
// is set or the entry carries a logger name.
type TextFormatter struct {
	Config
}

// NewTextFormatter creates a new text formatter
func NewTextFormatter(cfg Config) *TextFormatter {
	if cfg.TimestampFormat == "" {
		cfg.TimestampFormat = DefaultTimestampFormat
	}
	return &TextFormatter{Config: cfg}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *core.Entry) ([]byte, error) {
	buf := getBuffer()
	defer putBuffer(buf)

	f.formatToBuffer(entry, buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result, nil
}

// FormatTo formats an entry and writes it directly to the writer
func (f *TextFormatter) FormatTo(entry *core.Entry, w io.Writer) error {
	buf := getBuffer()

	f.formatToBuffer(entry, buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// pre-formatted level segments, indexed by level - DebugLevel
var levelBrackets = [...]string{
	"[DEBUG]: ",
	"[INFO]: ",
	"[WARNING]: ",
	"[ERROR]: ",
	"[CRITICAL]: ",
}

func (f *TextFormatter) formatToBuffer(entry *core.Entry, buf *bytes.Buffer) {
	// Timestamp - AppendFormat avoids a string allocation
	buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
	buf.WriteString(" - ")

	if f.IncludeLoggerName && entry.Logger != "" {
		buf.WriteByte('[')
		buf.WriteString(entry.Logger)
		buf.WriteByte(']')
	}

	if idx := int(entry.Level - core.DebugLevel); idx >= 0 && idx < len(levelBrackets) {
		buf.WriteString(levelBrackets[idx])
	} else {
		buf.WriteString("[UNKNOWN]: ")
	}

	if f.IncludeCaller && entry.Caller.Defined {
		buf.WriteByte('[')
		buf.WriteString(entry.Caller.ShortFile)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(entry.Caller.Line))
		buf.WriteString("] ")
	}

	buf.WriteString(entry.Message)

	for _, field := range entry.Fields {
		buf.WriteByte(' ')
		buf.WriteString(field.Key)
		buf.WriteByte('=')
		buf.WriteString(field.StringValue())
	}

	buf.WriteByte('\n')
}
