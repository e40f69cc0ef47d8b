package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/runlab/runlog/core"
)

// Formatter defines the interface for log formatters
type Formatter interface {
	// Format formats a log entry into bytes
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface that formatters can implement
// to write directly to a writer without intermediate byte slice allocation.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it directly to the writer
	FormatTo(entry *core.Entry, w io.Writer) error
}

// Config holds common formatter configuration
type Config struct {
	// IncludeLoggerName prepends the emitting logger's name to each entry
	IncludeLoggerName bool
	// IncludeCaller enables caller information in log output
	IncludeCaller bool
	// TimestampFormat specifies the time layout (empty for "2006-01-02 15:04:05")
	TimestampFormat string
}

// DefaultTimestampFormat is the layout used when Config.TimestampFormat is empty.
const DefaultTimestampFormat = "2006-01-02 15:04:05"

var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
