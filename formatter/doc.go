// Package formatter renders log entries into bytes.
//
// TextFormatter produces human-readable lines in the
// "timestamp - [logger][LEVEL]: message key=value" shape; JSONFormatter
// produces one JSON object per line. Both implement WriterFormatter so
// handlers can write a formatted entry straight to their sink without
// an intermediate byte slice.
//
// Formatting goes through a shared bytes.Buffer pool; buffers above
// 64 KiB are not returned to the pool.
package formatter
