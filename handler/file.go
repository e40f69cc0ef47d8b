package handler

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/runlab/runlog/core"
	"github.com/runlab/runlog/formatter"
)

// FileHandler appends log entries to a file. The file and its parent
// directories are created on demand, and recreated if a log-clearing
// sweep removes them while the handler is attached.
type FileHandler struct {
	levelGate
	filename  string
	file      *os.File
	formatter formatter.Formatter
	mu        sync.Mutex
}

// FileConfig holds configuration for a file handler
type FileConfig struct {
	// Filename is the path to the log file (required)
	Filename string
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Level is the minimum severity to emit (default: InfoLevel)
	Level core.Level
}

// NewFileHandler creates a new file handler and opens its file in
// append mode, creating parent directories as needed.
func NewFileHandler(cfg FileConfig) (*FileHandler, error) {
	if cfg.Filename == "" {
		return nil, fmt.Errorf("filename is required")
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{IncludeLoggerName: true})
	}

	h := &FileHandler{
		filename:  cfg.Filename,
		formatter: cfg.Formatter,
	}
	h.SetLevel(cfg.Level)

	if err := h.open(); err != nil {
		return nil, err
	}

	return h, nil
}

// Path returns the file path this handler writes to.
func (h *FileHandler) Path() string {
	return h.filename
}

// open creates parent directories and opens the file in append mode.
// Caller must hold h.mu (or be the constructor).
func (h *FileHandler) open() error {
	dir := filepath.Dir(h.filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(h.filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	h.file = file
	return nil
}

// reopenIfMissing re-creates the file when it was removed since the
// last write. Caller must hold h.mu.
func (h *FileHandler) reopenIfMissing() error {
	if h.file != nil {
		if _, err := os.Stat(h.filename); err == nil {
			return nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		// File is gone; the open descriptor points at an unlinked
		// inode, so drop it and start over.
		_ = h.file.Close()
		h.file = nil
	}
	return h.open()
}

// Handle formats and appends an entry if it passes the threshold
func (h *FileHandler) Handle(entry *core.Entry) error {
	if !h.enabled(entry.Level) {
		return nil
	}

	data, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.reopenIfMissing(); err != nil {
		return err
	}

	_, err = h.file.Write(data)
	return err
}

// Close syncs and closes the underlying file.
func (h *FileHandler) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.file == nil {
		return nil
	}

	syncErr := h.file.Sync()
	closeErr := h.file.Close()
	h.file = nil

	if syncErr != nil {
		return syncErr
	}
	return closeErr
}
