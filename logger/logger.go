package logger

import (
	"fmt"
	"sort"
	"sync"

	"github.com/runlab/runlog/core"
	"github.com/runlab/runlog/handler"
)

// Logger is a named logging instance owned by a Registry. It routes
// every emitted message to all of its attached handlers; each handler
// applies its own severity threshold. Handler attachment, removal, and
// emission are safe for concurrent use.
//
// A Logger carries no level gate of its own — filtering is entirely
// per handler, so the same message can land in a verbose debug file
// and be withheld from a terse console at the same time.
type Logger struct {
	name     string
	registry *Registry
	mu       sync.RWMutex
	handlers map[string]*sharedHandler
}

// Name returns the name this instance is registered under.
func (l *Logger) Name() string {
	return l.name
}

// attach stores a shared handler under name, rejecting duplicates.
func (l *Logger) attach(name string, sh *sharedHandler) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.handlers[name]; ok {
		return fmt.Errorf("logger %q: handler %q: %w", l.name, name, ErrDuplicateHandler)
	}
	l.handlers[name] = sh
	return nil
}

// AddConsoleHandler creates and attaches a console handler under the
// given name. Attaching under a name this instance already uses
// returns ErrDuplicateHandler.
func (l *Logger) AddConsoleHandler(name string, opts ConsoleOptions) error {
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    opts.Writer,
		Formatter: opts.Format.newFormatter(),
		Level:     opts.Level,
	})

	if err := l.attach(name, newSharedHandler(h)); err != nil {
		_ = h.Close()
		return err
	}
	return nil
}

// AddFileHandler creates and attaches a file handler under the given
// name ("main" when empty). The file path combines the registry's base
// directory, today's date, the run ID, this logger's name, and the
// handler name; parent directories are created as needed.
func (l *Logger) AddFileHandler(name string, opts FileOptions) error {
	if name == "" {
		name = "main"
	}

	path := l.registry.handlerFilePath(l.name, name)
	h, err := handler.NewFileHandler(handler.FileConfig{
		Filename:  path,
		Formatter: opts.Format.newFormatter(),
		Level:     opts.Level,
	})
	if err != nil {
		return fmt.Errorf("logger %q: add file handler %q: %w", l.name, name, err)
	}

	if err := l.attach(name, newSharedHandler(h)); err != nil {
		_ = h.Close()
		return err
	}
	return nil
}

// JoinHandler attaches the handler registered as handlerName on the
// instance named loggerName to this instance as well. Both instances
// then share the same underlying sink: messages from either end up in
// the same file or stream. The handler stays open until the last
// referencing instance removes it.
func (l *Logger) JoinHandler(loggerName, handlerName string) error {
	other, err := l.registry.Lookup(loggerName)
	if err != nil {
		return fmt.Errorf("join handler %q: %w", handlerName, err)
	}

	other.mu.RLock()
	sh, ok := other.handlers[handlerName]
	other.mu.RUnlock()
	if !ok {
		return fmt.Errorf("join from logger %q: handler %q: %w", loggerName, handlerName, ErrHandlerNotFound)
	}

	sh.retain()
	if err := l.attach(handlerName, sh); err != nil {
		_ = sh.release()
		return err
	}
	return nil
}

// RemoveHandler detaches the named handler from this instance only.
// Instances sharing the handler via JoinHandler keep emitting through
// it; the underlying sink closes once no instance references it.
func (l *Logger) RemoveHandler(name string) error {
	l.mu.Lock()
	sh, ok := l.handlers[name]
	if ok {
		delete(l.handlers, name)
	}
	l.mu.Unlock()

	if !ok {
		return fmt.Errorf("logger %q: remove handler %q: %w", l.name, name, ErrHandlerNotFound)
	}
	return sh.release()
}

// SetHandlerLevel changes the minimum severity of the named handler.
func (l *Logger) SetHandlerLevel(name string, level core.Level) error {
	l.mu.RLock()
	sh, ok := l.handlers[name]
	l.mu.RUnlock()

	if !ok {
		return fmt.Errorf("logger %q: set level on handler %q: %w", l.name, name, ErrHandlerNotFound)
	}
	sh.h.SetLevel(level)
	return nil
}

// Handlers returns the names of all attached handlers, sorted.
func (l *Logger) Handlers() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	names := make([]string, 0, len(l.handlers))
	for name := range l.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// emit stamps a pooled entry and offers it to every attached handler.
// Handlers are synchronous, so the entry can be recycled as soon as
// the fan-out returns.
func (l *Logger) emit(level core.Level, msg string, fields []core.Field) {
	l.mu.RLock()
	if len(l.handlers) == 0 {
		l.mu.RUnlock()
		return
	}

	entry := core.GetEntry()
	entry.Level = level
	entry.Logger = l.name
	entry.Message = msg
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}

	for _, sh := range l.handlers {
		_ = sh.h.Handle(entry)
	}
	l.mu.RUnlock()

	core.PutEntry(entry)
}

// Debug logs a message at DEBUG level
func (l *Logger) Debug(msg string, fields ...core.Field) {
	l.emit(core.DebugLevel, msg, fields)
}

// Info logs a message at INFO level
func (l *Logger) Info(msg string, fields ...core.Field) {
	l.emit(core.InfoLevel, msg, fields)
}

// Warning logs a message at WARNING level
func (l *Logger) Warning(msg string, fields ...core.Field) {
	l.emit(core.WarningLevel, msg, fields)
}

// Error logs a message at ERROR level
func (l *Logger) Error(msg string, fields ...core.Field) {
	l.emit(core.ErrorLevel, msg, fields)
}

// Critical logs a message at CRITICAL level
func (l *Logger) Critical(msg string, fields ...core.Field) {
	l.emit(core.CriticalLevel, msg, fields)
}

// Debugf logs a formatted message at DEBUG level
func (l *Logger) Debugf(format string, args ...interface{}) {
	l.emit(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs a formatted message at INFO level
func (l *Logger) Infof(format string, args ...interface{}) {
	l.emit(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warningf logs a formatted message at WARNING level
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.emit(core.WarningLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs a formatted message at ERROR level
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.emit(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Criticalf logs a formatted message at CRITICAL level
func (l *Logger) Criticalf(format string, args ...interface{}) {
	l.emit(core.CriticalLevel, fmt.Sprintf(format, args...), nil)
}

// ClearTodaysLogs removes the current day's log directory under the
// registry's base directory. Attached file handlers recreate their
// files on the next write, so logging keeps working after a clear.
func (l *Logger) ClearTodaysLogs() error {
	return l.registry.clearTodaysLogs()
}

// ClearAllLogs removes every log file and run directory under the
// registry's base directory, regardless of date. The same post-clear
// guarantee as ClearTodaysLogs applies.
func (l *Logger) ClearAllLogs() error {
	return l.registry.clearAllLogs()
}

// Close detaches and releases all of this instance's handlers. Shared
// handlers stay open for the other instances referencing them.
func (l *Logger) Close() error {
	l.mu.Lock()
	handlers := l.handlers
	l.handlers = make(map[string]*sharedHandler)
	l.mu.Unlock()

	var firstErr error
	for _, sh := range handlers {
		if err := sh.release(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
