package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// DefaultBaseDir is the directory log files land in when a registry is
// created without an explicit base directory.
const DefaultBaseDir = "data/logs"

// Registry owns a set of named logger instances and the run ID they
// share. All state is internally synchronized; a single Registry can
// be used from any number of goroutines.
//
// The run ID qualifies every file handler path created through this
// registry, so all log files of one process run end up under a common
// run directory. It defaults to a timestamp with a random suffix and
// is recomposed by SetRunName.
type Registry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
	order   []string
	baseDir string
	runID   string
}

// RegistryConfig holds configuration for a registry
type RegistryConfig struct {
	// BaseDir is the root directory for log files (default: "data/logs")
	BaseDir string
}

// NewRegistry creates an empty registry.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.BaseDir == "" {
		cfg.BaseDir = DefaultBaseDir
	}
	return &Registry{
		loggers: make(map[string]*Logger),
		baseDir: cfg.BaseDir,
		runID:   defaultRunID(),
	}
}

// SetRunName recomposes the registry's run ID from the current time
// and the given name. Intended to be called once, before any file
// handlers are attached; calling it again overwrites the previous run
// ID, and file handlers created earlier keep writing to their old
// paths.
func (r *Registry) SetRunName(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.runID = composeRunID(name)
}

// RunID returns the registry's current run ID.
func (r *Registry) RunID() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.runID
}

// BaseDir returns the root directory for this registry's log files.
func (r *Registry) BaseDir() string {
	return r.baseDir
}

// Logger returns the instance registered under name, creating and
// registering it first if the name is new. Constructing twice with the
// same name therefore yields the same instance.
func (r *Registry) Logger(name string) *Logger {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.loggers[name]; ok {
		return l
	}

	l := &Logger{
		name:     name,
		registry: r,
		handlers: make(map[string]*sharedHandler),
	}
	r.loggers[name] = l
	r.order = append(r.order, name)
	return l
}

// Lookup returns the instance registered under name, or
// ErrLoggerNotFound if the name was never registered.
func (r *Registry) Lookup(name string) (*Logger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.loggers[name]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrLoggerNotFound)
	}
	return l, nil
}

// Names returns all registered logger names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}

// Remove detaches all of the named instance's handlers and drops it
// from the registry. Handlers shared with other instances stay open
// for them. Removing an unknown name reports ErrLoggerNotFound.
func (r *Registry) Remove(name string) error {
	r.mu.Lock()
	l, ok := r.loggers[name]
	if ok {
		delete(r.loggers, name)
		for i, n := range r.order {
			if n == name {
				r.order = append(r.order[:i], r.order[i+1:]...)
				break
			}
		}
	}
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("remove %q: %w", name, ErrLoggerNotFound)
	}
	return l.Close()
}

// Close detaches and releases the handlers of every registered
// instance. The registry is empty afterwards and can be reused.
func (r *Registry) Close() error {
	r.mu.Lock()
	loggers := make([]*Logger, 0, len(r.loggers))
	for _, l := range r.loggers {
		loggers = append(loggers, l)
	}
	r.loggers = make(map[string]*Logger)
	r.order = nil
	r.mu.Unlock()

	var firstErr error
	for _, l := range loggers {
		if err := l.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// handlerFilePath builds the target path for a file handler:
// <baseDir>/<date>/<runID>/<loggerName>_<handlerName>.log. Everything
// that identifies the stream is in the path, so two loggers using the
// same handler name never collide.
func (r *Registry) handlerFilePath(loggerName, handlerName string) string {
	r.mu.RLock()
	runID := r.runID
	r.mu.RUnlock()

	filename := loggerName + "_" + handlerName + ".log"
	return filepath.Join(r.baseDir, datestamp(), runID, filename)
}

// clearTodaysLogs removes the date directory for the current day.
func (r *Registry) clearTodaysLogs() error {
	return os.RemoveAll(filepath.Join(r.baseDir, datestamp()))
}

// clearAllLogs removes everything under the base directory, keeping
// the base directory itself.
func (r *Registry) clearAllLogs() error {
	entries, err := os.ReadDir(r.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var firstErr error
	for _, entry := range entries {
		if err := os.RemoveAll(filepath.Join(r.baseDir, entry.Name())); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
