package logger

import "sync"

var (
	defaultRegistry = NewRegistry(RegistryConfig{})
	defaultMu       sync.RWMutex
)

// Default returns the package-level registry. Programs that don't need
// test isolation or multiple log trees can use it directly through the
// package functions below.
func Default() *Registry {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultRegistry
}

// SetDefault replaces the package-level registry.
func SetDefault(r *Registry) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRegistry = r
}

// Package-level convenience functions delegating to the default registry

// SetRunName sets the run name on the default registry
func SetRunName(name string) {
	Default().SetRunName(name)
}

// RunID returns the default registry's run ID
func RunID() string {
	return Default().RunID()
}

// New returns the logger registered under name in the default
// registry, creating it if needed
func New(name string) *Logger {
	return Default().Logger(name)
}

// Lookup returns the logger registered under name in the default registry
func Lookup(name string) (*Logger, error) {
	return Default().Lookup(name)
}

// Names returns all logger names registered in the default registry
func Names() []string {
	return Default().Names()
}
