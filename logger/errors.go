package logger

import "errors"

// Sentinel errors returned by registry and handler operations. Call
// sites wrap them with the offending names, so match with errors.Is.
var (
	// ErrLoggerNotFound is returned when a registry lookup misses.
	ErrLoggerNotFound = errors.New("logger not found")

	// ErrHandlerNotFound is returned when an operation names a handler
	// that is not attached to the instance.
	ErrHandlerNotFound = errors.New("handler not found")

	// ErrDuplicateHandler is returned when attaching a handler under a
	// name the instance already uses.
	ErrDuplicateHandler = errors.New("handler already exists")
)
