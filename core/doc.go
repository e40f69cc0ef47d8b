// Package core defines the shared types used across the runlog library.
//
// It provides the Level type for severity filtering, the Entry type that
// represents a single log event, and the Field type for structured
// key-value pairs that avoid boxing for common value kinds.
//
// Entry objects are pooled via sync.Pool so that the emission path does
// not allocate per message. Callers obtain an Entry with GetEntry and
// must return it with PutEntry once every handler has consumed it. The
// pool pre-allocates the Fields slice with capacity 8, which covers most
// log calls without a slice growth.
package core
