package logger

import "github.com/runlab/runlog/core"

// Level Re-export type and constants for convenience
type Level = core.Level

const (
	DebugLevel    = core.DebugLevel
	InfoLevel     = core.InfoLevel
	WarningLevel  = core.WarningLevel
	ErrorLevel    = core.ErrorLevel
	CriticalLevel = core.CriticalLevel
)

// ParseLevel converts a level name to a Level, accepting the "WARN"
// alias. Unknown names report ok=false and InfoLevel.
func ParseLevel(s string) (Level, bool) {
	return core.ParseLevel(s)
}
