package core

import "strings"

// Level represents the severity of a log entry. Levels are ordered:
// a handler with threshold L emits every entry at level >= L.
type Level int8

// InfoLevel is the zero value, so an unset Level in a config struct
// means INFO.
const (
	// DebugLevel for detailed diagnostic output
	DebugLevel Level = iota - 1
	// InfoLevel for general informational messages (default)
	InfoLevel
	// WarningLevel for conditions worth flagging but not failures
	WarningLevel
	// ErrorLevel for failures the application recovered from
	ErrorLevel
	// CriticalLevel for failures the application cannot recover from
	CriticalLevel
)

// String returns the canonical name of the level.
func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "DEBUG"
	case InfoLevel:
		return "INFO"
	case WarningLevel:
		return "WARNING"
	case ErrorLevel:
		return "ERROR"
	case CriticalLevel:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel converts a level name to a Level. Matching is
// case-insensitive and "WARN" is accepted as an alias for WARNING.
// Unknown names report ok=false and InfoLevel.
func ParseLevel(s string) (Level, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return DebugLevel, true
	case "INFO":
		return InfoLevel, true
	case "WARN", "WARNING":
		return WarningLevel, true
	case "ERROR":
		return ErrorLevel, true
	case "CRITICAL":
		return CriticalLevel, true
	default:
		return InfoLevel, false
	}
}
