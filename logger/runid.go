package logger

import (
	"time"

	"github.com/google/uuid"
)

// datestamp returns the current date as YYYY-MM-DD. Log files are
// grouped under a directory with this name, which is what scopes
// ClearTodaysLogs.
func datestamp() string {
	return time.Now().Format("2006-01-02")
}

// datetimeStamp returns YYYY-MM-DD_HHMMSS for run ID composition.
func datetimeStamp() string {
	return time.Now().Format("2006-01-02_150405")
}

// composeRunID builds the run ID all loggers of a registry share:
// the datetime stamp qualified by the caller-supplied run name.
func composeRunID(runName string) string {
	return datetimeStamp() + "_" + runName
}

// defaultRunID builds the run ID used when no run name was set. A
// short random suffix keeps two runs started within the same second
// from landing in the same run directory.
func defaultRunID() string {
	return datetimeStamp() + "_" + uuid.NewString()[:8]
}
