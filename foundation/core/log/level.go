// File: level.go
// Title: Log Level Definitions
// Description: Log levels used to filter output, and their parsing from
//              configuration strings.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-19 v0.2.0: Parse errors are coded errors

package log

import (
	"strings"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Level represents the importance of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelAudit is written regardless of the minimum level
	LevelAudit
)

var levelNames = [...]string{"trace", "debug", "info", "warn", "error", "fatal", "audit"}

// String returns the lower-case name of the level
func (l Level) String() string {
	if l < LevelTrace || l > LevelAudit {
		return "unknown"
	}
	return levelNames[l]
}

// Short returns the three letter upper-case tag used by text output
func (l Level) Short() string {
	if l < LevelTrace || l > LevelAudit {
		return "???"
	}
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "AUD"
	}
}

// Enabled reports whether a message at l passes the minimum level min
func (l Level) Enabled(min Level) bool {
	return l == LevelAudit || l >= min
}

// ParseLevel parses a level name. Short tags ("dbg") and "warning" are accepted.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	}
	return LevelInfo, mdwerror.Newf("invalid log level: %q", s).
		WithCode(mdwerror.CodeInvalidArgument).
		WithDetail("input", s)
}
