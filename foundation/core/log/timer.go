// File: timer.go
// Title: Operation Timer
// Description: Measures an operation and logs its duration on completion.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with performance timing
// - 2026-10-19 v0.2.0: Duration carried on the entry, single stop

package log

import (
	"sync/atomic"
	"time"
)

// Timer measures one operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	stopped   atomic.Bool
}

// StartTimer starts a timer that logs at debug level when stopped
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{logger: l, operation: operation, start: time.Now(), level: LevelDebug}
}

// WithLevel sets the level of the completion entry
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs "<operation> completed" with the elapsed time. Only the first
// call logs; later calls return 0.
func (t *Timer) Stop(fields ...Fields) time.Duration {
	return t.finish(nil, fields)
}

// StopWithError logs "<operation> failed" with err attached. The level and
// error_* fields follow LogError, so a coded error needs no second entry.
func (t *Timer) StopWithError(err error, fields ...Fields) time.Duration {
	return t.finish(err, fields)
}

func (t *Timer) finish(err error, fields []Fields) time.Duration {
	if !t.stopped.CompareAndSwap(false, true) {
		return 0
	}
	elapsed := t.Elapsed()

	fields = append(fields, Field("operation", t.operation))
	if err != nil {
		level, errFields := errorFields(err)
		t.logger.log(level, t.operation+" failed", err, elapsed, append(fields, errFields))
	} else {
		t.logger.log(t.level, t.operation+" completed", nil, elapsed, fields)
	}
	return elapsed
}
