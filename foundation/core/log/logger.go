// File: logger.go
// Title: Core Logger Implementation
// Description: Logger with immutable derivation, level filtering and
//              severity aware logging of coded errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-19 v0.2.0: Dropped async mode and caller lookup, errors via errors.As

package log

import (
	"io"
	"os"
	"sync"
	"time"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Logger writes structured entries. With* methods return a derived logger
// and never modify the receiver.
type Logger struct {
	level     Level
	formatter Formatter
	name      string
	requestID string
	fields    Fields

	// shared by all loggers derived from the same root
	out *syncWriter
}

type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) write(p []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write(p)
}

// Config configures a logger
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// New creates an info-level text logger writing to stderr
func New() *Logger {
	return NewWithConfig(Config{Level: LevelInfo, Format: FormatText})
}

// NewWithConfig creates a logger from cfg. A nil Output means stderr.
func NewWithConfig(cfg Config) *Logger {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	return &Logger{
		level:     cfg.Level,
		formatter: NewFormatter(cfg.Format),
		name:      cfg.Name,
		fields:    make(Fields),
		out:       &syncWriter{w: output},
	}
}

func (l *Logger) clone() *Logger {
	c := *l
	c.fields = l.fields.Merge(nil)
	return &c
}

// WithLevel derives a logger with another minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat derives a logger with another output format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = NewFormatter(format)
	return c
}

// WithOutput derives a logger writing to w
func (l *Logger) WithOutput(w io.Writer) *Logger {
	c := l.clone()
	c.out = &syncWriter{w: w}
	return c
}

// WithName derives a named logger
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField derives a logger that adds key to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields derives a logger that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	c.fields = c.fields.Merge(fields)
	return c
}

// WithRequestID derives a logger bound to a request
func (l *Logger) WithRequestID(requestID string) *Logger {
	c := l.clone()
	c.requestID = requestID
	return c
}

// Level returns the minimum level
func (l *Logger) Level() Level { return l.level }

// IsLevelEnabled reports whether entries at level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.Enabled(l.level)
}

func (l *Logger) Trace(msg string, fields ...Fields) { l.log(LevelTrace, msg, nil, 0, fields) }
func (l *Logger) Debug(msg string, fields ...Fields) { l.log(LevelDebug, msg, nil, 0, fields) }
func (l *Logger) Info(msg string, fields ...Fields)  { l.log(LevelInfo, msg, nil, 0, fields) }
func (l *Logger) Warn(msg string, fields ...Fields)  { l.log(LevelWarn, msg, nil, 0, fields) }
func (l *Logger) Error(msg string, fields ...Fields) { l.log(LevelError, msg, nil, 0, fields) }
func (l *Logger) Audit(msg string, fields ...Fields) { l.log(LevelAudit, msg, nil, 0, fields) }

// Fatal logs at fatal level and exits with status 1
func (l *Logger) Fatal(msg string, fields ...Fields) {
	l.log(LevelFatal, msg, nil, 0, fields)
	os.Exit(1)
}

// ErrorWithErr logs msg at error level with err attached
func (l *Logger) ErrorWithErr(msg string, err error, fields ...Fields) {
	l.log(LevelError, msg, err, 0, fields)
}

// WarnWithErr logs msg at warn level with err attached
func (l *Logger) WarnWithErr(msg string, err error, fields ...Fields) {
	l.log(LevelWarn, msg, err, 0, fields)
}

// LogError logs err at a level derived from its severity. Coded errors add
// their code, operation and details as fields; plain errors log at error.
func (l *Logger) LogError(err error) {
	if err == nil {
		return
	}

	level, fields := errorFields(err)
	msg := err.Error()
	if coded, ok := mdwerror.As(err); ok {
		msg = coded.Message()
	}
	l.log(level, msg, err, 0, []Fields{fields})
}

// errorFields returns the level for err and the error_* fields of a coded
// error. Plain errors map to error level without fields.
func errorFields(err error) (Level, Fields) {
	coded, ok := mdwerror.As(err)
	if !ok {
		return LevelError, nil
	}

	fields := Fields{
		"error_code":     coded.Code().String(),
		"error_severity": coded.Severity().String(),
	}
	if op := coded.Operation(); op != "" {
		fields["error_operation"] = op
	}
	if reqID := coded.RequestID(); reqID != "" {
		fields["error_request_id"] = reqID
	}
	for k, v := range coded.Details() {
		fields["error_"+k] = v
	}

	switch coded.Severity() {
	case mdwerror.SeverityLow:
		return LevelInfo, fields
	case mdwerror.SeverityMedium:
		return LevelWarn, fields
	default:
		return LevelError, fields
	}
}

func (l *Logger) log(level Level, msg string, err error, d time.Duration, fields []Fields) {
	if !level.Enabled(l.level) {
		return
	}

	entry := newEntry(level, msg)
	entry.Logger = l.name
	entry.RequestID = l.requestID
	entry.Err = err
	entry.Duration = d
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}

	line, ferr := l.formatter.Format(entry)
	if ferr != nil {
		return
	}
	l.out.write(line)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the process wide logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process wide logger
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

// Info logs with the default logger
func Info(msg string, fields ...Fields) { GetDefault().Info(msg, fields...) }

// Warn logs with the default logger
func Warn(msg string, fields ...Fields) { GetDefault().Warn(msg, fields...) }

// Error logs with the default logger
func Error(msg string, fields ...Fields) { GetDefault().Error(msg, fields...) }
