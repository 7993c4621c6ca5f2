// File: entry.go
// Title: Log Entry Structure
// Description: A single log record and the Fields helpers used to attach
//              structured data to it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-19 v0.2.0: Sorted field keys for stable output

package log

import (
	"sort"
	"time"
)

// Entry is one log record
type Entry struct {
	Time      time.Time
	Level     Level
	Message   string
	Logger    string
	RequestID string
	Fields    Fields
	Err       error
	Duration  time.Duration
}

// Fields holds structured key-value data
type Fields map[string]interface{}

// Field creates a single field
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field
func Err(err error) Fields {
	return Fields{"error": err}
}

// Merge returns a new Fields with the pairs of f overridden by other
func (f Fields) Merge(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Keys returns the field names in ascending order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func newEntry(level Level, message string) *Entry {
	return &Entry{
		Time:    time.Now(),
		Level:   level,
		Message: message,
		Fields:  make(Fields),
	}
}
