// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level names, filtering and parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: Coded parse errors

package log

import (
	"testing"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		name  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{LevelAudit, "audit", "AUD"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.name {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.name)
		}
		if got := tt.level.Short(); got != tt.short {
			t.Errorf("Level(%d).Short() = %q, want %q", tt.level, got, tt.short)
		}
	}
}

func TestLevelEnabled(t *testing.T) {
	if LevelDebug.Enabled(LevelInfo) {
		t.Error("debug should be filtered at info")
	}
	if !LevelWarn.Enabled(LevelInfo) {
		t.Error("warn should pass at info")
	}
	if !LevelAudit.Enabled(LevelFatal) {
		t.Error("audit should always pass")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" WARNING ", LevelWarn, false},
		{"err", LevelError, false},
		{"", LevelInfo, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
		if err != nil && !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
			t.Errorf("ParseLevel(%q) code = %v", tt.input, mdwerror.GetCode(err))
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
