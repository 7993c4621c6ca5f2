// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and
//              metadata handling.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-19 v0.2.0: Adjusted to the textkit code set

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
	if len(err.StackTrace()) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(err.StackTrace()[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", err.StackTrace()[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("bad value %d", 42)
	if err.Error() != "bad value 42" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("url is nil").WithCode(CodeInvalidArgument),
			message:  "standardize failed",
			wantMsg:  "standardize failed: url is nil",
			wantCode: CodeInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is should find the wrapped error")
			}
		})
	}
}

func TestWrapInheritsDetails(t *testing.T) {
	inner := New("inner").WithDetail("module", "stringx").WithOperation("stringx.X")
	outer := Wrap(inner, "outer")

	if outer.Details()["module"] != "stringx" {
		t.Errorf("details not inherited: %v", outer.Details())
	}
	if outer.Operation() != "stringx.X" {
		t.Errorf("Operation() = %q", outer.Operation())
	}
}

func TestWrapChainTruncation(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+5; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}

	if depth := chainDepth(err); depth > MaxErrorChainDepth+1 {
		t.Errorf("chain depth = %d, want <= %d", depth, MaxErrorChainDepth+1)
	}
	if !strings.Contains(err.Error(), "chain truncated") {
		t.Errorf("expected truncation marker in %q", err.Error())
	}
}

func TestWithCodeKeepsExplicitSeverity(t *testing.T) {
	err := New("x").WithSeverity(SeverityCritical).WithCode(CodeInvalidArgument)
	if err.Severity() != SeverityCritical {
		t.Errorf("Severity() = %v, want critical", err.Severity())
	}

	auto := New("y").WithCode(CodeInvalidArgument)
	if auto.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want low", auto.Severity())
	}
}

func TestMetadataAccessors(t *testing.T) {
	err := New("failed").
		WithContext("tokenizer").
		WithOperation("service.Tokenize").
		WithRequestID("req-1").
		WithDetails(map[string]interface{}{"a": 1, "b": "two"})

	if err.Context() != "tokenizer" {
		t.Errorf("Context() = %q", err.Context())
	}
	if err.Operation() != "service.Tokenize" {
		t.Errorf("Operation() = %q", err.Operation())
	}
	if err.RequestID() != "req-1" {
		t.Errorf("RequestID() = %q", err.RequestID())
	}

	details := err.Details()
	details["a"] = 99
	if err.Details()["a"] != 1 {
		t.Error("Details() must return a copy")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "mid"), "top")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}
}

func TestString(t *testing.T) {
	err := New("boom").WithCode(CodeInternal).WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()
	for _, want := range []string{"Error: boom", "Code: INTERNAL", "Severity: high", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "boom").
		WithCode(CodeInvalidArgument).
		WithOperation("op")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal() error = %v", jerr)
	}
	if decoded["code"] != "INVALID_ARGUMENT" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "op" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestLookupHelpers(t *testing.T) {
	coded := New("x").WithCode(CodeNotFound)
	wrappedStd := fmt.Errorf("context: %w", coded)
	plain := errors.New("plain")

	if !HasCode(wrappedStd, CodeNotFound) {
		t.Error("HasCode should see through fmt.Errorf wrapping")
	}
	if HasCode(plain, CodeNotFound) {
		t.Error("HasCode(plain) should be false")
	}
	if GetCode(plain) != CodeUnknown {
		t.Errorf("GetCode(plain) = %v", GetCode(plain))
	}
	if GetSeverity(plain) != SeverityMedium {
		t.Errorf("GetSeverity(plain) = %v", GetSeverity(plain))
	}
	if GetSeverity(coded) != SeverityLow {
		t.Errorf("GetSeverity(coded) = %v", GetSeverity(coded))
	}
	if _, ok := As(nil); ok {
		t.Error("As(nil) should be false")
	}
}
