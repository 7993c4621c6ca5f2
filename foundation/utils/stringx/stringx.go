// File: stringx.go
// Title: Core String Helpers
// Description: Emptiness predicate and the helpers that bridge nullable
//              text (*string) to the string based API.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-19 v0.2.0: IsEmpty treats whitespace-only text as empty, nullable helpers

package stringx

import (
	"unicode"

	"github.com/msto63/textkit/foundation/core/errors"
)

// IsEmpty returns true if s has zero length or consists only of whitespace.
// Whitespace is defined by unicode.IsSpace. Absent text is represented by
// "" (see OrEmpty) and is therefore empty as well.
func IsEmpty(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotEmpty is the inverse of IsEmpty.
func IsNotEmpty(s string) bool {
	return !IsEmpty(s)
}

// OrEmpty returns the text p points to, or "" when p is nil.
func OrEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// RequireNotNil returns the text p points to. A nil p is a contract
// violation and yields an INVALID_ARGUMENT error naming operation.
func RequireNotNil(p *string, operation string) (string, error) {
	if p == nil {
		return "", errors.InvalidArgument(errors.ModuleStringx, operation, nil, "non-nil text")
	}
	return *p, nil
}
