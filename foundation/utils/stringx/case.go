// File: case.go
// Title: First-Character Case Conversion
// Description: UpperFirst / LowerFirst with an explicit, locale independent
//              case rule.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with case conversion utilities
// - 2026-10-19 v0.2.0: Replaced naming-convention converters with first-character helpers

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/msto63/textkit/foundation/core/errors"
)

// CaseRule selects how a single rune changes case.
type CaseRule int

const (
	// CaseUnicode applies Unicode simple case mapping (unicode.ToUpper/ToLower).
	CaseUnicode CaseRule = iota

	// CaseASCII changes only a-z and A-Z.
	CaseASCII
)

// String returns the configuration name of the rule
func (r CaseRule) String() string {
	switch r {
	case CaseUnicode:
		return "unicode"
	case CaseASCII:
		return "ascii"
	default:
		return "unknown"
	}
}

// ParseCaseRule parses "unicode" or "ascii", ignoring case and surrounding space.
func ParseCaseRule(name string) (CaseRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unicode":
		return CaseUnicode, nil
	case "ascii":
		return CaseASCII, nil
	default:
		return CaseUnicode, errors.InvalidArgument(errors.ModuleStringx, "ParseCaseRule", name, `"unicode" or "ascii"`)
	}
}

func (r CaseRule) upper(c rune) rune {
	if r == CaseASCII {
		if 'a' <= c && c <= 'z' {
			return c - ('a' - 'A')
		}
		return c
	}
	return unicode.ToUpper(c)
}

func (r CaseRule) lower(c rune) rune {
	if r == CaseASCII {
		if 'A' <= c && c <= 'Z' {
			return c + ('a' - 'A')
		}
		return c
	}
	return unicode.ToLower(c)
}

// UpperFirst upper-cases the first rune of s and leaves the rest unchanged.
// Returns "" when IsEmpty(s). Example: "userName" -> "UserName".
func UpperFirst(s string) string {
	return UpperFirstWith(s, CaseUnicode)
}

// LowerFirst lower-cases the first rune of s and leaves the rest unchanged.
// Returns "" when IsEmpty(s). Example: "UserName" -> "userName".
func LowerFirst(s string) string {
	return LowerFirstWith(s, CaseUnicode)
}

// UpperFirstWith is UpperFirst using the given case rule.
func UpperFirstWith(s string, rule CaseRule) string {
	return mapFirst(s, rule.upper)
}

// LowerFirstWith is LowerFirst using the given case rule.
func LowerFirstWith(s string, rule CaseRule) string {
	return mapFirst(s, rule.lower)
}

func mapFirst(s string, fn func(rune) rune) string {
	if IsEmpty(s) {
		return ""
	}

	first, size := utf8.DecodeRuneInString(s)
	if first == utf8.RuneError && size <= 1 {
		// invalid UTF-8 leading byte: nothing to map
		return s
	}

	mapped := fn(first)
	if mapped == first {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + utf8.UTFMax)
	b.WriteRune(mapped)
	b.WriteString(s[size:])
	return b.String()
}
