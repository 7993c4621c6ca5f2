// File: case_test.go
// Title: Unit Tests for First-Character Case Conversion
// Description: Tests for UpperFirst, LowerFirst and the case rules.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-19 v0.2.0: First-character helpers and case rules

package stringx

import (
	"testing"
	"unicode"
	"unicode/utf8"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

func TestUpperFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"camel case", "userName", "UserName"},
		{"already upper", "UserName", "UserName"},
		{"single char", "a", "A"},
		{"digit first", "1abc", "1abc"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"leading space kept", " abc", " abc"},
		{"umlaut", "ärger", "Ärger"},
		{"greek", "αβγ", "Αβγ"},
		{"cyrillic", "привет", "Привет"},
		{"rest untouched", "aBC def", "ABC def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpperFirst(tt.input); got != tt.expected {
				t.Errorf("UpperFirst(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"pascal case", "UserName", "userName"},
		{"already lower", "userName", "userName"},
		{"acronym", "URL", "uRL"},
		{"single char", "A", "a"},
		{"empty", "", ""},
		{"whitespace only", "\t\n", ""},
		{"umlaut", "Ärger", "ärger"},
		{"rest untouched", "ABC DEF", "aBC DEF"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LowerFirst(tt.input); got != tt.expected {
				t.Errorf("LowerFirst(%q) = %q; want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestCaseRules(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rule  CaseRule
		upper string
		lower string
	}{
		{"ascii letters unicode", "aB", CaseUnicode, "AB", "aB"},
		{"ascii letters ascii", "aB", CaseASCII, "AB", "aB"},
		{"accented unicode", "éA", CaseUnicode, "ÉA", "éA"},
		{"accented ascii", "éA", CaseASCII, "éA", "éA"},
		{"dotted i unicode", "İx", CaseUnicode, "İx", "ix"},
		{"dotless i ascii", "ıx", CaseASCII, "ıx", "ıx"},
		{"unknown rule falls back", "ab", CaseRule(42), "Ab", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UpperFirstWith(tt.input, tt.rule); got != tt.upper {
				t.Errorf("UpperFirstWith(%q, %v) = %q; want %q", tt.input, tt.rule, got, tt.upper)
			}
			if got := LowerFirstWith(tt.input, tt.rule); got != tt.lower {
				t.Errorf("LowerFirstWith(%q, %v) = %q; want %q", tt.input, tt.rule, got, tt.lower)
			}
		})
	}
}

func TestCaseConversionPreservesRest(t *testing.T) {
	inputs := []string{"hello world", "Hello World", "éclair", "x", "ÄÖÜ"}
	for _, s := range inputs {
		_, size := utf8.DecodeRuneInString(s)
		for _, got := range []string{UpperFirst(s), LowerFirst(s)} {
			_, gotSize := utf8.DecodeRuneInString(got)
			if got[gotSize:] != s[size:] {
				t.Errorf("conversion of %q changed the tail: %q", s, got)
			}
		}
	}
}

func TestUpperFirstOfLowerFirst(t *testing.T) {
	tests := []struct {
		name  string
		input string
		rule  CaseRule
		want  string
	}{
		{"ascii word", "hello", CaseUnicode, "Hello"},
		{"already upper", "Hello World", CaseUnicode, "Hello World"},
		{"accented", "éclair", CaseUnicode, "Éclair"},
		{"accented upper", "ÉCLAIR", CaseUnicode, "ÉCLAIR"},
		{"digraph lower", "ǆx", CaseUnicode, "Ǆx"},
		{"digraph title", "ǅungla", CaseUnicode, "Ǆungla"},
		{"dotless i", "ıx", CaseUnicode, "Ix"},
		{"single rune", "z", CaseUnicode, "Z"},
		{"ascii rule word", "hello", CaseASCII, "Hello"},
		{"ascii rule accented", "éclair", CaseASCII, "éclair"},
		{"ascii rule upper", "ABC", CaseASCII, "ABC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := UpperFirstWith(LowerFirstWith(tt.input, tt.rule), tt.rule)
			if got != tt.want {
				t.Errorf("UpperFirstWith(LowerFirstWith(%q)) = %q; want %q", tt.input, got, tt.want)
			}

			first, size := utf8.DecodeRuneInString(tt.input)
			gotFirst, gotSize := utf8.DecodeRuneInString(got)
			if gotFirst != tt.rule.upper(first) {
				t.Errorf("first rune = %q; want %q", gotFirst, tt.rule.upper(first))
			}
			if got[gotSize:] != tt.input[size:] {
				t.Errorf("tail = %q; want %q", got[gotSize:], tt.input[size:])
			}
		})
	}
}

func TestUpperFirstOfLowerFirstMatchesUnicode(t *testing.T) {
	inputs := []string{"abc", "Abc", "ärger", "Ωmega", "ǈubljana", "ßtraße", "1st"}
	for _, s := range inputs {
		got := UpperFirst(LowerFirst(s))
		first, size := utf8.DecodeRuneInString(s)
		gotFirst, gotSize := utf8.DecodeRuneInString(got)
		if gotFirst != unicode.ToUpper(first) || got[gotSize:] != s[size:] {
			t.Errorf("UpperFirst(LowerFirst(%q)) = %q; want first rune %q and tail %q",
				s, got, unicode.ToUpper(first), s[size:])
		}
	}
}

func TestInvalidUTF8Untouched(t *testing.T) {
	s := "\xffabc"
	if got := UpperFirst(s); got != s {
		t.Errorf("UpperFirst(%q) = %q; want input unchanged", s, got)
	}
}

func TestParseCaseRule(t *testing.T) {
	tests := []struct {
		input   string
		want    CaseRule
		wantErr bool
	}{
		{"unicode", CaseUnicode, false},
		{"ASCII", CaseASCII, false},
		{"  ascii ", CaseASCII, false},
		{"Unicode", CaseUnicode, false},
		{"turkish", CaseUnicode, true},
		{"", CaseUnicode, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCaseRule(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCaseRule(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
				t.Errorf("ParseCaseRule(%q) code = %v; want INVALID_ARGUMENT", tt.input, mdwerror.GetCode(err))
			}
			if got != tt.want {
				t.Errorf("ParseCaseRule(%q) = %v; want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCaseRuleString(t *testing.T) {
	if CaseUnicode.String() != "unicode" || CaseASCII.String() != "ascii" {
		t.Errorf("unexpected names: %q, %q", CaseUnicode, CaseASCII)
	}
	if CaseRule(9).String() != "unknown" {
		t.Errorf("CaseRule(9).String() = %q; want \"unknown\"", CaseRule(9))
	}
}
