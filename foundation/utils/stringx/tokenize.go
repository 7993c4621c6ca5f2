// File: tokenize.go
// Title: Delimiter Tokenization
// Description: Splits text into tokens on a set of single-character
//              delimiters with optional trimming and empty-token removal,
//              and converts string collections into fresh slices.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
// - 2026-10-19 v0.1.1: Invalid UTF-8 delimiters match by byte

package stringx

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// TokenizeOptions controls post-processing of tokens.
type TokenizeOptions struct {
	// TrimTokens strips leading and trailing whitespace from every token.
	TrimTokens bool

	// IgnoreEmptyTokens drops tokens that are empty after trimming.
	IgnoreEmptyTokens bool
}

// DefaultTokenizeOptions trims tokens and drops empty ones.
func DefaultTokenizeOptions() TokenizeOptions {
	return TokenizeOptions{TrimTokens: true, IgnoreEmptyTokens: true}
}

// TokenizeToStringArray tokenizes s on any rune of delimiters, trimming
// tokens and dropping empty ones.
func TokenizeToStringArray(s, delimiters string) []string {
	return Tokenize(s, delimiters, DefaultTokenizeOptions())
}

// TokenizeToStringArrayWith tokenizes s on any rune of delimiters.
//
// Tokens are maximal runs of non-delimiter runes, so consecutive delimiters
// never produce an empty token. Each rune of delimiters is a separator on
// its own; multi-rune sequences are not treated as one delimiter. An empty
// delimiters string makes the whole of s a single token.
//
// The result is never nil; it is empty when no token survives.
func TokenizeToStringArrayWith(s, delimiters string, trimTokens, ignoreEmptyTokens bool) []string {
	return Tokenize(s, delimiters, TokenizeOptions{
		TrimTokens:        trimTokens,
		IgnoreEmptyTokens: ignoreEmptyTokens,
	})
}

// TokenizeNullable is TokenizeToStringArrayWith for nullable input: nil
// text yields a nil (absent) token sequence.
func TokenizeNullable(s *string, delimiters string, trimTokens, ignoreEmptyTokens bool) []string {
	if s == nil {
		return nil
	}
	return TokenizeToStringArrayWith(*s, delimiters, trimTokens, ignoreEmptyTokens)
}

// Tokenize is the options based form of TokenizeToStringArrayWith.
func Tokenize(s, delimiters string, opts TokenizeOptions) []string {
	tokens := make([]string, 0, 8)
	for _, token := range splitFields(s, newDelimiterSet(delimiters)) {
		if opts.TrimTokens {
			token = strings.TrimSpace(token)
		}
		if opts.IgnoreEmptyTokens && token == "" {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// delimiterSet holds the delimiter runes plus the raw bytes of any invalid
// UTF-8 in the delimiter string. An invalid byte only matches the same byte,
// never U+FFFD or another invalid byte.
type delimiterSet struct {
	runes   []rune
	invalid [256]bool
}

func newDelimiterSet(delimiters string) *delimiterSet {
	d := &delimiterSet{}
	for i := 0; i < len(delimiters); {
		r, size := utf8.DecodeRuneInString(delimiters[i:])
		if r == utf8.RuneError && size == 1 {
			d.invalid[delimiters[i]] = true
		} else {
			d.runes = append(d.runes, r)
		}
		i += size
	}
	return d
}

// splitFields returns the maximal runs of s that contain no delimiter.
func splitFields(s string, d *delimiterSet) []string {
	var fields []string
	start := -1
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])

		var isDelimiter bool
		if r == utf8.RuneError && size == 1 {
			isDelimiter = d.invalid[s[i]]
		} else {
			isDelimiter = slices.Contains(d.runes, r)
		}

		switch {
		case isDelimiter && start >= 0:
			fields = append(fields, s[start:i])
			start = -1
		case !isDelimiter && start < 0:
			start = i
		}
		i += size
	}
	if start >= 0 {
		fields = append(fields, s[start:])
	}
	return fields
}

// ToStringArray returns a copy of values in the same order. A nil input is
// absent and yields nil; any other input yields a non-nil slice.
func ToStringArray(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// ToStringArraySeq collects seq in iteration order. A nil seq yields nil;
// any other seq yields a non-nil slice.
func ToStringArraySeq(seq iter.Seq[string]) []string {
	if seq == nil {
		return nil
	}
	out := make([]string, 0)
	for v := range seq {
		out = append(out, v)
	}
	return out
}
