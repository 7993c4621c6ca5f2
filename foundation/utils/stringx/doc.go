// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the text helpers of textkit:
//              emptiness checks, first-character case conversion, URL
//              pattern normalization and delimiter tokenization.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2026-10-19 v0.3.0: Reworked around the textkit helper set

// Package stringx provides pure string helpers for textkit.
//
// Package: stringx
// Title: Text Helpers for textkit
// Description: A stateless collection of functions over immutable text.
//              Every function is referentially transparent: same input,
//              same output, no side effects, and no mutation of arguments.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Overview
//
// The package is organized into functional groups:
//
//   - Core: emptiness and nullable helpers (stringx.go)
//   - Case: first-character case conversion with explicit case rules (case.go)
//   - URL: path-pattern normalization (url.go)
//   - Tokenize: delimiter tokenization and sequence conversion (tokenize.go)
//
// Absent values
//
// Go strings cannot be absent. Where absence is observable the package uses
// a nil *string for absent text and a nil slice for an absent sequence.
// A present but empty sequence is always a non-nil slice of length zero.
//
//	stringx.IsEmpty(stringx.OrEmpty(nil))         // true
//	stringx.TokenizeNullable(nil, ",", true, true) // nil
//	stringx.TokenizeToStringArray("", ",")        // []string{}
//
// Case conversion
//
// Case conversion never depends on the process locale. CaseUnicode (the
// default) applies Unicode simple case mapping to the first rune;
// CaseASCII touches only a-z and A-Z.
//
//	stringx.UpperFirst("userName")             // "UserName"
//	stringx.LowerFirst("UserName")             // "userName"
//	stringx.UpperFirstWith("été", stringx.CaseASCII) // "été"
//
// URL patterns
//
//	stringx.StandardURLPattern("/test.do") // "test.do"
//	stringx.StandardURLPattern("test.do")  // "test.do"
//
// Tokenization
//
// Every rune of the delimiter string is an independent separator and runs
// of delimiters never produce empty tokens:
//
//	stringx.TokenizeToStringArray("a, b,, c", ",")                   // ["a" "b" "c"]
//	stringx.TokenizeToStringArrayWith(" a , b ", ",", false, false) // [" a " " b "]
//
// Error Handling
//
// The only failure is an absent argument where one is required. It is
// reported as an *mdwerror.Error with code INVALID_ARGUMENT carrying the
// module "stringx" and the operation name in its details.
//
// Thread Safety
//
// All exported functions are safe for concurrent use; the package has no
// mutable state.
package stringx
