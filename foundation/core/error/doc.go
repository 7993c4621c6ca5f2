// Package error provides the structured error type used across textkit.
//
// Package: error
// Title: textkit Error Handling
// Description: Coded errors with severity, operation context, details and a
//              bounded stack trace. Every failure that crosses a package
//              boundary in textkit is an *Error so that the logger, the gRPC
//              layer and the CLI can classify it without string matching.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-19 v0.2.0: Reduced code set to textkit, added INVALID_ARGUMENT and errors.As support
//
// Usage:
//
//	import mdwerror "github.com/msto63/textkit/foundation/core/error"
//
//	err := mdwerror.New("url must not be nil").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("stringx.StandardURLPatternOf")
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// programming-contract violation
//	}
package error
