// Package log provides structured logging for textkit.
//
// Package: log
// Title: textkit Structured Logging
// Description: Leveled, structured logging with immutable logger derivation,
//              pluggable output formats and integration with the textkit
//              error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-19 v0.2.0: Deterministic field order, lipgloss console output, slimmer timer
//
// Usage:
//
//	import mdwlog "github.com/msto63/textkit/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelInfo).
//		WithFormat(mdwlog.FormatLogfmt).
//		WithName("textkitd").
//		WithField("component", "server")
//
//	logger.Info("listening", mdwlog.Field("addr", ":9310"))
//	logger.LogError(err)
//
//	timer := logger.StartTimer("tokenize")
//	// ...
//	timer.Stop()
//
// Audit entries are written regardless of the configured minimum level.
package log
