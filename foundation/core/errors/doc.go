// Package errors provides the module-scoped error constructors every textkit
// package uses on top of the core error type.
//
// Package: errors
// Title: Standard Error Constructors for textkit
// Description: Builds *mdwerror.Error values that always carry the module and
//              operation in their details, so logs and gRPC statuses can be
//              traced back to the failing call without parsing messages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-19 v0.2.0: Reduced to the textkit modules and the INVALID_ARGUMENT path
//
// Typical use inside a module:
//
//	if url == nil {
//		return "", errors.InvalidArgument(errors.ModuleStringx, "StandardURLPatternOf", nil, "non-nil url")
//	}
//
// and on the consuming side:
//
//	if errors.IsModuleError(err, errors.ModuleStringx) { ... }
package errors
