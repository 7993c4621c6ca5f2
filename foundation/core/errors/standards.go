// File: standards.go
// Title: Error Standards for textkit
// Description: Module identifiers and the standard constructors used by the
//              library, the configuration layer and the service layer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for error standardization
// - 2026-10-19 v0.2.0: textkit modules, InvalidArgument, ConfigError

package errors

import (
	"fmt"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
)

// Module identifiers for error categorization
const (
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleService = "service"
	ModuleServer  = "server"
	ModuleClient  = "client"
	ModuleAPI     = "api"
)

// InvalidArgument reports a violated argument contract, e.g. an absent
// value where the operation requires one.
func InvalidArgument(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid argument for %s.%s: expected %s", module, operation, expected)).
		Code(mdwerror.CodeInvalidArgument).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// ConfigError reports a configuration problem with the given code
func ConfigError(operation string, code mdwerror.Code, cause error, message string) *mdwerror.Error {
	return NewErrorBuilder(ModuleConfig).
		Operation(operation).
		Message(message).
		Cause(cause).
		Code(code).
		Build()
}

// OperationFailed wraps a runtime failure of a module operation
func OperationFailed(module, operation string, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Cause(cause).
		Code(mdwerror.CodeInternal).
		Build()
}

// ExtractDetails extracts all details from a coded error in err's chain
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := mdwerror.As(err); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleError checks if an error belongs to a specific module
func IsModuleError(err error, module string) bool {
	return module != "" && ExtractModule(err) == module
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}
