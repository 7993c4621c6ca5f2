// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick a log level for an error and to
//              decide whether an operator needs to look at it.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-19 v0.1.1: Severity mapping for the textkit code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake such as an absent argument
	SeverityLow Severity = iota

	// SeverityMedium indicates a failure with a workaround
	SeverityMedium

	// SeverityHigh indicates a failure that stops an operation
	SeverityHigh

	// SeverityCritical indicates the process cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines the default severity for a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeServiceInitialization:
		return SeverityCritical
	case CodeServiceUnavailable, CodeInternal, CodeMissingConfig, CodeInvalidConfig, CodeConfigError:
		return SeverityHigh
	case CodeTimeout, CodeNetworkError:
		return SeverityMedium
	case CodeInvalidArgument, CodeValidationFailed, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
