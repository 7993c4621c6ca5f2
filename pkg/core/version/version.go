// ============================================================================
// textkit - Text Helper Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the library, CLI and daemon
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Platform version
	Platform = "1.0.0"

	// Component versions
	Library = "1.0.0"
	CLI     = "1.0.0"
	Daemon  = "1.0.0"

	// API is the gRPC service package version
	API = "v1"
)

// Set at build time via -ldflags "-X github.com/msto63/textkit/pkg/core/version.Commit=..."
var (
	Commit    = "unknown"
	BuildDate = "unknown"
)

// ServiceVersion returns the version for a component name
func ServiceVersion(name string) string {
	switch name {
	case "stringx", "library":
		return Library
	case "textkit", "cli":
		return CLI
	case "textkitd", "daemon":
		return Daemon
	default:
		return Platform
	}
}

// String returns a one line description for version output
func String(name string) string {
	return fmt.Sprintf("%s %s (api %s, commit %s, built %s)", name, ServiceVersion(name), API, Commit, BuildDate)
}
