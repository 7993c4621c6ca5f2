// File: url.go
// Title: URL Pattern Normalization
// Description: Strips exactly one leading path separator from URL path
//              patterns, e.g. "/test.do" -> "test.do".
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package stringx

import (
	"strings"

	"github.com/msto63/textkit/foundation/core/errors"
)

// PathSeparator is the character removed by StandardURLPattern.
const PathSeparator = "/"

// StandardURLPattern removes exactly one leading "/" from url.
// "/test.do" -> "test.do", "test.do" -> "test.do", "//a" -> "/a".
func StandardURLPattern(url string) string {
	return strings.TrimPrefix(url, PathSeparator)
}

// StandardURLPatternOf is StandardURLPattern for nullable input. A nil url
// fails with INVALID_ARGUMENT.
func StandardURLPatternOf(url *string) (string, error) {
	value, err := RequireNotNil(url, "StandardURLPatternOf")
	if err != nil {
		return "", err
	}
	return StandardURLPattern(value), nil
}

// StandardURLPatterns applies StandardURLPattern element-wise and returns a
// new slice of the same length and order. A nil urls slice fails with
// INVALID_ARGUMENT; an empty one yields an empty, non-nil slice.
func StandardURLPatterns(urls []string) ([]string, error) {
	if urls == nil {
		return nil, errors.InvalidArgument(errors.ModuleStringx, "StandardURLPatterns", nil, "non-nil url list")
	}

	results := make([]string, len(urls))
	for i, url := range urls {
		results[i] = StandardURLPattern(url)
	}
	return results, nil
}
