// File: example_test.go
// Title: Example Tests for stringx Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-19 v0.2.0: Examples for the textkit helper set

package stringx_test

import (
	"fmt"

	mdwerror "github.com/msto63/textkit/foundation/core/error"
	"github.com/msto63/textkit/foundation/utils/stringx"
)

func ExampleIsEmpty() {
	fmt.Println(stringx.IsEmpty(""))
	fmt.Println(stringx.IsEmpty(" \t"))
	fmt.Println(stringx.IsEmpty("a"))
	fmt.Println(stringx.IsEmpty(stringx.OrEmpty(nil)))
	// Output:
	// true
	// true
	// false
	// true
}

func ExampleUpperFirst() {
	fmt.Println(stringx.UpperFirst("userName"))
	fmt.Printf("%q\n", stringx.UpperFirst("  "))
	// Output:
	// UserName
	// ""
}

func ExampleLowerFirst() {
	fmt.Println(stringx.LowerFirst("UserName"))
	fmt.Println(stringx.LowerFirstWith("Ärger", stringx.CaseASCII))
	// Output:
	// userName
	// Ärger
}

func ExampleStandardURLPattern() {
	fmt.Println(stringx.StandardURLPattern("/test.do"))
	fmt.Println(stringx.StandardURLPattern("test.do"))
	// Output:
	// test.do
	// test.do
}

func ExampleStandardURLPatterns() {
	patterns, _ := stringx.StandardURLPatterns([]string{"/a.do", "b.do"})
	fmt.Println(patterns)

	_, err := stringx.StandardURLPatterns(nil)
	fmt.Println(mdwerror.GetCode(err))
	// Output:
	// [a.do b.do]
	// INVALID_ARGUMENT
}

func ExampleTokenizeToStringArray() {
	fmt.Printf("%q\n", stringx.TokenizeToStringArray("a, b,, c", ","))
	fmt.Printf("%q\n", stringx.TokenizeToStringArrayWith(" a , b ", ",", false, false))
	fmt.Println(stringx.TokenizeNullable(nil, ",", true, true) == nil)
	// Output:
	// ["a" "b" "c"]
	// [" a " " b "]
	// true
}
