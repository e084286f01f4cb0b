// Package guard compiles the preprocessor conditions attached to an entry
// into a single normalized guard expression.
//
// Bare symbols are wrapped in a defined() test, tokens that already carry
// a defined() or !defined() test are kept verbatim, and the results are
// joined with "&&" in input order:
//
//	Compile(nil)                        // None
//	Compile([]string{"FOO"})            // defined(FOO)
//	Compile([]string{"!defined(X)"})    // !defined(X)
//	Compile([]string{"A", "B"})         // defined(A) && defined(B)
//
// Two entries share a guard block exactly when their compiled expressions
// are string-equal.
package guard
