// Package assert provides assertion functions for test suites and
// defensive runtime checks. Every function either returns silently or
// panics with a structured *Error carrying the actual value, the expected
// value, the operator that failed and the call site.
//
// The message argument each function accepts may be a string, used as the
// failure message verbatim, or an error, which is raised in place of a new
// *Error. Throws and DoesNotThrow instead interpret trailing arguments as
// an error expectation (an error value, *regexp.Regexp, func(error) bool,
// map[string]any or errmatch.Expectation) with an optional string message.
//
// Enforce and CheckRange are parameter-validation helpers; they raise
// *TypeError and *RangeError, both distinct from *Error so assertion
// failures stay selectively catchable.
package assert
