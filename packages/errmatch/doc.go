// Package errmatch decides whether a raised error satisfies a caller's
// expectation. An expectation is one of four kinds: an error type, a
// regular expression over the error text, a predicate, or a map of exported
// fields the error must carry. Anything else never matches.
package errmatch
