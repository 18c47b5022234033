// Package stringify renders arbitrary values as short diagnostic strings.
//
// Output is bounded: long strings are truncated, collections are summarized
// as <type>(<size>) placeholders, and byte slices never print their
// contents. The rendering is for failure messages only and is never used
// for equality decisions.
package stringify
