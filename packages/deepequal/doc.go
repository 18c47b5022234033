// Package deepequal implements the two equality notions the assertion
// functions are built on: SameValue identity comparison and recursive
// structural equality.
//
// SameValue differs from Go's == in exactly two places: NaN equals itself,
// and +0 and -0 are distinct. Equal walks composite values structurally:
// slices element-wise in order, maps by key set then per-key value, byte
// slices byte-for-byte, structs by exported fields (or via the Equaler
// contract when a type provides one).
//
// Inputs are assumed acyclic. There is no cycle detection; a fixed depth
// guard turns runaway nesting into a false result instead of a stack
// overflow.
package deepequal
