package deepequal

import (
	"bytes"
	"reflect"
)

// maxDepth bounds the recursion so pathological nesting (or an undetected
// cycle) fails the comparison instead of overflowing the stack.
const maxDepth = 1000

// Equaler is the structural-equality contract a type may provide instead of
// having its exported fields compared by reflection. Equal is asked on the
// left-hand value only, so an ill-behaved implementation can make the
// comparison asymmetric.
type Equaler interface {
	Equal(other any) bool
}

// Equal reports whether a and b are structurally equal. Inputs must be
// acyclic.
func Equal(a, b any) bool {
	return deepEqual(a, b, 0)
}

func deepEqual(a, b any, depth int) bool {
	if SameValue(a, b) {
		return true
	}
	if a == nil || b == nil || depth >= maxDepth {
		return false
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	if ab, ok := a.([]byte); ok {
		return bytes.Equal(ab, b.([]byte))
	}
	if eq, ok := a.(Equaler); ok {
		return eq.Equal(b)
	}

	switch ra.Kind() {
	case reflect.Pointer, reflect.Interface:
		if ra.IsNil() || rb.IsNil() {
			return ra.IsNil() && rb.IsNil()
		}
		return deepEqual(ra.Elem().Interface(), rb.Elem().Interface(), depth+1)

	case reflect.Slice, reflect.Array:
		if ra.Kind() == reflect.Slice && ra.IsNil() != rb.IsNil() {
			return false
		}
		if ra.Len() != rb.Len() {
			return false
		}
		for i := 0; i < ra.Len(); i++ {
			if !deepEqual(ra.Index(i).Interface(), rb.Index(i).Interface(), depth+1) {
				return false
			}
		}
		return true

	case reflect.Map:
		if ra.IsNil() != rb.IsNil() || ra.Len() != rb.Len() {
			return false
		}
		iter := ra.MapRange()
		for iter.Next() {
			bv := rb.MapIndex(iter.Key())
			if !bv.IsValid() {
				return false
			}
			if !deepEqual(iter.Value().Interface(), bv.Interface(), depth+1) {
				return false
			}
		}
		return true

	case reflect.Struct:
		t := ra.Type()
		for i := 0; i < t.NumField(); i++ {
			if !t.Field(i).IsExported() {
				continue
			}
			if !deepEqual(ra.Field(i).Interface(), rb.Field(i).Interface(), depth+1) {
				return false
			}
		}
		return true
	}

	if !ra.Type().Comparable() {
		return false
	}
	return a == b
}
