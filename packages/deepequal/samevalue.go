package deepequal

import (
	"math"
	"reflect"
)

// SameValue reports whether a and b are the same value, in the SameValue
// sense rather than the == sense: identical references compare true, NaN
// compares equal to NaN, and +0 and -0 compare unequal. Values of
// differing dynamic type are never the same.
func SameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Float32, reflect.Float64:
		af, bf := ra.Float(), rb.Float()
		if math.IsNaN(af) && math.IsNaN(bf) {
			return true
		}
		if af == 0 && bf == 0 {
			return math.Signbit(af) == math.Signbit(bf)
		}
		return af == bf
	case reflect.Slice:
		// Identity only: same backing array and length.
		if ra.IsNil() || rb.IsNil() {
			return ra.IsNil() && rb.IsNil()
		}
		return ra.Len() == rb.Len() && ra.Pointer() == rb.Pointer()
	case reflect.Map, reflect.Func:
		return ra.Pointer() == rb.Pointer()
	}

	if !ra.Type().Comparable() {
		return false
	}
	return a == b
}
