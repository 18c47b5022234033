package assert

import (
	"fmt"
	"reflect"

	"github.com/abdul-hamid-achik/assertive/packages/deepequal"
	"github.com/abdul-hamid-achik/assertive/packages/stringify"
)

// Ok raises unless value is truthy. Falsiness follows the zero/empty rule:
// nil, false, zero numbers, empty strings and empty collections all fail.
func Ok(value any, message ...any) {
	if isTruthy(value) {
		return
	}
	msg, raise := splitMessage(message)
	if raise != nil {
		panic(raise)
	}
	e := newError("==", value, true, msg)
	if msg == "" && value == nil {
		e.Message = "No value argument passed to Ok()."
	}
	panic(e)
}

// Equal raises unless actual and expected are the same value (SameValue
// semantics: NaN equals NaN, +0 and -0 differ).
func Equal(actual, expected any, message ...any) {
	if deepequal.SameValue(actual, expected) {
		return
	}
	msg, raise := splitMessage(message)
	if raise != nil {
		panic(raise)
	}
	panic(newError("strictEqual", actual, expected, msg))
}

// NotEqual raises if actual and expected are the same value.
func NotEqual(actual, expected any, message ...any) {
	if !deepequal.SameValue(actual, expected) {
		return
	}
	msg, raise := splitMessage(message)
	if raise != nil {
		panic(raise)
	}
	panic(newError("notStrictEqual", actual, expected, msg))
}

// Fail raises unconditionally.
func Fail(message ...any) {
	msg, raise := splitMessage(message)
	if raise != nil {
		panic(raise)
	}
	panic(newError("fail", false, true, msg))
}

// IfError raises if err is non-nil.
func IfError(err error) {
	if err == nil {
		return
	}
	e := newError("ifError", err, nil, "")
	e.Message = "ifError got unwanted exception: " + stringify.Stringify(err)
	panic(e)
}

// DeepEqual raises unless actual and expected are structurally equal.
func DeepEqual(actual, expected any, message ...any) {
	if deepequal.Equal(actual, expected) {
		return
	}
	msg, raise := splitMessage(message)
	if raise != nil {
		panic(raise)
	}
	panic(newError("deepStrictEqual", actual, expected, msg))
}

// NotDeepEqual raises if actual and expected are structurally equal.
func NotDeepEqual(actual, expected any, message ...any) {
	if !deepequal.Equal(actual, expected) {
		return
	}
	msg, raise := splitMessage(message)
	if raise != nil {
		panic(raise)
	}
	panic(newError("notDeepStrictEqual", actual, expected, msg))
}

// Enforce raises a *TypeError if value is falsy. name and typeName refine
// the message: Enforce(ok, "timeout", "duration").
func Enforce(value any, nameAndType ...string) {
	if isTruthy(value) {
		return
	}
	var msg string
	switch {
	case len(nameAndType) == 0 || nameAndType[0] == "":
		msg = "Invalid type for parameter."
	case len(nameAndType) == 1:
		msg = fmt.Sprintf("%q is invalid.", nameAndType[0])
	default:
		msg = fmt.Sprintf("%q must be a %s.", nameAndType[0], nameAndType[1])
	}
	panic(&TypeError{Message: msg})
}

// CheckRange raises a *RangeError if value is falsy.
func CheckRange(value any, name ...string) {
	if isTruthy(value) {
		return
	}
	msg := "Value out of range"
	if len(name) > 0 && name[0] != "" {
		msg = fmt.Sprintf("%q is out of range.", name[0])
	}
	panic(&RangeError{Message: msg})
}

// splitMessage interprets the optional message argument: a string is the
// failure message, an error is raised in place of a new *Error. Only the
// first element is considered.
func splitMessage(args []any) (msg string, raise error) {
	if len(args) == 0 || args[0] == nil {
		return "", nil
	}
	switch m := args[0].(type) {
	case string:
		return m, nil
	case error:
		return "", m
	}
	return "", nil
}

// isTruthy applies the zero/empty rule to an arbitrary value.
func isTruthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		return rv.Len() != 0
	case reflect.Pointer, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return true
}
