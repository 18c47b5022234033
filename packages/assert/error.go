package assert

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/abdul-hamid-achik/assertive/packages/stringify"
)

// Code is the fixed error code carried by every *Error.
const Code = "ERR_ASSERTION"

// Error is the structured assertion failure. Fields are set once at
// construction and must be treated as read-only.
type Error struct {
	Message          string
	Actual           any
	Expected         any
	Operator         string
	GeneratedMessage bool
	Code             string

	// Call site of the failing assertion.
	File string
	Line int
}

func (e *Error) Error() string {
	return fmt.Sprintf("AssertionError [%s]: %s", e.Code, e.Message)
}

// newError builds an *Error for op. An empty message is synthesized from
// the operands and flips GeneratedMessage on.
func newError(op string, actual, expected any, message string) *Error {
	e := &Error{
		Message:  message,
		Actual:   actual,
		Expected: expected,
		Operator: op,
		Code:     Code,
	}
	if message == "" {
		e.GeneratedMessage = true
		switch op {
		case "fail", "==":
			e.Message = "Assertion failed."
		default:
			e.Message = stringify.Stringify(actual) + " " + op + " " + stringify.Stringify(expected)
		}
	}
	e.File, e.Line = callSite()
	return e
}

// callSite walks up the stack to the first frame outside this package,
// which is the assertion call that failed.
func callSite() (string, int) {
	for skip := 3; skip < 16; skip++ {
		pc, file, line, ok := runtime.Caller(skip)
		if !ok {
			break
		}
		fn := runtime.FuncForPC(pc)
		if fn == nil || !strings.Contains(fn.Name(), "assertive/packages/assert.") {
			return file, line
		}
	}
	return "", 0
}

// TypeError reports an invalid parameter type, raised by Enforce.
type TypeError struct {
	Message string
}

func (e *TypeError) Error() string { return e.Message }

// RangeError reports a value outside its legal domain, raised by
// CheckRange.
type RangeError struct {
	Message string
}

func (e *RangeError) Error() string { return e.Message }
