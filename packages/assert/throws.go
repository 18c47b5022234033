package assert

import (
	"fmt"
	"regexp"

	"github.com/abdul-hamid-achik/assertive/packages/errmatch"
)

// panicError wraps a non-error panic value so expectations always see an
// error.
type panicError struct {
	value any
}

func (p *panicError) Error() string {
	return fmt.Sprintf("panic: %v", p.value)
}

// Throws raises unless fn panics. With an expectation, a panic whose error
// does not match is re-raised untouched rather than reported as an
// assertion failure.
//
// Trailing arguments: an error value, *regexp.Regexp, func(error) bool,
// map[string]any or errmatch.Expectation is the expectation; a string is
// the failure message.
func Throws(fn func(), args ...any) {
	exp, msg := splitExpectation(args)

	recovered, raised := run(fn)
	if !raised {
		e := newError("throws", nil, exp, msg)
		if msg == "" {
			e.Message = "Missing expected exception."
		}
		panic(e)
	}

	if exp != nil && !errmatch.Matches(asError(recovered), exp) {
		panic(recovered)
	}
}

// DoesNotThrow raises if fn panics and either no expectation was given or
// the recovered error matches it. A panic that fails the expectation
// propagates unchanged.
func DoesNotThrow(fn func(), args ...any) {
	exp, msg := splitExpectation(args)

	recovered, raised := run(fn)
	if !raised {
		return
	}

	err := asError(recovered)
	if exp == nil || errmatch.Matches(err, exp) {
		e := newError("doesNotThrow", err, exp, msg)
		if msg == "" {
			e.Message = "Got unwanted exception."
		}
		panic(e)
	}
	panic(recovered)
}

// run invokes fn, reporting whether it panicked and with what.
func run(fn func()) (recovered any, raised bool) {
	defer func() {
		if r := recover(); r != nil {
			recovered = r
			raised = true
		}
	}()
	fn()
	return nil, false
}

func asError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}
	return &panicError{value: recovered}
}

// splitExpectation interprets the trailing arguments of Throws and
// DoesNotThrow. The first expectation-shaped argument wins; the first
// string is the message; anything else is ignored.
func splitExpectation(args []any) (exp errmatch.Expectation, msg string) {
	for _, a := range args {
		switch v := a.(type) {
		case nil:
		case string:
			if msg == "" {
				msg = v
			}
		case errmatch.Expectation:
			if exp == nil {
				exp = v
			}
		case *regexp.Regexp:
			if exp == nil {
				exp = errmatch.Pattern(v)
			}
		case func(error) bool:
			if exp == nil {
				exp = errmatch.Predicate(v)
			}
		case map[string]any:
			if exp == nil {
				exp = errmatch.Properties(v)
			}
		case error:
			if exp == nil {
				exp = errmatch.TypeOf(v)
			}
		}
	}
	return exp, msg
}
