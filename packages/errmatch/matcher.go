package errmatch

import (
	"errors"
	"reflect"
	"regexp"

	"github.com/abdul-hamid-achik/assertive/packages/deepequal"
)

// Expectation describes what a raised error should look like. The four
// kinds are constructed with TypeOf, Pattern, Predicate and Properties;
// the interface is sealed.
type Expectation interface {
	match(err error) bool
}

// Matches reports whether err satisfies exp. A nil expectation matches
// nothing.
func Matches(err error, exp Expectation) bool {
	if exp == nil {
		return false
	}
	return exp.match(err)
}

type typeExpectation struct {
	target reflect.Type
}

// TypeOf expects any error in the chain to have the dynamic type of
// target. Wrapping plays the role subclassing does elsewhere: a wrapped
// error still counts as its inner type.
func TypeOf(target error) Expectation {
	if target == nil {
		return typeExpectation{}
	}
	return typeExpectation{target: reflect.TypeOf(target)}
}

func (t typeExpectation) match(err error) bool {
	if t.target == nil {
		return false
	}
	for err != nil {
		if reflect.TypeOf(err) == t.target || reflect.TypeOf(err).AssignableTo(t.target) {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

type patternExpectation struct {
	re *regexp.Regexp
}

// Pattern expects re to match the error's text.
func Pattern(re *regexp.Regexp) Expectation {
	return patternExpectation{re: re}
}

func (p patternExpectation) match(err error) bool {
	if p.re == nil || err == nil {
		return false
	}
	return p.re.MatchString(err.Error())
}

type predicateExpectation struct {
	fn func(error) bool
}

// Predicate expects fn to report true for the error. A predicate that
// panics counts as a non-match; the panic is not propagated.
func Predicate(fn func(error) bool) Expectation {
	return predicateExpectation{fn: fn}
}

func (p predicateExpectation) match(err error) (ok bool) {
	if p.fn == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return p.fn(err)
}

type propertiesExpectation struct {
	fields map[string]any
}

// Properties expects every key to exist as an exported field on the
// concrete error value and to deep-equal the given value.
func Properties(fields map[string]any) Expectation {
	return propertiesExpectation{fields: fields}
}

func (p propertiesExpectation) match(err error) bool {
	if err == nil {
		return false
	}

	rv := reflect.ValueOf(err)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return false
	}

	for name, want := range p.fields {
		field := rv.FieldByName(name)
		if !field.IsValid() || !field.CanInterface() {
			return false
		}
		if !deepequal.Equal(field.Interface(), want) {
			return false
		}
	}
	return true
}
