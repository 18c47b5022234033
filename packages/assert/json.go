package assert

import (
	"github.com/abdul-hamid-achik/assertive/packages/deepequal"
	"github.com/tidwall/gjson"
)

// JSONEq raises unless actual and expected are equivalent JSON documents.
// Key order and whitespace are irrelevant; the parsed values are compared
// structurally. Invalid JSON on either side is a failure, never a panic
// from the parser.
func JSONEq(actual, expected string, message ...any) {
	msg, raise := splitMessage(message)

	if !gjson.Valid(actual) || !gjson.Valid(expected) {
		if raise != nil {
			panic(raise)
		}
		e := newError("jsonEqual", actual, expected, msg)
		if msg == "" {
			e.Message = "Invalid JSON document."
		}
		panic(e)
	}

	if deepequal.Equal(gjson.Parse(actual).Value(), gjson.Parse(expected).Value()) {
		return
	}
	if raise != nil {
		panic(raise)
	}
	panic(newError("jsonEqual", actual, expected, msg))
}
