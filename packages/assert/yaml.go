package assert

import (
	"github.com/abdul-hamid-achik/assertive/packages/deepequal"
	"gopkg.in/yaml.v3"
)

// YAMLEq raises unless actual and expected are equivalent YAML documents,
// compared structurally after parsing. A document that does not parse is a
// failure.
func YAMLEq(actual, expected string, message ...any) {
	msg, raise := splitMessage(message)

	var av, ev any
	if yaml.Unmarshal([]byte(actual), &av) != nil || yaml.Unmarshal([]byte(expected), &ev) != nil {
		if raise != nil {
			panic(raise)
		}
		e := newError("yamlEqual", actual, expected, msg)
		if msg == "" {
			e.Message = "Invalid YAML document."
		}
		panic(e)
	}

	if deepequal.Equal(av, ev) {
		return
	}
	if raise != nil {
		panic(raise)
	}
	panic(newError("yamlEqual", actual, expected, msg))
}
