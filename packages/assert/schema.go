package assert

import (
	"encoding/json"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// MatchesSchema raises unless value validates against the JSON Schema
// document in schema. The schema is supplied as bytes; no files are read.
func MatchesSchema(value any, schema []byte, message ...any) {
	msg, raise := splitMessage(message)

	fail := func(detail string) {
		if raise != nil {
			panic(raise)
		}
		e := newError("matchesSchema", value, string(schema), msg)
		if msg == "" {
			e.Message = detail
		}
		panic(e)
	}

	actualJSON, err := json.Marshal(value)
	if err != nil {
		fail("value is not representable as JSON: " + err.Error())
		return
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(actualJSON),
	)
	if err != nil {
		fail("schema validation error: " + err.Error())
		return
	}
	if result.Valid() {
		return
	}

	var details []string
	for _, desc := range result.Errors() {
		details = append(details, desc.String())
	}
	fail("schema validation failed: " + strings.Join(details, "; "))
}
