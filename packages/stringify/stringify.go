package stringify

import (
	"fmt"
	"reflect"
	"runtime"
	"strconv"

	"github.com/davecgh/go-spew/spew"
)

// MaxLen is the rendering budget: strings and fallback representations
// longer than this are cut and suffixed with "...".
const MaxLen = 80

var spewConfig = &spew.ConfigState{
	Indent:                  " ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Stringify returns a bounded, human-readable rendering of v for use in
// diagnostic messages. It never panics.
func Stringify(v any) (s string) {
	defer func() {
		if recover() != nil {
			s = "<unprintable>"
		}
	}()

	if v == nil {
		return "null"
	}

	switch val := v.(type) {
	case bool:
		return strconv.FormatBool(val)
	case string:
		return strconv.Quote(truncate(val))
	case []byte:
		return fmt.Sprintf("bytes(%d)", len(val))
	case error:
		return truncate(val.Error())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", v)
	case reflect.String:
		return strconv.Quote(truncate(rv.String()))
	case reflect.Slice, reflect.Array, reflect.Map, reflect.Chan:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return fmt.Sprintf("bytes(%d)", rv.Len())
		}
		return fmt.Sprintf("%s(%d)", typeName(rv.Type()), rv.Len())
	case reflect.Func:
		return "function " + funcName(rv)
	}

	return truncate(spewConfig.Sprintf("%+v", v))
}

func truncate(s string) string {
	if len(s) > MaxLen {
		return s[:MaxLen] + "..."
	}
	return s
}

func typeName(t reflect.Type) string {
	if name := t.Name(); name != "" {
		return name
	}
	return t.String()
}

func funcName(rv reflect.Value) string {
	fn := runtime.FuncForPC(rv.Pointer())
	if fn == nil {
		return "<anonymous>"
	}
	return fn.Name()
}
