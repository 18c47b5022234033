package assert_test

import (
	"errors"
	"math"
	"testing"

	"github.com/abdul-hamid-achik/assertive/packages/assert"
	"github.com/stretchr/testify/require"
)

// recovered runs fn and returns whatever it panicked with, or nil.
func recovered(t *testing.T, fn func()) (value any) {
	t.Helper()
	func() {
		defer func() { value = recover() }()
		fn()
	}()
	return value
}

// assertionError runs fn and requires it to panic with an *assert.Error.
func assertionError(t *testing.T, fn func()) *assert.Error {
	t.Helper()
	v := recovered(t, fn)
	require.NotNil(t, v, "expected an assertion failure")
	e, ok := v.(*assert.Error)
	require.True(t, ok, "panic value is %T, want *assert.Error", v)
	return e
}

func TestOk(t *testing.T) {
	t.Run("truthy values pass", func(t *testing.T) {
		require.NotPanics(t, func() {
			assert.Ok(true)
			assert.Ok(1)
			assert.Ok("non-empty")
			assert.Ok([]int{1})
			assert.Ok(map[string]int{"a": 1})
		})
	})

	t.Run("falsy values fail", func(t *testing.T) {
		for _, v := range []any{false, 0, 0.0, "", []int{}, map[string]int{}, nil} {
			e := assertionError(t, func() { assert.Ok(v) })
			require.Equal(t, "==", e.Operator)
			require.Equal(t, v, e.Actual)
			require.Equal(t, true, e.Expected)
			require.True(t, e.GeneratedMessage)
		}
	})

	t.Run("nil gets its own message", func(t *testing.T) {
		e := assertionError(t, func() { assert.Ok(nil) })
		require.Equal(t, "No value argument passed to Ok().", e.Message)
		require.True(t, e.GeneratedMessage)
	})

	t.Run("custom message", func(t *testing.T) {
		e := assertionError(t, func() { assert.Ok(false, "must hold") })
		require.Equal(t, "must hold", e.Message)
		require.False(t, e.GeneratedMessage)
	})

	t.Run("error message is rethrown verbatim", func(t *testing.T) {
		sentinel := errors.New("sentinel")
		v := recovered(t, func() { assert.Ok(false, sentinel) })
		require.Same(t, sentinel, v)
	})
}

func TestEqual(t *testing.T) {
	t.Run("passes on same value", func(t *testing.T) {
		require.NotPanics(t, func() {
			assert.Equal(1, 1)
			assert.Equal("a", "a")
			assert.Equal(math.NaN(), math.NaN())
		})
	})

	t.Run("fails across types", func(t *testing.T) {
		e := assertionError(t, func() { assert.Equal(1, "1") })
		require.Equal(t, "strictEqual", e.Operator)
		require.Equal(t, 1, e.Actual)
		require.Equal(t, "1", e.Expected)
	})

	t.Run("distinguishes signed zero", func(t *testing.T) {
		e := assertionError(t, func() { assert.Equal(0.0, math.Copysign(0, -1)) })
		require.Equal(t, "strictEqual", e.Operator)
	})

	t.Run("generated message names both operands", func(t *testing.T) {
		e := assertionError(t, func() { assert.Equal(1, 2) })
		require.Equal(t, "1 strictEqual 2", e.Message)
		require.True(t, e.GeneratedMessage)
	})

	t.Run("records the call site", func(t *testing.T) {
		e := assertionError(t, func() { assert.Equal(1, 2) })
		require.NotEmpty(t, e.File)
		require.NotZero(t, e.Line)
	})
}

func TestNotEqual(t *testing.T) {
	require.NotPanics(t, func() {
		assert.NotEqual(1, 2)
		assert.NotEqual(1, "1")
		assert.NotEqual(0.0, math.Copysign(0, -1))
	})

	e := assertionError(t, func() { assert.NotEqual("x", "x") })
	require.Equal(t, "notStrictEqual", e.Operator)
}

func TestFail(t *testing.T) {
	t.Run("default message", func(t *testing.T) {
		e := assertionError(t, func() { assert.Fail() })
		require.Equal(t, "fail", e.Operator)
		require.Equal(t, "Assertion failed.", e.Message)
		require.True(t, e.GeneratedMessage)
	})

	t.Run("custom message", func(t *testing.T) {
		e := assertionError(t, func() { assert.Fail("custom") })
		require.Equal(t, "custom", e.Message)
		require.False(t, e.GeneratedMessage)
	})

	t.Run("error argument is rethrown", func(t *testing.T) {
		sentinel := errors.New("sentinel")
		require.Same(t, sentinel, recovered(t, func() { assert.Fail(sentinel) }))
	})
}

func TestIfError(t *testing.T) {
	require.NotPanics(t, func() { assert.IfError(nil) })

	boom := errors.New("boom")
	e := assertionError(t, func() { assert.IfError(boom) })
	require.Equal(t, "ifError", e.Operator)
	require.Equal(t, boom, e.Actual)
	require.Nil(t, e.Expected)
	require.Equal(t, "ifError got unwanted exception: boom", e.Message)
	require.True(t, e.GeneratedMessage)
}

func TestDeepEqual(t *testing.T) {
	t.Run("nested structures pass", func(t *testing.T) {
		require.NotPanics(t, func() {
			assert.DeepEqual([]any{1, []any{2, 3}}, []any{1, []any{2, 3}})
			assert.DeepEqual(map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1})
		})
	})

	t.Run("nested mismatch fails", func(t *testing.T) {
		e := assertionError(t, func() {
			assert.DeepEqual([]any{1, []any{2, 3}}, []any{1, []any{2, 4}})
		})
		require.Equal(t, "deepStrictEqual", e.Operator)
	})

	t.Run("operands kept untransformed", func(t *testing.T) {
		actual := map[string]int{"a": 1}
		expected := map[string]int{"a": 2}
		e := assertionError(t, func() { assert.DeepEqual(actual, expected) })
		require.Equal(t, actual, e.Actual)
		require.Equal(t, expected, e.Expected)
	})

	t.Run("generated message is bounded", func(t *testing.T) {
		e := assertionError(t, func() {
			assert.DeepEqual(map[string]int{"a": 1}, map[string]int{"a": 2})
		})
		require.Equal(t, "map[string]int(1) deepStrictEqual map[string]int(1)", e.Message)
	})
}

func TestNotDeepEqual(t *testing.T) {
	require.NotPanics(t, func() {
		assert.NotDeepEqual([]int{1}, []int{2})
	})

	e := assertionError(t, func() { assert.NotDeepEqual([]int{1}, []int{1}) })
	require.Equal(t, "notDeepStrictEqual", e.Operator)
}

func TestEnforce(t *testing.T) {
	require.NotPanics(t, func() { assert.Enforce(true) })

	tests := []struct {
		name string
		call func()
		want string
	}{
		{"bare", func() { assert.Enforce(false) }, "Invalid type for parameter."},
		{"named", func() { assert.Enforce(false, "timeout") }, `"timeout" is invalid.`},
		{"typed", func() { assert.Enforce(false, "timeout", "duration") }, `"timeout" must be a duration.`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := recovered(t, tt.call)
			te, ok := v.(*assert.TypeError)
			require.True(t, ok, "panic value is %T, want *assert.TypeError", v)
			require.Equal(t, tt.want, te.Message)
		})
	}
}

func TestCheckRange(t *testing.T) {
	require.NotPanics(t, func() { assert.CheckRange(1 > 0) })

	v := recovered(t, func() { assert.CheckRange(false, "offset") })
	re, ok := v.(*assert.RangeError)
	require.True(t, ok, "panic value is %T, want *assert.RangeError", v)
	require.Equal(t, `"offset" is out of range.`, re.Message)

	v = recovered(t, func() { assert.CheckRange(false) })
	re, ok = v.(*assert.RangeError)
	require.True(t, ok)
	require.Equal(t, "Value out of range", re.Message)
}

func TestErrorString(t *testing.T) {
	e := assertionError(t, func() { assert.Fail("broken") })
	require.Equal(t, assert.Code, e.Code)
	require.Equal(t, "AssertionError [ERR_ASSERTION]: broken", e.Error())
}
