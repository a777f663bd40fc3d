package go118

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional(t *testing.T) {
	t.Parallel()

	t.Run("OrElse matches documented examples", func(t *testing.T) {
		assert.Equal(t, "go", Of("go").OrElse("none"))
		assert.Equal(t, "none", Empty[string]().OrElse("none"))
	})

	t.Run("Get reports presence", func(t *testing.T) {
		v, ok := Of(7).Get()
		require.True(t, ok)
		assert.Equal(t, 7, v)

		_, ok = Empty[int]().Get()
		assert.False(t, ok)
	})

	t.Run("MapOptional transforms present values only", func(t *testing.T) {
		up, ok := MapOptional(Of("go"), strings.ToUpper).Get()
		require.True(t, ok)
		assert.Equal(t, "GO", up)

		assert.False(t, MapOptional(Empty[string](), strings.ToUpper).IsPresent())
	})

	t.Run("Filter drops non-matching values", func(t *testing.T) {
		assert.True(t, Of(4).Filter(func(x int) bool { return x%2 == 0 }).IsPresent())
		assert.False(t, Of(3).Filter(func(x int) bool { return x%2 == 0 }).IsPresent())
	})

	t.Run("OrElseGet is lazy", func(t *testing.T) {
		calls := 0
		supply := func() string { calls++; return "fallback" }

		assert.Equal(t, "present", Of("present").OrElseGet(supply))
		assert.Zero(t, calls, "supplier must not run for present values")

		assert.Equal(t, "fallback", Empty[string]().OrElseGet(supply))
		assert.Equal(t, 1, calls)
	})
}

func TestDemoOptional(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, DemoOptional(&buf))
	out := buf.String()
	assert.Contains(t, out, `lookupRelease(2023): present=true, value="go1.21"`)
	assert.Contains(t, out, `lookupRelease(2025): present=false, value=""`)
	assert.Contains(t, out, "MapOptional(ToUpper): GO1.21")
	assert.Contains(t, out, "absent:   computed-default (supplier calls: 1)")
}

func TestDemoAny(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, DemoAny(&buf))
	assert.Contains(t, buf.String(), "string of length 2")
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   any
		want string
	}{
		{"int", 42, "int: 42"},
		{"string", "go", "string of length 2"},
		{"nil", nil, "nil"},
		{"float", 3.14, "something else: float64"},
		{"slice", []any{1, 2, 3}, "slice with 3 elements"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Describe(tt.in))
		})
	}
}
