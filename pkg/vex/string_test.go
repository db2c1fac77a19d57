package vex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestString_TypeCheck(t *testing.T) {
	s := String()

	v, err := s.Parse("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = s.Parse(42)
	require.Error(t, err)
	ve := asError(err)
	assert.Equal(t, CodeValue, ve.Code)
	assert.Equal(t, "Expected string", ve.Message)
	assert.Equal(t, Path{"value"}, ve.Path)
}

func TestString_Constraints(t *testing.T) {
	tests := []struct {
		name    string
		schema  *StringSchema
		input   string
		wantErr string // empty = success
	}{
		{"min ok", String().Min(3), "abc", ""},
		{"min fail", String().Min(3), "ab", "String must have 3 characters"},
		{"max ok", String().Max(3), "abc", ""},
		{"max fail", String().Max(3), "abcd", "String must have at most 3 characters"},
		{"min max ok", String().Min(2).Max(4), "abc", ""},
		{"length ok", String().Length(3), "abc", ""},
		{"length fail short", String().Length(3), "ab", "String must have exactly 3 characters"},
		{"length fail long", String().Length(3), "abcd", "String must have exactly 3 characters"},
		{"includes ok", String().Includes("ell"), "hello", ""},
		{"includes fail", String().Includes("xyz"), "hello", `String must include "xyz"`},
		{"startsWith ok", String().StartsWith("he"), "hello", ""},
		{"startsWith fail", String().StartsWith("lo"), "hello", `String must start with "lo"`},
		{"endsWith ok", String().EndsWith("lo"), "hello", ""},
		{"endsWith fail", String().EndsWith("he"), "hello", `String must end with "he"`},
		{"email ok", String().Email(), "a.user+tag@example.co.uk", ""},
		{"email no at", String().Email(), "user.example.com", "Invalid email"},
		{"email no tld", String().Email(), "user@example", "Invalid email"},
		{"email short tld", String().Email(), "user@example.c", "Invalid email"},
		{"url ok scheme", String().URL(), "https://example.com/path?q=1", ""},
		{"url ok bare host", String().URL(), "example.com", ""},
		{"url fail no dot", String().URL(), "localhost", "Invalid URL"},
		{"url fail spaces", String().URL(), "not a url", "Invalid URL"},
		{"rune counting", String().Min(3), "héllo", ""},
		{"rune counting exact", String().Length(2), "héllo", "String must have exactly 2 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := tt.schema.Parse(tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)
				assert.Equal(t, tt.input, v, "success must return the input unchanged")
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, asError(err).Message)
		})
	}
}

func TestString_MessageOverride(t *testing.T) {
	_, err := String().Min(5, "too short").Parse("ab")
	require.Error(t, err)
	assert.Equal(t, "too short", asError(err).Message)

	_, err = Email("bad address").Parse("nope")
	require.Error(t, err)
	assert.Equal(t, "bad address", asError(err).Message)
}

func TestString_ConstraintOrder(t *testing.T) {
	// Constraints run in attachment order; the first failure wins.
	_, err := String().StartsWith("x").Min(10).Parse("abc")
	require.Error(t, err)
	assert.Equal(t, `String must start with "x"`, asError(err).Message)

	_, err = String().Min(10).StartsWith("x").Parse("abc")
	require.Error(t, err)
	assert.Equal(t, "String must have 10 characters", asError(err).Message)
}

func TestString_LengthConflicts(t *testing.T) {
	ve := schemaPanic(t, func() { String().Length(3).Min(2) })
	assert.Equal(t, CodeSchema, ve.Code)
	assert.Equal(t, "min() cannot be combined with length()", ve.Message)

	ve = schemaPanic(t, func() { String().Length(3).Max(5) })
	assert.Equal(t, CodeSchema, ve.Code)
	assert.Equal(t, "max() cannot be combined with length()", ve.Message)

	ve = schemaPanic(t, func() { String().Min(2).Length(3) })
	assert.Equal(t, CodeSchema, ve.Code)
	assert.Equal(t, "length() cannot be combined with min()", ve.Message)

	ve = schemaPanic(t, func() { String().Max(5).Length(3) })
	assert.Equal(t, CodeSchema, ve.Code)
	assert.Equal(t, "length() cannot be combined with max()", ve.Message)

	// Same-family combinations stay legal.
	require.NotPanics(t, func() { String().Min(2).Max(5) })
	require.NotPanics(t, func() { String().Max(5).Min(2) })
}

func TestString_ConflictIsBuildTime(t *testing.T) {
	// The conflict surfaces at chain time even if Parse never runs,
	// and regardless of how many parses ran before.
	s := String().Length(3)
	_, err := s.Parse("abc")
	require.NoError(t, err)

	ve := schemaPanic(t, func() { s.Min(2) })
	assert.Equal(t, CodeSchema, ve.Code)
}
