package infer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/usestring/vex/pkg/vex"
)

func TestInfer_SingleObject(t *testing.T) {
	sample := []byte(`{"name": "Alice", "age": 30, "active": true}`)

	s, err := Infer(sample)
	require.NoError(t, err)

	// The sample validates against its own inferred schema.
	res := vex.SafeParseJSON(s, sample)
	require.True(t, res.Success, "sample must satisfy its own schema: %v", res.Error)

	// A same-shaped document passes; a wrong-typed one fails with the
	// path to the offending field.
	res = vex.SafeParseJSON(s, []byte(`{"name": "Bob", "age": 25, "active": false}`))
	assert.True(t, res.Success)

	res = vex.SafeParseJSON(s, []byte(`{"name": "Bob", "age": "old", "active": false}`))
	require.False(t, res.Success)
	assert.Equal(t, vex.Path{"age"}, res.Error.Path)
}

func TestInfer_FieldMissingInSomeSamplesBecomesOptional(t *testing.T) {
	s, err := Infer(
		[]byte(`{"id": 1, "nickname": "zip"}`),
		[]byte(`{"id": 2}`),
	)
	require.NoError(t, err)

	assert.True(t, vex.SafeParseJSON(s, []byte(`{"id": 3}`)).Success)
	assert.True(t, vex.SafeParseJSON(s, []byte(`{"id": 3, "nickname": "x"}`)).Success)

	// Present with the wrong type still fails.
	res := vex.SafeParseJSON(s, []byte(`{"id": 3, "nickname": 9}`))
	require.False(t, res.Success)
	assert.Equal(t, vex.Path{"nickname"}, res.Error.Path)

	// The required field stays required.
	assert.False(t, vex.SafeParseJSON(s, []byte(`{"nickname": "x"}`)).Success)
}

func TestInfer_NullFieldBecomesOptional(t *testing.T) {
	s, err := Infer(
		[]byte(`{"id": 1, "note": null}`),
		[]byte(`{"id": 2, "note": "hello"}`),
	)
	require.NoError(t, err)

	assert.True(t, vex.SafeParseJSON(s, []byte(`{"id": 3, "note": null}`)).Success)
	assert.True(t, vex.SafeParseJSON(s, []byte(`{"id": 3, "note": "x"}`)).Success)
	assert.False(t, vex.SafeParseJSON(s, []byte(`{"id": 3, "note": 1}`)).Success)
}

func TestInfer_AllNullFieldIsDropped(t *testing.T) {
	s, err := Infer([]byte(`{"id": 1, "note": null}`))
	require.NoError(t, err)

	obj, ok := s.(*vex.ObjectSchema)
	require.True(t, ok)
	require.Len(t, obj.Fields(), 1)
	assert.Equal(t, "id", obj.Fields()[0].Name)

	// Undeclared keys pass through, so any note value is accepted.
	assert.True(t, vex.SafeParseJSON(s, []byte(`{"id": 2, "note": 42}`)).Success)
}

func TestInfer_ConflictingTypes(t *testing.T) {
	_, err := Infer(
		[]byte(`{"v": 1}`),
		[]byte(`{"v": "one"}`),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conflicting types")
	assert.Contains(t, err.Error(), `field "v"`)
}

func TestInfer_ArrayElementsMerge(t *testing.T) {
	s, err := Infer([]byte(`{"items": [
		{"id": 1, "tag": "a"},
		{"id": 2}
	]}`))
	require.NoError(t, err)

	// tag is optional because one element lacked it.
	assert.True(t, vex.SafeParseJSON(s, []byte(`{"items": [{"id": 9}]}`)).Success)

	res := vex.SafeParseJSON(s, []byte(`{"items": [{"id": 9}, {"id": "x"}]}`))
	require.False(t, res.Success)
	assert.Equal(t, vex.Path{"items", 1, "id"}, res.Error.Path)
}

func TestInfer_EmptyArray(t *testing.T) {
	s, err := Infer([]byte(`{"items": []}`))
	require.NoError(t, err)

	// No elements seen: element shapes stay unconstrained.
	assert.True(t, vex.SafeParseJSON(s, []byte(`{"items": [1, "two", true]}`)).Success)
	assert.False(t, vex.SafeParseJSON(s, []byte(`{"items": "nope"}`)).Success)
}

func TestInfer_TopLevelScalar(t *testing.T) {
	s, err := Infer([]byte(`"hello"`))
	require.NoError(t, err)
	assert.True(t, s.SafeParse("world").Success)
	assert.False(t, s.SafeParse(float64(1)).Success)
}

func TestInfer_NullableAcrossSamples(t *testing.T) {
	s, err := Infer([]byte(`null`), []byte(`"x"`))
	require.NoError(t, err)
	assert.True(t, s.SafeParse(nil).Success)
	assert.True(t, s.SafeParse("y").Success)
	assert.False(t, s.SafeParse(float64(1)).Success)
}

func TestInfer_NullOnlySamples(t *testing.T) {
	_, err := Infer([]byte(`null`))
	require.Error(t, err)
}

func TestInfer_NoSamples(t *testing.T) {
	_, err := Infer()
	require.Error(t, err)
}

func TestInfer_LargeUniformArrayUsesMemo(t *testing.T) {
	in, err := New()
	require.NoError(t, err)

	items := make([]any, 0, 1000)
	for i := 0; i < 1000; i++ {
		items = append(items, map[string]any{
			"id":   float64(i),
			"name": fmt.Sprintf("item-%d", i),
		})
	}

	s, err := in.InferValues(map[string]any{"items": items})
	require.NoError(t, err)

	res := s.SafeParse(map[string]any{"items": []any{
		map[string]any{"id": float64(1), "name": "ok"},
	}})
	assert.True(t, res.Success)

	res = s.SafeParse(map[string]any{"items": []any{
		map[string]any{"id": float64(1), "name": 2},
	}})
	assert.False(t, res.Success)
}

func TestFingerprint(t *testing.T) {
	// Same shape, different values.
	a := map[string]any{"id": float64(1), "name": "a"}
	b := map[string]any{"name": "b", "id": float64(2)}
	assert.Equal(t, Fingerprint(a), Fingerprint(b))

	// Different key set.
	c := map[string]any{"id": float64(1)}
	assert.NotEqual(t, Fingerprint(a), Fingerprint(c))

	// Different kind at a key.
	d := map[string]any{"id": "1", "name": "a"}
	assert.NotEqual(t, Fingerprint(a), Fingerprint(d))

	// Nesting matters.
	assert.NotEqual(t, Fingerprint([]any{float64(1)}), Fingerprint([]any{[]any{float64(1)}}))
}
