package jsonous_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonous "github.com/kofno/jsonous"
)

func TestAssignAccumulates(t *testing.T) {
	d := jsonous.Assign(
		jsonous.Assign(jsonous.Succeed(jsonous.Scope{}),
			"x", jsonous.Field("foo", jsonous.Number)),
		"y", jsonous.Field("bar", jsonous.Number))

	got, err := d.DecodeAny(map[string]any{"foo": 1.0, "bar": 2.0})
	require.NoError(t, err)
	assert.Equal(t, jsonous.Scope{"x": 1.0, "y": 2.0}, got)
}

func TestAssignLastWriteWins(t *testing.T) {
	d := jsonous.Assign(
		jsonous.Assign(jsonous.Succeed(jsonous.Scope{}),
			"x", jsonous.Field("foo", jsonous.Number)),
		"x", jsonous.Field("bar", jsonous.Number))

	got, err := d.DecodeAny(map[string]any{"foo": 1.0, "bar": 2.0})
	require.NoError(t, err)
	assert.Equal(t, jsonous.Scope{"x": 2.0}, got)
}

func TestAssignDoesNotMutateEarlierScopes(t *testing.T) {
	var mid jsonous.Scope
	d := jsonous.AssignWith(
		jsonous.Assign(jsonous.Succeed(jsonous.Scope{}),
			"x", jsonous.Field("foo", jsonous.Number)),
		"y", func(scope jsonous.Scope) jsonous.Decoder[float64] {
			mid = scope
			return jsonous.Field("bar", jsonous.Number)
		})

	_, err := d.DecodeAny(map[string]any{"foo": 1.0, "bar": 2.0})
	require.NoError(t, err)
	assert.Equal(t, jsonous.Scope{"x": 1.0}, mid)
	_, hasY := mid["y"]
	assert.False(t, hasY)
}

func TestAssignWithDerivedField(t *testing.T) {
	d := jsonous.AssignWith(
		jsonous.Assign(
			jsonous.Assign(jsonous.Succeed(jsonous.Scope{}),
				"width", jsonous.Field("w", jsonous.Number)),
			"height", jsonous.Field("h", jsonous.Number)),
		"area", func(scope jsonous.Scope) jsonous.Decoder[float64] {
			w := scope["width"].(float64)
			h := scope["height"].(float64)
			return jsonous.Succeed(w * h)
		})

	got, err := d.DecodeAny(map[string]any{"w": 3.0, "h": 4.0})
	require.NoError(t, err)
	assert.Equal(t, 12.0, got["area"])
}

func TestAssignPropagatesFieldErrors(t *testing.T) {
	d := jsonous.Assign(jsonous.Succeed(jsonous.Scope{}),
		"x", jsonous.Field("foo", jsonous.Number))

	_, err := d.DecodeAny(map[string]any{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'foo'")
}

type boundUser struct {
	Name string `json:"name"`
	Age  int    `json:"age"`
}

func TestIntoBindsScopeToStruct(t *testing.T) {
	d := jsonous.Into[boundUser](
		jsonous.Assign(
			jsonous.Assign(jsonous.Succeed(jsonous.Scope{}),
				"name", jsonous.Field("name", jsonous.String)),
			"age", jsonous.Field("age", jsonous.Int)))

	got, err := d.DecodeJSON([]byte(`{"name":"ada","age":36}`))
	require.NoError(t, err)
	assert.Equal(t, boundUser{Name: "ada", Age: 36}, got)

	_, err = d.DecodeJSON([]byte(`{"name":"ada"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'age'")
}
