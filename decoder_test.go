package jsonous_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonous "github.com/kofno/jsonous"
)

func TestMapIdentity(t *testing.T) {
	id := jsonous.Map(jsonous.String, func(s string) string { return s })

	for _, input := range []any{"hello", 5.0, nil, true, []any{"x"}} {
		got, gotErr := id.DecodeAny(input)
		want, wantErr := jsonous.String.DecodeAny(input)
		assert.Equal(t, want, got)
		if wantErr == nil {
			assert.NoError(t, gotErr)
		} else {
			require.Error(t, gotErr)
			assert.Equal(t, wantErr.Error(), gotErr.Error())
		}
	}
}

func TestMapTransformsSuccess(t *testing.T) {
	length := jsonous.Map(jsonous.String, func(s string) int { return len(s) })

	n, err := length.DecodeAny("four")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	_, err = length.DecodeAny(4.0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "I expected to find a string")
}

func TestAndThenSeesOriginalInput(t *testing.T) {
	sum := jsonous.AndThen(jsonous.Field("a", jsonous.Number), func(a float64) jsonous.Decoder[float64] {
		return jsonous.AndThen(jsonous.Field("b", jsonous.Number), func(b float64) jsonous.Decoder[float64] {
			return jsonous.Succeed(a + b)
		})
	})

	got, err := sum.DecodeAny(map[string]any{"a": 2.0, "b": 3.0})
	require.NoError(t, err)
	assert.Equal(t, 5.0, got)

	_, err = sum.DecodeAny(map[string]any{"a": 2.0})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'b'")
}

func TestAndThenShortCircuitsOnFailure(t *testing.T) {
	called := false
	d := jsonous.AndThen(jsonous.String, func(string) jsonous.Decoder[string] {
		called = true
		return jsonous.Succeed("never")
	})

	_, err := d.DecodeAny(12.0)
	require.Error(t, err)
	assert.False(t, called)
}

func TestOrElse(t *testing.T) {
	d := jsonous.String.OrElse(func(err error) jsonous.Decoder[string] {
		return jsonous.Succeed("fallback")
	})

	got, err := d.DecodeAny("direct")
	require.NoError(t, err)
	assert.Equal(t, "direct", got)

	got, err = d.DecodeAny(7.0)
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}

func TestOrElseReceivesOriginalError(t *testing.T) {
	var seen error
	d := jsonous.String.OrElse(func(err error) jsonous.Decoder[string] {
		seen = err
		return jsonous.Fail[string]("still bad")
	})

	_, err := d.DecodeAny(nil)
	require.Error(t, err)
	assert.Equal(t, "still bad", err.Error())
	require.Error(t, seen)
	assert.Contains(t, seen.Error(), "I expected to find a string")
}

func TestMapError(t *testing.T) {
	d := jsonous.String.MapError(func(err error) error {
		return errors.New("wrapped: " + err.Error())
	})

	got, err := d.DecodeAny("ok")
	require.NoError(t, err)
	assert.Equal(t, "ok", got)

	_, err = d.DecodeAny(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrapped: I expected to find a string")
}

func TestDoAndElseDo(t *testing.T) {
	var successes []string
	var failures []string
	d := jsonous.String.
		Do(func(s string) { successes = append(successes, s) }).
		ElseDo(func(err error) { failures = append(failures, err.Error()) })

	_, err := d.DecodeAny("seen")
	require.NoError(t, err)
	_, err = d.DecodeAny(1.0)
	require.Error(t, err)

	assert.Equal(t, []string{"seen"}, successes)
	require.Len(t, failures, 1)
	assert.Contains(t, failures[0], "I expected to find a string")
}

func TestToFns(t *testing.T) {
	anyFn := jsonous.String.ToAnyFn()
	got, err := anyFn("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", got)

	jsonFn := jsonous.String.ToJSONFn()
	got, err = jsonFn([]byte(`"quoted"`))
	require.NoError(t, err)
	assert.Equal(t, "quoted", got)
}

func TestDecodeJSONParseFailure(t *testing.T) {
	_, err := jsonous.String.DecodeJSON([]byte(`{"unterminated`))
	require.Error(t, err)
}

func TestDecodeJSONMatchesDecodeAny(t *testing.T) {
	d := jsonous.Field("a", jsonous.Array(jsonous.Number))
	input := map[string]any{"a": []any{1.0, 2.0, 3.0}}

	fromAny, errAny := d.DecodeAny(input)
	fromJSON, errJSON := d.DecodeJSON([]byte(`{"a":[1,2,3]}`))

	require.NoError(t, errAny)
	require.NoError(t, errJSON)
	assert.Equal(t, fromAny, fromJSON)
}
