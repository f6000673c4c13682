package jsonous

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// DecodeYAML parses data as YAML and runs the decoder against the result.
// Like DecodeJSON, a parse failure is returned through the error channel
// carrying the parser's message.
func (d Decoder[T]) DecodeYAML(data []byte) (T, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, err
	}
	return d.DecodeAny(normalizeYAML(v))
}

// normalizeYAML rewrites map[any]any nodes, which the yaml decoder can emit
// for non-scalar keys, into the map[string]any shape the combinators expect.
func normalizeYAML(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = normalizeYAML(val)
		}
		return t
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = normalizeYAML(val)
		}
		return out
	case []any:
		for i, val := range t {
			t[i] = normalizeYAML(val)
		}
		return t
	default:
		return v
	}
}

// DecodeJSONPath extracts the subtree selected by a gjson path expression
// from raw JSON bytes and runs the decoder against just that subtree. It is
// the cheap counterpart to At when the input is still serialized.
func (d Decoder[T]) DecodeJSONPath(data []byte, path string) (T, error) {
	var zero T
	if !gjson.ValidBytes(data) {
		return zero, errors.New("invalid JSON input")
	}
	res := gjson.GetBytes(data, path)
	if !res.Exists() {
		return zero, fmt.Errorf("I could not find path '%s' in %s", path, string(data))
	}
	return d.DecodeAny(res.Value())
}
