package jsonous

import (
	"errors"
	"fmt"
	"reflect"
	"sort"

	json "github.com/goccy/go-json"
)

// Array accepts a JSON array and applies element to every item in order. It
// short-circuits on the first failing element; the error is annotated with
// the element's index and later elements are never evaluated.
func Array[T any](element Decoder[T]) Decoder[[]T] {
	return New(func(v any) ([]T, error) {
		items, ok := asSlice(v)
		if !ok {
			return nil, fmt.Errorf("I expected an array but instead I found %s", SafeStringify(v))
		}
		out := make([]T, 0, len(items))
		for i, item := range items {
			decoded, err := element.DecodeAny(item)
			if err != nil {
				return nil, fmt.Errorf("%w:\nerror found in an array at [%d]", err, i)
			}
			out = append(out, decoded)
		}
		return out, nil
	})
}

// asSlice widens the usual []any wire shape to cover hand-built typed slices.
func asSlice(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, false
	}
	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}
	return items, true
}

// Field requires the input to be an object carrying key name, and applies
// value to what it holds. A missing key and a non-object input produce the
// same error. Failures of the inner decoder are annotated with the field
// name; nested Field calls compose their annotations outward, so the
// innermost name appears first in the final message.
func Field[T any](name string, value Decoder[T]) Decoder[T] {
	return New(func(v any) (T, error) {
		var zero T
		obj, ok := v.(map[string]any)
		if !ok {
			return zero, fmt.Errorf("I expected to find an object with key '%s' but instead I found %s", name, SafeStringify(v))
		}
		raw, ok := obj[name]
		if !ok {
			return zero, fmt.Errorf("I expected to find an object with key '%s' but instead I found %s", name, SafeStringify(v))
		}
		out, err := value.DecodeAny(raw)
		if err != nil {
			return zero, fmt.Errorf("%w:\noccurred in a field named '%s'", err, name)
		}
		return out, nil
	})
}

// At walks path into the input one segment at a time and applies leaf to the
// value found there. Segments are string keys or int indices. When a segment
// cannot be resolved the error reports the path consumed so far together with
// the original root; errors of the leaf decoder itself propagate unwrapped.
func At[T any](path []any, leaf Decoder[T]) Decoder[T] {
	return New(func(v any) (T, error) {
		var zero T
		if v == nil {
			return zero, errors.New("Could not apply 'at' path to an undefined or null value.")
		}
		cur := v
		for i, seg := range path {
			next, ok := lookupSegment(cur, seg)
			if !ok {
				prefix, _ := json.Marshal(path[:i+1])
				return zero, fmt.Errorf("I could not find path '%s' in %s", prefix, SafeStringify(v))
			}
			cur = next
		}
		return leaf.DecodeAny(cur)
	})
}

func lookupSegment(v, seg any) (any, bool) {
	switch key := seg.(type) {
	case string:
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		child, ok := obj[key]
		return child, ok
	case int:
		items, ok := asSlice(v)
		if !ok || key < 0 || key >= len(items) {
			return nil, false
		}
		return items[key], true
	default:
		return nil, false
	}
}

// KeyValuePair is one decoded entry of an object.
type KeyValuePair[T any] struct {
	Key   string
	Value T
}

// KeyValuePairs accepts an object and applies value to every entry,
// short-circuiting on the first failure. Entries are visited and returned in
// sorted key order; Go maps carry no insertion order, so sorting is the only
// deterministic choice.
func KeyValuePairs[T any](value Decoder[T]) Decoder[[]KeyValuePair[T]] {
	return New(func(v any) ([]KeyValuePair[T], error) {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("Expected to find an object and instead found '%s'", SafeStringify(v))
		}
		out := make([]KeyValuePair[T], 0, len(obj))
		for _, k := range sortedKeys(obj) {
			decoded, err := value.DecodeAny(obj[k])
			if err != nil {
				return nil, fmt.Errorf("Key '%s' failed to decode: %w", k, err)
			}
			out = append(out, KeyValuePair[T]{Key: k, Value: decoded})
		}
		return out, nil
	})
}

// Dict is KeyValuePairs folded into a map. Acceptance and failure behavior
// are identical; only the success shape differs.
func Dict[T any](value Decoder[T]) Decoder[map[string]T] {
	return Map(KeyValuePairs(value), func(pairs []KeyValuePair[T]) map[string]T {
		out := make(map[string]T, len(pairs))
		for _, p := range pairs {
			out[p.Key] = p.Value
		}
		return out
	})
}

// ObjectOf decodes every value of an object with value and returns the
// resulting record.
//
// Its per-key failure message reports only the offending raw value, not the
// inner decoder's message, and its rejection wording differs from
// KeyValuePairs. Both quirks are published compatibility contracts and are
// preserved as is.
func ObjectOf[T any](value Decoder[T]) Decoder[map[string]T] {
	return New(func(v any) (map[string]T, error) {
		obj, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("I expected to find an object but instead found '%s'", SafeStringify(v))
		}
		out := make(map[string]T, len(obj))
		for _, k := range sortedKeys(obj) {
			decoded, err := value.DecodeAny(obj[k])
			if err != nil {
				return nil, fmt.Errorf("I expected the value for key %q to be a valid value, but found: %s", k, SafeStringify(obj[k]))
			}
			out[k] = decoded
		}
		return out, nil
	})
}

func sortedKeys(obj map[string]any) []string {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
