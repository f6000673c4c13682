package jsonous

import (
	json "github.com/goccy/go-json"
)

// Scope is the record accumulated by chained Assign calls. Each step builds a
// new Scope from a shallow copy of the previous one, so earlier decoders in a
// chain never observe later writes.
type Scope map[string]any

// Assign runs other against the same input, then merges its result into the
// scope under key. Assigning a key twice overwrites the earlier value; the
// shadow is deliberate, not an error.
func Assign[B any](d Decoder[Scope], key string, other Decoder[B]) Decoder[Scope] {
	return AssignWith(d, key, func(Scope) Decoder[B] { return other })
}

// AssignWith is Assign where the next decoder may depend on the scope built
// so far, e.g. deriving a field from two earlier ones.
func AssignWith[B any](d Decoder[Scope], key string, f func(scope Scope) Decoder[B]) Decoder[Scope] {
	return AndThen(d, func(scope Scope) Decoder[Scope] {
		return AndThen(f(scope), func(b B) Decoder[Scope] {
			next := make(Scope, len(scope)+1)
			for k, v := range scope {
				next[k] = v
			}
			next[key] = b
			return Succeed(next)
		})
	})
}

// Into converts a scope decoder into a typed struct decoder by marshaling the
// accumulated record and unmarshaling it into T. Field matching follows the
// usual json struct tags.
func Into[T any](d Decoder[Scope]) Decoder[T] {
	return New(func(v any) (T, error) {
		var zero T
		scope, err := d.DecodeAny(v)
		if err != nil {
			return zero, err
		}
		data, err := json.Marshal(scope)
		if err != nil {
			return zero, err
		}
		var out T
		if err := json.Unmarshal(data, &out); err != nil {
			return zero, err
		}
		return out, nil
	})
}
