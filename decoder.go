package jsonous

import (
	json "github.com/goccy/go-json"
)

// DecodeFn is the raw form of a decoder: it inspects an untrusted value and
// either produces a typed result or reports why it could not.
type DecodeFn[T any] func(v any) (T, error)

// Decoder converts untrusted, dynamically typed values (typically the result
// of parsing JSON) into well-typed values. Decoders are immutable pure values:
// every combinator returns a new Decoder and never mutates its receiver, so a
// single Decoder is safe to share and to invoke concurrently.
type Decoder[T any] struct {
	fn DecodeFn[T]
}

// New wraps a raw decode function as a Decoder.
func New[T any](fn DecodeFn[T]) Decoder[T] { return Decoder[T]{fn: fn} }

// DecodeAny runs the decoder against an in-memory value.
func (d Decoder[T]) DecodeAny(v any) (T, error) { return d.fn(v) }

// DecodeJSON parses data as JSON and runs the decoder against the result.
// A parse failure is returned as an ordinary error carrying the parser's
// message; DecodeJSON is the only place a parser error enters the error
// channel, and it never panics.
func (d Decoder[T]) DecodeJSON(data []byte) (T, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		var zero T
		return zero, err
	}
	return d.fn(v)
}

// ToAnyFn returns DecodeAny in plain callback form.
func (d Decoder[T]) ToAnyFn() DecodeFn[T] { return d.fn }

// ToJSONFn returns DecodeJSON in plain callback form.
func (d Decoder[T]) ToJSONFn() func(data []byte) (T, error) { return d.DecodeJSON }

// Map transforms the success value of a decoder with a total function. No
// decoding logic belongs in f; a transformation that can itself fail should
// use AndThen instead. Failures pass through unchanged.
func Map[A, B any](d Decoder[A], f func(A) B) Decoder[B] {
	return New(func(v any) (B, error) {
		a, err := d.fn(v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a), nil
	})
}

// AndThen chains decoders. On success f receives the decoded value and
// returns the next decoder, which is run against the original input value,
// not the decoded one. Downstream decoders in a chain therefore see the same
// raw input, which is what lets several fields be pulled out of one object.
// On failure the original error short-circuits.
func AndThen[A, B any](d Decoder[A], f func(A) Decoder[B]) Decoder[B] {
	return New(func(v any) (B, error) {
		a, err := d.fn(v)
		if err != nil {
			var zero B
			return zero, err
		}
		return f(a).fn(v)
	})
}

// OrElse recovers from a failure: f receives the error and returns a fallback
// decoder that is run against the original input. Successes pass through.
func (d Decoder[T]) OrElse(f func(err error) Decoder[T]) Decoder[T] {
	return New(func(v any) (T, error) {
		out, err := d.fn(v)
		if err != nil {
			return f(err).fn(v)
		}
		return out, nil
	})
}

// MapError transforms the error channel and leaves successes untouched.
func (d Decoder[T]) MapError(f func(err error) error) Decoder[T] {
	return New(func(v any) (T, error) {
		out, err := d.fn(v)
		if err != nil {
			return out, f(err)
		}
		return out, nil
	})
}

// Do injects an observer on the success path without altering the result.
// Intended for diagnostics, not control flow.
func (d Decoder[T]) Do(f func(T)) Decoder[T] {
	return New(func(v any) (T, error) {
		out, err := d.fn(v)
		if err == nil {
			f(out)
		}
		return out, err
	})
}

// ElseDo injects an observer on the failure path without altering the result.
func (d Decoder[T]) ElseDo(f func(err error)) Decoder[T] {
	return New(func(v any) (T, error) {
		out, err := d.fn(v)
		if err != nil {
			f(err)
		}
		return out, err
	})
}

// ToAny erases the success type so decoders of different types can share a
// container, e.g. the leaves of a Structure.
func ToAny[T any](d Decoder[T]) Decoder[any] {
	return New(func(v any) (any, error) { return d.fn(v) })
}
