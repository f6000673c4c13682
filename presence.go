package jsonous

import (
	"github.com/kofno/jsonous/maybe"
)

// Maybe runs inner and folds the outcome into a Maybe: any failure at all
// becomes Nothing. This is lossy on purpose; callers cannot tell "absent"
// from "present but malformed". When that distinction matters, use Nullable.
func Maybe[T any](inner Decoder[T]) Decoder[maybe.Maybe[T]] {
	return New(func(v any) (maybe.Maybe[T], error) {
		out, err := inner.DecodeAny(v)
		if err != nil {
			return maybe.Nothing[T](), nil
		}
		return maybe.Just(out), nil
	})
}

// Nullable maps a null input to Nothing without running inner at all. Any
// other input is handed to inner; its failures propagate, so a wrong-typed
// value is still an error rather than being masked.
func Nullable[T any](inner Decoder[T]) Decoder[maybe.Maybe[T]] {
	return New(func(v any) (maybe.Maybe[T], error) {
		if v == nil {
			return maybe.Nothing[T](), nil
		}
		out, err := inner.DecodeAny(v)
		if err != nil {
			return maybe.Nothing[T](), err
		}
		return maybe.Just(out), nil
	})
}
