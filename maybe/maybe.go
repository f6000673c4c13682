// Package maybe provides a minimal present-or-absent carrier used by the
// decoder combinators to represent values that may legitimately be missing,
// as distinct from values that failed to decode.
package maybe

// Maybe holds either a value (Just) or nothing (Nothing).
type Maybe[T any] struct {
	value T
	ok    bool
}

// Just wraps a present value.
func Just[T any](v T) Maybe[T] { return Maybe[T]{value: v, ok: true} }

// Nothing is the absent value.
func Nothing[T any]() Maybe[T] { return Maybe[T]{} }

// IsJust reports whether a value is present.
func (m Maybe[T]) IsJust() bool { return m.ok }

// IsNothing reports whether the value is absent.
func (m Maybe[T]) IsNothing() bool { return !m.ok }

// Value returns the held value and whether it is present.
func (m Maybe[T]) Value() (T, bool) { return m.value, m.ok }

// OrElse returns the held value, or fallback when absent.
func (m Maybe[T]) OrElse(fallback T) T {
	if m.ok {
		return m.value
	}
	return fallback
}

// Map applies f to a present value and leaves Nothing untouched.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	return Just(f(m.value))
}

// AndThen chains a present value into f and flattens the result.
func AndThen[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	return f(m.value)
}

// Cata folds both cases into a single result.
func Cata[A, B any](m Maybe[A], just func(A) B, nothing func() B) B {
	if m.ok {
		return just(m.value)
	}
	return nothing()
}
