package jsonous

import (
	"errors"
	"fmt"
	"math"
	"reflect"

	json "github.com/goccy/go-json"
	"golang.org/x/exp/constraints"
)

// Scalar leaf decoders are shared immutable values rather than factories:
// decoders hold no state, so one value serves every caller.

// String accepts a JSON string.
var String = New(func(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("I expected to find a string but instead I found %s", SafeStringify(v))
	}
	return s, nil
})

// Number accepts a JSON number. float64 is the wire type produced by the JSON
// parser; int and json.Number show up from YAML input and hand-built values.
var Number = New(func(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	case json.Number:
		if f, err := n.Float64(); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("I expected to find a number but instead I found %s", SafeStringify(v))
})

// Boolean accepts a JSON boolean.
//
// The message wording differs slightly from String and Number ("found" rather
// than "I found"); the exact text is a published compatibility contract and
// is preserved as is.
var Boolean = New(func(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("I expected to find a boolean but instead found %s", SafeStringify(v))
	}
	return b, nil
})

// Int accepts a JSON number without a fractional part.
var Int = New(func(v any) (int, error) {
	f, err := Number.DecodeAny(v)
	if err != nil || math.Trunc(f) != f || !integralInRange(reflect.ValueOf(0), f) {
		return 0, fmt.Errorf("I expected to find an integer but instead I found %s", SafeStringify(v))
	}
	return int(f), nil
})

// Null accepts only a JSON null.
var Null = New(func(v any) (any, error) {
	if v != nil {
		return nil, fmt.Errorf("I expected to find null but instead I found %s", SafeStringify(v))
	}
	return nil, nil
})

// NumberOf builds a decoder for any numeric target type. Integer targets
// reject fractional input and values outside the target's range rather than
// silently truncating or wrapping.
func NumberOf[T constraints.Integer | constraints.Float]() Decoder[T] {
	var zero T
	rv := reflect.ValueOf(zero)
	isFloat := rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64
	return New(func(v any) (T, error) {
		f, err := Number.DecodeAny(v)
		if err != nil {
			var zero T
			return zero, err
		}
		if !isFloat && (math.Trunc(f) != f || !integralInRange(rv, f)) {
			var zero T
			return zero, fmt.Errorf("I expected to find an integer but instead I found %s", SafeStringify(v))
		}
		return T(f), nil
	})
}

// integralInRange reports whether the integral float f fits the integer kind
// of rv. Converting an out-of-range float is not defined in Go, so the bounds
// must be checked before any conversion happens.
func integralInRange(rv reflect.Value, f float64) bool {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return false
		}
		return !rv.OverflowInt(int64(f))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f < 0 || f >= math.MaxUint64 {
			return false
		}
		return !rv.OverflowUint(uint64(f))
	default:
		return false
	}
}

// Eql succeeds only when the input is strictly equal to expected.
func Eql[T comparable](expected T) Decoder[T] {
	return New(func(v any) (T, error) {
		actual, ok := v.(T)
		if !ok || actual != expected {
			var zero T
			return zero, fmt.Errorf("Expected %v but got %s", expected, SafeStringify(v))
		}
		return actual, nil
	})
}

// StringLiteral is Eql specialized to strings. There is no runtime difference;
// it exists so variant decoders read naturally at the call site.
func StringLiteral(expected string) Decoder[string] { return Eql(expected) }

// Succeed ignores its input and always produces value.
func Succeed[T any](value T) Decoder[T] {
	return New(func(any) (T, error) { return value, nil })
}

// Fail ignores its input and always fails with message.
func Fail[T any](message string) Decoder[T] {
	return New(func(any) (T, error) {
		var zero T
		return zero, errors.New(message)
	})
}
