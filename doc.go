// Package jsonous provides:
//
//   - Composable, type-safe decoding of untrusted values into Go types via
//     Decoder[T]
//   - Precise, human-readable error text that accumulates positional context as
//     it crosses nested combinators (array index, field name, path prefix)
//   - Structural combinators (Array, Field, At, Dict) and union combinators
//     (OneOf, DiscriminatedUnion, FromStructure)
//   - Presence handling through maybe.Maybe (Maybe vs Nullable)
//
// Design policy:
//
//   - Decoders are immutable values; every combinator returns a new Decoder.
//   - Failures are error values, never panics; only DecodeJSON and DecodeYAML
//     turn a parser failure into an error.
//   - Structural traversal short-circuits (Array, Field, KeyValuePairs), union
//     disambiguation is exhaustive (OneOf).
//
// Typical usage:
//
//	user := jsonous.Into[User](
//		jsonous.Assign(
//			jsonous.Assign(jsonous.Succeed(jsonous.Scope{}),
//				"name", jsonous.Field("name", jsonous.String)),
//			"age", jsonous.Field("age", jsonous.Int)))
//
//	u, err := user.DecodeJSON(data)
package jsonous
