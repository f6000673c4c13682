package jsonous

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// OneOf tries every decoder against the same input. Every branch is always
// evaluated, even after one succeeds, so that a total failure can report all
// branch messages together; the success returned is the first in list order.
func OneOf[T any](decoders []Decoder[T]) Decoder[T] {
	return New(func(v any) (T, error) {
		var zero T
		if len(decoders) == 0 {
			return zero, errors.New("No decoders specified.")
		}
		var (
			found bool
			first T
			msgs  []string
		)
		for _, d := range decoders {
			out, err := d.DecodeAny(v)
			if err != nil {
				msgs = append(msgs, err.Error())
				continue
			}
			if !found {
				found = true
				first = out
			}
		}
		if found {
			return first, nil
		}
		return zero, errors.New("I found the following problems:\n" + strings.Join(msgs, "\n"))
	})
}

// DiscriminatedUnion decodes a tagged union by reading discriminator as a
// string, selecting the matching variant from mapping, and running that one
// decoder against the full original input. Exactly one variant is ever
// attempted, unlike OneOf; the variant decoder re-validates the tag itself if
// it cares, typically with StringLiteral.
func DiscriminatedUnion[T any](discriminator string, mapping map[string]Decoder[T]) Decoder[T] {
	return New(func(v any) (T, error) {
		var zero T
		tag, err := Field(discriminator, String).DecodeAny(v)
		if err != nil {
			return zero, fmt.Errorf("Missing or invalid discriminator field '%s' in %s", discriminator, SafeStringify(v))
		}
		variant, ok := mapping[tag]
		if !ok {
			tags := make([]string, 0, len(mapping))
			for t := range mapping {
				tags = append(tags, t)
			}
			sort.Strings(tags)
			return zero, fmt.Errorf("Unexpected discriminator value '%s' for field '%s'. Expected one of: %s. Found in: %s",
				tag, discriminator, strings.Join(tags, ", "), SafeStringify(v))
		}
		out, err := variant.DecodeAny(v)
		if err != nil {
			return zero, fmt.Errorf("Error decoding variant with %s='%s': %w", discriminator, tag, err)
		}
		return out, nil
	})
}
