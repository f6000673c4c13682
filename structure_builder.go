package jsonous

import (
	"sort"
)

// Structure describes the shape of an object decoder declaratively: each key
// maps to either a leaf decoder or a nested Structure of the same form. The
// node kinds are an explicit sealed variant rather than runtime type
// sniffing, so a malformed structure fails to build at compile time.
type Structure map[string]StructureNode

// StructureNode is either Leaf or Nested.
type StructureNode interface {
	structureNode()
}

type leafNode struct {
	dec Decoder[any]
}

func (leafNode) structureNode() {}

type nestedNode struct {
	structure Structure
}

func (nestedNode) structureNode() {}

// Leaf marks a Structure entry decoded by d.
func Leaf[T any](d Decoder[T]) StructureNode { return leafNode{dec: ToAny(d)} }

// Nested marks a Structure entry that is itself an object described by s.
func Nested(s Structure) StructureNode { return nestedNode{structure: s} }

// FromStructure folds a Structure into a single Scope decoder: every key
// becomes a Field lookup assigned into the scope, nested structures
// recursively. An empty structure decodes any input to an empty scope. Keys
// are folded in sorted order so a multi-field failure is reported
// deterministically.
func FromStructure(structure Structure) Decoder[Scope] {
	return FromStructureWithKeys(structure, func(key string) string { return key })
}

// FromStructureWithKeys is FromStructure with source-field renaming:
// keyToLookup rewrites the key used to look the value up in the input, while
// the output scope always keeps the structure's own key names. The usual use
// is decoding snake_case input into camelCase scopes.
func FromStructureWithKeys(structure Structure, keyToLookup func(key string) string) Decoder[Scope] {
	keys := make([]string, 0, len(structure))
	for k := range structure {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	dec := Succeed(Scope{})
	for _, key := range keys {
		switch node := structure[key].(type) {
		case leafNode:
			dec = Assign(dec, key, Field(keyToLookup(key), node.dec))
		case nestedNode:
			dec = Assign(dec, key, Field(keyToLookup(key), FromStructureWithKeys(node.structure, keyToLookup)))
		}
	}
	return dec
}
