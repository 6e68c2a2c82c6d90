package dynamic

import "github.com/aether-framework/aether-datafixers-sub003/typereg"

// TaggedDynamic pairs a Dynamic value with the TypeReference that routes
// it through the fixer engine (spec §3: "data routed through the
// fixer"). The type tag is authoritative for routing; the backend value
// may carry additional tagging fields the engine never inspects.
type TaggedDynamic[T any] struct {
	Type  typereg.TypeReference
	Value Dynamic[T]
}

// NewTaggedDynamic pairs typ with value.
func NewTaggedDynamic[T any](typ typereg.TypeReference, value Dynamic[T]) TaggedDynamic[T] {
	return TaggedDynamic[T]{Type: typ, Value: value}
}

// WithValue returns a copy of t with its Value replaced; Type is
// unchanged.
func (t TaggedDynamic[T]) WithValue(value Dynamic[T]) TaggedDynamic[T] {
	return TaggedDynamic[T]{Type: t.Type, Value: value}
}
