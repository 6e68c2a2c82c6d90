package rules

import (
	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/dynamic/dynjson"
	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

// Builder records a script of rename/remove/set/transform operations,
// in the style of overlay.Applier's sequential action list, and builds
// a single Rule that applies them in order. Observable effect equals
// the sequential expansion of the recorded operations (spec §4.5.4).
type Builder[T any] struct {
	ops []Rule[T]
}

// NewBuilder returns an empty Builder.
func NewBuilder[T any]() *Builder[T] { return &Builder[T]{} }

// Rename records a RenameField step.
func (b *Builder[T]) Rename(target typereg.TypeReference, old, new string) *Builder[T] {
	b.ops = append(b.ops, RenameField[T](target, old, new))
	return b
}

// Remove records a RemoveField step.
func (b *Builder[T]) Remove(target typereg.TypeReference, name string) *Builder[T] {
	b.ops = append(b.ops, RemoveField[T](target, name))
	return b
}

// Set records a SetField step.
func (b *Builder[T]) Set(target typereg.TypeReference, name string, value dynamic.Dynamic[T]) *Builder[T] {
	b.ops = append(b.ops, SetField[T](target, name, value))
	return b
}

// Transform records a TransformField step.
func (b *Builder[T]) Transform(target typereg.TypeReference, field string, f func(dynamic.Dynamic[T]) dynamic.Dynamic[T]) *Builder[T] {
	b.ops = append(b.ops, TransformField[T](target, field, f))
	return b
}

// Len returns the number of recorded steps.
func (b *Builder[T]) Len() int { return len(b.ops) }

// Build returns a single Rule that applies every recorded step as a
// Seq, in recording order.
func (b *Builder[T]) Build() Rule[T] {
	steps := make([]Rule[T], len(b.ops))
	copy(steps, b.ops)
	return Seq(steps...)
}

// Batch is an alias for Build, named to match spec §4.5.4's batch(ops,
// builder) naming.
func Batch[T any](builder *Builder[T]) Rule[T] {
	return builder.Build()
}

// ApplyJSON decodes raw JSON bytes with the fast segmentio-backed
// dynjson.FastOps, applies builder's recorded script against target in
// one pass, and re-encodes — a single decode/encode cycle for the whole
// batch rather than one per recorded operation, which is what spec
// §4.5.4 means by "applies them as one backend encode/decode cycle".
func ApplyJSON(builder *Builder[any], target typereg.TypeReference, raw []byte) ([]byte, error) {
	decoded, err := dynjson.DecodeFast(raw)
	if err != nil {
		return nil, err
	}
	script := builder.Build()
	updated := script(target, decoded)
	return dynjson.EncodeFast(updated)
}
