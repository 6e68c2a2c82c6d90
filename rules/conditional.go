package rules

import (
	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

// IfFieldExists applies rule only when d is a map containing field.
func IfFieldExists[T any](field string, rule Rule[T]) Rule[T] {
	return Conditional(func(d dynamic.Dynamic[T]) bool { return d.Has(field) }, rule)
}

// IfFieldMissing applies rule only when d is not a map, or is a map
// without field.
func IfFieldMissing[T any](field string, rule Rule[T]) Rule[T] {
	return Conditional(func(d dynamic.Dynamic[T]) bool { return !d.Has(field) }, rule)
}

// IfFieldEquals applies rule only when field's coerced string value
// equals literalValue. Non-string field values never match.
func IfFieldEquals[T any](field string, literalValue string, rule Rule[T]) Rule[T] {
	return Conditional(func(d dynamic.Dynamic[T]) bool {
		v, ok := d.Get(field).AsString().Result()
		return ok && v == literalValue
	}, rule)
}

// FieldFn is a direct, single-pass edit function used by the
// function-valued conditionals, bypassing rule re-dispatch.
type FieldFn[T any] func(d dynamic.Dynamic[T]) dynamic.Dynamic[T]

// IfFieldExistsFn directly edits d with fn when field is present,
// without going back through the rule pipeline. Prefer this form on
// hot paths (spec §4.5.3).
func IfFieldExistsFn[T any](field string, fn FieldFn[T]) Rule[T] {
	return func(_ typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !d.Has(field) {
			return d
		}
		return fn(d)
	}
}

// IfFieldMissingFn directly edits d with fn when field is absent.
func IfFieldMissingFn[T any](field string, fn FieldFn[T]) Rule[T] {
	return func(_ typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if d.Has(field) {
			return d
		}
		return fn(d)
	}
}

// IfFieldEqualsFn directly edits d with fn when field's string value
// equals literalValue.
func IfFieldEqualsFn[T any](field string, literalValue string, fn FieldFn[T]) Rule[T] {
	return func(_ typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		v, ok := d.Get(field).AsString().Result()
		if !ok || v != literalValue {
			return d
		}
		return fn(d)
	}
}
