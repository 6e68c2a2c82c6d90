package rules

import (
	"fmt"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/result"
	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

func dispatches[T any](target typereg.TypeReference, ref typereg.TypeReference, d dynamic.Dynamic[T]) bool {
	return d.IsMap() && ref.Equal(target)
}

// TransformField replaces field's value with f(value); a missing field
// is a no-op.
func TransformField[T any](target typereg.TypeReference, field string, f func(dynamic.Dynamic[T]) dynamic.Dynamic[T]) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !dispatches(target, ref, d) || !d.Has(field) {
			return d
		}
		return d.Set(field, f(d.Get(field)))
	}
}

// Transform replaces the whole dynamic value by f(value).
func Transform[T any](target typereg.TypeReference, f func(dynamic.Dynamic[T]) dynamic.Dynamic[T]) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !ref.Equal(target) {
			return d
		}
		return f(d)
	}
}

// AddField sets name to producer(root) only if name is currently absent.
func AddField[T any](target typereg.TypeReference, name string, producer func(dynamic.Dynamic[T]) dynamic.Dynamic[T]) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !dispatches(target, ref, d) || d.Has(name) {
			return d
		}
		return d.Set(name, producer(d))
	}
}

// SetField always sets name to value.
func SetField[T any](target typereg.TypeReference, name string, value dynamic.Dynamic[T]) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !dispatches(target, ref, d) {
			return d
		}
		return d.Set(name, value)
	}
}

// RemoveField removes name; a missing field is a no-op.
func RemoveField[T any](target typereg.TypeReference, name string) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !dispatches(target, ref, d) {
			return d
		}
		return d.Remove(name)
	}
}

// RemoveFields removes every name in names, sequentially.
func RemoveFields[T any](target typereg.TypeReference, names ...string) Rule[T] {
	rs := make([]Rule[T], len(names))
	for i, n := range names {
		rs[i] = RemoveField[T](target, n)
	}
	return Seq(rs...)
}

// RenameFieldChecked moves the value at old to new if old exists and
// new does not; if new already exists, it returns a field-collision
// error and leaves d unchanged.
func RenameFieldChecked[T any](target typereg.TypeReference, old, new string) CheckedRule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) (dynamic.Dynamic[T], error) {
		if !dispatches(target, ref, d) || !d.Has(old) {
			return d, nil
		}
		if d.Has(new) {
			return d, fmt.Errorf("field-collision: rename_field %q -> %q", old, new)
		}
		value := d.Get(old)
		return d.Remove(old).Set(new, value), nil
	}
}

// RenameField is the lenient Rule form of RenameFieldChecked: a
// collision leaves d unchanged instead of surfacing an error. Use
// RenameFieldChecked directly (or ToRule with a non-nil onError) when
// the caller needs to observe the collision.
func RenameField[T any](target typereg.TypeReference, old, new string) Rule[T] {
	return ToRule(RenameFieldChecked[T](target, old, new), nil)
}

// RenameFields applies RenameField for every (old, new) pair in the
// supplied map, sequentially, with identical collision handling.
func RenameFields[T any](target typereg.TypeReference, renames map[string]string) Rule[T] {
	rs := make([]Rule[T], 0, len(renames))
	for old, new := range renames {
		rs = append(rs, RenameField[T](target, old, new))
	}
	return Seq(rs...)
}

// RenameFieldFold is RenameField with Unicode-aware case-insensitive
// matching of old against root's existing keys (golang.org/x/text/cases,
// typereg.NormalizeFieldName), for data sources that vary a field's
// casing across versions (e.g. "HP" in one export, "hp" in another). The
// written key is new verbatim; the search for old folds case.
func RenameFieldFold[T any](target typereg.TypeReference, old, new string) Rule[T] {
	foldedOld := typereg.NormalizeFieldName(old, typereg.CaseFold)
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !dispatches(target, ref, d) {
			return d
		}
		entries, ok := d.AsMapStream().Result()
		if !ok {
			return d
		}
		for _, e := range entries {
			key, ok := e.Key.AsString().Result()
			if !ok || typereg.NormalizeFieldName(key, typereg.CaseFold) != foldedOld {
				continue
			}
			if key == new || d.Has(new) {
				return d
			}
			value := d.Get(key)
			return d.Remove(key).Set(new, value)
		}
		return d
	}
}

// GroupFieldsChecked builds a new map containing each of fields (removed
// from root) and sets it at targetField. If targetField already exists,
// it returns a field-collision error and leaves d unchanged.
func GroupFieldsChecked[T any](target typereg.TypeReference, targetField string, fields ...string) CheckedRule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) (dynamic.Dynamic[T], error) {
		if !dispatches(target, ref, d) {
			return d, nil
		}
		if d.Has(targetField) {
			return d, fmt.Errorf("field-collision: group_fields target %q", targetField)
		}
		group := d.EmptyMap()
		out := d
		for _, f := range fields {
			if !out.Has(f) {
				continue
			}
			group = group.Set(f, out.Get(f))
			out = out.Remove(f)
		}
		return out.Set(targetField, group), nil
	}
}

// GroupFields is the lenient Rule form of GroupFieldsChecked.
func GroupFields[T any](target typereg.TypeReference, targetField string, fields ...string) Rule[T] {
	return ToRule(GroupFieldsChecked[T](target, targetField, fields...), nil)
}

// FlattenFieldChecked is the inverse of GroupFields: root becomes
// merge(root without field, root.field as map). A collision between
// field's contents and a pre-existing top-level key returns a
// field-collision error and leaves d unchanged.
func FlattenFieldChecked[T any](target typereg.TypeReference, field string) CheckedRule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) (dynamic.Dynamic[T], error) {
		if !dispatches(target, ref, d) || !d.Has(field) {
			return d, nil
		}
		nested := d.Get(field)
		if !nested.IsMap() {
			return d, nil
		}
		rest := d.Remove(field)
		nestedFields, ok := nested.AsMapStream().Result()
		if !ok {
			return d, nil
		}
		for _, nf := range nestedFields {
			key, ok := nf.Key.AsString().Result()
			if !ok {
				continue
			}
			if rest.Has(key) {
				return d, fmt.Errorf("field-collision: flatten_field %q key %q", field, key)
			}
		}
		merged, err := rest.TryMerge(nested)
		if err != nil {
			return d, err
		}
		return merged, nil
	}
}

// FlattenField is the lenient Rule form of FlattenFieldChecked.
func FlattenField[T any](target typereg.TypeReference, field string) Rule[T] {
	return ToRule(FlattenFieldChecked[T](target, field), nil)
}

// SwapFields exchanges the values at fieldA and fieldB; if either is
// absent, d is returned unchanged. The exchange is built from
// result.Pair's Swap so the two sibling values travel together as a
// single unit rather than as two independent Get/Set calls.
func SwapFields[T any](target typereg.TypeReference, fieldA, fieldB string) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !dispatches(target, ref, d) || !d.Has(fieldA) || !d.Has(fieldB) {
			return d
		}
		swapped := result.MakePair(d.Get(fieldA), d.Get(fieldB)).Swap()
		return d.Set(fieldA, swapped.First).Set(fieldB, swapped.Second)
	}
}

// MoveField reads srcPath, writes it at dstPath (creating intermediate
// maps as needed), and removes srcPath.
func MoveField[T any](target typereg.TypeReference, srcPath, dstPath string) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !dispatches(target, ref, d) {
			return d
		}
		value := d.GetAt(srcPath)
		if value.IsNull() {
			return d
		}
		return d.SetAt(dstPath, value).RemoveAt(srcPath)
	}
}

// CopyField is the non-destructive counterpart of MoveField: src is
// left untouched.
func CopyField[T any](target typereg.TypeReference, src, dst string) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !dispatches(target, ref, d) {
			return d
		}
		value := d.GetAt(src)
		if value.IsNull() {
			return d
		}
		return d.SetAt(dst, value)
	}
}

// TransformFieldAt is the path variant of TransformField: edits at a
// non-existent path are no-ops.
func TransformFieldAt[T any](target typereg.TypeReference, path string, f func(dynamic.Dynamic[T]) dynamic.Dynamic[T]) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !ref.Equal(target) {
			return d
		}
		current := d.GetAt(path)
		if current.IsNull() {
			return d
		}
		return d.SetAt(path, f(current))
	}
}

// RenameFieldAt reads oldPath and writes it at newPath, removing
// oldPath; a missing oldPath is a no-op.
func RenameFieldAt[T any](target typereg.TypeReference, oldPath, newPath string) Rule[T] {
	return MoveField[T](target, oldPath, newPath)
}

// RemoveFieldAt removes the value at path; a missing path is a no-op.
func RemoveFieldAt[T any](target typereg.TypeReference, path string) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !ref.Equal(target) {
			return d
		}
		return d.RemoveAt(path)
	}
}

// AddFieldAt sets path to producer(root) only if path is currently
// absent, creating intermediate maps as needed.
func AddFieldAt[T any](target typereg.TypeReference, path string, producer func(dynamic.Dynamic[T]) dynamic.Dynamic[T]) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !ref.Equal(target) {
			return d
		}
		if !d.GetAt(path).IsNull() {
			return d
		}
		return d.SetAt(path, producer(d))
	}
}
