package dynamic

import (
	"strings"

	"github.com/aether-framework/aether-datafixers-sub003/dferrors"
	"github.com/aether-framework/aether-datafixers-sub003/result"
)

// Dynamic is the value-plus-ops pair with the format-agnostic
// navigation/editing API described in spec §4.3. It is immutable: every
// mutator method returns a new Dynamic and never touches the receiver's
// backing value.
type Dynamic[T any] struct {
	Ops   Ops[T]
	Value T
}

// New wraps a backend value with its ops.
func New[T any](ops Ops[T], value T) Dynamic[T] {
	return Dynamic[T]{Ops: ops, Value: value}
}

// Empty returns the backend's canonical empty/null Dynamic, used
// throughout as the "missing" sentinel (spec §9: "Null-as-missing becomes
// a dedicated missing Dynamic... constructed by ops.empty()").
func Empty[T any](ops Ops[T]) Dynamic[T] {
	return Dynamic[T]{Ops: ops, Value: ops.Empty()}
}

func (d Dynamic[T]) sameOps(other Dynamic[T]) bool {
	return anyEqual(d.Ops, other.Ops)
}

// anyEqual compares two Ops values for referential/value identity without
// requiring Ops to declare comparability explicitly; concrete Ops
// implementations are expected to be comparable (empty structs or
// pointers), matching the stateless-or-threadsafe contract of spec §4.2.
func anyEqual[T any](a, b Ops[T]) bool {
	return a == b
}

// IsNull reports whether d holds the backend's null/empty shape.
func (d Dynamic[T]) IsNull() bool { return d.Ops.TypeOf(d.Value) == KindNull }

// IsMap reports whether d holds a map.
func (d Dynamic[T]) IsMap() bool { return d.Ops.IsMap(d.Value) }

// IsList reports whether d holds a list.
func (d Dynamic[T]) IsList() bool { return d.Ops.IsList(d.Value) }

// AsBool coerces d to a bool.
func (d Dynamic[T]) AsBool() result.DataResult[bool] { return d.Ops.GetBool(d.Value) }

// AsInt32 coerces d to an int32.
func (d Dynamic[T]) AsInt32() result.DataResult[int32] { return d.Ops.GetInt(d.Value) }

// AsInt64 coerces d to an int64.
func (d Dynamic[T]) AsInt64() result.DataResult[int64] { return d.Ops.GetLong(d.Value) }

// AsFloat32 coerces d to a float32.
func (d Dynamic[T]) AsFloat32() result.DataResult[float32] { return d.Ops.GetFloat(d.Value) }

// AsFloat64 coerces d to a float64.
func (d Dynamic[T]) AsFloat64() result.DataResult[float64] { return d.Ops.GetDouble(d.Value) }

// AsString coerces d to a string.
func (d Dynamic[T]) AsString() result.DataResult[string] { return d.Ops.GetString(d.Value) }

// AsListStream streams d's elements as Dynamics, in backend order.
func (d Dynamic[T]) AsListStream() result.DataResult[[]Dynamic[T]] {
	return result.Map(d.Ops.GetListStream(d.Value), func(items []T) []Dynamic[T] {
		out := make([]Dynamic[T], len(items))
		for i, it := range items {
			out[i] = Dynamic[T]{Ops: d.Ops, Value: it}
		}
		return out
	})
}

// MapField is one (key, value) entry streamed by AsMapStream, both
// projected back to Dynamic so callers never touch the raw backend type.
type MapField[T any] struct {
	Key   Dynamic[T]
	Value Dynamic[T]
}

// AsMapStream streams d's entries as (key, value) Dynamic pairs.
func (d Dynamic[T]) AsMapStream() result.DataResult[[]MapField[T]] {
	return result.Map(d.Ops.GetMapEntries(d.Value), func(entries []MapEntry[T]) []MapField[T] {
		out := make([]MapField[T], len(entries))
		for i, e := range entries {
			out[i] = MapField[T]{Key: Dynamic[T]{Ops: d.Ops, Value: e.Key}, Value: Dynamic[T]{Ops: d.Ops, Value: e.Value}}
		}
		return out
	})
}

// Has reports whether d is a map containing field.
func (d Dynamic[T]) Has(field string) bool {
	if !d.IsMap() {
		return false
	}
	_, ok := d.Ops.GetMapValue(d.Value, d.Ops.CreateString(field)).Result()
	return ok
}

// Get returns the Dynamic at field, or the backend's empty Dynamic if
// absent or d is not a map. Get never fails — later As* coercions may.
func (d Dynamic[T]) Get(field string) Dynamic[T] {
	if !d.IsMap() {
		return Empty(d.Ops)
	}
	v, ok := d.Ops.GetMapValue(d.Value, d.Ops.CreateString(field)).Result()
	if !ok {
		return Empty(d.Ops)
	}
	return Dynamic[T]{Ops: d.Ops, Value: v}
}

// TrySet sets field to value, returning a structured error if d and value
// come from different backends (spec §7 IncompatibleOps). If d is not
// currently a map (including the null/empty shape), a fresh map is
// created to hold field — this is what lets add_field_at and move_field
// create intermediate maps on the way to a leaf (spec §4.5.2).
func (d Dynamic[T]) TrySet(field string, value Dynamic[T]) (Dynamic[T], error) {
	if !d.sameOps(value) {
		return d, &dferrors.IncompatibleOpsError{Operation: "set"}
	}
	base := d.Value
	if !d.Ops.IsMap(base) {
		base = d.Ops.CreateMap(nil)
	}
	nv, ok := d.Ops.Set(base, d.Ops.CreateString(field), value.Value).Result()
	if !ok {
		return d, &dferrors.IncompatibleOpsError{Operation: "set"}
	}
	return Dynamic[T]{Ops: d.Ops, Value: nv}, nil
}

// Set is the no-fail convenience form of TrySet: on error it returns d
// unchanged.
func (d Dynamic[T]) Set(field string, value Dynamic[T]) Dynamic[T] {
	nd, err := d.TrySet(field, value)
	if err != nil {
		return d
	}
	return nd
}

// Remove deletes field from d. Missing field or non-map d is a no-op.
func (d Dynamic[T]) Remove(field string) Dynamic[T] {
	if !d.IsMap() {
		return d
	}
	nv, ok := d.Ops.Remove(d.Value, d.Ops.CreateString(field)).Result()
	if !ok {
		return d
	}
	return Dynamic[T]{Ops: d.Ops, Value: nv}
}

// Update replaces field's value with fn(currentValue). If field is absent,
// fn receives the backend's empty Dynamic.
func (d Dynamic[T]) Update(field string, fn func(Dynamic[T]) Dynamic[T]) Dynamic[T] {
	return d.Set(field, fn(d.Get(field)))
}

// TryMerge shallow right-biased merges other into d (spec §4.2
// merge_to_map). It errors if either side is not a map, or the two
// Dynamics use different backends.
func (d Dynamic[T]) TryMerge(other Dynamic[T]) (Dynamic[T], error) {
	if !d.sameOps(other) {
		return d, &dferrors.IncompatibleOpsError{Operation: "merge"}
	}
	r := d.Ops.MergeToMap(d.Value, other.Value)
	nv, ok := r.Result()
	if !ok {
		return d, &dferrors.MergeConflictError{Side: mergeConflictSide(d, other)}
	}
	return Dynamic[T]{Ops: d.Ops, Value: nv}, nil
}

func mergeConflictSide[T any](left, right Dynamic[T]) string {
	leftOK, rightOK := left.IsMap(), right.IsMap()
	switch {
	case !leftOK && !rightOK:
		return "both"
	case !leftOK:
		return "left"
	default:
		return "right"
	}
}

// Merge is the no-fail convenience form of TryMerge: on error it returns d
// unchanged.
func (d Dynamic[T]) Merge(other Dynamic[T]) Dynamic[T] {
	nd, err := d.TryMerge(other)
	if err != nil {
		return d
	}
	return nd
}

// EmptyMap returns a fresh empty map Dynamic over d's backend.
func (d Dynamic[T]) EmptyMap() Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateMap(nil)}
}

// CreateString returns a string Dynamic over d's backend.
func (d Dynamic[T]) CreateString(s string) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateString(s)}
}

// CreateBool returns a bool Dynamic over d's backend.
func (d Dynamic[T]) CreateBool(b bool) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateBool(b)}
}

// CreateInt returns an int32 Dynamic over d's backend.
func (d Dynamic[T]) CreateInt(i int32) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateInt(i)}
}

// CreateLong returns an int64 Dynamic over d's backend.
func (d Dynamic[T]) CreateLong(i int64) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateLong(i)}
}

// CreateFloat returns a float32 Dynamic over d's backend.
func (d Dynamic[T]) CreateFloat(f float32) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateFloat(f)}
}

// CreateDouble returns a float64 Dynamic over d's backend.
func (d Dynamic[T]) CreateDouble(f float64) Dynamic[T] {
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateDouble(f)}
}

// CreateList returns a list Dynamic over d's backend.
func (d Dynamic[T]) CreateList(items []Dynamic[T]) Dynamic[T] {
	raw := make([]T, len(items))
	for i, it := range items {
		raw[i] = it.Value
	}
	return Dynamic[T]{Ops: d.Ops, Value: d.Ops.CreateList(raw)}
}

// SplitPath splits a dotted path into its segments, rejecting leading,
// trailing, or consecutive dots (spec §4.3 "empty segments... are
// errors (InvalidPath)").
func SplitPath(path string) ([]string, error) {
	if path == "" {
		return nil, &dferrors.InvalidPathError{Path: path, Reason: "empty path"}
	}
	segments := strings.Split(path, ".")
	for _, s := range segments {
		if s == "" {
			return nil, &dferrors.InvalidPathError{Path: path, Reason: "empty segment"}
		}
	}
	return segments, nil
}

// GetAt navigates a dotted path, returning the backend's empty Dynamic if
// any segment is missing or the path syntax is invalid.
func (d Dynamic[T]) GetAt(path string) Dynamic[T] {
	segments, err := SplitPath(path)
	if err != nil {
		return Empty(d.Ops)
	}
	cur := d
	for _, seg := range segments {
		cur = cur.Get(seg)
	}
	return cur
}

// GetPath is an alias for GetAt, named to match spec §4.3's get_path.
func (d Dynamic[T]) GetPath(path string) Dynamic[T] { return d.GetAt(path) }

// SetAt writes value at a dotted path, creating intermediate maps as
// needed. An invalid path leaves d unchanged.
func (d Dynamic[T]) SetAt(path string, value Dynamic[T]) Dynamic[T] {
	segments, err := SplitPath(path)
	if err != nil {
		return d
	}
	return setAtSegments(d, segments, value)
}

func setAtSegments[T any](d Dynamic[T], segments []string, value Dynamic[T]) Dynamic[T] {
	if len(segments) == 1 {
		return d.Set(segments[0], value)
	}
	head, rest := segments[0], segments[1:]
	child := d.Get(head)
	return d.Set(head, setAtSegments(child, rest, value))
}

// RemoveAt removes the value at a dotted path. An invalid path, or a path
// that does not resolve to an existing parent map, leaves d unchanged.
func (d Dynamic[T]) RemoveAt(path string) Dynamic[T] {
	segments, err := SplitPath(path)
	if err != nil {
		return d
	}
	return removeAtSegments(d, segments)
}

func removeAtSegments[T any](d Dynamic[T], segments []string) Dynamic[T] {
	if len(segments) == 1 {
		return d.Remove(segments[0])
	}
	head, rest := segments[0], segments[1:]
	if !d.Has(head) {
		return d
	}
	child := d.Get(head)
	return d.Set(head, removeAtSegments(child, rest))
}
