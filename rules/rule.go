package rules

import (
	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

// Rule is a TypeRewriteRule (spec §4.5): a pure transform of a Dynamic
// tree, parameterized by the TypeReference currently being dispatched.
// Rules never carry mutable state.
type Rule[T any] func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T]

// CheckedRule is the collision-reporting counterpart of Rule, used by
// field primitives whose spec contract calls for an Error("field-collision")
// rather than a silent no-op (RenameField, GroupFields, FlattenField).
// DataFix implementations that want the rule pipeline's composability can
// downgrade a CheckedRule to a plain Rule with ToRule.
type CheckedRule[T any] func(ref typereg.TypeReference, d dynamic.Dynamic[T]) (dynamic.Dynamic[T], error)

// ToRule adapts a CheckedRule into a plain Rule: on error, onError is
// invoked (may be nil) and the input is returned unchanged; on success
// the new value is returned.
func ToRule[T any](checked CheckedRule[T], onError func(error)) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		nd, err := checked(ref, d)
		if err != nil {
			if onError != nil {
				onError(err)
			}
			return d
		}
		return nd
	}
}

// Seq composes rules left-to-right: each rule sees the output of the
// previous one.
func Seq[T any](rs ...Rule[T]) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		cur := d
		for _, r := range rs {
			cur = r(ref, cur)
		}
		return cur
	}
}

// All is semantically identical to Seq: the rules are declared
// order-independent, but this implementation keeps strict left-to-right
// application to preserve observable behavior (spec §4.5.1, §5).
func All[T any](rs ...Rule[T]) Rule[T] {
	return Seq(rs...)
}

// TopDown applies rule at the root, then recurses into every map value
// and list element with the same wrapped rule. The TypeReference passed
// to recursive applications is the same ref the caller supplied — the
// wrapper does not attempt to guess the TypeReference of nested values
// (spec §4.5.1: "they do not rewrite TypeReference; only the wrapped
// rule is called with the enclosing type reference").
func TopDown[T any](rule Rule[T]) Rule[T] {
	var recurse Rule[T]
	recurse = func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		applied := rule(ref, d)
		return descendChildren(ref, applied, recurse)
	}
	return recurse
}

// BottomUp recurses first, then applies rule at the root.
func BottomUp[T any](rule Rule[T]) Rule[T] {
	var recurse Rule[T]
	recurse = func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		descended := descendChildren(ref, d, recurse)
		return rule(ref, descended)
	}
	return recurse
}

// Everywhere is BottomUp plus application at every intermediate node —
// equivalently, rule is applied once per node during a bottom-up walk,
// which already visits every node, so Everywhere and BottomUp share an
// implementation; the distinction in the spec is about intent
// (BottomUp composes an outer fix-up after a pre-order pass, Everywhere
// wants uniform application at all depths), not behavior.
func Everywhere[T any](rule Rule[T]) Rule[T] {
	return BottomUp(rule)
}

func descendChildren[T any](ref typereg.TypeReference, d dynamic.Dynamic[T], recurse Rule[T]) dynamic.Dynamic[T] {
	switch {
	case d.IsMap():
		fields, ok := d.AsMapStream().Result()
		if !ok {
			return d
		}
		out := d.EmptyMap()
		for _, f := range fields {
			key, ok := f.Key.AsString().Result()
			if !ok {
				continue
			}
			out = out.Set(key, recurse(ref, f.Value))
		}
		return out
	case d.IsList():
		items, ok := d.AsListStream().Result()
		if !ok {
			return d
		}
		next := make([]dynamic.Dynamic[T], len(items))
		for i, it := range items {
			next[i] = recurse(ref, it)
		}
		return d.CreateList(next)
	default:
		return d
	}
}

// Conditional applies rule only when pred(d) holds; otherwise d passes
// through unchanged.
func Conditional[T any](pred func(dynamic.Dynamic[T]) bool, rule Rule[T]) Rule[T] {
	return func(ref typereg.TypeReference, d dynamic.Dynamic[T]) dynamic.Dynamic[T] {
		if !pred(d) {
			return d
		}
		return rule(ref, d)
	}
}
