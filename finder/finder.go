package finder

import (
	"strconv"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
)

// Finder is a path optic over dynamic.Dynamic: a (get, set) pair plus a
// diagnostic id, composed with Then. Every Finder is a pure value.
type Finder[T any] struct {
	ID  string
	get func(root dynamic.Dynamic[T]) dynamic.Dynamic[T]
	set func(root dynamic.Dynamic[T], v dynamic.Dynamic[T]) dynamic.Dynamic[T]
}

// Get applies the finder's read half.
func (f Finder[T]) Get(root dynamic.Dynamic[T]) dynamic.Dynamic[T] { return f.get(root) }

// Set applies the finder's write half.
func (f Finder[T]) Set(root dynamic.Dynamic[T], v dynamic.Dynamic[T]) dynamic.Dynamic[T] {
	return f.set(root, v)
}

// Then composes f with next: get reads through f first then next; set
// updates the sub-value next addresses inside the value f addresses.
func (f Finder[T]) Then(next Finder[T]) Finder[T] {
	return Finder[T]{
		ID: f.ID + "." + next.ID,
		get: func(root dynamic.Dynamic[T]) dynamic.Dynamic[T] {
			return next.get(f.get(root))
		},
		set: func(root dynamic.Dynamic[T], v dynamic.Dynamic[T]) dynamic.Dynamic[T] {
			mid := f.get(root)
			return f.set(root, next.set(mid, v))
		},
	}
}

// Identity is the no-op finder: get returns root, set replaces root
// wholesale with the new value.
func Identity[T any]() Finder[T] {
	return Finder[T]{
		ID:  "$",
		get: func(root dynamic.Dynamic[T]) dynamic.Dynamic[T] { return root },
		set: func(_ dynamic.Dynamic[T], v dynamic.Dynamic[T]) dynamic.Dynamic[T] { return v },
	}
}

// Field addresses a named map entry. get is root.Get(name) (Empty if
// absent or root isn't a map); set is root.Set(name, v).
func Field[T any](name string) Finder[T] {
	return Finder[T]{
		ID:  name,
		get: func(root dynamic.Dynamic[T]) dynamic.Dynamic[T] { return root.Get(name) },
		set: func(root dynamic.Dynamic[T], v dynamic.Dynamic[T]) dynamic.Dynamic[T] {
			return root.Set(name, v)
		},
	}
}

// Index addresses the i-th element of a list. get returns the element
// if root is a list and 0 <= i < len; else Empty. set replaces the
// i-th element; an out-of-bounds index leaves root unchanged.
func Index[T any](i int) Finder[T] {
	return Finder[T]{
		ID: "[" + strconv.Itoa(i) + "]",
		get: func(root dynamic.Dynamic[T]) dynamic.Dynamic[T] {
			items, ok := root.AsListStream().Result()
			if !ok || i < 0 || i >= len(items) {
				return dynamic.Empty(root.Ops)
			}
			return items[i]
		},
		set: func(root dynamic.Dynamic[T], v dynamic.Dynamic[T]) dynamic.Dynamic[T] {
			items, ok := root.AsListStream().Result()
			if !ok || i < 0 || i >= len(items) {
				return root
			}
			next := make([]dynamic.Dynamic[T], len(items))
			copy(next, items)
			next[i] = v
			return root.CreateList(next)
		},
	}
}

// Remainder addresses every map entry whose key is not in excluded.
// get returns a new map containing exactly those entries, or Empty if
// root isn't a map. set replaces the non-excluded entries of root with
// v's entries while preserving the excluded entries verbatim — the
// resolution of the set semantics called out as ambiguous in the
// source material.
func Remainder[T any](excluded ...string) Finder[T] {
	excludedSet := make(map[string]struct{}, len(excluded))
	for _, e := range excluded {
		excludedSet[e] = struct{}{}
	}
	return Finder[T]{
		ID: "remainder",
		get: func(root dynamic.Dynamic[T]) dynamic.Dynamic[T] {
			if !root.IsMap() {
				return dynamic.Empty(root.Ops)
			}
			fields, ok := root.AsMapStream().Result()
			if !ok {
				return dynamic.Empty(root.Ops)
			}
			out := root.EmptyMap()
			for _, f := range fields {
				key, ok := f.Key.AsString().Result()
				if !ok {
					continue
				}
				if _, excl := excludedSet[key]; excl {
					continue
				}
				out = out.Set(key, f.Value)
			}
			return out
		},
		set: func(root dynamic.Dynamic[T], v dynamic.Dynamic[T]) dynamic.Dynamic[T] {
			if !root.IsMap() {
				return root
			}
			preserved := root.EmptyMap()
			fields, ok := root.AsMapStream().Result()
			if ok {
				for _, f := range fields {
					key, ok := f.Key.AsString().Result()
					if !ok {
						continue
					}
					if _, excl := excludedSet[key]; excl {
						preserved = preserved.Set(key, f.Value)
					}
				}
			}
			return preserved.Merge(v)
		},
	}
}
