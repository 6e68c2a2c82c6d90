package fixer

import (
	"fmt"
	"sort"

	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

type registrarEntry[T any] struct {
	fix   DataFix[T]
	index int
}

// FixRegistrar maps TypeReference to an ordered list of fixes (spec
// §3). Registration order is preserved as a tiebreaker for fixes that
// share a FromVersion (spec §4.7 step 4: "break ties by registration
// order").
type FixRegistrar[T any] struct {
	byType  map[typereg.TypeReference][]*registrarEntry[T]
	seen    map[string]struct{}
	counter int
}

// NewFixRegistrar returns an empty FixRegistrar.
func NewFixRegistrar[T any]() *FixRegistrar[T] {
	return &FixRegistrar[T]{
		byType: make(map[typereg.TypeReference][]*registrarEntry[T]),
		seen:    make(map[string]struct{}),
	}
}

// Register inserts fix under typ. It returns an error if fromVersion >=
// toVersion, or if a fix with the identical (type, name, fromVersion,
// toVersion) tuple is already registered (spec §3: "Two fixes with
// identical (type, fromVersion, toVersion, name) must not be registered
// twice").
func (r *FixRegistrar[T]) Register(typ typereg.TypeReference, fix DataFix[T]) error {
	if !fix.FromVersion().Less(fix.ToVersion()) {
		return fmt.Errorf("fixer: fix %q has fromVersion >= toVersion", fix.Name())
	}
	key := fmt.Sprintf("%s|%s|%d|%d", typ.ID(), fix.Name(), fix.FromVersion().Int(), fix.ToVersion().Int())
	if _, dup := r.seen[key]; dup {
		return fmt.Errorf("fixer: fix %q for type %q [%s,%s) already registered", fix.Name(), typ.ID(), fix.FromVersion(), fix.ToVersion())
	}
	r.seen[key] = struct{}{}
	r.byType[typ] = append(r.byType[typ], &registrarEntry[T]{fix: fix, index: r.counter})
	r.counter++
	return nil
}

// Get returns every fix registered for typ, sorted by (FromVersion,
// registration order).
func (r *FixRegistrar[T]) Get(typ typereg.TypeReference) []DataFix[T] {
	entries := r.byType[typ]
	sorted := make([]*registrarEntry[T], len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if cmp := a.fix.FromVersion().Compare(b.fix.FromVersion()); cmp != 0 {
			return cmp < 0
		}
		return a.index < b.index
	})
	out := make([]DataFix[T], len(sorted))
	for i, e := range sorted {
		out[i] = e.fix
	}
	return out
}

// Types returns every TypeReference with at least one registered fix.
func (r *FixRegistrar[T]) Types() []typereg.TypeReference {
	out := make([]typereg.TypeReference, 0, len(r.byType))
	for t := range r.byType {
		out = append(out, t)
	}
	return out
}
