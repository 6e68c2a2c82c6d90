package typereg

import "fmt"

// TypeRegistry maps TypeReference to TypeTemplate. It is insertion-time
// only: once bootstrap finishes populating it, nothing may mutate it
// further. The zero value is ready to use.
type TypeRegistry struct {
	entries map[TypeReference]TypeTemplate
}

// NewTypeRegistry returns an empty TypeRegistry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{entries: make(map[TypeReference]TypeTemplate)}
}

// Register inserts the template for ref. It returns an error if ref is
// already registered — TypeRegistry never overwrites.
func (r *TypeRegistry) Register(ref TypeReference, tmpl TypeTemplate) error {
	if _, exists := r.entries[ref]; exists {
		return fmt.Errorf("typereg: type %q already registered", ref.ID())
	}
	if r.entries == nil {
		r.entries = make(map[TypeReference]TypeTemplate)
	}
	r.entries[ref] = tmpl
	return nil
}

// Lookup returns the template registered for ref in this registry only
// (no parent walk).
func (r *TypeRegistry) Lookup(ref TypeReference) (TypeTemplate, bool) {
	t, ok := r.entries[ref]
	return t, ok
}

// Len returns the number of registered types.
func (r *TypeRegistry) Len() int { return len(r.entries) }

// References returns every TypeReference registered in this registry,
// in no particular order.
func (r *TypeRegistry) References() []TypeReference {
	out := make([]TypeReference, 0, len(r.entries))
	for ref := range r.entries {
		out = append(out, ref)
	}
	return out
}

// Schema is the set of type shapes valid at one DataVersion, optionally
// inheriting unchanged types from a parent schema. Constructed once at
// bootstrap and immutable thereafter.
type Schema struct {
	version DataVersion
	parent  *Schema
	types   *TypeRegistry
}

// NewSchema constructs a Schema. parent may be nil, in which case the
// result is a root schema.
func NewSchema(version DataVersion, parent *Schema, types *TypeRegistry) *Schema {
	if types == nil {
		types = NewTypeRegistry()
	}
	return &Schema{version: version, parent: parent, types: types}
}

// Version returns this schema's DataVersion.
func (s *Schema) Version() DataVersion { return s.version }

// Parent returns the parent schema, or nil if s is a root schema.
func (s *Schema) Parent() *Schema { return s.parent }

// IsRoot reports whether s has no parent.
func (s *Schema) IsRoot() bool { return s.parent == nil }

// Lookup resolves ref against this schema's own registry, then walks
// parents to the root; the first hit wins.
func (s *Schema) Lookup(ref TypeReference) (TypeTemplate, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.types.Lookup(ref); ok {
			return t, ok
		}
	}
	return nil, false
}

// Types returns this schema's own TypeRegistry (not including parents).
func (s *Schema) Types() *TypeRegistry { return s.types }

// SchemaRegistry maps DataVersion to Schema, sorted, with lookup and
// enumeration.
type SchemaRegistry struct {
	byVersion      map[int64]*Schema
	order          []DataVersion
	registrationOrder []DataVersion
}

// NewSchemaRegistry returns an empty SchemaRegistry.
func NewSchemaRegistry() *SchemaRegistry {
	return &SchemaRegistry{byVersion: make(map[int64]*Schema)}
}

// Register inserts schema, keyed by its own version. Registering the
// same version twice is an error.
func (r *SchemaRegistry) Register(schema *Schema) error {
	v := schema.Version().Int()
	if _, exists := r.byVersion[v]; exists {
		return fmt.Errorf("typereg: schema version %s already registered", schema.Version())
	}
	r.byVersion[v] = schema
	r.order = insertSorted(r.order, schema.Version())
	r.registrationOrder = append(r.registrationOrder, schema.Version())
	return nil
}

// RegistrationOrder returns the versions in the order Register was
// actually called, as opposed to Versions' sorted order — used to
// validate the "must insert schemas in increasing version order"
// bootstrap contract (spec §4.8).
func (r *SchemaRegistry) RegistrationOrder() []DataVersion {
	out := make([]DataVersion, len(r.registrationOrder))
	copy(out, r.registrationOrder)
	return out
}

func insertSorted(order []DataVersion, v DataVersion) []DataVersion {
	i := 0
	for i < len(order) && order[i].Less(v) {
		i++
	}
	order = append(order, DataVersion{})
	copy(order[i+1:], order[i:])
	order[i] = v
	return order
}

// Get returns the schema registered for version, if any.
func (r *SchemaRegistry) Get(version DataVersion) (*Schema, bool) {
	s, ok := r.byVersion[version.Int()]
	return s, ok
}

// Versions returns all registered versions in ascending order.
func (r *SchemaRegistry) Versions() []DataVersion {
	out := make([]DataVersion, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of registered schemas.
func (r *SchemaRegistry) Len() int { return len(r.order) }
