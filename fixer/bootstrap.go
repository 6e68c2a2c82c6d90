package fixer

import (
	"fmt"

	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

// DataFixerBootstrap contributes schemas and fixes to a DataFixer being
// constructed by Create (spec §4.8). The engine guarantees exactly-once
// invocation of each hook per Create call, and calls RegisterSchemas
// before RegisterFixes so the latter can reference the registry built
// by the former — schemas and fixes are threaded via return value /
// shared registry reference, never a mutable field on the bootstrap
// itself (spec §9, grounded on the teacher's ParseResult hand-off
// between parser and validator).
type DataFixerBootstrap[T any] interface {
	// RegisterSchemas must insert schemas in increasing version order;
	// every schema after the first must supply its parent.
	RegisterSchemas(reg *typereg.SchemaRegistry)
	// RegisterFixes may reference the schemas registered above.
	RegisterFixes(reg *FixRegistrar[T])
}

// Create is the runtime factory described in spec §4.8:
//  1. calls RegisterSchemas into a fresh SchemaRegistry,
//  2. validates monotonic version order, unique versions, and parent
//     resolvability,
//  3. calls RegisterFixes with access to that same registry,
//  4. constructs the DataFixer with currentVersion recorded.
func Create[T any](currentVersion typereg.DataVersion, bootstrap DataFixerBootstrap[T], opts ...Option) (*DataFixer[T], error) {
	schemas := typereg.NewSchemaRegistry()
	bootstrap.RegisterSchemas(schemas)

	if err := validateSchemaRegistry(schemas); err != nil {
		return nil, err
	}

	fixes := NewFixRegistrar[T]()
	bootstrap.RegisterFixes(fixes)

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &DataFixer[T]{
		currentVersion: currentVersion,
		schemas:        schemas,
		fixes:          fixes,
		cfg:            cfg,
	}, nil
}

// validateSchemaRegistry checks monotonic version order (as registered),
// version uniqueness (already enforced by SchemaRegistry.Register, but
// re-checked here defensively), and that every non-root schema's parent
// is itself registered in the registry.
func validateSchemaRegistry(schemas *typereg.SchemaRegistry) error {
	registered := schemas.RegistrationOrder()
	if len(registered) == 0 {
		return fmt.Errorf("fixer: bootstrap registered no schemas")
	}
	for i := 1; i < len(registered); i++ {
		if !registered[i-1].Less(registered[i]) {
			return fmt.Errorf("fixer: RegisterSchemas must insert schemas in increasing version order, got %s then %s", registered[i-1], registered[i])
		}
	}
	versions := schemas.Versions()
	for _, v := range versions {
		schema, _ := schemas.Get(v)
		if schema.IsRoot() {
			continue
		}
		parent := schema.Parent()
		found := false
		for _, ov := range versions {
			other, _ := schemas.Get(ov)
			if other == parent {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("fixer: schema %s has a parent that is not registered in this SchemaRegistry", schema.Version())
		}
	}
	return nil
}
