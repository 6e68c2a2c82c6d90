// Package datafixers provides a format-agnostic, versioned data migration
// engine: a schema-evolution layer that walks an arbitrary tree-shaped
// value (JSON, YAML, TOML, or a custom in-memory format) and rewrites it
// from one declared schema version to another.
//
// # Overview
//
// The engine is built from six cooperating packages:
//
//   - result: the DataResult error/partial-value channel every other
//     package returns, plus the small generic Either/Pair/Unit helpers.
//   - dynamic: the backend-agnostic Dynamic[T]/Ops[T] value abstraction,
//     with dynjson, dynyaml, dyntoml, and dynnbt concrete adapters.
//   - typereg: DataVersion, TypeReference, the TypeTemplate DSL, and the
//     Schema/SchemaRegistry that declare what a type looks like at a
//     given version.
//   - finder: Identity/Field/Index/Remainder path optics over Dynamic.
//   - rules: TypeRewriteRule combinators and field-edit primitives built
//     on top of Dynamic's field and dotted-path navigation.
//   - fixer: DataFix/FixRegistrar/DataFixer, and the DataFixerBootstrap
//     contract that wires a concrete migration engine together.
//
// # Quick start
//
// A host application implements fixer.DataFixerBootstrap, registering its
// schemas (oldest to newest) and the DataFix values that migrate between
// them, then calls fixer.Create to obtain a DataFixer:
//
//	df, err := fixer.Create[any](typereg.NewDataVersion(3), myBootstrap{})
//	updated := df.Update(tagged, typereg.NewDataVersion(0), df.CurrentVersion())
//
// See the fixer package for the full Update/Preview/UpdateAll surface.
package datafixers
