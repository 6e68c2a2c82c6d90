// Package typereg implements the versioned type-shape layer the fixer
// engine dispatches on: DataVersion, TypeReference, the TypeTemplate DSL,
// TypeRegistry, Schema and SchemaRegistry. None of it inspects or
// transforms actual data — that is dynamic and rules' job — it only
// describes, at each schema version, which logical types exist and what
// shape they declare, for diffing and tooling.
package typereg
