package result

// Unit is the single-valued type used where the source language's generic
// signatures require a type parameter but no real value is produced (e.g.
// DataResult[Unit] for a fallible step whose only interesting output is
// whether it succeeded).
type Unit struct{}

// UnitValue is the single value of type Unit.
var UnitValue = Unit{}
