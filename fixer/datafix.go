package fixer

import (
	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/rules"
	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

// DataFix is a named transform moving data for one TypeReference from
// FromVersion to ToVersion (spec §4.6). Apply must not mutate input and
// must return a Dynamic over the same backend.
type DataFix[T any] interface {
	Name() string
	FromVersion() typereg.DataVersion
	ToVersion() typereg.DataVersion
	Apply(typ typereg.TypeReference, input dynamic.Dynamic[T], ctx *Context) dynamic.Dynamic[T]
}

// base holds the fields common to every DataFix implementation.
type base struct {
	name string
	from typereg.DataVersion
	to   typereg.DataVersion
}

func (b base) Name() string                    { return b.name }
func (b base) FromVersion() typereg.DataVersion { return b.from }
func (b base) ToVersion() typereg.DataVersion   { return b.to }

// SchemaDataFix is the conventional DataFix base (spec §4.6): it builds
// a rules.Rule via MakeRule(inputSchema, outputSchema) once, at
// construction time, and applies it to the root on every Apply call.
type SchemaDataFix[T any] struct {
	base
	inputSchema  *typereg.Schema
	outputSchema *typereg.Schema
	rule         rules.Rule[T]
}

// NewSchemaDataFix constructs a SchemaDataFix. makeRule is called once,
// immediately, with the two schemas; its result is cached and reused by
// every Apply call (DataFix implementations must be pure, spec §4.7
// concurrency contract).
func NewSchemaDataFix[T any](
	name string,
	from, to typereg.DataVersion,
	inputSchema, outputSchema *typereg.Schema,
	makeRule func(input, output *typereg.Schema) rules.Rule[T],
) *SchemaDataFix[T] {
	return &SchemaDataFix[T]{
		base:         base{name: name, from: from, to: to},
		inputSchema:  inputSchema,
		outputSchema: outputSchema,
		rule:         makeRule(inputSchema, outputSchema),
	}
}

// InputSchema returns the schema this fix reads from.
func (f *SchemaDataFix[T]) InputSchema() *typereg.Schema { return f.inputSchema }

// OutputSchema returns the schema this fix produces.
func (f *SchemaDataFix[T]) OutputSchema() *typereg.Schema { return f.outputSchema }

// Apply implements DataFix by applying the cached rule to input.
func (f *SchemaDataFix[T]) Apply(typ typereg.TypeReference, input dynamic.Dynamic[T], ctx *Context) dynamic.Dynamic[T] {
	ctx.Info("applying %s to %s", f.name, typ.ID())
	return f.rule(typ, input)
}

var _ DataFix[any] = (*SchemaDataFix[any])(nil)

// FuncDataFix adapts a plain function into a DataFix, for fixes that
// don't need the Schema/MakeRule ceremony (e.g. one-off field renames
// registered ad hoc).
type FuncDataFix[T any] struct {
	base
	fn func(typ typereg.TypeReference, input dynamic.Dynamic[T], ctx *Context) dynamic.Dynamic[T]
}

// NewFuncDataFix constructs a FuncDataFix.
func NewFuncDataFix[T any](
	name string,
	from, to typereg.DataVersion,
	fn func(typ typereg.TypeReference, input dynamic.Dynamic[T], ctx *Context) dynamic.Dynamic[T],
) *FuncDataFix[T] {
	return &FuncDataFix[T]{base: base{name: name, from: from, to: to}, fn: fn}
}

// Apply implements DataFix.
func (f *FuncDataFix[T]) Apply(typ typereg.TypeReference, input dynamic.Dynamic[T], ctx *Context) dynamic.Dynamic[T] {
	ctx.Info("applying %s to %s", f.name, typ.ID())
	return f.fn(typ, input, ctx)
}

var _ DataFix[any] = (*FuncDataFix[any])(nil)
