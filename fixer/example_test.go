package fixer_test

import (
	"fmt"
	"log"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/dynamic/dynjson"
	"github.com/aether-framework/aether-datafixers-sub003/fixer"
	"github.com/aether-framework/aether-datafixers-sub003/rules"
	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

type exampleBootstrap struct{}

func (exampleBootstrap) RegisterSchemas(reg *typereg.SchemaRegistry) {
	s0 := typereg.NewSchema(typereg.NewDataVersion(0), nil, nil)
	_ = reg.Register(s0)
	s1 := typereg.NewSchema(typereg.NewDataVersion(1), s0, nil)
	_ = reg.Register(s1)
}

func (exampleBootstrap) RegisterFixes(reg *fixer.FixRegistrar[any]) {
	target := typereg.NewTypeReference("entity.player")
	fix := fixer.NewFuncDataFix[any](
		"rename-hp-to-health",
		typereg.NewDataVersion(0), typereg.NewDataVersion(1),
		func(typ typereg.TypeReference, input dynamic.Dynamic[any], ctx *fixer.Context) dynamic.Dynamic[any] {
			if _, ok := ctx.Check(input.Has("hp"), "expected %q to carry an hp field", typ.ID()).Result(); !ok {
				return input
			}
			return rules.RenameField[any](target, "hp", "health")(typ, input)
		},
	)
	_ = reg.Register(target, fix)
}

// Example demonstrates building a DataFixer from a DataFixerBootstrap and
// migrating a single document across a version boundary.
func Example() {
	target := typereg.NewTypeReference("entity.player")
	df, err := fixer.Create[any](typereg.NewDataVersion(1), exampleBootstrap{})
	if err != nil {
		log.Fatal(err)
	}

	d, err := dynjson.Decode([]byte(`{"hp":20}`))
	if err != nil {
		log.Fatal(err)
	}
	tagged := dynamic.NewTaggedDynamic(target, d)

	updated := df.Update(tagged, typereg.NewDataVersion(0), typereg.NewDataVersion(1))
	health, _ := updated.Value.Get("health").AsInt64().Result()
	fmt.Printf("health=%d\n", health)

	// Output:
	// health=20
}
