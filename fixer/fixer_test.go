package fixer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/dynamic/dynjson"
	"github.com/aether-framework/aether-datafixers-sub003/fixer"
	"github.com/aether-framework/aether-datafixers-sub003/rules"
	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

var player = typereg.NewTypeReference("entity.player")

func doc(t *testing.T, js string) dynamic.Dynamic[any] {
	t.Helper()
	d, err := dynjson.Decode([]byte(js))
	require.NoError(t, err)
	return d
}

type testBootstrap struct{}

func (testBootstrap) RegisterSchemas(reg *typereg.SchemaRegistry) {
	types0 := typereg.NewTypeRegistry()
	_ = types0.Register(player, typereg.Field{Name: "hp", Template: typereg.Primitive{PKind: typereg.KindI32}})
	s0 := typereg.NewSchema(typereg.NewDataVersion(0), nil, types0)
	_ = reg.Register(s0)

	types1 := typereg.NewTypeRegistry()
	s1 := typereg.NewSchema(typereg.NewDataVersion(1), s0, types1)
	_ = reg.Register(s1)
}

func (testBootstrap) RegisterFixes(reg *fixer.FixRegistrar[any]) {
	fix := fixer.NewFuncDataFix[any](
		"rename-hp-to-health",
		typereg.NewDataVersion(0), typereg.NewDataVersion(1),
		func(typ typereg.TypeReference, input dynamic.Dynamic[any], ctx *fixer.Context) dynamic.Dynamic[any] {
			rule := rules.RenameField[any](player, "hp", "health")
			return rule(typ, input)
		},
	)
	_ = reg.Register(player, fix)
}

func TestCreateAndUpdate(t *testing.T) {
	df, err := fixer.Create[any](typereg.NewDataVersion(1), testBootstrap{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), df.CurrentVersion().Int())

	tagged := dynamic.NewTaggedDynamic(player, doc(t, `{"hp":10}`))
	updated := df.Update(tagged, typereg.NewDataVersion(0), typereg.NewDataVersion(1))

	assert.False(t, updated.Value.Has("hp"))
	health, ok := updated.Value.Get("health").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(10), health)
}

func TestUpdateNoOpWhenFromGreaterOrEqualTo(t *testing.T) {
	df, err := fixer.Create[any](typereg.NewDataVersion(1), testBootstrap{})
	require.NoError(t, err)

	tagged := dynamic.NewTaggedDynamic(player, doc(t, `{"hp":10}`))
	same := df.Update(tagged, typereg.NewDataVersion(1), typereg.NewDataVersion(1))
	assert.Equal(t, tagged, same)

	backwards := df.Update(tagged, typereg.NewDataVersion(1), typereg.NewDataVersion(0))
	assert.Equal(t, tagged, backwards)
}

func TestPreviewReportsAppliedFixes(t *testing.T) {
	df, err := fixer.Create[any](typereg.NewDataVersion(1), testBootstrap{})
	require.NoError(t, err)

	tagged := dynamic.NewTaggedDynamic(player, doc(t, `{"hp":10}`))
	preview := df.Preview(tagged, typereg.NewDataVersion(0), typereg.NewDataVersion(1))

	assert.Equal(t, []string{"rename-hp-to-health"}, preview.AppliedFixes)
	health, ok := preview.Result.Value.Get("health").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(10), health)
}

func TestUpdateAllConcurrent(t *testing.T) {
	df, err := fixer.Create[any](typereg.NewDataVersion(1), testBootstrap{})
	require.NoError(t, err)

	batch := []dynamic.TaggedDynamic[any]{
		dynamic.NewTaggedDynamic(player, doc(t, `{"hp":1}`)),
		dynamic.NewTaggedDynamic(player, doc(t, `{"hp":2}`)),
		dynamic.NewTaggedDynamic(player, doc(t, `{"hp":3}`)),
	}

	results, err := df.UpdateAll(context.Background(), batch, typereg.NewDataVersion(0), typereg.NewDataVersion(1))
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		health, ok := r.Value.Get("health").AsInt64().Result()
		require.True(t, ok)
		assert.Equal(t, int64(i+1), health)
	}
}

func TestBootstrapRejectsNonMonotonicVersions(t *testing.T) {
	bad := badBootstrap{}
	_, err := fixer.Create[any](typereg.NewDataVersion(1), bad)
	assert.Error(t, err)
}

type badBootstrap struct{}

func (badBootstrap) RegisterSchemas(reg *typereg.SchemaRegistry) {
	s1 := typereg.NewSchema(typereg.NewDataVersion(1), nil, nil)
	s0 := typereg.NewSchema(typereg.NewDataVersion(0), nil, nil)
	_ = reg.Register(s1)
	_ = reg.Register(s0)
}

func (badBootstrap) RegisterFixes(reg *fixer.FixRegistrar[any]) {}
