package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
	"github.com/aether-framework/aether-datafixers-sub003/dynamic/dynjson"
	"github.com/aether-framework/aether-datafixers-sub003/rules"
	"github.com/aether-framework/aether-datafixers-sub003/typereg"
)

func doc(t *testing.T, js string) dynamic.Dynamic[any] {
	t.Helper()
	d, err := dynjson.Decode([]byte(js))
	require.NoError(t, err)
	return d
}

var player = typereg.NewTypeReference("entity.player")
var zombie = typereg.NewTypeReference("entity.zombie")

func TestRenameField(t *testing.T) {
	d := doc(t, `{"hp":10}`)
	r := rules.RenameField[any](player, "hp", "health")
	out := r(player, d)
	assert.False(t, out.Has("hp"))
	v, ok := out.Get("health").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(10), v)

	out2 := r(zombie, d)
	assert.Equal(t, d, out2, "rule must no-op when dispatch type does not match target")
}

func TestRenameFieldFoldMatchesCaseVariants(t *testing.T) {
	d := doc(t, `{"HP":10}`)
	r := rules.RenameFieldFold[any](player, "hp", "health")
	out := r(player, d)
	assert.False(t, out.Has("HP"))
	v, ok := out.Get("health").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(10), v)
}

func TestRenameFieldCollision(t *testing.T) {
	d := doc(t, `{"hp":10,"health":99}`)
	checked := rules.RenameFieldChecked[any](player, "hp", "health")
	_, err := checked(player, d)
	assert.Error(t, err)

	lenient := rules.RenameField[any](player, "hp", "health")
	out := lenient(player, d)
	assert.Equal(t, d, out, "lenient form no-ops on collision")
}

func TestTransformAndAddField(t *testing.T) {
	d := doc(t, `{"name":"alex"}`)
	r := rules.Seq(
		rules.TransformField[any](player, "name", func(v dynamic.Dynamic[any]) dynamic.Dynamic[any] {
			s, _ := v.AsString().Result()
			return v.CreateString(s + "!")
		}),
		rules.AddField[any](player, "greeting", func(root dynamic.Dynamic[any]) dynamic.Dynamic[any] {
			return root.CreateString("hi")
		}),
	)
	out := r(player, d)
	name, ok := out.Get("name").AsString().Result()
	require.True(t, ok)
	assert.Equal(t, "alex!", name)
	greeting, ok := out.Get("greeting").AsString().Result()
	require.True(t, ok)
	assert.Equal(t, "hi", greeting)
}

func TestGroupAndFlattenFields(t *testing.T) {
	d := doc(t, `{"x":1,"y":2,"name":"p"}`)
	group := rules.GroupFields[any](player, "pos", "x", "y")
	grouped := group(player, d)
	assert.False(t, grouped.Has("x"))
	assert.False(t, grouped.Has("y"))
	pos := grouped.Get("pos")
	px, ok := pos.Get("x").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(1), px)

	flatten := rules.FlattenField[any](player, "pos")
	flattened := flatten(player, grouped)
	assert.False(t, flattened.Has("pos"))
	fx, ok := flattened.Get("x").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(1), fx)
}

func TestMoveAndCopyField(t *testing.T) {
	d := doc(t, `{"inner":{"value":5}}`)
	mv := rules.MoveField[any](player, "inner.value", "outer.value")
	out := mv(player, d)
	assert.True(t, out.Get("inner").Get("value").IsNull())
	v, ok := out.GetAt("outer.value").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(5), v)

	d2 := doc(t, `{"inner":{"value":5}}`)
	cp := rules.CopyField[any](player, "inner.value", "outer.value")
	out2 := cp(player, d2)
	orig, ok := out2.GetAt("inner.value").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(5), orig)
	copied, ok := out2.GetAt("outer.value").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(5), copied)
}

func TestSwapFields(t *testing.T) {
	d := doc(t, `{"hp":10,"mp":20}`)
	swap := rules.SwapFields[any](player, "hp", "mp")
	out := swap(player, d)

	hp, ok := out.Get("hp").AsInt64().Result()
	require.True(t, ok)
	mp, ok := out.Get("mp").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(20), hp)
	assert.Equal(t, int64(10), mp)

	d2 := doc(t, `{"hp":10}`)
	out2 := swap(player, d2)
	assert.Equal(t, d2, out2, "rule must no-op when one of the fields is missing")
}

func TestTopDownBottomUpEverywhere(t *testing.T) {
	d := doc(t, `{"a":{"a":{"a":1}}}`)
	bump := rules.TransformField[any](player, "a", func(v dynamic.Dynamic[any]) dynamic.Dynamic[any] {
		if v.IsMap() {
			return v
		}
		n, ok := v.AsInt64().Result()
		if !ok {
			return v
		}
		return v.CreateLong(n + 1)
	})
	td := rules.TopDown(bump)
	out := td(player, d)
	leaf, ok := out.GetAt("a.a.a").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(2), leaf)

	bu := rules.BottomUp(bump)
	out2 := bu(player, d)
	leaf2, ok := out2.GetAt("a.a.a").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(2), leaf2)

	ew := rules.Everywhere(bump)
	out3 := ew(player, d)
	leaf3, ok := out3.GetAt("a.a.a").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(2), leaf3)
}

func TestConditionalRules(t *testing.T) {
	withFlag := doc(t, `{"legacy":true,"hp":10}`)
	withoutFlag := doc(t, `{"hp":10}`)

	r := rules.IfFieldExists[any]("legacy", rules.RemoveField[any](player, "legacy"))
	out := r(player, withFlag)
	assert.False(t, out.Has("legacy"))

	out2 := r(player, withoutFlag)
	assert.Equal(t, withoutFlag, out2)

	rFn := rules.IfFieldEqualsFn[any]("hp", "10", func(d dynamic.Dynamic[any]) dynamic.Dynamic[any] {
		return d.Set("capped", d.CreateBool(true))
	})

	matching := doc(t, `{"hp":"10"}`)
	capped := rFn(player, matching)
	isCapped, ok := capped.Get("capped").AsBool().Result()
	require.True(t, ok)
	assert.True(t, isCapped)

	nonMatching := doc(t, `{"hp":"11"}`)
	out3 := rFn(player, nonMatching)
	assert.False(t, out3.Has("capped"))
	assert.Equal(t, nonMatching, out3, "rule must no-op when hp does not equal the literal")
}

func TestIfFieldMissing(t *testing.T) {
	withoutFlag := doc(t, `{"hp":10}`)
	r := rules.IfFieldMissing[any]("legacy", rules.SetField[any](player, "migrated", withoutFlag.CreateBool(true)))

	out := r(player, withoutFlag)
	migrated, ok := out.Get("migrated").AsBool().Result()
	require.True(t, ok)
	assert.True(t, migrated)

	withFlag := doc(t, `{"legacy":true,"hp":10}`)
	out2 := r(player, withFlag)
	assert.False(t, out2.Has("migrated"))
	assert.Equal(t, withFlag, out2, "rule must no-op when the field is present")
}

func TestIfFieldExistsFn(t *testing.T) {
	fn := rules.IfFieldExistsFn[any]("hp", func(d dynamic.Dynamic[any]) dynamic.Dynamic[any] {
		return d.Set("hp", d.CreateLong(99))
	})

	d := doc(t, `{"hp":10}`)
	out := fn(player, d)
	hp, ok := out.Get("hp").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(99), hp)

	d2 := doc(t, `{"name":"alex"}`)
	out2 := fn(player, d2)
	assert.Equal(t, d2, out2, "rule must no-op when hp is absent")
}

func TestIfFieldMissingFn(t *testing.T) {
	fn := rules.IfFieldMissingFn[any]("hp", func(d dynamic.Dynamic[any]) dynamic.Dynamic[any] {
		return d.Set("hp", d.CreateLong(0))
	})

	d := doc(t, `{"name":"alex"}`)
	out := fn(player, d)
	hp, ok := out.Get("hp").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(0), hp)

	d2 := doc(t, `{"hp":10}`)
	out2 := fn(player, d2)
	assert.Equal(t, d2, out2, "rule must no-op when hp is already present")
}

func TestBatchBuilder(t *testing.T) {
	d := doc(t, `{"hp":10,"name":"alex"}`)
	b := rules.NewBuilder[any]().
		Rename(player, "hp", "health").
		Set(player, "active", d.CreateBool(true))
	assert.Equal(t, 2, b.Len())

	out := rules.Batch(b)(player, d)
	health, ok := out.Get("health").AsInt64().Result()
	require.True(t, ok)
	assert.Equal(t, int64(10), health)
	active, ok := out.Get("active").AsBool().Result()
	require.True(t, ok)
	assert.True(t, active)
}

func TestApplyJSON(t *testing.T) {
	b := rules.NewBuilder[any]().Remove(player, "secret")
	raw := []byte(`{"secret":"x","name":"alex"}`)
	out, err := rules.ApplyJSON(b, player, raw)
	require.NoError(t, err)

	d, err := dynjson.Decode(out)
	require.NoError(t, err)
	assert.False(t, d.Has("secret"))
	name, ok := d.Get("name").AsString().Result()
	require.True(t, ok)
	assert.Equal(t, "alex", name)
}
