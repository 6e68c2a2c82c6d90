package dynjson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aether-framework/aether-datafixers-sub003/dynamic"
)

func TestRoundTripPrimitives(t *testing.T) {
	o := New()

	bv := o.CreateBool(true)
	b, ok := o.GetBool(bv).Result()
	require.True(t, ok)
	assert.True(t, b)

	iv := o.CreateInt(42)
	i, ok := o.GetInt(iv).Result()
	require.True(t, ok)
	assert.Equal(t, int32(42), i)

	lv := o.CreateLong(9007199254740993)
	l, ok := o.GetLong(lv).Result()
	require.True(t, ok)
	assert.Equal(t, int64(9007199254740993), l)

	fv := o.CreateFloat(1.5)
	f, ok := o.GetFloat(fv).Result()
	require.True(t, ok)
	assert.Equal(t, float32(1.5), f)

	dv := o.CreateDouble(3.25)
	d, ok := o.GetDouble(dv).Result()
	require.True(t, ok)
	assert.Equal(t, 3.25, d)

	sv := o.CreateString("hi")
	s, ok := o.GetString(sv).Result()
	require.True(t, ok)
	assert.Equal(t, "hi", s)
}

func TestMapRoundTrip(t *testing.T) {
	o := New()
	m := o.CreateMap([]dynamic.MapEntry[any]{
		{Key: "a", Value: int32(1)},
		{Key: "b", Value: "x"},
	})
	entries, ok := o.GetMapEntries(m).Result()
	require.True(t, ok)
	seen := map[string]any{}
	for _, e := range entries {
		seen[e.Key.(string)] = e.Value
	}
	assert.Equal(t, int32(1), seen["a"])
	assert.Equal(t, "x", seen["b"])
}

func TestSetRemoveMerge(t *testing.T) {
	o := New()
	m := o.CreateMap(nil)
	m2, ok := o.Set(m, "k", "v").Result()
	require.True(t, ok)
	v, ok := o.GetMapValue(m2, "k").Result()
	require.True(t, ok)
	assert.Equal(t, "v", v)

	m3, ok := o.Remove(m2, "k").Result()
	require.True(t, ok)
	_, present := o.GetMapValue(m3, "k").Result()
	assert.False(t, present)

	left := o.CreateMap([]dynamic.MapEntry[any]{{Key: "a", Value: 1}, {Key: "shared", Value: "left"}})
	right := o.CreateMap([]dynamic.MapEntry[any]{{Key: "b", Value: 2}, {Key: "shared", Value: "right"}})
	merged, ok := o.MergeToMap(left, right).Result()
	require.True(t, ok)
	sharedVal, _ := o.GetMapValue(merged, "shared").Result()
	assert.Equal(t, "right", sharedVal)
}

func TestDecodeEncodeRoundTrip(t *testing.T) {
	doc := []byte(`{"name":"Alex","xp":2500,"enabled":true,"tags":["a","b"]}`)
	d, err := Decode(doc)
	require.NoError(t, err)
	assert.True(t, d.IsMap())

	name, ok := d.Get("name").AsString().Result()
	require.True(t, ok)
	assert.Equal(t, "Alex", name)

	out, err := Encode(d)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"name":"Alex"`)
}

func TestTypeOf(t *testing.T) {
	o := New()
	assert.Equal(t, dynamic.KindNull, o.TypeOf(nil))
	assert.Equal(t, dynamic.KindBool, o.TypeOf(true))
	assert.Equal(t, dynamic.KindNumber, o.TypeOf(int32(1)))
	assert.Equal(t, dynamic.KindString, o.TypeOf("s"))
	assert.Equal(t, dynamic.KindList, o.TypeOf([]any{}))
	assert.Equal(t, dynamic.KindMap, o.TypeOf(map[string]any{}))
}
