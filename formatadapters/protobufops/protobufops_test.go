package protobufops_test

import (
	"testing"

	"github.com/shyptr/datafixer/formatadapters/jsonops"
	"github.com/shyptr/datafixer/formatadapters/protobufops"
	"github.com/shyptr/datafixer/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestKindTests(t *testing.T) {
	o := protobufops.Ops{}
	assert.True(t, o.IsString(structpb.NewStringValue("x")))
	assert.True(t, o.IsNumber(structpb.NewNumberValue(1)))
	assert.True(t, o.IsBool(structpb.NewBoolValue(true)))
	assert.True(t, o.IsMap(o.EmptyMap()))
	assert.True(t, o.IsList(o.EmptyList()))

	assert.False(t, o.IsString(structpb.NewNumberValue(1)))
	assert.False(t, o.IsMap(structpb.NewStringValue("x")))
}

func TestPrimitiveRoundTrip(t *testing.T) {
	o := protobufops.Ops{}

	s := o.GetStringValue(o.CreateString("hello"))
	require.True(t, s.IsOk())
	assert.Equal(t, "hello", s.MustGet())

	n := o.GetNumberValue(o.CreateLong(42))
	require.True(t, n.IsOk())
	assert.Equal(t, float64(42), n.MustGet())

	b := o.GetBooleanValue(o.CreateBool(true))
	require.True(t, b.IsOk())
	assert.True(t, b.MustGet())

	require.True(t, o.GetStringValue(o.CreateBool(true)).IsError())
}

func TestListConstructionAndRead(t *testing.T) {
	o := protobufops.Ops{}
	list := o.CreateList([]*structpb.Value{o.CreateString("a"), o.CreateString("b")})
	require.True(t, o.IsList(list))

	got := o.GetList(list)
	require.True(t, got.IsOk())
	assert.Len(t, got.MustGet(), 2)

	merged := o.MergeToList(list, o.CreateString("c"))
	require.True(t, merged.IsOk())
	mergedList := o.GetList(merged.MustGet()).MustGet()
	assert.Len(t, mergedList, 3)
}

func TestMapConstructionGetSetRemove(t *testing.T) {
	o := protobufops.Ops{}
	m := o.CreateMap([]ops.MapEntry[*structpb.Value]{
		{Key: o.CreateString("name"), Value: o.CreateString("Steve")},
	})
	require.True(t, m.IsOk())
	v := m.MustGet()

	got, ok := o.Get(v, "name")
	require.True(t, ok)
	assert.Equal(t, "Steve", got.GetStringValue())

	assert.True(t, o.Has(v, "name"))
	assert.False(t, o.Has(v, "missing"))

	withXP := o.Set(v, "xp", o.CreateLong(10))
	assert.True(t, o.Has(withXP, "xp"))
	assert.True(t, o.Has(withXP, "name"), "Set must not drop existing fields")

	removed := o.Remove(withXP, "name")
	assert.False(t, o.Has(removed, "name"))
	assert.True(t, o.Has(removed, "xp"))
}

func TestMergeToMapAndMergeMaps(t *testing.T) {
	o := protobufops.Ops{}
	base := o.EmptyMap()

	merged := o.MergeToMap(base, o.CreateString("a"), o.CreateLong(1))
	require.True(t, merged.IsOk())

	other := o.Set(o.EmptyMap(), "b", o.CreateLong(2))
	combined := o.MergeMaps(merged.MustGet(), other)
	require.True(t, combined.IsOk())

	assert.True(t, o.Has(combined.MustGet(), "a"))
	assert.True(t, o.Has(combined.MustGet(), "b"))
}

func TestGetMapEntriesRejectsNonMap(t *testing.T) {
	o := protobufops.Ops{}
	entries := o.GetMapEntries(o.CreateString("not a map"))
	assert.True(t, entries.IsError())
}

func TestConvertFromJSONOps(t *testing.T) {
	o := protobufops.Ops{}
	v := ops.Convert[any, *structpb.Value](o, jsonops.Ops{}, "Steve")
	require.True(t, o.IsString(v))
	s := o.GetStringValue(v)
	require.True(t, s.IsOk())
	assert.Equal(t, "Steve", s.MustGet())
}
