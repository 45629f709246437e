package types_test

import (
	"testing"

	"github.com/shyptr/datafixer/formatadapters/jsonops"
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEncodeField(t *testing.T) {
	o := jsonops.Ops{}
	raw := jsonops.NewMap(
		ops.MapEntry[any]{Key: "name", Value: "Steve"},
		ops.MapEntry[any]{Key: "xp", Value: int64(1500)},
	)
	dyn := ops.Of[any](o, raw)

	ty := &types.Product{
		First:  &types.Field{Name: "name", Elem: &types.Primitive{Kind: types.String}},
		Second: &types.Field{Name: "xp", Elem: &types.Primitive{Kind: types.Long}},
	}

	decoded := types.Decode(ty, dyn)
	require.True(t, decoded.IsOk())
	pair, ok := decoded.MustGet().Value.(types.Pair)
	require.True(t, ok)
	assert.Equal(t, "Steve", pair.First)
	assert.Equal(t, int64(1500), pair.Second)

	encoded := types.Encode[any](ty, pair, o, o.EmptyMap())
	require.True(t, encoded.IsOk())
	m, ok := encoded.MustGet().(jsonops.Map)
	require.True(t, ok)
	name, _ := m.Get("name")
	xp, _ := m.Get("xp")
	assert.Equal(t, "Steve", name)
	assert.Equal(t, int64(1500), xp)
}

func TestDecodeMissingFieldErrors(t *testing.T) {
	o := jsonops.Ops{}
	dyn := ops.Of[any](o, jsonops.NewMap())
	ty := &types.Field{Name: "name", Elem: &types.Primitive{Kind: types.String}}
	decoded := types.Decode(ty, dyn)
	assert.True(t, decoded.IsError())
}

func TestTaggedChoiceDispatch(t *testing.T) {
	o := jsonops.Ops{}
	tc := &types.TaggedChoice{
		Tag: "type",
		Cases: []types.TaggedCase{
			{Value: "player", Type: &types.Field{Name: "level", Elem: &types.Primitive{Kind: types.Int}}},
			{Value: "monster", Type: &types.Field{Name: "health", Elem: &types.Primitive{Kind: types.Int}}},
		},
	}

	playerVal := jsonops.NewMap(
		ops.MapEntry[any]{Key: "type", Value: "player"},
		ops.MapEntry[any]{Key: "level", Value: int32(10)},
	)
	decoded := types.Decode(tc, ops.Of[any](o, playerVal))
	require.True(t, decoded.IsOk())
	tv := decoded.MustGet().Value.(types.TaggedValue)
	assert.Equal(t, "player", tv.Tag)
	assert.Equal(t, int32(10), tv.Value)

	encoded := types.Encode[any](tc, tv, o, o.EmptyMap())
	require.True(t, encoded.IsOk())
	m := encoded.MustGet().(jsonops.Map)
	typeField, _ := m.Get("type")
	assert.Equal(t, "player", typeField)

	unknownVal := jsonops.NewMap(ops.MapEntry[any]{Key: "type", Value: "ghost"})
	bad := types.Decode(tc, ops.Of[any](o, unknownVal))
	assert.True(t, bad.IsError())
}

func TestOptionalAbsentAndPresent(t *testing.T) {
	o := jsonops.Ops{}
	ty := &types.Optional{Elem: &types.Primitive{Kind: types.String}}

	absent := types.Decode(ty, ops.Empty[any](o))
	require.True(t, absent.IsOk())
	ov := absent.MustGet().Value.(types.OptionalValue)
	assert.False(t, ov.Present)

	present := types.Decode(ty, ops.Of[any](o, "hi"))
	require.True(t, present.IsOk())
	ov2 := present.MustGet().Value.(types.OptionalValue)
	assert.True(t, ov2.Present)
	assert.Equal(t, "hi", ov2.Value)
}

func TestListDecodeEncode(t *testing.T) {
	o := jsonops.Ops{}
	ty := &types.List{Elem: &types.Primitive{Kind: types.Int}}
	dyn := ops.Of[any](o, []any{int32(1), int32(2), int32(3)})

	decoded := types.Decode(ty, dyn)
	require.True(t, decoded.IsOk())
	assert.Equal(t, []any{int32(1), int32(2), int32(3)}, decoded.MustGet().Value)

	encoded := types.Encode[any](ty, decoded.MustGet().Value, o, o.Empty())
	require.True(t, encoded.IsOk())
	assert.Equal(t, []any{int32(1), int32(2), int32(3)}, encoded.MustGet())
}

func TestPassthroughMergesRemainder(t *testing.T) {
	o := jsonops.Ops{}
	remainder := jsonops.NewMap(ops.MapEntry[any]{Key: "extra", Value: "stuff"})
	dyn := ops.Of[any](o, remainder)

	decoded := types.Decode(types.Passthrough{}, dyn)
	require.True(t, decoded.IsOk())

	base := jsonops.NewMap(ops.MapEntry[any]{Key: "name", Value: "Steve"})
	encoded := types.Encode[any](types.Passthrough{}, decoded.MustGet().Value, o, base)
	require.True(t, encoded.IsOk())
	m := encoded.MustGet().(jsonops.Map)
	extra, ok := m.Get("extra")
	assert.True(t, ok)
	assert.Equal(t, "stuff", extra)
	name, _ := m.Get("name")
	assert.Equal(t, "Steve", name)
}

func TestRecursiveTypeViaCell(t *testing.T) {
	o := jsonops.Ops{}
	fam := types.NewFamily(1, "node")
	body := &types.Product{
		First:  &types.Field{Name: "value", Elem: &types.Primitive{Kind: types.Int}},
		Second: &types.OptionalField{Name: "next", Elem: fam.Id(0)},
	}
	fam.Close(0, body)

	leaf := jsonops.NewMap(
		ops.MapEntry[any]{Key: "value", Value: int32(1)},
	)
	node := jsonops.NewMap(
		ops.MapEntry[any]{Key: "value", Value: int32(2)},
		ops.MapEntry[any]{Key: "next", Value: leaf},
	)

	decoded := types.Decode(fam.Id(0), ops.Of[any](o, node))
	require.True(t, decoded.IsOk())
	pair := decoded.MustGet().Value.(types.Pair)
	assert.Equal(t, int32(2), pair.First)
	next := pair.Second.(types.OptionalValue)
	assert.True(t, next.Present)
}
