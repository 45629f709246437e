package codec_test

import (
	"testing"

	"github.com/shyptr/datafixer/codec"
	"github.com/shyptr/datafixer/formatadapters/jsonops"
	"github.com/shyptr/datafixer/ops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Player struct {
	Name string
	XP   int64
}

func TestRecordCodecRoundTrip(t *testing.T) {
	o := jsonops.Ops{}
	c := codec.Field2(
		codec.Field("name", codec.String[any]()),
		codec.Field("xp", codec.Long[any]()),
		func(name string, xp int64) Player { return Player{Name: name, XP: xp} },
		func(p Player) string { return p.Name },
		func(p Player) int64 { return p.XP },
	)

	encoded := c.Encode(Player{Name: "Steve", XP: 1500}, o, o.EmptyMap())
	require.True(t, encoded.IsOk())

	decoded := c.Decode(ops.Of[any](o, encoded.MustGet()))
	require.True(t, decoded.IsOk())
	assert.Equal(t, Player{Name: "Steve", XP: 1500}, decoded.MustGet().Value)
}

func TestListCodecPartialOnBadElement(t *testing.T) {
	o := jsonops.Ops{}
	c := codec.List[int32, any](codec.Int[any]())
	dyn := ops.Of[any](o, []any{int32(1), "not a number", int32(3)})
	decoded := c.Decode(dyn)
	assert.True(t, decoded.IsError())
	partial, ok := decoded.Partial()
	assert.True(t, ok)
	assert.Equal(t, []int32{1}, partial.Value)
}

func TestOptionalCodec(t *testing.T) {
	o := jsonops.Ops{}
	c := codec.Optional[string, any](codec.String[any]())

	none := c.Decode(ops.Empty[any](o))
	require.True(t, none.IsOk())
	assert.False(t, none.MustGet().Value.Present)

	some := c.Decode(ops.Of[any](o, "hi"))
	require.True(t, some.IsOk())
	assert.True(t, some.MustGet().Value.Present)
	assert.Equal(t, "hi", some.MustGet().Value.Value)
}

func TestXMap(t *testing.T) {
	o := jsonops.Ops{}
	type Meters float64
	c := codec.XMap(codec.Double[any](), func(f float64) Meters { return Meters(f) }, func(m Meters) float64 { return float64(m) })
	encoded := c.Encode(Meters(3.5), o, o.Empty())
	require.True(t, encoded.IsOk())
	decoded := c.Decode(ops.Of[any](o, encoded.MustGet()))
	require.True(t, decoded.IsOk())
	assert.Equal(t, Meters(3.5), decoded.MustGet().Value)
}

func TestMapCodec(t *testing.T) {
	o := jsonops.Ops{}
	c := codec.Map[string, int32, any](codec.String[any](), codec.Int[any]())
	encoded := c.Encode(map[string]int32{"a": 1, "b": 2}, o, o.EmptyMap())
	require.True(t, encoded.IsOk())
	decoded := c.Decode(ops.Of[any](o, encoded.MustGet()))
	require.True(t, decoded.IsOk())
	assert.Equal(t, map[string]int32{"a": 1, "b": 2}, decoded.MustGet().Value)
}
