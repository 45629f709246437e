package codec

import (
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/result"
)

func primitive[A any, V any](
	read func(ops.Dynamic[V]) result.Result[A],
	write func(A, ops.Ops[V]) V,
) Codec[A, V] {
	return Codec[A, V]{
		EncodeFn: func(a A, o ops.Ops[V], prefix V) result.Result[V] {
			return result.Ok(write(a, o))
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[A, V]] {
			return result.Map(read(dyn), func(a A) Decoded[A, V] {
				return Decoded[A, V]{Value: a, Leftover: dyn}
			})
		},
	}
}

// String is the primitive string codec.
func String[V any]() Codec[string, V] {
	return primitive(
		func(d ops.Dynamic[V]) result.Result[string] { return d.AsString() },
		func(s string, o ops.Ops[V]) V { return o.CreateString(s) },
	)
}

// Bool is the primitive bool codec.
func Bool[V any]() Codec[bool, V] {
	return primitive(
		func(d ops.Dynamic[V]) result.Result[bool] { return d.AsBool() },
		func(b bool, o ops.Ops[V]) V { return o.CreateBool(b) },
	)
}

// Int is the primitive int32 codec.
func Int[V any]() Codec[int32, V] {
	return primitive(
		func(d ops.Dynamic[V]) result.Result[int32] {
			return result.Map(d.AsNumber(), func(f float64) int32 { return int32(f) })
		},
		func(i int32, o ops.Ops[V]) V { return o.CreateInt(i) },
	)
}

// Long is the primitive int64 codec.
func Long[V any]() Codec[int64, V] {
	return primitive(
		func(d ops.Dynamic[V]) result.Result[int64] {
			return result.Map(d.AsNumber(), func(f float64) int64 { return int64(f) })
		},
		func(i int64, o ops.Ops[V]) V { return o.CreateLong(i) },
	)
}

// Byte is the primitive int8 codec.
func Byte[V any]() Codec[int8, V] {
	return primitive(
		func(d ops.Dynamic[V]) result.Result[int8] {
			return result.Map(d.AsNumber(), func(f float64) int8 { return int8(f) })
		},
		func(i int8, o ops.Ops[V]) V { return o.CreateByte(i) },
	)
}

// Short is the primitive int16 codec.
func Short[V any]() Codec[int16, V] {
	return primitive(
		func(d ops.Dynamic[V]) result.Result[int16] {
			return result.Map(d.AsNumber(), func(f float64) int16 { return int16(f) })
		},
		func(i int16, o ops.Ops[V]) V { return o.CreateShort(i) },
	)
}

// Float is the primitive float32 codec.
func Float[V any]() Codec[float32, V] {
	return primitive(
		func(d ops.Dynamic[V]) result.Result[float32] {
			return result.Map(d.AsNumber(), func(f float64) float32 { return float32(f) })
		},
		func(f float32, o ops.Ops[V]) V { return o.CreateFloat(f) },
	)
}

// Double is the primitive float64 codec.
func Double[V any]() Codec[float64, V] {
	return primitive(
		func(d ops.Dynamic[V]) result.Result[float64] { return d.AsNumber() },
		func(f float64, o ops.Ops[V]) V { return o.CreateDouble(f) },
	)
}
