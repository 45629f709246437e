package codec

import (
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/result"
)

// List builds a Codec[[]E, V] out of an element codec. One failed
// element fails the whole list decode, carrying the
// successfully-decoded prefix as a partial fallback.
func List[E any, V any](elem Codec[E, V]) Codec[[]E, V] {
	return Codec[[]E, V]{
		EncodeFn: func(a []E, o ops.Ops[V], prefix V) result.Result[V] {
			items := make([]V, 0, len(a))
			for _, e := range a {
				encoded := elem.Encode(e, o, o.Empty())
				if encoded.IsError() {
					return result.Err[V](encoded.Error())
				}
				items = append(items, encoded.MustGet())
			}
			return result.Ok(o.CreateList(items))
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[[]E, V]] {
			rawItems := dyn.AsList()
			if rawItems.IsError() {
				return result.Err[Decoded[[]E, V]](rawItems.Error())
			}
			decoded := make([]E, 0, len(rawItems.MustGet()))
			for _, item := range rawItems.MustGet() {
				d := elem.Decode(item)
				if d.IsError() {
					partial := Decoded[[]E, V]{Value: decoded, Leftover: dyn}
					return result.ErrPartial(d.Error(), partial)
				}
				decoded = append(decoded, d.MustGet().Value)
			}
			return result.Ok(Decoded[[]E, V]{Value: decoded, Leftover: dyn})
		},
	}
}

// Option is the runtime value of an Optional[E] codec.
type Option[E any] struct {
	Present bool
	Value   E
}

func Some[E any](v E) Option[E] { return Option[E]{Present: true, Value: v} }
func None[E any]() Option[E]    { var zero E; return Option[E]{Value: zero} }

// Optional builds a Codec[Option[E], V]: absent/empty decodes to
// None, otherwise delegates to elem.
func Optional[E any, V any](elem Codec[E, V]) Codec[Option[E], V] {
	return Codec[Option[E], V]{
		EncodeFn: func(a Option[E], o ops.Ops[V], prefix V) result.Result[V] {
			if !a.Present {
				return result.Ok(prefix)
			}
			return elem.Encode(a.Value, o, prefix)
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[Option[E], V]] {
			o := dyn.Ops
			v := dyn.Value
			if !o.IsMap(v) && !o.IsList(v) && !o.IsString(v) && !o.IsNumber(v) && !o.IsBool(v) {
				return result.Ok(Decoded[Option[E], V]{Value: None[E](), Leftover: dyn})
			}
			d := elem.Decode(dyn)
			return result.Map(d, func(x Decoded[E, V]) Decoded[Option[E], V] {
				return Decoded[Option[E], V]{Value: Some(x.Value), Leftover: x.Leftover}
			})
		},
	}
}

// Either is the runtime value of an Either[L, R] codec.
type Either[L any, R any] struct {
	IsLeft bool
	Left   L
	Right  R
}

func Left[L any, R any](l L) Either[L, R]  { return Either[L, R]{IsLeft: true, Left: l} }
func Right[L any, R any](r R) Either[L, R] { return Either[L, R]{Right: r} }

// EitherCodec tries the left codec first, falling back to the right.
func EitherCodec[L any, R any, V any](left Codec[L, V], right Codec[R, V]) Codec[Either[L, R], V] {
	return Codec[Either[L, R], V]{
		EncodeFn: func(a Either[L, R], o ops.Ops[V], prefix V) result.Result[V] {
			if a.IsLeft {
				return left.Encode(a.Left, o, prefix)
			}
			return right.Encode(a.Right, o, prefix)
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[Either[L, R], V]] {
			if l := left.Decode(dyn); l.IsOk() {
				return result.Ok(Decoded[Either[L, R], V]{
					Value:    Left[L, R](l.MustGet().Value),
					Leftover: l.MustGet().Leftover,
				})
			}
			r := right.Decode(dyn)
			return result.Map(r, func(x Decoded[R, V]) Decoded[Either[L, R], V] {
				return Decoded[Either[L, R], V]{Value: Right[L, R](x.Value), Leftover: x.Leftover}
			})
		},
	}
}

// Map builds a Codec[map[K]Val, V] codec out of key and value codecs.
// Keys must decode/encode to string-kinded tree values.
func Map[K comparable, Val any, V any](key Codec[K, V], val Codec[Val, V]) Codec[map[K]Val, V] {
	return Codec[map[K]Val, V]{
		EncodeFn: func(a map[K]Val, o ops.Ops[V], prefix V) result.Result[V] {
			m := prefix
			for k, v := range a {
				kv := key.Encode(k, o, o.Empty())
				if kv.IsError() {
					return result.Err[V](kv.Error())
				}
				kStr := o.GetStringValue(kv.MustGet())
				if kStr.IsError() {
					return result.Errf[V]("codec: map key did not encode to a string: %v", kv.MustGet())
				}
				vv := val.Encode(v, o, o.Empty())
				if vv.IsError() {
					return result.Err[V](vv.Error())
				}
				merged := o.MergeToMap(m, kv.MustGet(), vv.MustGet())
				if merged.IsError() {
					return result.Err[V](merged.Error())
				}
				m = merged.MustGet()
			}
			return result.Ok(m)
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[map[K]Val, V]] {
			entries := dyn.AsMapEntries()
			if entries.IsError() {
				return result.Err[Decoded[map[K]Val, V]](entries.Error())
			}
			out := make(map[K]Val, len(entries.MustGet()))
			for _, e := range entries.MustGet() {
				k := key.Decode(e.Key)
				if k.IsError() {
					return result.Err[Decoded[map[K]Val, V]](k.Error())
				}
				v := val.Decode(e.Value)
				if v.IsError() {
					return result.Err[Decoded[map[K]Val, V]](v.Error())
				}
				out[k.MustGet().Value] = v.MustGet().Value
			}
			return result.Ok(Decoded[map[K]Val, V]{Value: out, Leftover: dyn})
		},
	}
}

// XMap adapts a Codec[A, V] into a Codec[B, V] via a bijection.
func XMap[A any, B any, V any](c Codec[A, V], forward func(A) B, backward func(B) A) Codec[B, V] {
	return Codec[B, V]{
		EncodeFn: func(b B, o ops.Ops[V], prefix V) result.Result[V] {
			return c.Encode(backward(b), o, prefix)
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[B, V]] {
			d := c.Decode(dyn)
			return result.Map(d, func(x Decoded[A, V]) Decoded[B, V] {
				return Decoded[B, V]{Value: forward(x.Value), Leftover: x.Leftover}
			})
		},
	}
}

// FlatXMap adapts a Codec[A, V] into a Codec[B, V] via a fallible pair
// of conversions.
func FlatXMap[A any, B any, V any](
	c Codec[A, V],
	forward func(A) result.Result[B],
	backward func(B) result.Result[A],
) Codec[B, V] {
	return Codec[B, V]{
		EncodeFn: func(b B, o ops.Ops[V], prefix V) result.Result[V] {
			a := backward(b)
			if a.IsError() {
				return result.Err[V](a.Error())
			}
			return c.Encode(a.MustGet(), o, prefix)
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[B, V]] {
			d := c.Decode(dyn)
			if d.IsError() {
				return result.Err[Decoded[B, V]](d.Error())
			}
			b := forward(d.MustGet().Value)
			if b.IsError() {
				return result.Err[Decoded[B, V]](b.Error())
			}
			return result.Ok(Decoded[B, V]{Value: b.MustGet(), Leftover: d.MustGet().Leftover})
		},
	}
}
