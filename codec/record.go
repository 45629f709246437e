package codec

import (
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/result"
)

// Field1 builds a single-field record codec. Rarely used on its own
// (a bare Field already does the job); provided for symmetry with
// Field2..Field4.
func Field1[A any, F1 any, V any](
	c1 PartialCodec[F1, V],
	create func(F1) A,
	get1 func(A) F1,
) Codec[A, V] {
	return Codec[A, V]{
		EncodeFn: func(a A, o ops.Ops[V], prefix V) result.Result[V] {
			return c1.encodeOnto(get1(a), o, prefix)
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[A, V]] {
			f1 := c1.decodeFrom(dyn)
			if f1.IsError() {
				return result.Err[Decoded[A, V]](f1.Error())
			}
			return result.Ok(Decoded[A, V]{Value: create(f1.MustGet()), Leftover: dyn})
		},
	}
}

// Field2 combines two field codecs into a codec for a 2-arity
// constructor. Fields decode in declaration order; encoding writes
// fields in the same order onto an initially-empty map (spec.md
// §4.5).
func Field2[A any, F1 any, F2 any, V any](
	c1 PartialCodec[F1, V], c2 PartialCodec[F2, V],
	create func(F1, F2) A,
	get1 func(A) F1, get2 func(A) F2,
) Codec[A, V] {
	return Codec[A, V]{
		EncodeFn: func(a A, o ops.Ops[V], prefix V) result.Result[V] {
			p1 := c1.encodeOnto(get1(a), o, prefix)
			if p1.IsError() {
				return p1
			}
			return c2.encodeOnto(get2(a), o, p1.MustGet())
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[A, V]] {
			f1 := c1.decodeFrom(dyn)
			if f1.IsError() {
				return result.Err[Decoded[A, V]](f1.Error())
			}
			f2 := c2.decodeFrom(dyn)
			if f2.IsError() {
				return result.Err[Decoded[A, V]](f2.Error())
			}
			return result.Ok(Decoded[A, V]{Value: create(f1.MustGet(), f2.MustGet()), Leftover: dyn})
		},
	}
}

// Field3 combines three field codecs into a codec for a 3-arity
// constructor.
func Field3[A any, F1, F2, F3 any, V any](
	c1 PartialCodec[F1, V], c2 PartialCodec[F2, V], c3 PartialCodec[F3, V],
	create func(F1, F2, F3) A,
	get1 func(A) F1, get2 func(A) F2, get3 func(A) F3,
) Codec[A, V] {
	return Codec[A, V]{
		EncodeFn: func(a A, o ops.Ops[V], prefix V) result.Result[V] {
			p1 := c1.encodeOnto(get1(a), o, prefix)
			if p1.IsError() {
				return p1
			}
			p2 := c2.encodeOnto(get2(a), o, p1.MustGet())
			if p2.IsError() {
				return p2
			}
			return c3.encodeOnto(get3(a), o, p2.MustGet())
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[A, V]] {
			f1 := c1.decodeFrom(dyn)
			if f1.IsError() {
				return result.Err[Decoded[A, V]](f1.Error())
			}
			f2 := c2.decodeFrom(dyn)
			if f2.IsError() {
				return result.Err[Decoded[A, V]](f2.Error())
			}
			f3 := c3.decodeFrom(dyn)
			if f3.IsError() {
				return result.Err[Decoded[A, V]](f3.Error())
			}
			return result.Ok(Decoded[A, V]{
				Value:    create(f1.MustGet(), f2.MustGet(), f3.MustGet()),
				Leftover: dyn,
			})
		},
	}
}

// Field4 combines four field codecs into a codec for a 4-arity
// constructor.
func Field4[A any, F1, F2, F3, F4 any, V any](
	c1 PartialCodec[F1, V], c2 PartialCodec[F2, V], c3 PartialCodec[F3, V], c4 PartialCodec[F4, V],
	create func(F1, F2, F3, F4) A,
	get1 func(A) F1, get2 func(A) F2, get3 func(A) F3, get4 func(A) F4,
) Codec[A, V] {
	return Codec[A, V]{
		EncodeFn: func(a A, o ops.Ops[V], prefix V) result.Result[V] {
			p1 := c1.encodeOnto(get1(a), o, prefix)
			if p1.IsError() {
				return p1
			}
			p2 := c2.encodeOnto(get2(a), o, p1.MustGet())
			if p2.IsError() {
				return p2
			}
			p3 := c3.encodeOnto(get3(a), o, p2.MustGet())
			if p3.IsError() {
				return p3
			}
			return c4.encodeOnto(get4(a), o, p3.MustGet())
		},
		DecodeFn: func(dyn ops.Dynamic[V]) result.Result[Decoded[A, V]] {
			f1 := c1.decodeFrom(dyn)
			if f1.IsError() {
				return result.Err[Decoded[A, V]](f1.Error())
			}
			f2 := c2.decodeFrom(dyn)
			if f2.IsError() {
				return result.Err[Decoded[A, V]](f2.Error())
			}
			f3 := c3.decodeFrom(dyn)
			if f3.IsError() {
				return result.Err[Decoded[A, V]](f3.Error())
			}
			f4 := c4.decodeFrom(dyn)
			if f4.IsError() {
				return result.Err[Decoded[A, V]](f4.Error())
			}
			return result.Ok(Decoded[A, V]{
				Value:    create(f1.MustGet(), f2.MustGet(), f3.MustGet(), f4.MustGet()),
				Leftover: dyn,
			})
		},
	}
}
