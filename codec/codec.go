// Package codec implements bidirectional, composable encoder/decoders
// between typed Go values and the tree model (component E, spec.md
// §4.5). Unlike the structural Type-level codecs in package types
// (which operate on the untyped `any` runtime shapes a Type
// describes), Codec[A, V] is parameterized over a concrete Go type A,
// for application authors who want to encode/decode their own structs
// directly.
//
// Go has no higher-rank types, so a Codec can't be "universally
// quantified over Ops" the way spec.md's design notes describe in the
// abstract (option (a)): this package takes option (b) instead and
// monomorphizes Codec over both the value type A and the tree type V.
package codec

import (
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/result"
)

// Decoded is the result of a successful decode: the typed value plus
// the leftover Dynamic, which a composed codec (e.g. a field built by
// a RecordCodecBuilder) may consume further.
type Decoded[A any, V any] struct {
	Value    A
	Leftover ops.Dynamic[V]
}

// Codec pairs an encode and a decode arrow for a concrete Go type A
// over tree values V.
type Codec[A any, V any] struct {
	EncodeFn func(a A, o ops.Ops[V], prefix V) result.Result[V]
	DecodeFn func(dyn ops.Dynamic[V]) result.Result[Decoded[A, V]]
}

// Encode writes a onto prefix.
func (c Codec[A, V]) Encode(a A, o ops.Ops[V], prefix V) result.Result[V] {
	return c.EncodeFn(a, o, prefix)
}

// Decode reads a value of type A from dyn.
func (c Codec[A, V]) Decode(dyn ops.Dynamic[V]) result.Result[Decoded[A, V]] {
	return c.DecodeFn(dyn)
}

// PartialCodec is a field-scoped codec that cooperates with a
// RecordCodecBuilder combinator (Field1..Field4 in record.go) to
// assemble/disassemble a record one field at a time.
type PartialCodec[A any, V any] struct {
	Name string
	Elem Codec[A, V]
}

// Field declares a named, required field codec.
func Field[A any, V any](name string, elem Codec[A, V]) PartialCodec[A, V] {
	return PartialCodec[A, V]{Name: name, Elem: elem}
}

func (p PartialCodec[A, V]) decodeFrom(dyn ops.Dynamic[V]) result.Result[A] {
	if !dyn.Has(p.Name) {
		return result.Errf[A]("codec: missing required field %q", p.Name)
	}
	d := p.Elem.Decode(dyn.Get(p.Name))
	return result.Map(d, func(x Decoded[A, V]) A { return x.Value })
}

func (p PartialCodec[A, V]) encodeOnto(a A, o ops.Ops[V], prefix V) result.Result[V] {
	fieldVal := p.Elem.Encode(a, o, o.Empty())
	return result.FlatMap(fieldVal, func(v V) result.Result[V] {
		return result.Ok(o.Set(prefix, p.Name, v))
	})
}
