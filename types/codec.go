package types

import (
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/result"
)

// Pair is the runtime value of a Product(A, B) Type.
type Pair struct{ First, Second any }

// Either is the runtime value of a Sum(A, B) Type.
type Either struct {
	IsLeft bool
	Left   any
	Right  any
}

// OptionalValue is the runtime value of an Optional/OptionalField
// Type.
type OptionalValue struct {
	Present bool
	Value   any
}

// TaggedValue is the runtime value of a TaggedChoice Type: the
// discriminator value plus the decoded variant payload.
type TaggedValue struct {
	Tag   string
	Value any
}

// Decoded is the result of decoding a Dynamic[V] against a Type: the
// logical value plus the leftover Dynamic (spec.md §3's Codec<A>
// decode signature). The Type-level codecs in this package always
// read fields directly from the shared value rather than threading a
// byte-stream style leftover (maps don't have positional consumption
// the way a binary format would), so Leftover is the input dyn
// unchanged. The record combinators in package codec (Field1..Field4)
// likewise return their input as the Leftover.
type Decoded[V any] struct {
	Value    any
	Leftover ops.Dynamic[V]
}

func isNullish[V any](dyn ops.Dynamic[V]) bool {
	o := dyn.Ops
	v := dyn.Value
	return !o.IsMap(v) && !o.IsList(v) && !o.IsString(v) && !o.IsNumber(v) && !o.IsBool(v)
}

// Decode interprets dyn according to t, producing the corresponding
// runtime value (a Go primitive, []any, Pair, Either, OptionalValue,
// TaggedValue, or ops.Dynamic[V] for Passthrough).
func Decode[V any](t Type, dyn ops.Dynamic[V]) result.Result[Decoded[V]] {
	wrap := func(v any) result.Result[Decoded[V]] {
		return result.Ok(Decoded[V]{Value: v, Leftover: dyn})
	}

	switch tt := t.(type) {
	case *Primitive:
		return decodePrimitive(tt, dyn, wrap)

	case *List:
		items := dyn.AsList()
		if items.IsError() {
			return result.Err[Decoded[V]](items.Error())
		}
		decoded := make([]any, 0, len(items.MustGet()))
		for _, item := range items.MustGet() {
			d := Decode(tt.Elem, item)
			if d.IsError() {
				return result.ErrPartial(d.Error(), Decoded[V]{Value: decoded, Leftover: dyn})
			}
			decoded = append(decoded, d.MustGet().Value)
		}
		return wrap(decoded)

	case *Optional:
		if isNullish(dyn) {
			return wrap(OptionalValue{Present: false})
		}
		d := Decode(tt.Elem, dyn)
		if d.IsError() {
			return result.Err[Decoded[V]](d.Error())
		}
		return wrap(OptionalValue{Present: true, Value: d.MustGet().Value})

	case *Product:
		a := Decode(tt.First, dyn)
		if a.IsError() {
			return result.Err[Decoded[V]](a.Error())
		}
		b := Decode(tt.Second, dyn)
		if b.IsError() {
			return result.Err[Decoded[V]](b.Error())
		}
		return wrap(Pair{First: a.MustGet().Value, Second: b.MustGet().Value})

	case *Sum:
		if a := Decode(tt.Left, dyn); a.IsOk() {
			return wrap(Either{IsLeft: true, Left: a.MustGet().Value})
		}
		if b := Decode(tt.Right, dyn); b.IsOk() {
			return wrap(Either{IsLeft: false, Right: b.MustGet().Value})
		}
		return result.Errf[Decoded[V]]("types: value matches neither side of sum %s", tt.Describe())

	case *Field:
		if !dyn.Has(tt.Name) {
			return result.Errf[Decoded[V]]("types: missing required field %q", tt.Name)
		}
		d := Decode(tt.Elem, dyn.Get(tt.Name))
		if d.IsError() {
			return result.Err[Decoded[V]](d.Error())
		}
		return wrap(d.MustGet().Value)

	case *OptionalField:
		if !dyn.Has(tt.Name) {
			return wrap(OptionalValue{Present: false})
		}
		d := Decode(tt.Elem, dyn.Get(tt.Name))
		if d.IsError() {
			return result.Err[Decoded[V]](d.Error())
		}
		return wrap(OptionalValue{Present: true, Value: d.MustGet().Value})

	case Passthrough:
		return wrap(dyn)

	case *TaggedChoice:
		tagVal := dyn.Get(tt.Tag).AsString()
		if tagVal.IsError() {
			return result.Err[Decoded[V]](tagVal.Error())
		}
		caseType, ok := tt.CaseFor(tagVal.MustGet())
		if !ok {
			return result.Errf[Decoded[V]]("types: unknown tag %q for discriminator %q", tagVal.MustGet(), tt.Tag)
		}
		stripped := dyn.Remove(tt.Tag)
		d := Decode(caseType, stripped)
		if d.IsError() {
			return result.Err[Decoded[V]](d.Error())
		}
		return wrap(TaggedValue{Tag: tagVal.MustGet(), Value: d.MustGet().Value})

	case *Named:
		return Decode(tt.Elem, dyn)

	case *Cell:
		return Decode(tt.Inner, dyn)

	default:
		return result.Errf[Decoded[V]]("types: unhandled Type variant %T", t)
	}
}

func decodePrimitive[V any](p *Primitive, dyn ops.Dynamic[V], wrap func(any) result.Result[Decoded[V]]) result.Result[Decoded[V]] {
	switch p.Kind {
	case Bool:
		r := dyn.AsBool()
		if r.IsError() {
			return result.Err[Decoded[V]](r.Error())
		}
		return wrap(r.MustGet())
	case String:
		r := dyn.AsString()
		if r.IsError() {
			return result.Err[Decoded[V]](r.Error())
		}
		return wrap(r.MustGet())
	case Int:
		r := dyn.AsNumber()
		if r.IsError() {
			return result.Err[Decoded[V]](r.Error())
		}
		return wrap(int32(r.MustGet()))
	case Long:
		r := dyn.AsNumber()
		if r.IsError() {
			return result.Err[Decoded[V]](r.Error())
		}
		return wrap(int64(r.MustGet()))
	case Byte:
		r := dyn.AsNumber()
		if r.IsError() {
			return result.Err[Decoded[V]](r.Error())
		}
		return wrap(int8(r.MustGet()))
	case Short:
		r := dyn.AsNumber()
		if r.IsError() {
			return result.Err[Decoded[V]](r.Error())
		}
		return wrap(int16(r.MustGet()))
	case Float:
		r := dyn.AsNumber()
		if r.IsError() {
			return result.Err[Decoded[V]](r.Error())
		}
		return wrap(float32(r.MustGet()))
	case Double:
		r := dyn.AsNumber()
		if r.IsError() {
			return result.Err[Decoded[V]](r.Error())
		}
		return wrap(r.MustGet())
	default:
		return result.Errf[Decoded[V]]("types: unknown primitive kind %v", p.Kind)
	}
}

// Encode writes value (in the runtime shape Decode would have
// produced for t) onto prefix, per t's structural rules.
func Encode[V any](t Type, value any, o ops.Ops[V], prefix V) result.Result[V] {
	switch tt := t.(type) {
	case *Primitive:
		return encodePrimitive(tt, value, o)

	case *List:
		items, ok := value.([]any)
		if !ok {
			return result.Errf[V]("types: encode List expected []any, got %T", value)
		}
		encoded := make([]V, 0, len(items))
		for _, item := range items {
			e := Encode(tt.Elem, item, o, o.Empty())
			if e.IsError() {
				return result.Err[V](e.Error())
			}
			encoded = append(encoded, e.MustGet())
		}
		return result.Ok(o.CreateList(encoded))

	case *Optional:
		opt, ok := value.(OptionalValue)
		if !ok {
			return result.Errf[V]("types: encode Optional expected OptionalValue, got %T", value)
		}
		if !opt.Present {
			return result.Ok(prefix)
		}
		return Encode(tt.Elem, opt.Value, o, prefix)

	case *Product:
		pair, ok := value.(Pair)
		if !ok {
			return result.Errf[V]("types: encode Product expected Pair, got %T", value)
		}
		a := Encode(tt.First, pair.First, o, prefix)
		if a.IsError() {
			return a
		}
		return Encode(tt.Second, pair.Second, o, a.MustGet())

	case *Sum:
		either, ok := value.(Either)
		if !ok {
			return result.Errf[V]("types: encode Sum expected Either, got %T", value)
		}
		if either.IsLeft {
			return Encode(tt.Left, either.Left, o, prefix)
		}
		return Encode(tt.Right, either.Right, o, prefix)

	case *Field:
		fieldVal := Encode(tt.Elem, value, o, o.Empty())
		if fieldVal.IsError() {
			return result.Err[V](fieldVal.Error())
		}
		return result.Ok(o.Set(prefix, tt.Name, fieldVal.MustGet()))

	case *OptionalField:
		opt, ok := value.(OptionalValue)
		if !ok {
			return result.Errf[V]("types: encode OptionalField expected OptionalValue, got %T", value)
		}
		if !opt.Present {
			return result.Ok(prefix)
		}
		fieldVal := Encode(tt.Elem, opt.Value, o, o.Empty())
		if fieldVal.IsError() {
			return result.Err[V](fieldVal.Error())
		}
		return result.Ok(o.Set(prefix, tt.Name, fieldVal.MustGet()))

	case Passthrough:
		dyn, ok := value.(ops.Dynamic[V])
		if !ok {
			return result.Errf[V]("types: encode Passthrough expected ops.Dynamic, got %T", value)
		}
		merged := o.MergeMaps(prefix, dyn.Value)
		return merged

	case *TaggedChoice:
		tv, ok := value.(TaggedValue)
		if !ok {
			return result.Errf[V]("types: encode TaggedChoice expected TaggedValue, got %T", value)
		}
		caseType, found := tt.CaseFor(tv.Tag)
		if !found {
			return result.Errf[V]("types: unknown tag %q for discriminator %q", tv.Tag, tt.Tag)
		}
		body := Encode(caseType, tv.Value, o, prefix)
		if body.IsError() {
			return body
		}
		return result.Ok(o.Set(body.MustGet(), tt.Tag, o.CreateString(tv.Tag)))

	case *Named:
		return Encode(tt.Elem, value, o, prefix)

	case *Cell:
		return Encode(tt.Inner, value, o, prefix)

	default:
		return result.Errf[V]("types: unhandled Type variant %T", t)
	}
}

func encodePrimitive[V any](p *Primitive, value any, o ops.Ops[V]) result.Result[V] {
	switch p.Kind {
	case Bool:
		v, ok := value.(bool)
		if !ok {
			return result.Errf[V]("types: encode Bool expected bool, got %T", value)
		}
		return result.Ok(o.CreateBool(v))
	case String:
		v, ok := value.(string)
		if !ok {
			return result.Errf[V]("types: encode String expected string, got %T", value)
		}
		return result.Ok(o.CreateString(v))
	case Int:
		v, ok := value.(int32)
		if !ok {
			return result.Errf[V]("types: encode Int expected int32, got %T", value)
		}
		return result.Ok(o.CreateInt(v))
	case Long:
		v, ok := value.(int64)
		if !ok {
			return result.Errf[V]("types: encode Long expected int64, got %T", value)
		}
		return result.Ok(o.CreateLong(v))
	case Byte:
		v, ok := value.(int8)
		if !ok {
			return result.Errf[V]("types: encode Byte expected int8, got %T", value)
		}
		return result.Ok(o.CreateByte(v))
	case Short:
		v, ok := value.(int16)
		if !ok {
			return result.Errf[V]("types: encode Short expected int16, got %T", value)
		}
		return result.Ok(o.CreateShort(v))
	case Float:
		v, ok := value.(float32)
		if !ok {
			return result.Errf[V]("types: encode Float expected float32, got %T", value)
		}
		return result.Ok(o.CreateFloat(v))
	case Double:
		v, ok := value.(float64)
		if !ok {
			return result.Errf[V]("types: encode Double expected float64, got %T", value)
		}
		return result.Ok(o.CreateDouble(v))
	default:
		return result.Errf[V]("types: unknown primitive kind %v", p.Kind)
	}
}
