package ops

import "github.com/shyptr/datafixer/result"

// Dynamic pairs an opaque tree value with the Ops capable of
// inspecting/constructing it. It is the ergonomic façade over Ops:
// navigation methods return another Dynamic[V] over the same Ops so
// chains never need to thread Ops by hand.
type Dynamic[V any] struct {
	Ops   Ops[V]
	Value V
}

// Of wraps a value with its Ops.
func Of[V any](o Ops[V], v V) Dynamic[V] {
	return Dynamic[V]{Ops: o, Value: v}
}

// Empty returns a Dynamic wrapping the canonical null value.
func Empty[V any](o Ops[V]) Dynamic[V] {
	return Dynamic[V]{Ops: o, Value: o.Empty()}
}

func (d Dynamic[V]) IsMap() bool    { return d.Ops.IsMap(d.Value) }
func (d Dynamic[V]) IsList() bool   { return d.Ops.IsList(d.Value) }
func (d Dynamic[V]) IsString() bool { return d.Ops.IsString(d.Value) }
func (d Dynamic[V]) IsNumber() bool { return d.Ops.IsNumber(d.Value) }
func (d Dynamic[V]) IsBool() bool   { return d.Ops.IsBool(d.Value) }

// Get navigates to a map field. Absent keys return a Dynamic wrapping
// Empty() rather than erroring or panicking — absence only surfaces
// once the caller tries to convert the result to a concrete type
// (spec.md §4.1).
func (d Dynamic[V]) Get(key string) Dynamic[V] {
	if v, ok := d.Ops.Get(d.Value, key); ok {
		return Dynamic[V]{Ops: d.Ops, Value: v}
	}
	return Empty(d.Ops)
}

// Has reports whether the map field is present.
func (d Dynamic[V]) Has(key string) bool {
	return d.Ops.Has(d.Value, key)
}

// Set returns a new Dynamic with key set to val's value.
func (d Dynamic[V]) Set(key string, val Dynamic[V]) Dynamic[V] {
	return Dynamic[V]{Ops: d.Ops, Value: d.Ops.Set(d.Value, key, val.Value)}
}

// Remove returns a new Dynamic with key absent.
func (d Dynamic[V]) Remove(key string) Dynamic[V] {
	return Dynamic[V]{Ops: d.Ops, Value: d.Ops.Remove(d.Value, key)}
}

// AsString converts the value to a string, failing with a kind
// mismatch if it isn't string-kinded.
func (d Dynamic[V]) AsString() result.Result[string] {
	return d.Ops.GetStringValue(d.Value)
}

// AsNumber converts the value to a float64, failing with a kind
// mismatch if it isn't number-kinded.
func (d Dynamic[V]) AsNumber() result.Result[float64] {
	return d.Ops.GetNumberValue(d.Value)
}

// AsBool converts the value to a bool, failing with a kind mismatch
// if it isn't bool-kinded.
func (d Dynamic[V]) AsBool() result.Result[bool] {
	return d.Ops.GetBooleanValue(d.Value)
}

// AsList returns the element values as Dynamics, failing with a kind
// mismatch if the value isn't list-kinded.
func (d Dynamic[V]) AsList() result.Result[[]Dynamic[V]] {
	items := d.Ops.GetList(d.Value)
	return result.Map(items, func(vs []V) []Dynamic[V] {
		out := make([]Dynamic[V], len(vs))
		for i, v := range vs {
			out[i] = Dynamic[V]{Ops: d.Ops, Value: v}
		}
		return out
	})
}

// MapEntryDynamic is a map entry whose key and value have been
// wrapped as Dynamics.
type MapEntryDynamic[V any] struct {
	Key   Dynamic[V]
	Value Dynamic[V]
}

// AsMapEntries returns the map's key/value pairs as Dynamics, failing
// with a kind mismatch if the value isn't map-kinded.
func (d Dynamic[V]) AsMapEntries() result.Result[[]MapEntryDynamic[V]] {
	entries := d.Ops.GetMapEntries(d.Value)
	return result.Map(entries, func(es []MapEntry[V]) []MapEntryDynamic[V] {
		out := make([]MapEntryDynamic[V], len(es))
		for i, e := range es {
			out[i] = MapEntryDynamic[V]{
				Key:   Dynamic[V]{Ops: d.Ops, Value: e.Key},
				Value: Dynamic[V]{Ops: d.Ops, Value: e.Value},
			}
		}
		return out
	})
}

// MergeInto shallow, right-biased merges other's map fields into d.
func (d Dynamic[V]) MergeInto(other Dynamic[V]) result.Result[Dynamic[V]] {
	merged := d.Ops.MergeMaps(d.Value, other.Value)
	return result.Map(merged, func(v V) Dynamic[V] {
		return Dynamic[V]{Ops: d.Ops, Value: v}
	})
}

// Append appends element onto the list value d, returning a new
// Dynamic.
func (d Dynamic[V]) Append(element Dynamic[V]) result.Result[Dynamic[V]] {
	merged := d.Ops.MergeToList(d.Value, element.Value)
	return result.Map(merged, func(v V) Dynamic[V] {
		return Dynamic[V]{Ops: d.Ops, Value: v}
	})
}
