// Package ops defines the format-agnostic capability interface (Ops[V])
// for inspecting and constructing values in some underlying tree
// format (maps, lists, primitives) — component A of the migration
// framework (spec.md §4.1).
//
// Ops purposefully does not use reflection: a caller that wants to
// migrate a new tree format (protobuf structpb, CBOR, TOML, ...)
// implements Ops[V] for their V and everything above this package —
// Dynamic, Codec, optics, rewrite rules, the fixer runtime — works
// unmodified.
package ops

import "github.com/shyptr/datafixer/result"

// MapEntry is a single key/value pair as produced by GetMapEntries and
// consumed by CreateMap. Keys are always string-kinded tree values.
type MapEntry[V any] struct {
	Key   V
	Value V
}

// Ops is the capability object describing, for an opaque tree value
// type V, every operation the rest of the framework needs: kind
// tests, primitive constructors/readers, list/map construction and
// traversal, and field-level get/set/remove/merge.
//
// Contract: every method that would "mutate" returns a new V. No
// implementation may mutate an input V in place (spec.md §4.1,
// "Ops purity").
type Ops[V any] interface {
	// Empty returns the canonical "nothing" value, used as null.
	Empty() V

	IsMap(v V) bool
	IsList(v V) bool
	IsString(v V) bool
	IsNumber(v V) bool
	IsBool(v V) bool

	CreateString(s string) V
	CreateBool(b bool) V
	CreateInt(i int32) V
	CreateLong(i int64) V
	CreateFloat(f float32) V
	CreateDouble(f float64) V
	CreateByte(b int8) V
	CreateShort(s int16) V
	CreateNumeric(f float64) V

	GetStringValue(v V) result.Result[string]
	GetNumberValue(v V) result.Result[float64]
	GetBooleanValue(v V) result.Result[bool]

	EmptyList() V
	EmptyMap() V

	// CreateList builds a list value from elements, in order.
	CreateList(items []V) V
	// CreateMap builds a map value. An entry whose Key is not a
	// string-kinded value fails the whole construction.
	CreateMap(entries []MapEntry[V]) result.Result[V]

	GetList(v V) result.Result[[]V]
	GetMapEntries(v V) result.Result[[]MapEntry[V]]

	// MergeToList appends element to list, returning a new list. An
	// Empty() list input is treated as an empty list.
	MergeToList(list V, element V) result.Result[V]
	// MergeToMap sets key=value on m, returning a new map. key must
	// be string-kinded. An Empty() map input is treated as an empty
	// map.
	MergeToMap(m V, key V, value V) result.Result[V]
	// MergeMaps performs a shallow, right-biased merge of other into
	// m.
	MergeMaps(m V, other V) result.Result[V]

	Get(v V, key string) (V, bool)
	Has(v V, key string) bool
	// Set returns a new value with key=newValue. If v is not a map,
	// a fresh map is created.
	Set(v V, key string, newValue V) V
	// Remove returns a new value with key absent. If v is not a map,
	// v is returned unchanged.
	Remove(v V, key string) V
}

// Convert performs a best-effort, recursive conversion of a value
// produced by srcOps into the tree format of dstOps, probing in the
// fixed order bool -> number -> string -> list -> map -> empty (spec.md
// §4.1, §9 open question on convert_to). Lossy across formats that
// can't represent everything the source can (e.g. TOML/XML vs JSON);
// callers treat the result as best-effort, not a guaranteed roundtrip.
func Convert[U, V any](dstOps Ops[V], srcOps Ops[U], u U) V {
	if b := srcOps.GetBooleanValue(u); b.IsOk() {
		return dstOps.CreateBool(b.MustGet())
	}
	if n := srcOps.GetNumberValue(u); n.IsOk() {
		return dstOps.CreateNumeric(n.MustGet())
	}
	if s := srcOps.GetStringValue(u); s.IsOk() {
		return dstOps.CreateString(s.MustGet())
	}
	if list := srcOps.GetList(u); list.IsOk() {
		items := list.MustGet()
		converted := make([]V, len(items))
		for i, item := range items {
			converted[i] = Convert(dstOps, srcOps, item)
		}
		return dstOps.CreateList(converted)
	}
	if entries := srcOps.GetMapEntries(u); entries.IsOk() {
		raw := entries.MustGet()
		converted := make([]MapEntry[V], len(raw))
		for i, e := range raw {
			converted[i] = MapEntry[V]{
				Key:   Convert(dstOps, srcOps, e.Key),
				Value: Convert(dstOps, srcOps, e.Value),
			}
		}
		if m := dstOps.CreateMap(converted); m.IsOk() {
			return m.MustGet()
		}
	}
	return dstOps.Empty()
}
