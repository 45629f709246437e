// Package jsonops implements ops.Ops[any] over JSON-like Go values:
// Map (an order-preserving map), []any lists, and the native bool/
// string/numeric primitives. It is the default tree format used by
// the example programs and most of the framework's own tests.
//
// Maps preserve insertion order (the spec's open question on
// re-encoding unknown fields is resolved as "preserve insertion order
// observed on decode" — a bare Go map can't honor that, so Map keeps
// an explicit key slice alongside the value index).
package jsonops

import (
	"fmt"

	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/result"
)

// Map is an order-preserving string-keyed map, the map representation
// for this Ops implementation.
type Map struct {
	keys   []string
	values map[string]any
}

// NewMap builds a Map from entries, in order. Later duplicate keys
// overwrite earlier values but keep the earlier key position, mirroring
// typical JSON-object re-assignment semantics.
func NewMap(entries ...ops.MapEntry[any]) Map {
	m := Map{values: make(map[string]any, len(entries))}
	for _, e := range entries {
		key, _ := e.Key.(string)
		m = m.with(key, e.Value)
	}
	return m
}

func (m Map) with(key string, value any) Map {
	_, exists := m.values[key]
	newValues := make(map[string]any, len(m.values)+1)
	for k, v := range m.values {
		newValues[k] = v
	}
	newValues[key] = value
	newKeys := m.keys
	if !exists {
		newKeys = append(append([]string{}, m.keys...), key)
	}
	return Map{keys: newKeys, values: newValues}
}

func (m Map) without(key string) Map {
	if _, exists := m.values[key]; !exists {
		return m
	}
	newValues := make(map[string]any, len(m.values))
	newKeys := make([]string, 0, len(m.keys))
	for _, k := range m.keys {
		if k == key {
			continue
		}
		newKeys = append(newKeys, k)
		newValues[k] = m.values[k]
	}
	return Map{keys: newKeys, values: newValues}
}

// Get returns the value for key and whether it was present.
func (m Map) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Keys returns the map's keys in insertion order.
func (m Map) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// Ops is the jsonops.Ops[any] implementation.
type Ops struct{}

var _ ops.Ops[any] = Ops{}

func (Ops) Empty() any { return nil }

func (Ops) IsMap(v any) bool {
	_, ok := v.(Map)
	return ok
}

func (Ops) IsList(v any) bool {
	_, ok := v.([]any)
	return ok
}

func (Ops) IsString(v any) bool {
	_, ok := v.(string)
	return ok
}

func (Ops) IsNumber(v any) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, float32, float64:
		return true
	default:
		return false
	}
}

func (Ops) IsBool(v any) bool {
	_, ok := v.(bool)
	return ok
}

func (Ops) CreateString(s string) any   { return s }
func (Ops) CreateBool(b bool) any       { return b }
func (Ops) CreateInt(i int32) any       { return i }
func (Ops) CreateLong(i int64) any      { return i }
func (Ops) CreateFloat(f float32) any   { return f }
func (Ops) CreateDouble(f float64) any  { return f }
func (Ops) CreateByte(b int8) any       { return b }
func (Ops) CreateShort(s int16) any     { return s }
func (Ops) CreateNumeric(f float64) any { return f }

func (o Ops) GetStringValue(v any) result.Result[string] {
	if s, ok := v.(string); ok {
		return result.Ok(s)
	}
	return result.Errf[string]("jsonops: expected string, got %s", describe(v))
}

func (o Ops) GetNumberValue(v any) result.Result[float64] {
	switch n := v.(type) {
	case int:
		return result.Ok(float64(n))
	case int8:
		return result.Ok(float64(n))
	case int16:
		return result.Ok(float64(n))
	case int32:
		return result.Ok(float64(n))
	case int64:
		return result.Ok(float64(n))
	case float32:
		return result.Ok(float64(n))
	case float64:
		return result.Ok(n)
	default:
		return result.Errf[float64]("jsonops: expected number, got %s", describe(v))
	}
}

func (o Ops) GetBooleanValue(v any) result.Result[bool] {
	if b, ok := v.(bool); ok {
		return result.Ok(b)
	}
	return result.Errf[bool]("jsonops: expected bool, got %s", describe(v))
}

func (Ops) EmptyList() any { return []any{} }
func (Ops) EmptyMap() any  { return Map{values: map[string]any{}} }

func (Ops) CreateList(items []any) any {
	out := make([]any, len(items))
	copy(out, items)
	return out
}

func (o Ops) CreateMap(entries []ops.MapEntry[any]) result.Result[any] {
	m := Map{values: make(map[string]any, len(entries))}
	for _, e := range entries {
		key, ok := e.Key.(string)
		if !ok {
			return result.Errf[any]("jsonops: map keys must be strings, got %s", describe(e.Key))
		}
		m = m.with(key, e.Value)
	}
	return result.Ok[any](m)
}

func (o Ops) GetList(v any) result.Result[[]any] {
	if l, ok := v.([]any); ok {
		return result.Ok(l)
	}
	return result.Errf[[]any]("jsonops: expected list, got %s", describe(v))
}

func (o Ops) GetMapEntries(v any) result.Result[[]ops.MapEntry[any]] {
	m, ok := v.(Map)
	if !ok {
		return result.Errf[[]ops.MapEntry[any]]("jsonops: expected map, got %s", describe(v))
	}
	entries := make([]ops.MapEntry[any], 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, ops.MapEntry[any]{Key: k, Value: m.values[k]})
	}
	return result.Ok(entries)
}

func (o Ops) MergeToList(list any, element any) result.Result[any] {
	if list == nil {
		return result.Ok[any]([]any{element})
	}
	l, ok := list.([]any)
	if !ok {
		return result.Errf[any]("jsonops: merge_to_list expected list, got %s", describe(list))
	}
	out := make([]any, len(l)+1)
	copy(out, l)
	out[len(l)] = element
	return result.Ok[any](out)
}

func (o Ops) MergeToMap(m any, key any, value any) result.Result[any] {
	if m == nil {
		m = Map{values: map[string]any{}}
	}
	base, ok := m.(Map)
	if !ok {
		return result.Errf[any]("jsonops: merge_to_map expected map, got %s", describe(m))
	}
	k, ok := key.(string)
	if !ok {
		return result.Errf[any]("jsonops: merge_to_map key must be string, got %s", describe(key))
	}
	return result.Ok[any](base.with(k, value))
}

func (o Ops) MergeMaps(m any, other any) result.Result[any] {
	if m == nil {
		m = Map{values: map[string]any{}}
	}
	base, ok := m.(Map)
	if !ok {
		return result.Errf[any]("jsonops: merge_maps expected map, got %s", describe(m))
	}
	if other == nil {
		return result.Ok[any](base)
	}
	add, ok := other.(Map)
	if !ok {
		return result.Errf[any]("jsonops: merge_maps expected map, got %s", describe(other))
	}
	merged := base
	for _, k := range add.keys {
		merged = merged.with(k, add.values[k])
	}
	return result.Ok[any](merged)
}

func (Ops) Get(v any, key string) (any, bool) {
	m, ok := v.(Map)
	if !ok {
		return nil, false
	}
	return m.Get(key)
}

func (Ops) Has(v any, key string) bool {
	m, ok := v.(Map)
	if !ok {
		return false
	}
	_, ok = m.values[key]
	return ok
}

func (Ops) Set(v any, key string, newValue any) any {
	m, ok := v.(Map)
	if !ok {
		m = Map{values: map[string]any{}}
	}
	return m.with(key, newValue)
}

func (Ops) Remove(v any, key string) any {
	m, ok := v.(Map)
	if !ok {
		return v
	}
	return m.without(key)
}

func describe(v any) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T(%v)", v, v)
}
