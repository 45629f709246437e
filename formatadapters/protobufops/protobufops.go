// Package protobufops implements ops.Ops[*structpb.Value] over
// google.golang.org/protobuf's well-known Struct/Value types, proving
// the format-agnostic Ops[V] contract end-to-end against a second,
// unrelated tree representation rather than leaving it aspirational
// (spec.md §4.1, §6 "Implementing Ops<V> over a new tree format").
//
// Library choice grounded on pthm-melange, golang-open2opaque and
// astronomer-epoch all depending on google.golang.org/protobuf in the
// retrieval pack.
//
// structpb.Struct's field map carries no iteration-order guarantee
// (unlike jsonops.Map, which was built specifically to preserve
// insertion order) — a limitation of the protobuf Struct wire format
// itself, not of this adapter.
package protobufops

import (
	"fmt"

	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/result"
	"google.golang.org/protobuf/types/known/structpb"
)

// Ops is the protobufops Ops[*structpb.Value] implementation.
type Ops struct{}

var _ ops.Ops[*structpb.Value] = Ops{}

func (Ops) Empty() *structpb.Value { return structpb.NewNullValue() }

func (Ops) IsMap(v *structpb.Value) bool {
	return v != nil && v.GetStructValue() != nil
}

func (Ops) IsList(v *structpb.Value) bool {
	return v != nil && v.GetListValue() != nil
}

func (Ops) IsString(v *structpb.Value) bool {
	return isStringKind(v)
}

func isStringKind(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_StringValue)
	return ok
}

func (Ops) IsNumber(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_NumberValue)
	return ok
}

func (Ops) IsBool(v *structpb.Value) bool {
	_, ok := v.GetKind().(*structpb.Value_BoolValue)
	return ok
}

func (Ops) CreateString(s string) *structpb.Value { return structpb.NewStringValue(s) }
func (Ops) CreateBool(b bool) *structpb.Value      { return structpb.NewBoolValue(b) }
func (Ops) CreateInt(i int32) *structpb.Value      { return structpb.NewNumberValue(float64(i)) }
func (Ops) CreateLong(i int64) *structpb.Value      { return structpb.NewNumberValue(float64(i)) }
func (Ops) CreateFloat(f float32) *structpb.Value  { return structpb.NewNumberValue(float64(f)) }
func (Ops) CreateDouble(f float64) *structpb.Value { return structpb.NewNumberValue(f) }
func (Ops) CreateByte(b int8) *structpb.Value      { return structpb.NewNumberValue(float64(b)) }
func (Ops) CreateShort(s int16) *structpb.Value    { return structpb.NewNumberValue(float64(s)) }
func (Ops) CreateNumeric(f float64) *structpb.Value { return structpb.NewNumberValue(f) }

func (o Ops) GetStringValue(v *structpb.Value) result.Result[string] {
	if !isStringKind(v) {
		return result.Errf[string]("protobufops: expected string, got %s", describe(v))
	}
	return result.Ok(v.GetStringValue())
}

func (o Ops) GetNumberValue(v *structpb.Value) result.Result[float64] {
	if _, ok := v.GetKind().(*structpb.Value_NumberValue); !ok {
		return result.Errf[float64]("protobufops: expected number, got %s", describe(v))
	}
	return result.Ok(v.GetNumberValue())
}

func (o Ops) GetBooleanValue(v *structpb.Value) result.Result[bool] {
	if _, ok := v.GetKind().(*structpb.Value_BoolValue); !ok {
		return result.Errf[bool]("protobufops: expected bool, got %s", describe(v))
	}
	return result.Ok(v.GetBoolValue())
}

func (Ops) EmptyList() *structpb.Value {
	return structpb.NewListValue(&structpb.ListValue{})
}

func (Ops) EmptyMap() *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{}})
}

func (Ops) CreateList(items []*structpb.Value) *structpb.Value {
	return structpb.NewListValue(&structpb.ListValue{Values: items})
}

func (o Ops) CreateMap(entries []ops.MapEntry[*structpb.Value]) result.Result[*structpb.Value] {
	fields := make(map[string]*structpb.Value, len(entries))
	for _, e := range entries {
		if !isStringKind(e.Key) {
			return result.Errf[*structpb.Value]("protobufops: map keys must be strings, got %s", describe(e.Key))
		}
		fields[e.Key.GetStringValue()] = e.Value
	}
	return result.Ok(structpb.NewStructValue(&structpb.Struct{Fields: fields}))
}

func (o Ops) GetList(v *structpb.Value) result.Result[[]*structpb.Value] {
	l := v.GetListValue()
	if l == nil {
		return result.Errf[[]*structpb.Value]("protobufops: expected list, got %s", describe(v))
	}
	return result.Ok(l.GetValues())
}

func (o Ops) GetMapEntries(v *structpb.Value) result.Result[[]ops.MapEntry[*structpb.Value]] {
	s := v.GetStructValue()
	if s == nil {
		return result.Errf[[]ops.MapEntry[*structpb.Value]]("protobufops: expected map, got %s", describe(v))
	}
	entries := make([]ops.MapEntry[*structpb.Value], 0, len(s.GetFields()))
	for k, val := range s.GetFields() {
		entries = append(entries, ops.MapEntry[*structpb.Value]{Key: structpb.NewStringValue(k), Value: val})
	}
	return result.Ok(entries)
}

func (o Ops) MergeToList(list *structpb.Value, element *structpb.Value) result.Result[*structpb.Value] {
	if list == nil || list.GetListValue() == nil {
		return result.Ok(structpb.NewListValue(&structpb.ListValue{Values: []*structpb.Value{element}}))
	}
	values := append(append([]*structpb.Value{}, list.GetListValue().GetValues()...), element)
	return result.Ok(structpb.NewListValue(&structpb.ListValue{Values: values}))
}

func (o Ops) MergeToMap(m *structpb.Value, key *structpb.Value, value *structpb.Value) result.Result[*structpb.Value] {
	if !isStringKind(key) {
		return result.Errf[*structpb.Value]("protobufops: merge_to_map key must be string, got %s", describe(key))
	}
	fields := cloneFields(m)
	fields[key.GetStringValue()] = value
	return result.Ok(structpb.NewStructValue(&structpb.Struct{Fields: fields}))
}

func (o Ops) MergeMaps(m *structpb.Value, other *structpb.Value) result.Result[*structpb.Value] {
	if other == nil || other.GetStructValue() == nil {
		return result.Ok(structpb.NewStructValue(&structpb.Struct{Fields: cloneFields(m)}))
	}
	fields := cloneFields(m)
	for k, v := range other.GetStructValue().GetFields() {
		fields[k] = v
	}
	return result.Ok(structpb.NewStructValue(&structpb.Struct{Fields: fields}))
}

func (Ops) Get(v *structpb.Value, key string) (*structpb.Value, bool) {
	s := v.GetStructValue()
	if s == nil {
		return nil, false
	}
	val, ok := s.GetFields()[key]
	return val, ok
}

func (Ops) Has(v *structpb.Value, key string) bool {
	s := v.GetStructValue()
	if s == nil {
		return false
	}
	_, ok := s.GetFields()[key]
	return ok
}

func (Ops) Set(v *structpb.Value, key string, newValue *structpb.Value) *structpb.Value {
	fields := cloneFields(v)
	fields[key] = newValue
	return structpb.NewStructValue(&structpb.Struct{Fields: fields})
}

func (Ops) Remove(v *structpb.Value, key string) *structpb.Value {
	s := v.GetStructValue()
	if s == nil {
		return v
	}
	fields := cloneFields(v)
	delete(fields, key)
	return structpb.NewStructValue(&structpb.Struct{Fields: fields})
}

func cloneFields(v *structpb.Value) map[string]*structpb.Value {
	s := v.GetStructValue()
	out := make(map[string]*structpb.Value, len(s.GetFields()))
	for k, val := range s.GetFields() {
		out[k] = val
	}
	return out
}

func describe(v *structpb.Value) string {
	if v == nil {
		return "null"
	}
	return fmt.Sprintf("%T(%v)", v.GetKind(), v)
}
