package types

import "github.com/shyptr/datafixer/ops"

// Typed pairs a Dynamic value with the Type it is known to conform to
// and the TypeID that Type was looked up under — "this dynamic value
// is known to conform to this Type" (spec.md §3). It is the unit
// TypeRewriteRule operates on; TypeID is what `transform(target_type_id,
// f)` matches against.
type Typed[V any] struct {
	TypeID TypeID
	Type   Type
	Value  ops.Dynamic[V]
}

// Of builds a Typed from a TypeID, a Type and a Dynamic.
func Of[V any](id TypeID, t Type, dyn ops.Dynamic[V]) Typed[V] {
	return Typed[V]{TypeID: id, Type: t, Value: dyn}
}

// WithValue returns a copy of this Typed with a different Dynamic
// value, same TypeID/Type.
func (t Typed[V]) WithValue(dyn ops.Dynamic[V]) Typed[V] {
	t.Value = dyn
	return t
}
