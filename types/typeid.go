// Package types implements the type/schema layer (component C):
// symbolic type identifiers, per-version schemas registering
// structural templates, and the Type/Typed machinery those
// schemas are built from (spec.md §3, §4.3).
package types

import "github.com/shyptr/datafixer/ops"

// TypeID is a non-empty string identifier for a logical data kind
// ("player", "entity"). Equality is string equality.
type TypeID string

// TaggedDynamic is a (TypeID, Dynamic) pair — the unit of migration
// input/output.
type TaggedDynamic[V any] struct {
	TypeID TypeID
	Value  ops.Dynamic[V]
}
