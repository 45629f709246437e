package rewrite

import (
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/types"
)

type batchKind int

const (
	batchRename batchKind = iota
	batchAdd
	batchRemove
	batchTransform
)

type batchOp[V any] struct {
	kind           batchKind
	name, newName  string
	factory, apply func(ops.Dynamic[V]) ops.Dynamic[V]
}

// BatchBuilder accumulates field operations to apply in a single pass
// (spec.md §4.7 `batch`): every op reads from the Dynamic as it stood
// before the batch started, so op order doesn't change what any
// individual op sees, and all ops run inside one rule application.
// Each op that applies still builds a new Dynamic of its own.
type BatchBuilder[V any] struct {
	ops []batchOp[V]
}

// NewBatch starts an empty batch.
func NewBatch[V any]() *BatchBuilder[V] {
	return &BatchBuilder[V]{}
}

// Rename queues a field rename.
func (b *BatchBuilder[V]) Rename(old, newName string) *BatchBuilder[V] {
	b.ops = append(b.ops, batchOp[V]{kind: batchRename, name: old, newName: newName})
	return b
}

// Add queues a field set from a value factory.
func (b *BatchBuilder[V]) Add(name string, factory func(ops.Dynamic[V]) ops.Dynamic[V]) *BatchBuilder[V] {
	b.ops = append(b.ops, batchOp[V]{kind: batchAdd, name: name, factory: factory})
	return b
}

// Remove queues a field removal.
func (b *BatchBuilder[V]) Remove(name string) *BatchBuilder[V] {
	b.ops = append(b.ops, batchOp[V]{kind: batchRemove, name: name})
	return b
}

// Transform queues a field value transform.
func (b *BatchBuilder[V]) Transform(name string, f func(ops.Dynamic[V]) ops.Dynamic[V]) *BatchBuilder[V] {
	b.ops = append(b.ops, batchOp[V]{kind: batchTransform, name: name, apply: f})
	return b
}

// Batch builds a single rule out of builder's queued field ops.
func Batch[V any](builder *BatchBuilder[V]) TypeRewriteRule[V] {
	queued := append([]batchOp[V]{}, builder.ops...)
	return TypeRewriteRule[V]{
		Name: "batch",
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			original := t.Value
			next := original
			matched := false
			for _, op := range queued {
				switch op.kind {
				case batchRename:
					if original.Has(op.name) {
						v := original.Get(op.name)
						next = next.Remove(op.name).Set(op.newName, v)
						matched = true
					}
				case batchAdd:
					next = next.Set(op.name, op.factory(original))
					matched = true
				case batchRemove:
					if original.Has(op.name) {
						next = next.Remove(op.name)
						matched = true
					}
				case batchTransform:
					if original.Has(op.name) {
						next = next.Set(op.name, op.apply(original.Get(op.name)))
						matched = true
					}
				}
			}
			if !matched {
				return t, false
			}
			return t.WithValue(next), true
		},
	}
}
