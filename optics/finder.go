package optics

import "github.com/shyptr/datafixer/ops"

// FieldFinder is a Finder over a map-kinded Dynamic: focuses on a
// named field, a no-op write when the field is absent (spec.md §4.6,
// §4.3: "Finder<T> ... field-by-name, index-in-list,
// remainder-excluding").
func FieldFinder[V any](name string) Affine[ops.Dynamic[V], ops.Dynamic[V]] {
	return Affine[ops.Dynamic[V], ops.Dynamic[V]]{
		GetOption: func(d ops.Dynamic[V]) (ops.Dynamic[V], bool) {
			if !d.Has(name) {
				return ops.Dynamic[V]{}, false
			}
			return d.Get(name), true
		},
		Set: func(d ops.Dynamic[V], v ops.Dynamic[V]) ops.Dynamic[V] {
			if !d.Has(name) {
				return d
			}
			return d.Set(name, v)
		},
	}
}

// IndexFinder is a Finder over a list-kinded Dynamic: focuses on the
// element at index i, a no-op write when the index is out of range.
func IndexFinder[V any](i int) Affine[ops.Dynamic[V], ops.Dynamic[V]] {
	return Affine[ops.Dynamic[V], ops.Dynamic[V]]{
		GetOption: func(d ops.Dynamic[V]) (ops.Dynamic[V], bool) {
			items := d.AsList()
			if items.IsError() {
				return ops.Dynamic[V]{}, false
			}
			list := items.MustGet()
			if i < 0 || i >= len(list) {
				return ops.Dynamic[V]{}, false
			}
			return list[i], true
		},
		Set: func(d ops.Dynamic[V], v ops.Dynamic[V]) ops.Dynamic[V] {
			items := d.AsList()
			if items.IsError() {
				return d
			}
			list := items.MustGet()
			if i < 0 || i >= len(list) {
				return d
			}
			rebuilt := make([]V, len(list))
			for idx, item := range list {
				if idx == i {
					rebuilt[idx] = v.Value
				} else {
					rebuilt[idx] = item.Value
				}
			}
			return ops.Dynamic[V]{Ops: d.Ops, Value: d.Ops.CreateList(rebuilt)}
		},
	}
}

// RemainderFinder is a Finder over every map field except the ones
// named in excluding — the optic backing the "remainder"/passthrough
// Type.
func RemainderFinder[V any](excluding ...string) Traversal[ops.Dynamic[V], ops.Dynamic[V]] {
	excluded := make(map[string]bool, len(excluding))
	for _, name := range excluding {
		excluded[name] = true
	}
	return Traversal[ops.Dynamic[V], ops.Dynamic[V]]{
		ToList: func(d ops.Dynamic[V]) []ops.Dynamic[V] {
			entries := d.AsMapEntries()
			if entries.IsError() {
				return nil
			}
			var out []ops.Dynamic[V]
			for _, e := range entries.MustGet() {
				key := e.Key.AsString()
				if key.IsOk() && excluded[key.MustGet()] {
					continue
				}
				out = append(out, e.Value)
			}
			return out
		},
		ModifyAll: func(d ops.Dynamic[V], f func(ops.Dynamic[V]) ops.Dynamic[V]) ops.Dynamic[V] {
			entries := d.AsMapEntries()
			if entries.IsError() {
				return d
			}
			out := d
			for _, e := range entries.MustGet() {
				key := e.Key.AsString()
				if !key.IsOk() || excluded[key.MustGet()] {
					continue
				}
				out = out.Set(key.MustGet(), f(e.Value))
			}
			return out
		},
	}
}
