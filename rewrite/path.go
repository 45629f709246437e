package rewrite

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/shyptr/datafixer/optics"
	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/types"
)

// Path is a parsed dot-separated address: each segment is either a
// field name or a list index, decided at walk time by the kind of the
// sub-value currently being navigated (spec.md §4.9). Empty path
// addresses the value itself.
type Path []string

var (
	pathCacheMu sync.Mutex
	pathCache   = map[string]Path{}
)

// ParsePath splits s on '.', rejecting empty segments, without
// regular expressions (spec.md §4.9: "parsed character-by-character").
// Results are cached by the raw string so repeated rule construction
// with the same path doesn't re-parse.
func ParsePath(s string) (Path, error) {
	pathCacheMu.Lock()
	if p, ok := pathCache[s]; ok {
		pathCacheMu.Unlock()
		return p, nil
	}
	pathCacheMu.Unlock()

	p, err := parsePath(s)
	if err != nil {
		return nil, err
	}

	pathCacheMu.Lock()
	pathCache[s] = p
	pathCacheMu.Unlock()
	return p, nil
}

func parsePath(s string) (Path, error) {
	if s == "" {
		return Path{}, nil
	}
	var segments []string
	var cur []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '.' {
			if len(cur) == 0 {
				return nil, fmt.Errorf("rewrite: empty path segment in %q", s)
			}
			segments = append(segments, string(cur))
			cur = cur[:0]
			continue
		}
		cur = append(cur, c)
	}
	if len(cur) == 0 {
		return nil, fmt.Errorf("rewrite: empty path segment in %q", s)
	}
	segments = append(segments, string(cur))
	return Path(segments), nil
}

// MustParsePath parses path, panicking on malformed input. Path-based
// rule constructors call this at registration time, the spec's
// "error at registration/parse time" for the Parse-path fault.
func MustParsePath(path string) Path {
	p, err := ParsePath(path)
	if err != nil {
		panic(err)
	}
	return p
}

// childFinder decides whether the next path segment addresses a list
// index or a map field, based on the current sub-value's kind.
func childFinder[V any](d ops.Dynamic[V], seg string) (optics.Affine[ops.Dynamic[V], ops.Dynamic[V]], bool) {
	if d.IsList() {
		idx, err := strconv.Atoi(seg)
		if err != nil {
			return optics.Affine[ops.Dynamic[V], ops.Dynamic[V]]{}, false
		}
		return optics.IndexFinder[V](idx), true
	}
	return optics.FieldFinder[V](seg), true
}

// navigate walks p from d, returning the focused Dynamic and whether
// every segment resolved.
func navigate[V any](d ops.Dynamic[V], p Path) (ops.Dynamic[V], bool) {
	cur := d
	for _, seg := range p {
		finder, ok := childFinder(cur, seg)
		if !ok {
			return ops.Dynamic[V]{}, false
		}
		next, ok := finder.GetOption(cur)
		if !ok {
			return ops.Dynamic[V]{}, false
		}
		cur = next
	}
	return cur, true
}

// rewriteAt applies f at the Dynamic addressed by p, rebuilding every
// ancestor on the way back out. Reports false (identity, no new
// structure allocated) if p doesn't resolve or f itself reports no
// match.
func rewriteAt[V any](d ops.Dynamic[V], p Path, f func(ops.Dynamic[V]) (ops.Dynamic[V], bool)) (ops.Dynamic[V], bool) {
	if len(p) == 0 {
		return f(d)
	}
	seg := p[0]
	rest := p[1:]

	finder, ok := childFinder(d, seg)
	if !ok {
		return d, false
	}
	child, ok := finder.GetOption(d)
	if !ok {
		return d, false
	}
	newChild, changed := rewriteAt(child, rest, f)
	if !changed {
		return d, false
	}
	return finder.Set(d, newChild), true
}

// splitLast splits a non-empty path into its parent segments and its
// final segment; addFieldAt/removeFieldAt/transformFieldAt/
// renameFieldAt all rewrite the parent's child named by the last
// segment.
func splitLast(p Path) (parent Path, last string, ok bool) {
	if len(p) == 0 {
		return nil, "", false
	}
	return p[:len(p)-1], p[len(p)-1], true
}

// RenameFieldAt renames the field named by the path's final segment,
// relative to the Dynamic addressed by its parent segments. Identity
// if the path doesn't resolve or the field is absent.
func RenameFieldAt[V any](path string, newName string) TypeRewriteRule[V] {
	p := MustParsePath(path)
	parent, last, splitOk := splitLast(p)
	return TypeRewriteRule[V]{
		Name: fmt.Sprintf("rename_field_at(%s -> %s)", path, newName),
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			if !splitOk {
				return t, false
			}
			next, changed := rewriteAt(t.Value, parent, func(d ops.Dynamic[V]) (ops.Dynamic[V], bool) {
				if !d.Has(last) {
					return d, false
				}
				v := d.Get(last)
				return d.Remove(last).Set(newName, v), true
			})
			if !changed {
				return t, false
			}
			return t.WithValue(next), true
		},
	}
}

// TransformFieldAt replaces the field named by the path's final
// segment with f(current). Identity if the path doesn't resolve or
// the field is absent.
func TransformFieldAt[V any](path string, f func(ops.Dynamic[V]) ops.Dynamic[V]) TypeRewriteRule[V] {
	p := MustParsePath(path)
	parent, last, splitOk := splitLast(p)
	return TypeRewriteRule[V]{
		Name: fmt.Sprintf("transform_field_at(%s)", path),
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			if !splitOk {
				return t, false
			}
			next, changed := rewriteAt(t.Value, parent, func(d ops.Dynamic[V]) (ops.Dynamic[V], bool) {
				if !d.Has(last) {
					return d, false
				}
				return d.Set(last, f(d.Get(last))), true
			})
			if !changed {
				return t, false
			}
			return t.WithValue(next), true
		},
	}
}

// AddFieldAt sets the field named by the path's final segment,
// relative to the Dynamic addressed by its parent segments. Identity
// only if the parent path itself doesn't resolve.
func AddFieldAt[V any](path string, value func(ops.Dynamic[V]) ops.Dynamic[V]) TypeRewriteRule[V] {
	p := MustParsePath(path)
	parent, last, splitOk := splitLast(p)
	return TypeRewriteRule[V]{
		Name: fmt.Sprintf("add_field_at(%s)", path),
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			if !splitOk {
				return t, false
			}
			next, changed := rewriteAt(t.Value, parent, func(d ops.Dynamic[V]) (ops.Dynamic[V], bool) {
				return d.Set(last, value(d)), true
			})
			if !changed {
				return t, false
			}
			return t.WithValue(next), true
		},
	}
}

// RemoveFieldAt removes the field named by the path's final segment.
// Identity if the path doesn't resolve or the field is already
// absent.
func RemoveFieldAt[V any](path string) TypeRewriteRule[V] {
	p := MustParsePath(path)
	parent, last, splitOk := splitLast(p)
	return TypeRewriteRule[V]{
		Name: fmt.Sprintf("remove_field_at(%s)", path),
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			if !splitOk {
				return t, false
			}
			next, changed := rewriteAt(t.Value, parent, func(d ops.Dynamic[V]) (ops.Dynamic[V], bool) {
				if !d.Has(last) {
					return d, false
				}
				return d.Remove(last), true
			})
			if !changed {
				return t, false
			}
			return t.WithValue(next), true
		},
	}
}
