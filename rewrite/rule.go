// Package rewrite implements the rule engine that transforms a
// types.Typed value into another (component G, spec.md §4.7): base
// combinators (transform, field ops), composition (sequence, choice,
// conditional), guards, path-addressed variants and batching.
//
// A TypeRewriteRule is modelled the same way the teacher's
// `golang-open2opaque/internal/fix` package models a rewrite: a named
// step with a function body, collected into ordered lists
// (rules.go's `rewrites []rewrite{name, pre, post}`). Here the
// function also reports whether it actually matched, which `choice`
// needs to decide "first applicable rule wins" without needing to
// structurally compare Dynamic values for equality.
package rewrite

import (
	"fmt"

	"github.com/shyptr/datafixer/ops"
	"github.com/shyptr/datafixer/types"
)

// TypeRewriteRule transforms a types.Typed[V] into another. Rules
// declare whether they matched the input; an unmatched rule must
// return the input unchanged, without allocating new structure for
// the sub-tree it didn't touch (spec.md §4.7, "pure and referentially
// transparent").
type TypeRewriteRule[V any] struct {
	Name  string
	apply func(types.Typed[V]) (types.Typed[V], bool)
}

// Apply runs the rule, always returning a Typed value (matched or
// not).
func (r TypeRewriteRule[V]) Apply(t types.Typed[V]) types.Typed[V] {
	if r.apply == nil {
		return t
	}
	out, _ := r.apply(t)
	return out
}

func (r TypeRewriteRule[V]) tryApply(t types.Typed[V]) (types.Typed[V], bool) {
	if r.apply == nil {
		return t, false
	}
	return r.apply(t)
}

// TryApply runs the rule and reports whether it matched. Exported for
// callers outside this package that need the match bit directly (the
// diagnostics rule-recording wrapper, most notably).
func (r TypeRewriteRule[V]) TryApply(t types.Typed[V]) (types.Typed[V], bool) {
	return r.tryApply(t)
}

// Rule builds a TypeRewriteRule from a raw matched/unmatched function.
// Exported so other packages (diagnostics' recording wrapper) can
// construct rules without access to this package's internals.
func Rule[V any](name string, f func(types.Typed[V]) (types.Typed[V], bool)) TypeRewriteRule[V] {
	return TypeRewriteRule[V]{Name: name, apply: f}
}

func (r TypeRewriteRule[V]) String() string { return r.Name }

// Transform matches when the input's TypeID equals targetID; f
// rewrites the Dynamic value directly.
func Transform[V any](targetID types.TypeID, f func(ops.Dynamic[V]) ops.Dynamic[V]) TypeRewriteRule[V] {
	return TypeRewriteRule[V]{
		Name: fmt.Sprintf("transform(%s)", targetID),
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			if t.TypeID != targetID {
				return t, false
			}
			return t.WithValue(f(t.Value)), true
		},
	}
}

// RenameField renames a top-level field. Identity if old is absent.
func RenameField[V any](old, newName string) TypeRewriteRule[V] {
	return TypeRewriteRule[V]{
		Name: fmt.Sprintf("rename_field(%s -> %s)", old, newName),
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			if !t.Value.Has(old) {
				return t, false
			}
			v := t.Value.Get(old)
			return t.WithValue(t.Value.Remove(old).Set(newName, v)), true
		},
	}
}

// AddField sets a top-level field from a factory that sees the
// current value. Always matches.
func AddField[V any](name string, factory func(ops.Dynamic[V]) ops.Dynamic[V]) TypeRewriteRule[V] {
	return TypeRewriteRule[V]{
		Name: fmt.Sprintf("add_field(%s)", name),
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			return t.WithValue(t.Value.Set(name, factory(t.Value))), true
		},
	}
}

// RemoveField removes a top-level field. Identity if already absent.
func RemoveField[V any](name string) TypeRewriteRule[V] {
	return TypeRewriteRule[V]{
		Name: fmt.Sprintf("remove_field(%s)", name),
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			if !t.Value.Has(name) {
				return t, false
			}
			return t.WithValue(t.Value.Remove(name)), true
		},
	}
}

// TransformField replaces a top-level field's value with f(current).
// Identity if the field is absent.
func TransformField[V any](name string, f func(ops.Dynamic[V]) ops.Dynamic[V]) TypeRewriteRule[V] {
	return TypeRewriteRule[V]{
		Name: fmt.Sprintf("transform_field(%s)", name),
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			if !t.Value.Has(name) {
				return t, false
			}
			return t.WithValue(t.Value.Set(name, f(t.Value.Get(name)))), true
		},
	}
}

// Sequence applies rules left to right; the output of each is the
// input of the next. Matches if any rule in the chain matched.
func Sequence[V any](rules ...TypeRewriteRule[V]) TypeRewriteRule[V] {
	return TypeRewriteRule[V]{
		Name: "sequence",
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			cur := t
			matched := false
			for _, r := range rules {
				next, ok := r.tryApply(cur)
				cur = next
				matched = matched || ok
			}
			return cur, matched
		},
	}
}

// Choice applies the first rule that matches, in declaration order.
// The first match wins regardless of whether it structurally changed
// anything (spec.md §9 open question, resolved this way).
func Choice[V any](rules ...TypeRewriteRule[V]) TypeRewriteRule[V] {
	return TypeRewriteRule[V]{
		Name: "choice",
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			for _, r := range rules {
				if next, ok := r.tryApply(t); ok {
					return next, true
				}
			}
			return t, false
		},
	}
}

// Conditional applies r only when predicate holds over the current
// Dynamic; identity otherwise.
func Conditional[V any](predicate func(ops.Dynamic[V]) bool, r TypeRewriteRule[V]) TypeRewriteRule[V] {
	return TypeRewriteRule[V]{
		Name: "conditional",
		apply: func(t types.Typed[V]) (types.Typed[V], bool) {
			if !predicate(t.Value) {
				return t, false
			}
			return r.tryApply(t)
		},
	}
}

// IfFieldExists runs r only when name is present.
func IfFieldExists[V any](name string, r TypeRewriteRule[V]) TypeRewriteRule[V] {
	return Conditional(func(d ops.Dynamic[V]) bool { return d.Has(name) }, r)
}

// IfFieldMissing runs r only when name is absent.
func IfFieldMissing[V any](name string, r TypeRewriteRule[V]) TypeRewriteRule[V] {
	return Conditional(func(d ops.Dynamic[V]) bool { return !d.Has(name) }, r)
}

// IfFieldEquals runs r only when name is present and string-equal to
// value.
func IfFieldEquals[V any](name, value string, r TypeRewriteRule[V]) TypeRewriteRule[V] {
	return Conditional(func(d ops.Dynamic[V]) bool {
		if !d.Has(name) {
			return false
		}
		s, err := d.Get(name).AsString().Get()
		return err == nil && s == value
	}, r)
}
