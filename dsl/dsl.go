// Package dsl provides the closed set of TypeTemplate constructors
// used to declare per-version schemas: primitives, products, sums,
// lists, optional, fields, discriminated unions, recursion and the
// "remainder" passthrough (spec.md §4.4, component D).
//
// Every constructor here returns a types.TypeTemplate — a function
// from a types.Family to a concrete types.Type — so schema authors
// write declarative templates (not object graphs) even for recursive
// shapes.
package dsl

import "github.com/shyptr/datafixer/types"

func constant(t types.Type) types.TypeTemplate {
	return func(*types.Family) types.Type { return t }
}

// Bool, Int, Long, Float, Double, Byte, Short and String are the
// constant primitive templates.
var (
	Bool   = constant(&types.Primitive{Kind: types.Bool})
	Int    = constant(&types.Primitive{Kind: types.Int})
	Long   = constant(&types.Primitive{Kind: types.Long})
	Float  = constant(&types.Primitive{Kind: types.Float})
	Double = constant(&types.Primitive{Kind: types.Double})
	Byte   = constant(&types.Primitive{Kind: types.Byte})
	Short  = constant(&types.Primitive{Kind: types.Short})
	String = constant(&types.Primitive{Kind: types.String})

	// Remainder is the "whatever else is in the map" passthrough
	// template.
	Remainder = constant(types.Passthrough{})
)

// List wraps a template in a homogeneous list.
func List(elem types.TypeTemplate) types.TypeTemplate {
	return func(f *types.Family) types.Type {
		return &types.List{Elem: elem(f)}
	}
}

// Optional wraps a template as possibly-absent.
func Optional(elem types.TypeTemplate) types.TypeTemplate {
	return func(f *types.Family) types.Type {
		return &types.Optional{Elem: elem(f)}
	}
}

// And builds a right-associative Product chain out of two or more
// templates: And(a, b, c) == Product(a, Product(b, c)).
func And(templates ...types.TypeTemplate) types.TypeTemplate {
	if len(templates) < 2 {
		panic("dsl: And requires at least two templates")
	}
	return func(f *types.Family) types.Type {
		return buildProduct(f, templates)
	}
}

func buildProduct(f *types.Family, templates []types.TypeTemplate) types.Type {
	if len(templates) == 1 {
		return templates[0](f)
	}
	return &types.Product{First: templates[0](f), Second: buildProduct(f, templates[1:])}
}

// Or builds a right-associative Sum chain out of two or more
// templates: Or(a, b, c) == Sum(a, Sum(b, c)).
func Or(templates ...types.TypeTemplate) types.TypeTemplate {
	if len(templates) < 2 {
		panic("dsl: Or requires at least two templates")
	}
	return func(f *types.Family) types.Type {
		return buildSum(f, templates)
	}
}

func buildSum(f *types.Family, templates []types.TypeTemplate) types.Type {
	if len(templates) == 1 {
		return templates[0](f)
	}
	return &types.Sum{Left: templates[0](f), Right: buildSum(f, templates[1:])}
}

// Field declares a required named map entry.
func Field(name string, elem types.TypeTemplate) types.TypeTemplate {
	return func(f *types.Family) types.Type {
		return &types.Field{Name: name, Elem: elem(f)}
	}
}

// OptionalField declares a map entry that may be absent.
func OptionalField(name string, elem types.TypeTemplate) types.TypeTemplate {
	return func(f *types.Family) types.Type {
		return &types.OptionalField{Name: name, Elem: elem(f)}
	}
}

// Named wraps a template with a debug alias.
func Named(name string, elem types.TypeTemplate) types.TypeTemplate {
	return func(f *types.Family) types.Type {
		return &types.Named{Name: name, Elem: elem(f)}
	}
}

// Case is one branch of a TaggedChoice declaration. Cases are kept in
// a slice, not a map, so declaration order is preserved for Describe
// and for iteration.
type Case struct {
	Value    string
	Template types.TypeTemplate
}

// TaggedChoice declares a discriminated union selected by the named
// string field tag.
func TaggedChoice(tag string, cases ...Case) types.TypeTemplate {
	return func(f *types.Family) types.Type {
		built := make([]types.TaggedCase, len(cases))
		for i, c := range cases {
			built[i] = types.TaggedCase{Value: c.Value, Type: c.Template(f)}
		}
		return &types.TaggedChoice{Tag: tag, Cases: built}
	}
}

// Id references the i-th type in the surrounding Family (µi).
func Id(i int) types.TypeTemplate {
	return func(f *types.Family) types.Type {
		return f.Id(i)
	}
}

// Recursive introduces a single self-referential type definition: body
// is invoked once with a template standing for "self" (µ0 of a
// dedicated, single-cell Family), and the result is tied into a
// types.Cell so evaluating the returned template never recurses
// through Go call stack — only through the Cell's Inner pointer.
func Recursive(name string, body func(self types.TypeTemplate) types.TypeTemplate) types.TypeTemplate {
	return func(*types.Family) types.Type {
		fam := types.NewFamily(1, name)
		self := Id(0)
		resolved := body(self)(fam)
		fam.Close(0, resolved)
		return fam.Id(0)
	}
}
