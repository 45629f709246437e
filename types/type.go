package types

import "fmt"

// Type is a logical type representation: the structural shape data of
// some TypeID has at a particular schema version (spec.md §3). The
// interface is sealed the same way the teacher seals its GraphQL Type
// interface (type.go: IsType()) — only the variants declared in this
// file may implement Type.
type Type interface {
	fmt.Stringer
	// Describe renders a short debug string using the DSL's fixed
	// notation (A x B, A + B, List<E>, Optional<E>, name: T, ?name: T,
	// ..., TaggedChoice<tag>{...}, µn).
	Describe() string
	isType()
}

// PrimitiveKind enumerates the scalar kinds a Primitive Type can be.
type PrimitiveKind int

const (
	Bool PrimitiveKind = iota
	Int
	Long
	Float
	Double
	Byte
	Short
	String
)

func (k PrimitiveKind) String() string {
	switch k {
	case Bool:
		return "Bool"
	case Int:
		return "Int"
	case Long:
		return "Long"
	case Float:
		return "Float"
	case Double:
		return "Double"
	case Byte:
		return "Byte"
	case Short:
		return "Short"
	case String:
		return "String"
	default:
		return "Unknown"
	}
}

// Primitive is a scalar Type (bool, int, long, float, double, byte,
// short, string).
type Primitive struct{ Kind PrimitiveKind }

func (p *Primitive) isType()          {}
func (p *Primitive) String() string   { return p.Kind.String() }
func (p *Primitive) Describe() string { return p.Kind.String() }

// List is a homogeneous list Type.
type List struct{ Elem Type }

func (l *List) isType()          {}
func (l *List) String() string   { return l.Describe() }
func (l *List) Describe() string { return fmt.Sprintf("List<%s>", l.Elem.Describe()) }

// Optional is a Type that may be absent.
type Optional struct{ Elem Type }

func (o *Optional) isType()          {}
func (o *Optional) String() string   { return o.Describe() }
func (o *Optional) Describe() string { return fmt.Sprintf("Optional<%s>", o.Elem.Describe()) }

// Product is a pair (A, B). Variadic `and(...)` in the DSL builds a
// right-associative chain of Products.
type Product struct{ First, Second Type }

func (p *Product) isType()          {}
func (p *Product) String() string   { return p.Describe() }
func (p *Product) Describe() string { return fmt.Sprintf("%s × %s", p.First.Describe(), p.Second.Describe()) }

// Sum is an either (A, B). Variadic `or(...)` in the DSL builds a
// right-associative chain of Sums.
type Sum struct{ Left, Right Type }

func (s *Sum) isType()          {}
func (s *Sum) String() string   { return s.Describe() }
func (s *Sum) Describe() string { return fmt.Sprintf("%s + %s", s.Left.Describe(), s.Right.Describe()) }

// Field is a required map entry.
type Field struct {
	Name string
	Elem Type
}

func (f *Field) isType()          {}
func (f *Field) String() string   { return f.Describe() }
func (f *Field) Describe() string { return fmt.Sprintf("%s: %s", f.Name, f.Elem.Describe()) }

// OptionalField is a map entry that may be absent.
type OptionalField struct {
	Name string
	Elem Type
}

func (f *OptionalField) isType()          {}
func (f *OptionalField) String() string   { return f.Describe() }
func (f *OptionalField) Describe() string { return fmt.Sprintf("?%s: %s", f.Name, f.Elem.Describe()) }

// Passthrough is the "remainder" Type: whatever else is in the map,
// preserved verbatim across migrations that don't otherwise touch it.
type Passthrough struct{}

func (Passthrough) isType()          {}
func (Passthrough) String() string   { return "…" }
func (Passthrough) Describe() string { return "…" }

// TaggedChoice is a discriminated union selected by a named string
// field. Cases preserves declaration order so Describe and encode
// iteration are stable.
type TaggedChoice struct {
	Tag   string
	Cases []TaggedCase
}

// TaggedCase is one variant of a TaggedChoice.
type TaggedCase struct {
	Value string
	Type  Type
}

func (t *TaggedChoice) isType()        {}
func (t *TaggedChoice) String() string { return t.Describe() }
func (t *TaggedChoice) Describe() string {
	s := fmt.Sprintf("TaggedChoice<%s>{", t.Tag)
	for i, c := range t.Cases {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s → %s", c.Value, c.Type.Describe())
	}
	return s + "}"
}

// CaseFor looks up the Type registered for a discriminator value.
func (t *TaggedChoice) CaseFor(value string) (Type, bool) {
	for _, c := range t.Cases {
		if c.Value == value {
			return c.Type, true
		}
	}
	return nil, false
}

// Named is an alias wrapper carrying a debug name around another
// Type.
type Named struct {
	Name string
	Elem Type
}

func (n *Named) isType()          {}
func (n *Named) String() string   { return n.Describe() }
func (n *Named) Describe() string { return fmt.Sprintf("%s: %s", n.Name, n.Elem.Describe()) }

// Cell is the tie-the-knot target for recursive Types (spec.md §4.4,
// §9): the DSL constructs a Cell, builds the recursive body with a
// reference to the Cell itself, then sets Inner once the body is
// fully built. id(i) in a TypeFamily resolves to a Cell.
type Cell struct {
	name  string
	Inner Type
}

func (c *Cell) isType() {}
func (c *Cell) String() string {
	return c.Describe()
}
func (c *Cell) Describe() string {
	if c.name != "" {
		return "µ" + c.name
	}
	return "µ"
}

var (
	_ Type = (*Primitive)(nil)
	_ Type = (*List)(nil)
	_ Type = (*Optional)(nil)
	_ Type = (*Product)(nil)
	_ Type = (*Sum)(nil)
	_ Type = (*Field)(nil)
	_ Type = (*OptionalField)(nil)
	_ Type = Passthrough{}
	_ Type = (*TaggedChoice)(nil)
	_ Type = (*Named)(nil)
	_ Type = (*Cell)(nil)
)
