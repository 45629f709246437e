package types

// TypeTemplate is a function from a TypeFamily to a concrete Type
// (spec.md §4.4). Evaluating the same template against different
// families is how the DSL keeps recursive/parameterized definitions
// declarative instead of building cyclic object graphs directly.
type TypeTemplate func(*Family) Type

// Family is a family of Types indexed by non-negative integer, used
// to express recursive and mutually-recursive type definitions
// without cyclic object graphs (spec.md §9): each index is backed by
// a Cell that starts empty and is closed once its body has been
// built, tying the recursive knot through a pointer instead of
// direct self-reference.
type Family struct {
	cells []*Cell
}

// NewFamily allocates a family of n unresolved cells.
func NewFamily(n int, names ...string) *Family {
	cells := make([]*Cell, n)
	for i := range cells {
		name := ""
		if i < len(names) {
			name = names[i]
		}
		cells[i] = &Cell{name: name}
	}
	return &Family{cells: cells}
}

// Id returns the Type standing in for the i-th member of the family
// (µi). It describes as "µ" followed by the name NewFamily was given
// for index i (a bare "µ" when none was given), and Decode/Encode
// against it go through whatever Type Close(i, ...) stored.
func (f *Family) Id(i int) Type {
	return f.cells[i]
}

// Close resolves the i-th member of the family to a concrete Type,
// completing any recursive references built via Id(i).
func (f *Family) Close(i int, t Type) {
	f.cells[i].Inner = t
}
