// Package optics implements the composable focused-access optics used
// to locate and update sub-values inside a structure: Getter, Lens,
// Prism, Iso, Affine and Traversal (component F, spec.md §4.6), plus
// Finder — a specialized optic over ops.Dynamic used by the rewrite
// engine to locate sub-values without hard-coding tree-format
// structure.
//
// Each optic is represented as its own generic struct (a closed,
// explicit variant, the same "one struct per case" shape the teacher
// uses for its GraphQL Type variants in type.go) rather than a single
// sum-typed interface, because composition strength varies by pair and
// Go has no way to express "weakest common supertype" generically —
// the composition table in compose.go is written out by hand, as the
// spec's design notes call for.
package optics

// Getter is a read-only, total optic: S always yields an A.
type Getter[S any, A any] struct {
	Get func(S) A
}

// Lens is a total, bidirectional optic: S always yields an A, and
// setting an A always yields an S.
type Lens[S any, A any] struct {
	Get func(S) A
	Set func(S, A) S
}

// Prism is a partial read / total write optic: S may or may not
// contain an A (case match), but any A can be embedded back into an
// S.
type Prism[S any, A any] struct {
	GetOption  func(S) (A, bool)
	ReverseGet func(A) S
}

// Iso is a bijection between S and A.
type Iso[S any, A any] struct {
	Get     func(S) A
	Reverse func(A) S
}

// Affine is a partial read / partial write optic: reading may miss,
// and writing is a no-op when there is nothing to write into.
type Affine[S any, A any] struct {
	GetOption func(S) (A, bool)
	Set       func(S, A) S
}

// Traversal focuses on 0..n values inside S.
type Traversal[S any, A any] struct {
	ToList    func(S) []A
	ModifyAll func(S, func(A) A) S
}

// Fold folds a Traversal's foci with an accumulator. A free function,
// not a Traversal method, since Go methods can't carry their own type
// parameter (the Acc type here, independent of S and A).
func Fold[S any, A any, Acc any](t Traversal[S, A], s S, init Acc, f func(Acc, A) Acc) Acc {
	acc := init
	for _, a := range t.ToList(s) {
		acc = f(acc, a)
	}
	return acc
}

// AsLens builds a Lens out of a Getter and a total setter — a common
// way to build a Lens when the getter is already available standalone.
func AsLens[S any, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{Get: get, Set: set}
}

// LensToTraversal views a Lens as a single-focus Traversal (used when
// composing a Lens onto something that demands Traversal's interface,
// e.g. batch field rewriting).
func LensToTraversal[S any, A any](l Lens[S, A]) Traversal[S, A] {
	return Traversal[S, A]{
		ToList:    func(s S) []A { return []A{l.Get(s)} },
		ModifyAll: func(s S, f func(A) A) S { return l.Set(s, f(l.Get(s))) },
	}
}

// AffineToTraversal views an Affine as a 0-or-1-focus Traversal.
func AffineToTraversal[S any, A any](a Affine[S, A]) Traversal[S, A] {
	return Traversal[S, A]{
		ToList: func(s S) []A {
			if v, ok := a.GetOption(s); ok {
				return []A{v}
			}
			return nil
		},
		ModifyAll: func(s S, f func(A) A) S {
			if v, ok := a.GetOption(s); ok {
				return a.Set(s, f(v))
			}
			return s
		},
	}
}

// PrismToAffine views a Prism as an Affine. Set writes only when the
// Prism matches s; otherwise s is returned unchanged.
func PrismToAffine[S any, A any](p Prism[S, A]) Affine[S, A] {
	return Affine[S, A]{
		GetOption: p.GetOption,
		Set: func(s S, a A) S {
			if _, ok := p.GetOption(s); !ok {
				return s
			}
			return p.ReverseGet(a)
		},
	}
}

// LensToAffine views a Lens as an Affine.
func LensToAffine[S any, A any](l Lens[S, A]) Affine[S, A] {
	return Affine[S, A]{
		GetOption: func(s S) (A, bool) { return l.Get(s), true },
		Set:       l.Set,
	}
}
