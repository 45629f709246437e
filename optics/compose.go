package optics

// This file is the composition table from spec.md §4.6, written out
// explicitly per pair rather than derived generically (Go has no way
// to compute "weakest common optic" as a type-level function).

// ComposeLensLens: Lens ∘ Lens = Lens.
func ComposeLensLens[S any, A any, B any](outer Lens[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B { return inner.Get(outer.Get(s)) },
		Set: func(s S, b B) S { return outer.Set(s, inner.Set(outer.Get(s), b)) },
	}
}

// ComposeLensPrism: Lens ∘ Prism = Affine.
func ComposeLensPrism[S any, A any, B any](outer Lens[S, A], inner Prism[A, B]) Affine[S, B] {
	return Affine[S, B]{
		GetOption: func(s S) (B, bool) { return inner.GetOption(outer.Get(s)) },
		Set: func(s S, b B) S {
			if _, ok := inner.GetOption(outer.Get(s)); !ok {
				return s
			}
			return outer.Set(s, inner.ReverseGet(b))
		},
	}
}

// ComposePrismPrism: Prism ∘ Prism = Prism.
func ComposePrismPrism[S any, A any, B any](outer Prism[S, A], inner Prism[A, B]) Prism[S, B] {
	return Prism[S, B]{
		GetOption: func(s S) (B, bool) {
			a, ok := outer.GetOption(s)
			if !ok {
				var zero B
				return zero, false
			}
			return inner.GetOption(a)
		},
		ReverseGet: func(b B) S { return outer.ReverseGet(inner.ReverseGet(b)) },
	}
}

// ComposePrismLens: Prism ∘ Lens = Affine.
func ComposePrismLens[S any, A any, B any](outer Prism[S, A], inner Lens[A, B]) Affine[S, B] {
	return Affine[S, B]{
		GetOption: func(s S) (B, bool) {
			a, ok := outer.GetOption(s)
			if !ok {
				var zero B
				return zero, false
			}
			return inner.Get(a), true
		},
		Set: func(s S, b B) S {
			a, ok := outer.GetOption(s)
			if !ok {
				return s
			}
			return outer.ReverseGet(inner.Set(a, b))
		},
	}
}

// ComposeAffineAffine: Affine ∘ anything = Affine.
func ComposeAffineAffine[S any, A any, B any](outer Affine[S, A], inner Affine[A, B]) Affine[S, B] {
	return Affine[S, B]{
		GetOption: func(s S) (B, bool) {
			a, ok := outer.GetOption(s)
			if !ok {
				var zero B
				return zero, false
			}
			return inner.GetOption(a)
		},
		Set: func(s S, b B) S {
			a, ok := outer.GetOption(s)
			if !ok {
				return s
			}
			return outer.Set(s, inner.Set(a, b))
		},
	}
}

// ComposeAffineLens: Affine ∘ Lens = Affine.
func ComposeAffineLens[S any, A any, B any](outer Affine[S, A], inner Lens[A, B]) Affine[S, B] {
	return ComposeAffineAffine(outer, LensToAffine(inner))
}

// ComposeAffinePrism: Affine ∘ Prism = Affine.
func ComposeAffinePrism[S any, A any, B any](outer Affine[S, A], inner Prism[A, B]) Affine[S, B] {
	return ComposeAffineAffine(outer, PrismToAffine(inner))
}

// ComposeLensAffine: Lens ∘ Affine = Affine.
func ComposeLensAffine[S any, A any, B any](outer Lens[S, A], inner Affine[A, B]) Affine[S, B] {
	return ComposeAffineAffine(LensToAffine(outer), inner)
}

// ComposePrismAffine: Prism ∘ Affine = Affine.
func ComposePrismAffine[S any, A any, B any](outer Prism[S, A], inner Affine[A, B]) Affine[S, B] {
	return ComposeAffineAffine(PrismToAffine(outer), inner)
}

// ComposeIsoLens: Iso ∘ Lens = Lens (Iso carries no weakening).
func ComposeIsoLens[S any, A any, B any](outer Iso[S, A], inner Lens[A, B]) Lens[S, B] {
	return Lens[S, B]{
		Get: func(s S) B { return inner.Get(outer.Get(s)) },
		Set: func(s S, b B) S { return outer.Reverse(inner.Set(outer.Get(s), b)) },
	}
}

// ComposeIsoPrism: Iso ∘ Prism = Prism.
func ComposeIsoPrism[S any, A any, B any](outer Iso[S, A], inner Prism[A, B]) Prism[S, B] {
	return Prism[S, B]{
		GetOption:  func(s S) (B, bool) { return inner.GetOption(outer.Get(s)) },
		ReverseGet: func(b B) S { return outer.Reverse(inner.ReverseGet(b)) },
	}
}

// ComposeIsoAffine: Iso ∘ Affine = Affine.
func ComposeIsoAffine[S any, A any, B any](outer Iso[S, A], inner Affine[A, B]) Affine[S, B] {
	return Affine[S, B]{
		GetOption: func(s S) (B, bool) { return inner.GetOption(outer.Get(s)) },
		Set:       func(s S, b B) S { return outer.Reverse(inner.Set(outer.Get(s), b)) },
	}
}

// ComposeIsoIso: Iso ∘ Iso = Iso.
func ComposeIsoIso[S any, A any, B any](outer Iso[S, A], inner Iso[A, B]) Iso[S, B] {
	return Iso[S, B]{
		Get:     func(s S) B { return inner.Get(outer.Get(s)) },
		Reverse: func(b B) S { return outer.Reverse(inner.Reverse(b)) },
	}
}

// ComposeIsoGetter: Iso ∘ Getter = Getter.
func ComposeIsoGetter[S any, A any, B any](outer Iso[S, A], inner Getter[A, B]) Getter[S, B] {
	return Getter[S, B]{Get: func(s S) B { return inner.Get(outer.Get(s)) }}
}

// ComposeGetterLens: Getter ∘ Lens = Getter (read-only composition).
func ComposeGetterLens[S any, A any, B any](outer Getter[S, A], inner Lens[A, B]) Getter[S, B] {
	return Getter[S, B]{Get: func(s S) B { return inner.Get(outer.Get(s)) }}
}

// ComposeLensGetter: Lens ∘ Getter = Getter.
func ComposeLensGetter[S any, A any, B any](outer Lens[S, A], inner Getter[A, B]) Getter[S, B] {
	return Getter[S, B]{Get: func(s S) B { return inner.Get(outer.Get(s)) }}
}

// Compositions with a Traversal: Traversal is dominant — each of the
// functions below yields a Traversal.

// ComposeLensTraversal: Lens ∘ Traversal = Traversal.
func ComposeLensTraversal[S any, A any, B any](outer Lens[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return Traversal[S, B]{
		ToList:    func(s S) []B { return inner.ToList(outer.Get(s)) },
		ModifyAll: func(s S, f func(B) B) S { return outer.Set(s, inner.ModifyAll(outer.Get(s), f)) },
	}
}

// ComposePrismTraversal: Prism ∘ Traversal = Traversal.
func ComposePrismTraversal[S any, A any, B any](outer Prism[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return Traversal[S, B]{
		ToList: func(s S) []B {
			a, ok := outer.GetOption(s)
			if !ok {
				return nil
			}
			return inner.ToList(a)
		},
		ModifyAll: func(s S, f func(B) B) S {
			a, ok := outer.GetOption(s)
			if !ok {
				return s
			}
			return outer.ReverseGet(inner.ModifyAll(a, f))
		},
	}
}

// ComposeAffineTraversal: Affine ∘ Traversal = Traversal.
func ComposeAffineTraversal[S any, A any, B any](outer Affine[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return Traversal[S, B]{
		ToList: func(s S) []B {
			a, ok := outer.GetOption(s)
			if !ok {
				return nil
			}
			return inner.ToList(a)
		},
		ModifyAll: func(s S, f func(B) B) S {
			a, ok := outer.GetOption(s)
			if !ok {
				return s
			}
			return outer.Set(s, inner.ModifyAll(a, f))
		},
	}
}

// ComposeTraversalTraversal: Traversal ∘ Traversal = Traversal.
func ComposeTraversalTraversal[S any, A any, B any](outer Traversal[S, A], inner Traversal[A, B]) Traversal[S, B] {
	return Traversal[S, B]{
		ToList: func(s S) []B {
			var out []B
			for _, a := range outer.ToList(s) {
				out = append(out, inner.ToList(a)...)
			}
			return out
		},
		ModifyAll: func(s S, f func(B) B) S {
			return outer.ModifyAll(s, func(a A) A { return inner.ModifyAll(a, f) })
		},
	}
}
