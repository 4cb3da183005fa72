package freemod

import (
	"cmp"
	"fmt"
)

// Morphism is a module map dom → cod determined by the images of basis
// elements; Apply extends it linearly. The on-basis function is evaluated
// lazily, per application.
type Morphism[I cmp.Ordered, C any] struct {
	dom, cod *Module[I, C]
	onBasis  func(i I) Element[I, C]
}

// NewMorphism builds a module morphism from its on-basis images.
//
// Errors: ErrNilModule when either end is nil, or onBasis is nil.
func NewMorphism[I cmp.Ordered, C any](dom, cod *Module[I, C], onBasis func(i I) Element[I, C]) (Morphism[I, C], error) {
	if dom == nil || cod == nil {
		return Morphism[I, C]{}, ErrNilModule
	}
	if onBasis == nil {
		return Morphism[I, C]{}, fmt.Errorf("%w: nil on-basis map", ErrNilModule)
	}
	return Morphism[I, C]{dom: dom, cod: cod, onBasis: onBasis}, nil
}

// Identity returns the identity morphism on m.
func Identity[I cmp.Ordered, C any](m *Module[I, C]) Morphism[I, C] {
	phi, _ := NewMorphism(m, m, func(i I) Element[I, C] {
		e, _ := m.Monomial(i) // i comes from m's own basis
		return e
	})
	return phi
}

// Dom returns the domain module.
func (f Morphism[I, C]) Dom() *Module[I, C] { return f.dom }

// Cod returns the codomain module.
func (f Morphism[I, C]) Cod() *Module[I, C] { return f.cod }

// IsZeroValue reports whether f is the zero Morphism value (no map attached).
func (f Morphism[I, C]) IsZeroValue() bool { return f.onBasis == nil }

// Apply maps x through f by linear extension: sum of c·f(b_i) over the
// terms of x.
//
// Errors: ErrUnknownIndex when x references an index outside f's domain.
func (f Morphism[I, C]) Apply(x Element[I, C]) (Element[I, C], error) {
	out := f.cod.Zero()
	var applyErr error
	x.Terms(func(i I, c C) {
		if applyErr != nil {
			return
		}
		if !f.dom.Contains(i) {
			applyErr = fmt.Errorf("%w: %v", ErrUnknownIndex, i)
			return
		}
		out = f.cod.Add(out, f.cod.ScalarMul(c, f.onBasis(i)))
	})
	if applyErr != nil {
		return Element[I, C]{}, applyErr
	}
	return out, nil
}

// Compose returns g∘f (apply f first, then g).
//
// Errors: ErrModuleMismatch when f's codomain differs from g's domain.
func Compose[I cmp.Ordered, C any](g, f Morphism[I, C]) (Morphism[I, C], error) {
	if f.cod != g.dom {
		return Morphism[I, C]{}, fmt.Errorf("%w: codomain of inner differs from domain of outer", ErrModuleMismatch)
	}
	return NewMorphism(f.dom, g.cod, func(i I) Element[I, C] {
		// images of f live in g's domain, so Apply cannot fail
		out, _ := g.Apply(f.onBasis(i))
		return out
	})
}
