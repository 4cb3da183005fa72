package tensor

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/tensora/freemod"
	"github.com/katalvlaran/tensora/word"
)

// Functor is the tensor-algebra construction functor T: it sends a module
// M to the algebra T(M) and a module morphism f: M → N to the induced
// algebra morphism T(f): T(M) → T(N). T is left-adjoint to the forgetful
// functor from algebras to modules.
type Functor[I cmp.Ordered, C any] struct{}

// Apply constructs T(M).
//
// Errors: ErrNilModule when m is nil.
func (Functor[I, C]) Apply(m *freemod.Module[I, C]) (*Algebra[I, C], error) {
	return New(m)
}

// AlgebraMorphism is the algebra map induced by a module morphism: each
// basis word maps letter-by-letter through the underlying module map and
// the images re-multiply via the tensor fold.
type AlgebraMorphism[I cmp.Ordered, C any] struct {
	dom, cod *Algebra[I, C]
	phi      freemod.Morphism[I, C]
}

// ApplyToMorphism lifts the module morphism phi to T(phi).
//
// Errors: ErrNilModule for a zero-value morphism.
func (Functor[I, C]) ApplyToMorphism(phi freemod.Morphism[I, C]) (*AlgebraMorphism[I, C], error) {
	if phi.IsZeroValue() {
		return nil, ErrNilModule
	}
	dom, err := New(phi.Dom())
	if err != nil {
		return nil, err
	}
	cod, err := New(phi.Cod())
	if err != nil {
		return nil, err
	}
	return &AlgebraMorphism[I, C]{dom: dom, cod: cod, phi: phi}, nil
}

// Dom returns the domain algebra T(dom phi).
func (f *AlgebraMorphism[I, C]) Dom() *Algebra[I, C] { return f.dom }

// Cod returns the codomain algebra T(cod phi).
func (f *AlgebraMorphism[I, C]) Cod() *Algebra[I, C] { return f.cod }

// Apply maps x through the induced algebra morphism.
//
// Errors: ErrUnknownIndex when x references letters outside the domain
// algebra's basis.
func (f *AlgebraMorphism[I, C]) Apply(x Element[I, C]) (Element[I, C], error) {
	out := f.cod.Zero()
	var applyErr error
	x.Terms(func(w word.Word[I], c C) {
		if applyErr != nil {
			return
		}
		factors := make([]freemod.Element[I, C], 0, w.Len())
		for _, l := range w.Letters() {
			mono, err := f.phi.Dom().Monomial(l)
			if err != nil {
				applyErr = fmt.Errorf("%w: %v", ErrUnknownIndex, l)
				return
			}
			img, err := f.phi.Apply(mono)
			if err != nil {
				applyErr = err
				return
			}
			factors = append(factors, img)
		}
		folded, err := f.cod.TensorOf(factors)
		if err != nil {
			applyErr = err
			return
		}
		out = f.cod.Add(out, f.cod.ScalarMul(c, folded))
	})
	if applyErr != nil {
		return Element[I, C]{}, applyErr
	}
	return out, nil
}
