package tensor

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/tensora/freemod"
	"github.com/katalvlaran/tensora/word"
)

// Source is the closed set of structures that may coerce canonically into
// a tensor algebra: the base ring, a module, another tensor algebra, or a
// tensor product of modules. Construct values with RingSource,
// ModuleSource, AlgebraSource and ProductSource.
type Source[I cmp.Ordered, C any] interface {
	sourceKind() string
}

type ringSource[I cmp.Ordered, C any] struct{}

type moduleSource[I cmp.Ordered, C any] struct {
	m *freemod.Module[I, C]
}

type algebraSource[I cmp.Ordered, C any] struct {
	a *Algebra[I, C]
}

type productSource[I cmp.Ordered, C any] struct {
	p *freemod.Product[I, C]
}

func (ringSource[I, C]) sourceKind() string    { return "ring" }
func (moduleSource[I, C]) sourceKind() string  { return "module" }
func (algebraSource[I, C]) sourceKind() string { return "algebra" }
func (productSource[I, C]) sourceKind() string { return "product" }

// RingSource marks the base ring as the coercion source: scalars embed
// onto the degree-0 part.
func RingSource[I cmp.Ordered, C any]() Source[I, C] { return ringSource[I, C]{} }

// ModuleSource marks a module as the coercion source: its elements embed
// via singleton words after mapping into the base module.
func ModuleSource[I cmp.Ordered, C any](m *freemod.Module[I, C]) Source[I, C] {
	return moduleSource[I, C]{m: m}
}

// AlgebraSource marks another tensor algebra as the coercion source: its
// elements map word-by-word through the base-module map.
func AlgebraSource[I cmp.Ordered, C any](a *Algebra[I, C]) Source[I, C] {
	return algebraSource[I, C]{a: a}
}

// ProductSource marks a tensor product of modules as the coercion source:
// its elements map factor-by-factor, then fold via TensorOf.
func ProductSource[I cmp.Ordered, C any](p *freemod.Product[I, C]) Source[I, C] {
	return productSource[I, C]{p: p}
}

// Coercion is a resolved canonical map into a tensor algebra. Apply
// dispatches on the element kind matching the resolved source shape and
// returns ErrUnsupportedInput for anything else.
type Coercion[I cmp.Ordered, C any] struct {
	kind  string
	apply func(x any) (Element[I, C], error)
}

// Kind names the resolved source shape: "ring", "module", "algebra" or
// "product".
func (c *Coercion[I, C]) Kind() string { return c.kind }

// Apply maps x into the target algebra.
func (c *Coercion[I, C]) Apply(x any) (Element[I, C], error) { return c.apply(x) }

// HasCoercionFrom reports whether a canonical map exists from src into a,
// resolving module maps against reg.
func (a *Algebra[I, C]) HasCoercionFrom(reg *freemod.Coercions[I, C], src Source[I, C]) bool {
	_, err := a.CoercionFrom(reg, src)
	return err == nil
}

// CoercionFrom resolves the canonical map from src into a. Module maps are
// looked up in reg (the identity is always known); resolution follows the
// source shape:
//
//   - ring:    scalars embed as c·1 (degree 0)
//   - module:  M must map into the base module; elements lift to singleton
//     words term-by-term
//   - algebra: the source's base module must map into the base module;
//     each basis word maps letter-by-letter and re-multiplies
//   - product: every factor must map into the base module; tuples fold via
//     TensorOf
//
// Errors: ErrNoCoercion when the required module map is not registered
// (an absent coercion is an answer, not a failure).
func (a *Algebra[I, C]) CoercionFrom(reg *freemod.Coercions[I, C], src Source[I, C]) (*Coercion[I, C], error) {
	switch s := src.(type) {
	case ringSource[I, C]:
		return &Coercion[I, C]{kind: s.sourceKind(), apply: func(x any) (Element[I, C], error) {
			c, ok := x.(C)
			if !ok {
				return Element[I, C]{}, fmt.Errorf("%w: %T, want scalar", ErrUnsupportedInput, x)
			}
			return a.FromScalar(c), nil
		}}, nil

	case moduleSource[I, C]:
		phi, ok := reg.Find(s.m, a.m)
		if !ok {
			return nil, fmt.Errorf("%w: module does not map into the base module", ErrNoCoercion)
		}
		return &Coercion[I, C]{kind: s.sourceKind(), apply: func(x any) (Element[I, C], error) {
			e, ok := x.(freemod.Element[I, C])
			if !ok {
				return Element[I, C]{}, fmt.Errorf("%w: %T, want module element", ErrUnsupportedInput, x)
			}
			mapped, err := phi.Apply(e)
			if err != nil {
				return Element[I, C]{}, err
			}
			return a.FromModuleElement(mapped), nil
		}}, nil

	case algebraSource[I, C]:
		srcMod := s.a.BaseModule()
		phi, ok := reg.Find(srcMod, a.m)
		if !ok {
			return nil, fmt.Errorf("%w: source base module does not map into the base module", ErrNoCoercion)
		}
		return &Coercion[I, C]{kind: s.sourceKind(), apply: func(x any) (Element[I, C], error) {
			e, ok := x.(Element[I, C])
			if !ok {
				return Element[I, C]{}, fmt.Errorf("%w: %T, want tensor element", ErrUnsupportedInput, x)
			}
			out := a.Zero()
			var applyErr error
			e.Terms(func(w word.Word[I], c C) {
				if applyErr != nil {
					return
				}
				factors := make([]freemod.Element[I, C], 0, w.Len())
				for _, l := range w.Letters() {
					mono, err := srcMod.Monomial(l)
					if err != nil {
						applyErr = err
						return
					}
					img, err := phi.Apply(mono)
					if err != nil {
						applyErr = err
						return
					}
					factors = append(factors, img)
				}
				folded, err := a.TensorOf(factors)
				if err != nil {
					applyErr = err
					return
				}
				out = a.Add(out, a.ScalarMul(c, folded))
			})
			if applyErr != nil {
				return Element[I, C]{}, applyErr
			}
			return out, nil
		}}, nil

	case productSource[I, C]:
		factors := s.p.Factors()
		maps := make([]freemod.Morphism[I, C], len(factors))
		for k, f := range factors {
			phi, ok := reg.Find(f, a.m)
			if !ok {
				return nil, fmt.Errorf("%w: factor %d does not map into the base module", ErrNoCoercion, k)
			}
			maps[k] = phi
		}
		return &Coercion[I, C]{kind: s.sourceKind(), apply: func(x any) (Element[I, C], error) {
			e, ok := x.(freemod.ProductElement[I, C])
			if !ok {
				return Element[I, C]{}, fmt.Errorf("%w: %T, want tensor-product element", ErrUnsupportedInput, x)
			}
			out := a.Zero()
			var applyErr error
			e.Terms(func(t freemod.ProductTerm[I, C]) {
				if applyErr != nil {
					return
				}
				mapped := make([]freemod.Element[I, C], len(t.Indices))
				for k, i := range t.Indices {
					mono, err := factors[k].Monomial(i)
					if err != nil {
						applyErr = err
						return
					}
					img, err := maps[k].Apply(mono)
					if err != nil {
						applyErr = err
						return
					}
					mapped[k] = img
				}
				folded, err := a.TensorOf(mapped)
				if err != nil {
					applyErr = err
					return
				}
				out = a.Add(out, a.ScalarMul(t.Coeff, folded))
			})
			if applyErr != nil {
				return Element[I, C]{}, applyErr
			}
			return out, nil
		}}, nil

	default:
		return nil, fmt.Errorf("%w: unknown source shape %T", ErrNoCoercion, src)
	}
}
