package tensor

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/tensora/freemod"
	"github.com/katalvlaran/tensora/ring"
	"github.com/katalvlaran/tensora/word"
)

// Algebra is the tensor algebra T(M) of a base module M. Immutable after
// construction; every element operation returns a fresh value.
type Algebra[I cmp.Ordered, C any] struct {
	m  *freemod.Module[I, C]
	r  ring.Ring[C]
	sq *Square[I, C]
}

// New constructs the tensor algebra over the base module m.
//
// Errors: ErrNilModule when m is nil.
func New[I cmp.Ordered, C any](m *freemod.Module[I, C]) (*Algebra[I, C], error) {
	if m == nil {
		return nil, ErrNilModule
	}
	a := &Algebra[I, C]{m: m, r: m.Ring()}
	a.sq = &Square[I, C]{alg: a}
	return a, nil
}

// BaseModule returns the base module M.
func (a *Algebra[I, C]) BaseModule() *freemod.Module[I, C] { return a.m }

// Ring returns the coefficient ring.
func (a *Algebra[I, C]) Ring() ring.Ring[C] { return a.r }

// Square returns the tensor square T(M)⊗T(M), the codomain of Coproduct.
func (a *Algebra[I, C]) Square() *Square[I, C] { return a.sq }

// One returns the multiplicative unit: the empty word with coefficient one.
func (a *Algebra[I, C]) One() Element[I, C] {
	return a.term(word.Empty[I](), a.r.One())
}

// Zero returns the zero element.
func (a *Algebra[I, C]) Zero() Element[I, C] { return Element[I, C]{} }

// term builds a single-term element without basis validation; callers
// validate letters first.
func (a *Algebra[I, C]) term(w word.Word[I], c C) Element[I, C] {
	if a.r.IsZero(c) {
		return Element[I, C]{}
	}
	return Element[I, C]{terms: map[string]term[I, C]{w.Key(): {w: w, c: c}}}
}

// checkWord verifies every letter of w lies in the base-module basis.
func (a *Algebra[I, C]) checkWord(w word.Word[I]) error {
	for _, l := range w.Letters() {
		if !a.m.Contains(l) {
			return fmt.Errorf("%w: %v", ErrUnknownIndex, l)
		}
	}
	return nil
}

// Monomial returns the basis element indexed by the word w with
// coefficient one.
//
// Errors: ErrUnknownIndex when a letter of w is outside the basis.
func (a *Algebra[I, C]) Monomial(w word.Word[I]) (Element[I, C], error) {
	return a.Term(w, a.r.One())
}

// Term returns c times the basis element indexed by w.
//
// Errors: ErrUnknownIndex when a letter of w is outside the basis.
func (a *Algebra[I, C]) Term(w word.Word[I], c C) (Element[I, C], error) {
	if err := a.checkWord(w); err != nil {
		return Element[I, C]{}, err
	}
	return a.term(w, c), nil
}

// FromIndices maps each index to its singleton word, concatenates, and
// returns the resulting monomial with coefficient one. An empty list gives
// the unit.
//
// Errors: ErrUnknownIndex when an index is outside the basis.
func (a *Algebra[I, C]) FromIndices(indices []I) (Element[I, C], error) {
	return a.Monomial(word.W(indices...))
}

// FromIndex returns the singleton monomial of a single base index.
//
// Errors: ErrUnknownIndex when i is outside the basis.
func (a *Algebra[I, C]) FromIndex(i I) (Element[I, C], error) {
	return a.Monomial(word.W(i))
}

// FromModuleElement lifts a base-module element term-by-term: each index
// becomes its singleton word with the same coefficient. This is the
// canonical embedding M ↪ T(M) onto the degree-1 part.
func (a *Algebra[I, C]) FromModuleElement(x freemod.Element[I, C]) Element[I, C] {
	out := a.Zero()
	x.Terms(func(i I, c C) {
		out = a.Add(out, a.term(word.W(i), c))
	})
	return out
}

// FromScalar returns c times the unit: the canonical embedding of the base
// ring onto the degree-0 part.
func (a *Algebra[I, C]) FromScalar(c C) Element[I, C] {
	return a.term(word.Empty[I](), c)
}

// FromAny constructs an element from any of the supported input shapes:
// an Element (returned unchanged), a word.Word[I], a []I index list, a
// base-module element, a single index I, or a scalar C. When I and C are
// the same Go type the index interpretation wins.
//
// Errors:
//   - ErrUnsupportedInput — the value fits none of these shapes.
//   - ErrUnknownIndex     — an index/letter is outside the basis.
func (a *Algebra[I, C]) FromAny(x any) (Element[I, C], error) {
	switch v := x.(type) {
	case Element[I, C]:
		return v, nil
	case word.Word[I]:
		return a.Monomial(v)
	case []I:
		return a.FromIndices(v)
	case freemod.Element[I, C]:
		return a.FromModuleElement(v), nil
	case I:
		return a.FromIndex(v)
	case C:
		return a.FromScalar(v), nil
	default:
		return Element[I, C]{}, fmt.Errorf("%w: %T", ErrUnsupportedInput, x)
	}
}

// Generators returns the algebra generators: the singleton monomial of
// every basis index, in sorted index order.
func (a *Algebra[I, C]) Generators() []Element[I, C] {
	idx := a.m.Indices()
	gens := make([]Element[I, C], len(idx))
	for k, i := range idx {
		gens[k] = a.term(word.W(i), a.r.One())
	}
	return gens
}

// TensorOf returns the associative tensor product x₁ ⊗ … ⊗ xₖ of base
// module elements, folded left to right: every pairwise (partial word,
// factor index) product concatenates words and multiplies coefficients,
// accumulating on colliding words. The empty list yields the unit; a single
// element yields its canonical embedding.
//
// Cost is the product of the factors' term counts.
func (a *Algebra[I, C]) TensorOf(elts []freemod.Element[I, C]) (Element[I, C], error) {
	if len(elts) == 0 {
		return a.One(), nil
	}
	for _, x := range elts {
		for _, i := range x.Support() {
			if !a.m.Contains(i) {
				return Element[I, C]{}, fmt.Errorf("%w: %v", ErrUnknownIndex, i)
			}
		}
	}
	cur := make(map[string]term[I, C])
	elts[0].Terms(func(i I, c C) {
		w := word.W(i)
		cur[w.Key()] = term[I, C]{w: w, c: c}
	})
	for _, x := range elts[1:] {
		next := make(map[string]term[I, C], len(cur)*x.Len())
		for _, t := range cur {
			x.Terms(func(i I, c C) {
				w := t.w.Concat(word.W(i))
				k := w.Key()
				prod := a.r.Mul(t.c, c)
				if prev, ok := next[k]; ok {
					sum := a.r.Add(prev.c, prod)
					if a.r.IsZero(sum) {
						delete(next, k)
					} else {
						next[k] = term[I, C]{w: w, c: sum}
					}
					return
				}
				if !a.r.IsZero(prod) {
					next[k] = term[I, C]{w: w, c: prod}
				}
			})
		}
		cur = next
	}
	if len(cur) == 0 {
		return Element[I, C]{}, nil
	}
	return Element[I, C]{terms: cur}, nil
}
