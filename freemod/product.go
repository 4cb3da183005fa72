package freemod

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/tensora/ring"
	"github.com/katalvlaran/tensora/word"
)

// Product is the tensor product M₁ ⊗ … ⊗ Mₖ of free modules over a common
// ring. Its basis is indexed by k-tuples of factor indices; elements are
// finite linear combinations of such tuples.
type Product[I cmp.Ordered, C any] struct {
	factors []*Module[I, C]
	r       ring.Ring[C]
}

// NewProduct builds the tensor product of the given factors. All factors
// must share the same coefficient ring (taken from the first).
//
// Errors:
//   - ErrNoBasis   — no factors given.
//   - ErrNilModule — a factor is nil.
func NewProduct[I cmp.Ordered, C any](factors ...*Module[I, C]) (*Product[I, C], error) {
	if len(factors) == 0 {
		return nil, ErrNoBasis
	}
	for _, m := range factors {
		if m == nil {
			return nil, ErrNilModule
		}
	}
	cp := make([]*Module[I, C], len(factors))
	copy(cp, factors)
	return &Product[I, C]{factors: cp, r: factors[0].Ring()}, nil
}

// Factors returns the factor modules in order (a copy of the slice).
func (p *Product[I, C]) Factors() []*Module[I, C] {
	cp := make([]*Module[I, C], len(p.factors))
	copy(cp, p.factors)
	return cp
}

// Arity returns the number of tensor factors.
func (p *Product[I, C]) Arity() int { return len(p.factors) }

// Ring returns the coefficient ring.
func (p *Product[I, C]) Ring() ring.Ring[C] { return p.r }

// ProductTerm is one basis tuple with its coefficient.
type ProductTerm[I cmp.Ordered, C any] struct {
	Indices []I
	Coeff   C
}

// ProductElement is a finite linear combination of basis tuples of a
// Product. The zero element has no terms.
type ProductElement[I cmp.Ordered, C any] struct {
	terms map[string]ProductTerm[I, C]
}

// tupleKey is the injective map-key encoding of an index tuple.
func tupleKey[I cmp.Ordered](indices []I) string {
	return word.W(indices...).Key()
}

// Zero returns the zero element of p.
func (p *Product[I, C]) Zero() ProductElement[I, C] { return ProductElement[I, C]{} }

// Term returns c·(b_{i₁} ⊗ … ⊗ b_{iₖ}).
//
// Errors:
//   - ErrArityMismatch — len(indices) differs from p's arity.
//   - ErrUnknownIndex  — an index is not in its factor's basis.
func (p *Product[I, C]) Term(indices []I, c C) (ProductElement[I, C], error) {
	if len(indices) != len(p.factors) {
		return ProductElement[I, C]{}, fmt.Errorf("%w: got %d, want %d", ErrArityMismatch, len(indices), len(p.factors))
	}
	for k, i := range indices {
		if !p.factors[k].Contains(i) {
			return ProductElement[I, C]{}, fmt.Errorf("%w: %v in factor %d", ErrUnknownIndex, i, k)
		}
	}
	if p.r.IsZero(c) {
		return ProductElement[I, C]{}, nil
	}
	cp := make([]I, len(indices))
	copy(cp, indices)
	return ProductElement[I, C]{terms: map[string]ProductTerm[I, C]{
		tupleKey(cp): {Indices: cp, Coeff: c},
	}}, nil
}

// Pure returns the pure tensor x₁ ⊗ … ⊗ xₖ of factor elements: the cross
// product of supports, each tuple weighted by the product of coefficients.
//
// Errors: ErrArityMismatch when the number of elements differs from p's arity.
func (p *Product[I, C]) Pure(xs ...Element[I, C]) (ProductElement[I, C], error) {
	if len(xs) != len(p.factors) {
		return ProductElement[I, C]{}, fmt.Errorf("%w: got %d, want %d", ErrArityMismatch, len(xs), len(p.factors))
	}
	// Fold the cross product left to right.
	acc := []ProductTerm[I, C]{{Indices: nil, Coeff: p.r.One()}}
	for _, x := range xs {
		next := make([]ProductTerm[I, C], 0, len(acc)*x.Len())
		for _, t := range acc {
			x.Terms(func(i I, c C) {
				indices := make([]I, len(t.Indices), len(t.Indices)+1)
				copy(indices, t.Indices)
				next = append(next, ProductTerm[I, C]{
					Indices: append(indices, i),
					Coeff:   p.r.Mul(t.Coeff, c),
				})
			})
		}
		acc = next
	}
	out := p.Zero()
	for _, t := range acc {
		term, err := p.Term(t.Indices, t.Coeff)
		if err != nil {
			return ProductElement[I, C]{}, err
		}
		out = p.Add(out, term)
	}
	return out, nil
}

// Add returns x + y.
func (p *Product[I, C]) Add(x, y ProductElement[I, C]) ProductElement[I, C] {
	if len(y.terms) == 0 {
		return x
	}
	out := make(map[string]ProductTerm[I, C], len(x.terms)+len(y.terms))
	for k, t := range x.terms {
		out[k] = t
	}
	for k, t := range y.terms {
		if prev, ok := out[k]; ok {
			sum := p.r.Add(prev.Coeff, t.Coeff)
			if p.r.IsZero(sum) {
				delete(out, k)
			} else {
				out[k] = ProductTerm[I, C]{Indices: prev.Indices, Coeff: sum}
			}
			continue
		}
		out[k] = t
	}
	if len(out) == 0 {
		return ProductElement[I, C]{}
	}
	return ProductElement[I, C]{terms: out}
}

// ScalarMul returns c·x.
func (p *Product[I, C]) ScalarMul(c C, x ProductElement[I, C]) ProductElement[I, C] {
	if p.r.IsZero(c) || len(x.terms) == 0 {
		return ProductElement[I, C]{}
	}
	out := make(map[string]ProductTerm[I, C], len(x.terms))
	for k, t := range x.terms {
		prod := p.r.Mul(c, t.Coeff)
		if !p.r.IsZero(prod) {
			out[k] = ProductTerm[I, C]{Indices: t.Indices, Coeff: prod}
		}
	}
	if len(out) == 0 {
		return ProductElement[I, C]{}
	}
	return ProductElement[I, C]{terms: out}
}

// Coefficient returns the coefficient of the given basis tuple, or the ring
// zero when absent or mis-sized.
func (p *Product[I, C]) Coefficient(x ProductElement[I, C], indices []I) C {
	if t, ok := x.terms[tupleKey(indices)]; ok {
		return t.Coeff
	}
	return p.r.Zero()
}

// Equal reports whether x and y are the same element of p.
func (p *Product[I, C]) Equal(x, y ProductElement[I, C]) bool {
	if len(x.terms) != len(y.terms) {
		return false
	}
	for k, t := range x.terms {
		u, ok := y.terms[k]
		if !ok || !p.r.Eq(t.Coeff, u.Coeff) {
			return false
		}
	}
	return true
}

// Format renders x as a sorted sum of "c·(i₁,…,iₖ)" terms, "0" when zero.
func (p *Product[I, C]) Format(x ProductElement[I, C]) string {
	if len(x.terms) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(x.terms))
	x.Terms(func(t ProductTerm[I, C]) {
		tuple := make([]string, len(t.Indices))
		for k, i := range t.Indices {
			tuple[k] = fmt.Sprint(i)
		}
		joined := strings.Join(tuple, ",")
		if p.r.Eq(t.Coeff, p.r.One()) {
			parts = append(parts, "("+joined+")")
			return
		}
		parts = append(parts, fmt.Sprintf("%s·(%s)", p.r.Format(t.Coeff), joined))
	})
	return strings.Join(parts, " + ")
}

// IsZero reports whether x has no terms.
func (x ProductElement[I, C]) IsZero() bool { return len(x.terms) == 0 }

// Len returns the number of (nonzero) terms.
func (x ProductElement[I, C]) Len() int { return len(x.terms) }

// Terms calls fn for every term in deterministic (key-sorted) order. The
// Indices slice must be treated as read-only.
func (x ProductElement[I, C]) Terms(fn func(t ProductTerm[I, C])) {
	keys := make([]string, 0, len(x.terms))
	for k := range x.terms {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fn(x.terms[k])
	}
}
