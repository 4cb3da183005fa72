package tensor

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/katalvlaran/tensora/word"
)

// Square is the tensor square T(M) ⊗ T(M) of an algebra: the codomain of
// the coproduct. Its basis is indexed by pairs of words; the product is
// componentwise concatenation, bilinearly extended.
type Square[I cmp.Ordered, C any] struct {
	alg *Algebra[I, C]
}

// term2 is one (left word, right word) basis pair with its coefficient.
type term2[I cmp.Ordered, C any] struct {
	l, r word.Word[I]
	c    C
}

// Element2 is a finite linear combination of word pairs in a tensor
// square. The zero value is the zero element.
type Element2[I cmp.Ordered, C any] struct {
	terms map[string]term2[I, C]
}

// pairKey is an injective encoding of a word pair: the left key is length
// prefixed so the boundary between the two slots is unambiguous.
func pairKey[I cmp.Ordered](l, r word.Word[I]) string {
	lk := l.Key()
	return strconv.Itoa(len(lk)) + "|" + lk + r.Key()
}

// Algebra returns the underlying tensor algebra.
func (s *Square[I, C]) Algebra() *Algebra[I, C] { return s.alg }

// Zero returns the zero element of the square.
func (s *Square[I, C]) Zero() Element2[I, C] { return Element2[I, C]{} }

// One returns the unit 1 ⊗ 1.
func (s *Square[I, C]) One() Element2[I, C] {
	return s.term(word.Empty[I](), word.Empty[I](), s.alg.r.One())
}

// term builds a single-pair element without validation.
func (s *Square[I, C]) term(l, r word.Word[I], c C) Element2[I, C] {
	if s.alg.r.IsZero(c) {
		return Element2[I, C]{}
	}
	return Element2[I, C]{terms: map[string]term2[I, C]{
		pairKey(l, r): {l: l, r: r, c: c},
	}}
}

// Term returns c · (l ⊗ r).
//
// Errors: ErrUnknownIndex when a letter of either word is outside the basis.
func (s *Square[I, C]) Term(l, r word.Word[I], c C) (Element2[I, C], error) {
	if err := s.alg.checkWord(l); err != nil {
		return Element2[I, C]{}, err
	}
	if err := s.alg.checkWord(r); err != nil {
		return Element2[I, C]{}, err
	}
	return s.term(l, r, c), nil
}

// Monomial returns the basis pair l ⊗ r with coefficient one.
//
// Errors: ErrUnknownIndex when a letter of either word is outside the basis.
func (s *Square[I, C]) Monomial(l, r word.Word[I]) (Element2[I, C], error) {
	return s.Term(l, r, s.alg.r.One())
}

// Add returns x + y.
func (s *Square[I, C]) Add(x, y Element2[I, C]) Element2[I, C] {
	if len(y.terms) == 0 {
		return x
	}
	out := make(map[string]term2[I, C], len(x.terms)+len(y.terms))
	for k, t := range x.terms {
		out[k] = t
	}
	for k, t := range y.terms {
		if prev, ok := out[k]; ok {
			sum := s.alg.r.Add(prev.c, t.c)
			if s.alg.r.IsZero(sum) {
				delete(out, k)
			} else {
				out[k] = term2[I, C]{l: prev.l, r: prev.r, c: sum}
			}
			continue
		}
		out[k] = t
	}
	if len(out) == 0 {
		return Element2[I, C]{}
	}
	return Element2[I, C]{terms: out}
}

// ScalarMul returns c·x.
func (s *Square[I, C]) ScalarMul(c C, x Element2[I, C]) Element2[I, C] {
	if s.alg.r.IsZero(c) || len(x.terms) == 0 {
		return Element2[I, C]{}
	}
	out := make(map[string]term2[I, C], len(x.terms))
	for k, t := range x.terms {
		p := s.alg.r.Mul(c, t.c)
		if !s.alg.r.IsZero(p) {
			out[k] = term2[I, C]{l: t.l, r: t.r, c: p}
		}
	}
	if len(out) == 0 {
		return Element2[I, C]{}
	}
	return Element2[I, C]{terms: out}
}

// Mul returns x·y with the componentwise product
// (a⊗b)·(c⊗d) = (a·c)⊗(b·d), bilinearly extended.
func (s *Square[I, C]) Mul(x, y Element2[I, C]) Element2[I, C] {
	if len(x.terms) == 0 || len(y.terms) == 0 {
		return Element2[I, C]{}
	}
	out := make(map[string]term2[I, C], len(x.terms)*len(y.terms))
	for _, u := range x.terms {
		for _, v := range y.terms {
			l := u.l.Concat(v.l)
			r := u.r.Concat(v.r)
			k := pairKey(l, r)
			prod := s.alg.r.Mul(u.c, v.c)
			if prev, ok := out[k]; ok {
				sum := s.alg.r.Add(prev.c, prod)
				if s.alg.r.IsZero(sum) {
					delete(out, k)
				} else {
					out[k] = term2[I, C]{l: l, r: r, c: sum}
				}
				continue
			}
			if !s.alg.r.IsZero(prod) {
				out[k] = term2[I, C]{l: l, r: r, c: prod}
			}
		}
	}
	if len(out) == 0 {
		return Element2[I, C]{}
	}
	return Element2[I, C]{terms: out}
}

// Equal reports whether x and y are the same element of the square.
func (s *Square[I, C]) Equal(x, y Element2[I, C]) bool {
	if len(x.terms) != len(y.terms) {
		return false
	}
	for k, t := range x.terms {
		u, ok := y.terms[k]
		if !ok || !s.alg.r.Eq(t.c, u.c) {
			return false
		}
	}
	return true
}

// ContractLeft applies ε⊗id: every pair (1, w) keeps its coefficient on w,
// pairs with a nonempty left slot are killed. Together with Coproduct it
// realizes the counit axiom (ε⊗id)∘Δ = id.
func (s *Square[I, C]) ContractLeft(x Element2[I, C]) Element[I, C] {
	out := s.alg.Zero()
	for _, t := range x.terms {
		if t.l.IsEmpty() {
			out = s.alg.Add(out, s.alg.term(t.r, t.c))
		}
	}
	return out
}

// ContractRight applies id⊗ε, the mirror of ContractLeft.
func (s *Square[I, C]) ContractRight(x Element2[I, C]) Element[I, C] {
	out := s.alg.Zero()
	for _, t := range x.terms {
		if t.r.IsEmpty() {
			out = s.alg.Add(out, s.alg.term(t.l, t.c))
		}
	}
	return out
}

// Len returns the number of (nonzero) pair terms of x.
func (x Element2[I, C]) Len() int { return len(x.terms) }

// IsZero reports whether x has no terms.
func (x Element2[I, C]) IsZero() bool { return len(x.terms) == 0 }

// Format renders x as a sorted sum of "l # r" pairs, empty slots printing
// as "1"; the zero element prints as "0".
func (s *Square[I, C]) Format(x Element2[I, C]) string {
	if len(x.terms) == 0 {
		return "0"
	}
	ts := make([]term2[I, C], 0, len(x.terms))
	for _, t := range x.terms {
		ts = append(ts, t)
	}
	slices.SortFunc(ts, func(a, b term2[I, C]) int {
		if d := word.Compare(a.l, b.l); d != 0 {
			return d
		}
		return word.Compare(a.r, b.r)
	})
	parts := make([]string, 0, len(ts))
	for _, t := range ts {
		pair := t.l.String() + " # " + t.r.String()
		if s.alg.r.Eq(t.c, s.alg.r.One()) {
			parts = append(parts, pair)
			continue
		}
		parts = append(parts, s.alg.r.Format(t.c)+"·"+pair)
	}
	return strings.Join(parts, " + ")
}
