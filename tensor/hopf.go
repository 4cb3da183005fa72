package tensor

import "github.com/katalvlaran/tensora/word"

// Degree returns the degree of the basis word w: its length. Degrees are
// additive under Mul, making T(M) an ℕ-graded algebra.
func (a *Algebra[I, C]) Degree(w word.Word[I]) int { return w.Len() }

// coproductOnBasis computes Δ on one basis word following the
// iterative-product formula: Δ(empty) = 1⊗1, Δ(g) = g⊗1 + 1⊗g for a
// single generator, and for longer words the product in the square of the
// per-letter formulas in word order. The morphism property of Δ forces
// this extension.
func (a *Algebra[I, C]) coproductOnBasis(w word.Word[I]) Element2[I, C] {
	s := a.sq
	if w.IsEmpty() {
		return s.One()
	}
	e := word.Empty[I]()
	if w.Len() == 1 {
		return s.Add(s.term(w, e, a.r.One()), s.term(e, w, a.r.One()))
	}
	out := s.One()
	for _, l := range w.Letters() {
		g := word.W(l)
		split := s.Add(s.term(g, e, a.r.One()), s.term(e, g, a.r.One()))
		out = s.Mul(out, split)
	}
	return out
}

// Coproduct applies the comultiplication Δ: T(M) → T(M)⊗T(M) to x,
// linearly over its terms. Δ is a unital algebra morphism:
// Δ(x·y) = Δ(x)·Δ(y) and Δ(1) = 1⊗1.
func (a *Algebra[I, C]) Coproduct(x Element[I, C]) Element2[I, C] {
	out := a.sq.Zero()
	for _, t := range x.terms {
		out = a.sq.Add(out, a.sq.ScalarMul(t.c, a.coproductOnBasis(t.w)))
	}
	return out
}

// Antipode applies the Hopf antipode S to x: on a basis word of length n,
// reverse the word and scale by (-1)ⁿ; extended linearly. Applying S twice
// restores the original element since the signs cancel.
func (a *Algebra[I, C]) Antipode(x Element[I, C]) Element[I, C] {
	out := a.Zero()
	for _, t := range x.terms {
		c := t.c
		if t.w.Len()%2 == 1 {
			c = a.r.Neg(c)
		}
		out = a.Add(out, a.term(t.w.Reverse(), c))
	}
	return out
}

// Counit returns ε(x): the coefficient of the empty word, the ring zero
// when absent. ε projects onto the degree-0 (scalar) part and kills every
// generator.
func (a *Algebra[I, C]) Counit(x Element[I, C]) C {
	return a.Coefficient(x, word.Empty[I]())
}
