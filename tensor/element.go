package tensor

import (
	"cmp"
	"slices"
	"strings"

	"github.com/katalvlaran/tensora/word"
)

// term is one basis word with its coefficient.
type term[I cmp.Ordered, C any] struct {
	w word.Word[I]
	c C
}

// Element is a finite linear combination of basis words of a tensor
// algebra: a map from word to nonzero coefficient. The zero value is the
// zero element. Elements are plain immutable data; combine them through
// their algebra.
type Element[I cmp.Ordered, C any] struct {
	terms map[string]term[I, C]
}

// IsZero reports whether x has no terms.
func (x Element[I, C]) IsZero() bool { return len(x.terms) == 0 }

// Len returns the number of (nonzero) terms.
func (x Element[I, C]) Len() int { return len(x.terms) }

// MaxDegree returns the largest word length appearing in x; -1 for the
// zero element.
func (x Element[I, C]) MaxDegree() int {
	deg := -1
	for _, t := range x.terms {
		if t.w.Len() > deg {
			deg = t.w.Len()
		}
	}
	return deg
}

// Support returns the basis words with nonzero coefficient, sorted by
// length then letterwise.
func (x Element[I, C]) Support() []word.Word[I] {
	ws := make([]word.Word[I], 0, len(x.terms))
	for _, t := range x.terms {
		ws = append(ws, t.w)
	}
	slices.SortFunc(ws, word.Compare)
	return ws
}

// sortedTerms returns the terms in graded word order.
func (x Element[I, C]) sortedTerms() []term[I, C] {
	ts := make([]term[I, C], 0, len(x.terms))
	for _, t := range x.terms {
		ts = append(ts, t)
	}
	slices.SortFunc(ts, func(a, b term[I, C]) int { return word.Compare(a.w, b.w) })
	return ts
}

// Terms calls fn for every (word, coefficient) pair in graded word order.
// Coefficients must be treated as read-only when C is a pointer type.
func (x Element[I, C]) Terms(fn func(w word.Word[I], c C)) {
	for _, t := range x.sortedTerms() {
		fn(t.w, t.c)
	}
}

// Coefficient returns the coefficient of the basis word w in x, or the
// ring zero when absent.
func (a *Algebra[I, C]) Coefficient(x Element[I, C], w word.Word[I]) C {
	if t, ok := x.terms[w.Key()]; ok {
		return t.c
	}
	return a.r.Zero()
}

// Add returns x + y.
func (a *Algebra[I, C]) Add(x, y Element[I, C]) Element[I, C] {
	if len(y.terms) == 0 {
		return x
	}
	out := make(map[string]term[I, C], len(x.terms)+len(y.terms))
	for k, t := range x.terms {
		out[k] = t
	}
	for k, t := range y.terms {
		if prev, ok := out[k]; ok {
			sum := a.r.Add(prev.c, t.c)
			if a.r.IsZero(sum) {
				delete(out, k)
			} else {
				out[k] = term[I, C]{w: prev.w, c: sum}
			}
			continue
		}
		out[k] = t
	}
	if len(out) == 0 {
		return Element[I, C]{}
	}
	return Element[I, C]{terms: out}
}

// Sub returns x - y.
func (a *Algebra[I, C]) Sub(x, y Element[I, C]) Element[I, C] {
	return a.Add(x, a.Neg(y))
}

// Neg returns -x.
func (a *Algebra[I, C]) Neg(x Element[I, C]) Element[I, C] {
	return a.ScalarMul(a.r.Neg(a.r.One()), x)
}

// ScalarMul returns c·x.
func (a *Algebra[I, C]) ScalarMul(c C, x Element[I, C]) Element[I, C] {
	if a.r.IsZero(c) || len(x.terms) == 0 {
		return Element[I, C]{}
	}
	out := make(map[string]term[I, C], len(x.terms))
	for k, t := range x.terms {
		p := a.r.Mul(c, t.c)
		if !a.r.IsZero(p) {
			out[k] = term[I, C]{w: t.w, c: p}
		}
	}
	if len(out) == 0 {
		return Element[I, C]{}
	}
	return Element[I, C]{terms: out}
}

// Mul returns x·y: the bilinear extension of word concatenation. Cost is
// the product of the term counts.
func (a *Algebra[I, C]) Mul(x, y Element[I, C]) Element[I, C] {
	if len(x.terms) == 0 || len(y.terms) == 0 {
		return Element[I, C]{}
	}
	out := make(map[string]term[I, C], len(x.terms)*len(y.terms))
	for _, s := range x.terms {
		for _, t := range y.terms {
			w := s.w.Concat(t.w)
			k := w.Key()
			prod := a.r.Mul(s.c, t.c)
			if prev, ok := out[k]; ok {
				sum := a.r.Add(prev.c, prod)
				if a.r.IsZero(sum) {
					delete(out, k)
				} else {
					out[k] = term[I, C]{w: w, c: sum}
				}
				continue
			}
			if !a.r.IsZero(prod) {
				out[k] = term[I, C]{w: w, c: prod}
			}
		}
	}
	if len(out) == 0 {
		return Element[I, C]{}
	}
	return Element[I, C]{terms: out}
}

// Equal reports whether x and y are the same element of a.
func (a *Algebra[I, C]) Equal(x, y Element[I, C]) bool {
	if len(x.terms) != len(y.terms) {
		return false
	}
	for k, t := range x.terms {
		u, ok := y.terms[k]
		if !ok || !a.r.Eq(t.c, u.c) {
			return false
		}
	}
	return true
}

// Format renders x as a sorted sum of coefficiented words; the zero element
// prints as "0", unit coefficients are elided, and the empty word prints
// as "1".
func (a *Algebra[I, C]) Format(x Element[I, C]) string {
	if len(x.terms) == 0 {
		return "0"
	}
	parts := make([]string, 0, len(x.terms))
	for _, t := range x.sortedTerms() {
		switch {
		case t.w.IsEmpty():
			parts = append(parts, a.r.Format(t.c))
		case a.r.Eq(t.c, a.r.One()):
			parts = append(parts, t.w.String())
		default:
			parts = append(parts, a.r.Format(t.c)+"·"+t.w.String())
		}
	}
	return strings.Join(parts, " + ")
}
