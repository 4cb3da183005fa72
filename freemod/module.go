package freemod

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/tensora/ring"
)

// Module is a free R-module with a distinguished finite basis indexed by I.
// Immutable after construction; all element operations go through it so the
// ring is applied consistently.
type Module[I cmp.Ordered, C any] struct {
	r       ring.Ring[C]
	indices []I            // sorted basis index set
	member  map[I]struct{} // membership view of indices
}

// New constructs a free module over r with the given basis indices.
// The index order is normalized (sorted); duplicates are rejected.
//
// Errors:
//   - ErrNoBasis         — indices is empty.
//   - ErrDuplicateIndex  — indices contains a repeat.
func New[I cmp.Ordered, C any](r ring.Ring[C], indices []I) (*Module[I, C], error) {
	if len(indices) == 0 {
		return nil, ErrNoBasis
	}
	sorted := make([]I, len(indices))
	copy(sorted, indices)
	slices.Sort(sorted)
	member := make(map[I]struct{}, len(sorted))
	for i, idx := range sorted {
		if i > 0 && sorted[i-1] == idx {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateIndex, idx)
		}
		member[idx] = struct{}{}
	}
	return &Module[I, C]{r: r, indices: sorted, member: member}, nil
}

// Ring returns the coefficient ring.
func (m *Module[I, C]) Ring() ring.Ring[C] { return m.r }

// Indices returns the basis index set in sorted order (a copy).
func (m *Module[I, C]) Indices() []I {
	cp := make([]I, len(m.indices))
	copy(cp, m.indices)
	return cp
}

// Rank returns the number of basis elements.
func (m *Module[I, C]) Rank() int { return len(m.indices) }

// Contains reports whether i is a basis index of m.
func (m *Module[I, C]) Contains(i I) bool {
	_, ok := m.member[i]
	return ok
}

// Element is a finite linear combination of basis indices: a map from index
// to nonzero coefficient. The zero element has no terms. Elements are plain
// data; combine them through their module.
type Element[I cmp.Ordered, C any] struct {
	coeffs map[I]C
}

// Zero returns the zero element.
func (m *Module[I, C]) Zero() Element[I, C] { return Element[I, C]{} }

// Monomial returns the basis element b_i with coefficient one.
//
// Errors: ErrUnknownIndex if i is not in the basis.
func (m *Module[I, C]) Monomial(i I) (Element[I, C], error) {
	return m.Term(i, m.r.One())
}

// Term returns c·b_i. A zero c yields the zero element.
//
// Errors: ErrUnknownIndex if i is not in the basis.
func (m *Module[I, C]) Term(i I, c C) (Element[I, C], error) {
	if !m.Contains(i) {
		return Element[I, C]{}, fmt.Errorf("%w: %v", ErrUnknownIndex, i)
	}
	if m.r.IsZero(c) {
		return Element[I, C]{}, nil
	}
	return Element[I, C]{coeffs: map[I]C{i: c}}, nil
}

// FromMap builds an element from an index→coefficient map, validating
// membership and pruning zeros. The input map is not retained.
//
// Errors: ErrUnknownIndex for any index outside the basis.
func (m *Module[I, C]) FromMap(coeffs map[I]C) (Element[I, C], error) {
	out := make(map[I]C, len(coeffs))
	for i, c := range coeffs {
		if !m.Contains(i) {
			return Element[I, C]{}, fmt.Errorf("%w: %v", ErrUnknownIndex, i)
		}
		if !m.r.IsZero(c) {
			out[i] = c
		}
	}
	if len(out) == 0 {
		return Element[I, C]{}, nil
	}
	return Element[I, C]{coeffs: out}, nil
}

// Add returns x + y.
func (m *Module[I, C]) Add(x, y Element[I, C]) Element[I, C] {
	if len(y.coeffs) == 0 {
		return x
	}
	out := make(map[I]C, len(x.coeffs)+len(y.coeffs))
	for i, c := range x.coeffs {
		out[i] = c
	}
	for i, c := range y.coeffs {
		if prev, ok := out[i]; ok {
			sum := m.r.Add(prev, c)
			if m.r.IsZero(sum) {
				delete(out, i)
			} else {
				out[i] = sum
			}
			continue
		}
		out[i] = c
	}
	if len(out) == 0 {
		return Element[I, C]{}
	}
	return Element[I, C]{coeffs: out}
}

// Sub returns x - y.
func (m *Module[I, C]) Sub(x, y Element[I, C]) Element[I, C] {
	return m.Add(x, m.Neg(y))
}

// Neg returns -x.
func (m *Module[I, C]) Neg(x Element[I, C]) Element[I, C] {
	return m.ScalarMul(m.r.Neg(m.r.One()), x)
}

// ScalarMul returns c·x.
func (m *Module[I, C]) ScalarMul(c C, x Element[I, C]) Element[I, C] {
	if m.r.IsZero(c) || len(x.coeffs) == 0 {
		return Element[I, C]{}
	}
	out := make(map[I]C, len(x.coeffs))
	for i, v := range x.coeffs {
		p := m.r.Mul(c, v)
		if !m.r.IsZero(p) {
			out[i] = p
		}
	}
	if len(out) == 0 {
		return Element[I, C]{}
	}
	return Element[I, C]{coeffs: out}
}

// Coefficient returns the coefficient of b_i in x, or the ring zero when absent.
func (m *Module[I, C]) Coefficient(x Element[I, C], i I) C {
	if c, ok := x.coeffs[i]; ok {
		return c
	}
	return m.r.Zero()
}

// Equal reports whether x and y are the same element of m.
func (m *Module[I, C]) Equal(x, y Element[I, C]) bool {
	if len(x.coeffs) != len(y.coeffs) {
		return false
	}
	for i, c := range x.coeffs {
		d, ok := y.coeffs[i]
		if !ok || !m.r.Eq(c, d) {
			return false
		}
	}
	return true
}

// Format renders x as a sorted sum of "c·b[i]" terms; the zero element
// prints as "0" and unit coefficients are elided.
func (m *Module[I, C]) Format(x Element[I, C]) string {
	if len(x.coeffs) == 0 {
		return "0"
	}
	idx := x.Support()
	parts := make([]string, 0, len(idx))
	for _, i := range idx {
		c := x.coeffs[i]
		if m.r.Eq(c, m.r.One()) {
			parts = append(parts, fmt.Sprintf("b[%v]", i))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s·b[%v]", m.r.Format(c), i))
	}
	return strings.Join(parts, " + ")
}

// IsZero reports whether x has no terms.
func (x Element[I, C]) IsZero() bool { return len(x.coeffs) == 0 }

// Len returns the number of (nonzero) terms.
func (x Element[I, C]) Len() int { return len(x.coeffs) }

// Support returns the indices with nonzero coefficient, sorted.
func (x Element[I, C]) Support() []I {
	idx := make([]I, 0, len(x.coeffs))
	for i := range x.coeffs {
		idx = append(idx, i)
	}
	slices.Sort(idx)
	return idx
}

// Terms calls fn for every (index, coefficient) pair in sorted index order.
// Coefficients must not be mutated through the callback when C is a pointer
// type; treat them as read-only.
func (x Element[I, C]) Terms(fn func(i I, c C)) {
	for _, i := range x.Support() {
		fn(i, x.coeffs[i])
	}
}
