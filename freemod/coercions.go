package freemod

import "cmp"

// Coercions is an explicit registry of canonical module maps. It replaces
// ambient coercion discovery: a map between two modules exists exactly when
// the caller registered it (the identity on any module is always known).
// Lookup happens at the call site via Find.
//
// The registry is append-only and not synchronized; register everything up
// front, then query freely.
type Coercions[I cmp.Ordered, C any] struct {
	morphisms []Morphism[I, C]
}

// NewCoercions returns an empty registry.
func NewCoercions[I cmp.Ordered, C any]() *Coercions[I, C] {
	return &Coercions[I, C]{}
}

// Register records phi as the canonical map from its domain to its codomain.
// When several morphisms are registered for the same pair, the earliest one
// wins on lookup.
//
// Errors: ErrNilModule for a zero-value morphism.
func (r *Coercions[I, C]) Register(phi Morphism[I, C]) error {
	if phi.IsZeroValue() {
		return ErrNilModule
	}
	r.morphisms = append(r.morphisms, phi)
	return nil
}

// Find returns the canonical map from → to, if one is known. The identity
// is always known for from == to. Resolution is single-step: registered
// maps are not composed transitively.
func (r *Coercions[I, C]) Find(from, to *Module[I, C]) (Morphism[I, C], bool) {
	if from == nil || to == nil {
		return Morphism[I, C]{}, false
	}
	if from == to {
		return Identity(from), true
	}
	for _, phi := range r.morphisms {
		if phi.dom == from && phi.cod == to {
			return phi, true
		}
	}
	return Morphism[I, C]{}, false
}
