// Package tensor implements the tensor algebra T(M) of a free module M
// with a distinguished basis, together with its graded Hopf-algebra
// structure.
//
// Given a base module with basis {b_i}, T(M) has a basis of words over the
// index set: the word i₁i₂…iₙ indexes b_{i₁} ⊗ b_{i₂} ⊗ … ⊗ b_{iₙ}.
// Multiplication concatenates words (bilinearly extended), the empty word
// indexes the unit, and the word length is the degree, making T(M) an
// ℕ-graded algebra. The Hopf structure on basis words:
//
//   - coproduct: Δ(g) = g⊗1 + 1⊗g on single generators, extended to longer
//     words as the product of the per-letter formulas inside T(M)⊗T(M)
//     (forced by Δ being a unital algebra morphism)
//   - antipode:  S(i₁…iₙ) = (-1)ⁿ · iₙ…i₁
//   - counit:    ε(x) = coefficient of the empty word in x
//
// Key features:
//   - element constructors for every canonical input shape: index lists,
//     single indices, base-module elements, scalars (FromAny dispatches
//     and reports ErrUnsupportedInput for everything else)
//   - TensorOf — the multi-factor fold building x₁ ⊗ … ⊗ xₖ from base
//     module elements; cost is the product of the factors' term counts
//   - Square — the tensor square T(M)⊗T(M) the coproduct lands in, with
//     its own product and the contractions used by the counit axiom
//   - explicit coercion resolution over a closed set of source shapes
//     (base ring, base module, another tensor algebra, a tensor product
//     of modules), resolved against a freemod.Coercions registry at the
//     call site — no ambient coercion graph
//   - Functor — the construction functor M ↦ T(M), f ↦ T(f)
//
// Usage:
//
//	Q := ring.Rationals()
//	M, _ := freemod.New(Q, []string{"a", "b", "c"})
//	TA, _ := tensor.New(M)
//	w, _ := TA.FromIndices([]string{"a", "b", "c"})
//	w.MaxDegree()     // 3
//	TA.Antipode(w)    // -c⊗b⊗a
//	TA.Counit(w)      // 0
//
// The algebra is immutable after construction and a stateless element
// factory: operations always return fresh elements, nothing is mutated in
// place, so values can be shared across goroutines freely.
//
// Errors are package-level sentinels (errors.go) matched via errors.Is;
// an absent coercion is an answer (ErrNoCoercion), not a panic.
package tensor
