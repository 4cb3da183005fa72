// Package tensora is your in-memory playground for exact algebra over
// words: free modules with a finite basis, their tensor algebras, and
// the Hopf structure (coproduct, counit, antipode) that comes with them.
//
// 🚀 What is tensora?
//
//	A small, generic library that brings together:
//		• Ring abstractions: integers, exact rationals (big.Rat-backed), reals
//		• Free modules: finite ordered bases, elements, morphisms, coercions
//		• Tensor algebras: word bases, concatenation product, grading
//		• Hopf structure: coproduct, counit, antipode on the tensor algebra
//		• Functoriality: lift module morphisms to algebra morphisms
//		• Import suggester: static go/parser analysis of a source tree
//
// ✨ Why choose tensora?
//
//   - Exact by default – rationals use big.Rat, no floating-point drift
//   - Generic – one Algebra[I, C] over any ordered index and any ring
//   - Deterministic – sorted bases, canonical word ordering, stable output
//   - Extensible – register coercions, compose morphisms, fold tensor factors
//
// Everything is organized under focused subpackages:
//
//	ring/    — the Ring[C] contract plus integer, rational, real instances
//	word/    — immutable basis words with concatenation, reversal, run-length view
//	freemod/ — free modules, elements, morphisms, coercion registry, tensor products
//	tensor/  — the tensor algebra, its square, Hopf operations, the lifting functor
//	imports/ — module-graph scanner and import-statement suggester
//	cmd/     — the tensora CLI (hopf inspection, import suggestions)
//
// Quick example, over the rationals with basis {a, b}:
//
//	m, _ := freemod.New(ring.Rationals(), []string{"a", "b"})
//	t, _ := tensor.New(m)
//	ab, _ := t.FromIndices([]string{"a", "b"}) // a ⊗ b, degree 2
//	dab := t.Coproduct(ab)                     // ab⊗1 + a⊗b + b⊗a + 1⊗ab
//
// Start with freemod.New to fix a basis, wrap it with tensor.New, and
// explore elements via Monomial, Mul, Coproduct and Antipode.
//
//	go get github.com/katalvlaran/tensora
package tensora
