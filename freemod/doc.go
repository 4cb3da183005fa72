// Package freemod implements free modules with a distinguished basis over
// an arbitrary coefficient ring.
//
// A Module[I, C] is spanned by a finite index set of type I over a
// ring.Ring[C]. Elements are finite index→coefficient maps with zero
// coefficients pruned; they are created by the module and combined through
// it (the module owns the ring, elements stay plain data).
//
// The package also provides the structure maps the tensor algebra consumes:
//
//   - Morphism    — a module map determined by images of basis elements,
//     extended linearly by Apply.
//   - Coercions   — an explicit registry of canonical module maps, queried
//     at the call site (Find). This replaces an ambient global coercion
//     graph: nothing is discovered implicitly, every canonical map is
//     registered by the caller.
//   - Product     — the tensor product M₁ ⊗ … ⊗ Mₖ of modules, with pure
//     tensors and linear combinations of index tuples.
//
// Usage:
//
//	Q := ring.Rationals()
//	M, _ := freemod.New[string](Q, []string{"a", "b", "c"})
//	x := M.Add(M.Monomial("a"), M.Term("b", ring.Rat(2, 1)))
//
// Errors are package-level sentinels (errors.go) matched via errors.Is;
// no function panics on user input.
package freemod
