// Package ring defines the coefficient-ring abstraction shared by freemod
// and tensor, plus three ready-made rings.
//
// A Ring[C] bundles the arithmetic of a coefficient type C without forcing
// C itself to carry methods: plain int64 and float64 work as-is, and
// *math/big.Rat works with strict value semantics (operands are never
// mutated, every operation returns a fresh value).
//
// Provided rings:
//   - Integers()  — C = int64, the ring of integers.
//   - Rationals() — C = *big.Rat, the field of rationals.
//   - Reals()     — C = float64, exact-equality floating point.
//
// Usage:
//
//	R := ring.Rationals()
//	c := R.Add(ring.Rat(1, 2), ring.Rat(1, 3)) // 5/6, inputs untouched
//
// All operations are pure and safe for concurrent use.
package ring
