package ring

import "math/big"

// RationalField is the field of rational numbers with *big.Rat coefficients.
//
// big.Rat's own arithmetic mutates the receiver; RationalField wraps it with
// value semantics: operands are never mutated and every result is freshly
// allocated, so coefficients can be shared between elements safely.
type RationalField struct{}

// Rationals returns the field of rationals (C = *big.Rat).
func Rationals() RationalField { return RationalField{} }

// Rat returns the rational p/q in lowest terms. Panics if q == 0, matching
// big.NewRat.
func Rat(p, q int64) *big.Rat { return big.NewRat(p, q) }

// Int returns the rational n/1.
func Int(n int64) *big.Rat { return big.NewRat(n, 1) }

// Zero returns 0/1.
func (RationalField) Zero() *big.Rat { return new(big.Rat) }

// One returns 1/1.
func (RationalField) One() *big.Rat { return big.NewRat(1, 1) }

// Add returns a + b as a fresh value.
func (RationalField) Add(a, b *big.Rat) *big.Rat { return new(big.Rat).Add(a, b) }

// Mul returns a * b as a fresh value.
func (RationalField) Mul(a, b *big.Rat) *big.Rat { return new(big.Rat).Mul(a, b) }

// Neg returns -a as a fresh value.
func (RationalField) Neg(a *big.Rat) *big.Rat { return new(big.Rat).Neg(a) }

// IsZero reports whether a == 0.
func (RationalField) IsZero(a *big.Rat) bool { return a.Sign() == 0 }

// Eq reports whether a == b as rationals.
func (RationalField) Eq(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

// Format renders a as "p/q", or "p" when q == 1.
func (RationalField) Format(a *big.Rat) string { return a.RatString() }
