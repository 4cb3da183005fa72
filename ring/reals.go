package ring

import "strconv"

// RealField is the field of real numbers with float64 coefficients.
//
// Equality is exact (==); callers doing inexact arithmetic should prefer
// Rationals for algebraic identities to hold on the nose.
type RealField struct{}

// Reals returns the field of reals (C = float64).
func Reals() RealField { return RealField{} }

// Zero returns 0.
func (RealField) Zero() float64 { return 0 }

// One returns 1.
func (RealField) One() float64 { return 1 }

// Add returns a + b.
func (RealField) Add(a, b float64) float64 { return a + b }

// Mul returns a * b.
func (RealField) Mul(a, b float64) float64 { return a * b }

// Neg returns -a.
func (RealField) Neg(a float64) float64 { return -a }

// IsZero reports whether a == 0.
func (RealField) IsZero(a float64) bool { return a == 0 }

// Eq reports whether a == b exactly.
func (RealField) Eq(a, b float64) bool { return a == b }

// Format renders a with the shortest representation that round-trips.
func (RealField) Format(a float64) string { return strconv.FormatFloat(a, 'g', -1, 64) }
