package ring

import "strconv"

// IntegerRing is the ring of integers with int64 coefficients.
// The zero value is ready to use; Integers() is the conventional constructor.
type IntegerRing struct{}

// Integers returns the ring of integers (C = int64).
func Integers() IntegerRing { return IntegerRing{} }

// Zero returns 0.
func (IntegerRing) Zero() int64 { return 0 }

// One returns 1.
func (IntegerRing) One() int64 { return 1 }

// Add returns a + b.
func (IntegerRing) Add(a, b int64) int64 { return a + b }

// Mul returns a * b.
func (IntegerRing) Mul(a, b int64) int64 { return a * b }

// Neg returns -a.
func (IntegerRing) Neg(a int64) int64 { return -a }

// IsZero reports whether a == 0.
func (IntegerRing) IsZero(a int64) bool { return a == 0 }

// Eq reports whether a == b.
func (IntegerRing) Eq(a, b int64) bool { return a == b }

// Format renders a in base 10.
func (IntegerRing) Format(a int64) string { return strconv.FormatInt(a, 10) }
