package ring

// Ring describes the arithmetic of a coefficient type C.
//
// Implementations must be pure: no operation may mutate its operands or
// retain references to them. Eq must be an equivalence relation consistent
// with the ring structure (Eq(Add(a, Neg(a)), Zero()) holds for all a).
type Ring[C any] interface {
	// Zero returns the additive identity.
	Zero() C

	// One returns the multiplicative identity.
	One() C

	// Add returns a + b.
	Add(a, b C) C

	// Mul returns a * b.
	Mul(a, b C) C

	// Neg returns -a.
	Neg(a C) C

	// IsZero reports whether a equals the additive identity.
	IsZero(a C) bool

	// Eq reports whether a and b are the same ring element.
	Eq(a, b C) bool

	// Format renders a for display.
	Format(a C) string
}

// Sub returns a - b in R. Convenience over Add/Neg so implementations stay
// minimal.
func Sub[C any](r Ring[C], a, b C) C {
	return r.Add(a, r.Neg(b))
}

// Pow returns a^n in R for n >= 0; n == 0 yields One.
func Pow[C any](r Ring[C], a C, n int) C {
	acc := r.One()
	for ; n > 0; n-- {
		acc = r.Mul(acc, a)
	}
	return acc
}
