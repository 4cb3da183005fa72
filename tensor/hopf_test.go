package tensor_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensora/ring"
	"github.com/katalvlaran/tensora/tensor"
	"github.com/katalvlaran/tensora/word"
)

// TestDegree is word length; multiplication adds degrees.
func TestDegree(t *testing.T) {
	ta, _ := newQAlgebra(t)

	assert.Equal(t, 0, ta.Degree(word.Empty[string]()))
	assert.Equal(t, 3, ta.Degree(word.W("a", "b", "c")))

	a := word.W("a", "b")
	b := word.W("c")
	assert.Equal(t, ta.Degree(a)+ta.Degree(b), ta.Degree(a.Concat(b)), "degree is additive under multiplication")

	w, err := ta.FromIndices([]string{"a", "b", "c"})
	require.NoError(t, err)
	assert.Equal(t, 3, w.MaxDegree())
	assert.Equal(t, -1, ta.Zero().MaxDegree())
}

// TestCoproduct_BasisCases covers the empty word, a single generator, and
// the 2^n split count for longer words.
func TestCoproduct_BasisCases(t *testing.T) {
	ta, _ := newQAlgebra(t)
	sq := ta.Square()
	Q := ring.Rationals()

	// Δ(1) = 1 ⊗ 1.
	one := ta.One()
	assert.True(t, sq.Equal(ta.Coproduct(one), sq.One()))

	// Δ(a) = a⊗1 + 1⊗a.
	ga, err := ta.FromIndex("a")
	require.NoError(t, err)
	ca := ta.Coproduct(ga)
	e := word.Empty[string]()
	left, _ := sq.Monomial(word.W("a"), e)
	right, _ := sq.Monomial(e, word.W("a"))
	assert.True(t, sq.Equal(ca, sq.Add(left, right)))

	// Δ(a⊗b⊗c) has one term per binary split of the three positions.
	abc, err := ta.FromIndices([]string{"a", "b", "c"})
	require.NoError(t, err)
	cp := ta.Coproduct(abc)
	assert.Equal(t, 8, cp.Len())

	// The (ab, c) split carries coefficient 1.
	abLeft, _ := sq.Monomial(word.W("a", "b"), word.W("c"))
	probe := sq.Add(cp, sq.ScalarMul(Q.Neg(Q.One()), abLeft))
	assert.Equal(t, 7, probe.Len(), "subtracting one split removes exactly one term")
}

// TestCoproduct_AlgebraMorphism checks Δ(x·y) == Δ(x)·Δ(y) — the defining
// property forcing the iterative-product formula.
func TestCoproduct_AlgebraMorphism(t *testing.T) {
	ta, _ := newQAlgebra(t)
	sq := ta.Square()

	a, _ := ta.FromIndex("a")
	b, _ := ta.FromIndex("b")
	abc, _ := ta.FromIndices([]string{"a", "b", "c"})

	elems := []tensor.Element[string, *big.Rat]{
		ta.One(),
		a,
		ta.Add(a, b),
		abc,
		ta.Sub(ta.Mul(a, b), ta.FromScalar(ring.Rat(1, 3))),
	}
	for _, x := range elems {
		for _, y := range elems {
			lhs := ta.Coproduct(ta.Mul(x, y))
			rhs := sq.Mul(ta.Coproduct(x), ta.Coproduct(y))
			assert.True(t, sq.Equal(lhs, rhs), "Δ(x·y) != Δ(x)·Δ(y) for x=%s y=%s", ta.Format(x), ta.Format(y))
		}
	}
}

// TestCoproduct_PerLetterProduct replicates the Sage doctest
// Δ(a⊗b⊗c) == Δ(a)·Δ(b)·Δ(c).
func TestCoproduct_PerLetterProduct(t *testing.T) {
	ta, _ := newQAlgebra(t)
	sq := ta.Square()

	abc, _ := ta.FromIndices([]string{"a", "b", "c"})
	ga, _ := ta.FromIndex("a")
	gb, _ := ta.FromIndex("b")
	gc, _ := ta.FromIndex("c")

	iter := sq.Mul(sq.Mul(ta.Coproduct(ga), ta.Coproduct(gb)), ta.Coproduct(gc))
	assert.True(t, sq.Equal(ta.Coproduct(abc), iter))
}

// TestCounit covers the projection onto the scalar part and the counit
// axiom (ε⊗id)∘Δ = id.
func TestCounit(t *testing.T) {
	ta, _ := newQAlgebra(t)
	sq := ta.Square()
	Q := ring.Rationals()

	w, _ := ta.FromIndices([]string{"a", "b", "c"})
	assert.True(t, Q.IsZero(ta.Counit(w)), "counit kills positive-degree words")

	shifted := ta.Add(w, ta.FromScalar(ring.Int(3)))
	assert.True(t, Q.Eq(ring.Int(3), ta.Counit(shifted)))

	a, _ := ta.FromIndex("a")
	elems := []tensor.Element[string, *big.Rat]{
		ta.One(), w, shifted, ta.Mul(a, w), ta.ScalarMul(ring.Rat(-2, 5), a),
	}
	for _, x := range elems {
		assert.True(t, ta.Equal(x, sq.ContractLeft(ta.Coproduct(x))), "(ε⊗id)Δ failed for %s", ta.Format(x))
		assert.True(t, ta.Equal(x, sq.ContractRight(ta.Coproduct(x))), "(id⊗ε)Δ failed for %s", ta.Format(x))
	}
}

// TestAntipode covers reversal with sign and the involution property.
func TestAntipode(t *testing.T) {
	ta, _ := newQAlgebra(t)
	Q := ring.Rationals()

	// S(a⊗b⊗c) = -c⊗b⊗a (odd length).
	w, err := ta.FromIndices([]string{"a", "b", "c"})
	require.NoError(t, err)
	s := ta.Antipode(w)
	assert.True(t, Q.Eq(ring.Int(-1), ta.Coefficient(s, word.W("c", "b", "a"))))
	assert.Equal(t, 1, s.Len())

	// S(a⊗b⊗b⊗b) = +b⊗b⊗b⊗a (even length, Sage doctest).
	u, _ := ta.FromIndices([]string{"a", "b", "b", "b"})
	su := ta.Antipode(u)
	assert.True(t, Q.Eq(ring.Int(1), ta.Coefficient(su, word.W("b", "b", "b", "a"))))

	// S² = id: the signs cancel.
	a, _ := ta.FromIndex("a")
	mixed := ta.Add(ta.ScalarMul(ring.Rat(2, 3), w), ta.Sub(a, ta.One()))
	assert.True(t, ta.Equal(mixed, ta.Antipode(ta.Antipode(mixed))))

	// S fixes scalars.
	assert.True(t, ta.Equal(ta.One(), ta.Antipode(ta.One())))
}

// TestSquare_Format renders pairs with "#" and unit slots as "1".
func TestSquare_Format(t *testing.T) {
	ta, _ := newQAlgebra(t)
	sq := ta.Square()

	ga, _ := ta.FromIndex("a")
	assert.Equal(t, "1 # a + a # 1", sq.Format(ta.Coproduct(ga)))
	assert.Equal(t, "1 # 1", sq.Format(sq.One()))
	assert.Equal(t, "0", sq.Format(sq.Zero()))
}
