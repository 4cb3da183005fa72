package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tensora/freemod"
	"github.com/katalvlaran/tensora/ring"
	"github.com/katalvlaran/tensora/tensor"
	"github.com/katalvlaran/tensora/word"
)

// intSetup mirrors the Sage coercion doctests: C over {1,2}, D over {2,4},
// both over the integers, with the doubling map C → D registered.
func intSetup(t *testing.T) (
	c, d *freemod.Module[int, int64],
	tac, tad *tensor.Algebra[int, int64],
	reg *freemod.Coercions[int, int64],
) {
	t.Helper()
	Z := ring.Integers()

	var err error
	c, err = freemod.New(Z, []int{1, 2})
	require.NoError(t, err)
	d, err = freemod.New(Z, []int{2, 4})
	require.NoError(t, err)

	tac, err = tensor.New(c)
	require.NoError(t, err)
	tad, err = tensor.New(d)
	require.NoError(t, err)

	reg = freemod.NewCoercions[int, int64]()
	phi, err := freemod.NewMorphism(c, d, func(i int) freemod.Element[int, int64] {
		e, _ := d.Monomial(2 * i)
		return e
	})
	require.NoError(t, err)
	require.NoError(t, reg.Register(phi))
	return c, d, tac, tad, reg
}

// TestCoercion_Ring embeds a scalar onto the degree-0 part: TAC(1) == 1.
func TestCoercion_Ring(t *testing.T) {
	_, _, tac, _, reg := intSetup(t)

	coe, err := tac.CoercionFrom(reg, tensor.RingSource[int, int64]())
	require.NoError(t, err)
	assert.Equal(t, "ring", coe.Kind())

	one, err := coe.Apply(int64(1))
	require.NoError(t, err)
	assert.True(t, tac.Equal(one, tac.One()))

	_, err = coe.Apply("not a scalar")
	assert.ErrorIs(t, err, tensor.ErrUnsupportedInput)
}

// TestCoercion_Module embeds base-module elements via singleton words.
func TestCoercion_Module(t *testing.T) {
	c, _, tac, _, reg := intSetup(t)

	require.True(t, tac.HasCoercionFrom(reg, tensor.ModuleSource(c)), "a module always coerces into its own tensor algebra")
	coe, err := tac.CoercionFrom(reg, tensor.ModuleSource(c))
	require.NoError(t, err)

	two, _ := c.Monomial(2)
	img, err := coe.Apply(two)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tac.Coefficient(img, word.W(2)))

	// TAC(c)·TAC(d) = B[2] # B[1] — products of embedded generators.
	oneM, _ := c.Monomial(1)
	e2, _ := coe.Apply(two)
	e1, _ := coe.Apply(oneM)
	prod := tac.Mul(e2, e1)
	assert.Equal(t, int64(1), tac.Coefficient(prod, word.W(2, 1)))
}

// TestCoercion_ModuleThroughMap pushes a foreign module through the
// registered doubling map.
func TestCoercion_ModuleThroughMap(t *testing.T) {
	c, _, _, tad, reg := intSetup(t)

	coe, err := tad.CoercionFrom(reg, tensor.ModuleSource(c))
	require.NoError(t, err)

	x, _ := c.Monomial(1)
	img, err := coe.Apply(x)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tad.Coefficient(img, word.W(2)), "b_1 maps to b_2 before embedding")
}

// TestCoercion_Algebra maps word-by-word: 3·[1,2,2,1,1] ↦ 3·[2,4,4,2,2].
func TestCoercion_Algebra(t *testing.T) {
	_, _, tac, tad, reg := intSetup(t)

	require.True(t, tad.HasCoercionFrom(reg, tensor.AlgebraSource(tac)))
	coe, err := tad.CoercionFrom(reg, tensor.AlgebraSource(tac))
	require.NoError(t, err)
	assert.Equal(t, "algebra", coe.Kind())

	x, err := tac.FromIndices([]int{1, 2, 2, 1, 1})
	require.NoError(t, err)
	img, err := coe.Apply(tac.ScalarMul(3, x))
	require.NoError(t, err)
	assert.Equal(t, 1, img.Len())
	assert.Equal(t, int64(3), tad.Coefficient(img, word.W(2, 4, 4, 2, 2)))

	// The reverse direction was never registered.
	assert.False(t, tac.HasCoercionFrom(reg, tensor.AlgebraSource(tad)))
	_, err = tac.CoercionFrom(reg, tensor.AlgebraSource(tad))
	assert.ErrorIs(t, err, tensor.ErrNoCoercion)
}

// TestCoercion_Product folds tensor-product elements:
// TAC(tensor([c, d])) = B[2] # B[1].
func TestCoercion_Product(t *testing.T) {
	c, d, tac, tad, reg := intSetup(t)

	cc, err := freemod.NewProduct(c, c)
	require.NoError(t, err)
	require.True(t, tac.HasCoercionFrom(reg, tensor.ProductSource(cc)))
	coe, err := tac.CoercionFrom(reg, tensor.ProductSource(cc))
	require.NoError(t, err)

	cm, _ := c.Monomial(2)
	dm, _ := c.Monomial(1)
	pure, err := cc.Pure(cm, dm)
	require.NoError(t, err)
	img, err := coe.Apply(pure)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tac.Coefficient(img, word.W(2, 1)))

	// Mixed product C ⊗ D coerces into TAD (both factors map in) but not
	// into TAC (D does not map into C).
	cd, err := freemod.NewProduct(c, d)
	require.NoError(t, err)
	assert.True(t, tad.HasCoercionFrom(reg, tensor.ProductSource(cd)))
	assert.False(t, tac.HasCoercionFrom(reg, tensor.ProductSource(cd)))

	// Folding a mixed pure tensor through the maps.
	coeD, err := tad.CoercionFrom(reg, tensor.ProductSource(cd))
	require.NoError(t, err)
	dn, _ := d.Monomial(4)
	mixed, err := cd.Pure(cm, dn)
	require.NoError(t, err)
	out, err := coeD.Apply(mixed)
	require.NoError(t, err)
	assert.Equal(t, int64(1), tad.Coefficient(out, word.W(4, 4)), "b_2 doubles to b_4, b_4 embeds as-is")

	// Element-kind mismatch is reported, not mangled.
	_, err = coe.Apply("nonsense")
	assert.ErrorIs(t, err, tensor.ErrUnsupportedInput)
}
