package word_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/tensora/word"
)

// TestWord_EmptyIdentity checks that the empty word is a two-sided identity.
func TestWord_EmptyIdentity(t *testing.T) {
	e := word.Empty[string]()
	w := word.W("a", "b")

	assert.True(t, e.IsEmpty())
	assert.Equal(t, 0, e.Len())
	assert.True(t, e.Concat(w).Equal(w), "e·w == w")
	assert.True(t, w.Concat(e).Equal(w), "w·e == w")
}

// TestWord_ConcatAssociative verifies (a·b)·c == a·(b·c) over a small alphabet.
func TestWord_ConcatAssociative(t *testing.T) {
	words := []word.Word[string]{
		word.Empty[string](),
		word.W("a"),
		word.W("b", "c"),
		word.W("a", "a", "b"),
	}
	for _, a := range words {
		for _, b := range words {
			for _, c := range words {
				lhs := a.Concat(b).Concat(c)
				rhs := a.Concat(b.Concat(c))
				assert.True(t, lhs.Equal(rhs), "associativity failed for %v, %v, %v", a, b, c)
			}
		}
	}
}

// TestWord_ConcatNonCommutative confirms order matters.
func TestWord_ConcatNonCommutative(t *testing.T) {
	a, b := word.W("a"), word.W("b")
	assert.False(t, a.Concat(b).Equal(b.Concat(a)))
}

// TestWord_LenAdditive checks len(a·b) == len(a)+len(b).
func TestWord_LenAdditive(t *testing.T) {
	a := word.W(1, 2, 3)
	b := word.W(4, 5)
	assert.Equal(t, 5, a.Concat(b).Len())
}

// TestWord_Reverse covers reversal and its involution.
func TestWord_Reverse(t *testing.T) {
	w := word.W("a", "b", "c")
	assert.True(t, w.Reverse().Equal(word.W("c", "b", "a")))
	assert.True(t, w.Reverse().Reverse().Equal(w), "reverse is an involution")
	assert.True(t, word.Empty[string]().Reverse().IsEmpty())
}

// TestWord_LettersIsolation ensures the returned slice is a defensive copy.
func TestWord_LettersIsolation(t *testing.T) {
	w := word.W("a", "b")
	ls := w.Letters()
	ls[0] = "z"
	assert.True(t, w.Equal(word.W("a", "b")), "mutating Letters() result must not affect the word")
}

// TestWord_ConstructorIsolation ensures W copies its input slice.
func TestWord_ConstructorIsolation(t *testing.T) {
	src := []string{"a", "b"}
	w := word.W(src...)
	src[0] = "z"
	assert.True(t, w.Equal(word.W("a", "b")))
}

// TestWord_Runs groups consecutive equal letters.
func TestWord_Runs(t *testing.T) {
	w := word.W("a", "a", "a", "b", "b", "a", "c", "b")
	assert.Equal(t, []word.Run[string]{
		{Letter: "a", Mult: 3},
		{Letter: "b", Mult: 2},
		{Letter: "a", Mult: 1},
		{Letter: "c", Mult: 1},
		{Letter: "b", Mult: 1},
	}, w.Runs())
	assert.Nil(t, word.Empty[string]().Runs())
}

// TestWord_KeyInjective checks that tricky letter renderings stay distinct.
func TestWord_KeyInjective(t *testing.T) {
	cases := [][2]word.Word[string]{
		{word.W("ab"), word.W("a", "b")},
		{word.W("a:b"), word.W("a", ":b")},
		{word.W("1:a"), word.W("a")},
		{word.Empty[string](), word.W("")},
	}
	for _, c := range cases {
		assert.NotEqual(t, c[0].Key(), c[1].Key(), "keys must separate %q and %q", c[0], c[1])
	}

	// Same word, same key.
	assert.Equal(t, word.W("a", "b").Key(), word.W("a", "b").Key())
}

// TestWord_Compare orders by length then letterwise.
func TestWord_Compare(t *testing.T) {
	assert.Negative(t, word.Compare(word.W("z"), word.W("a", "a")), "shorter sorts first")
	assert.Negative(t, word.Compare(word.W("a", "b"), word.W("a", "c")))
	assert.Zero(t, word.Compare(word.W("a"), word.W("a")))
	assert.Positive(t, word.Compare(word.W("b"), word.W("a")))
}

// TestWord_String renders ⊗-joined letters; empty word is "1".
func TestWord_String(t *testing.T) {
	assert.Equal(t, "a⊗b⊗c", word.W("a", "b", "c").String())
	assert.Equal(t, "1", word.Empty[int]().String())
	assert.Equal(t, "1⊗2", word.W(1, 2).String())
}
