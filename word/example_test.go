package word_test

import (
	"fmt"

	"github.com/katalvlaran/tensora/word"
)

// ExampleWord_Concat shows the monoid operation: concatenation with the
// empty word as identity.
func ExampleWord_Concat() {
	w := word.W("a", "b", "c")
	v := word.W("a")

	fmt.Println(w.Concat(v))
	fmt.Println(w.Concat(word.Empty[string]()))
	fmt.Println(word.Empty[string]())
	// Output:
	// a⊗b⊗c⊗a
	// a⊗b⊗c
	// 1
}

// ExampleWord_Runs shows the run-length view of a word with repeats.
func ExampleWord_Runs() {
	w := word.W("a", "a", "b", "b", "b", "c")
	for _, r := range w.Runs() {
		fmt.Printf("%s^%d ", r.Letter, r.Mult)
	}
	// Output:
	// a^2 b^3 c^1
}
