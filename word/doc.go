// Package word implements finite words over an ordered alphabet — the free
// monoid on an index set.
//
// A Word[I] is an immutable ordered sequence of letters of type I. Words
// multiply by concatenation (associative, non-commutative); the empty word
// is the identity. Words index the basis of a tensor algebra: the letters
// are basis indices of the underlying module and the word length is the
// basis element's degree.
//
// Key features:
//   - immutable value type with structural equality (Equal) and a total
//     order (Compare: length first, then letterwise)
//   - cheap concatenation (Concat) and reversal (Reverse)
//   - Key() — an injective string encoding usable as a map key
//   - Runs() — run-length (letter, multiplicity) view for compact display
//
// Usage:
//
//	w := word.W("a", "b", "c")
//	w.Len()              // 3
//	w.Concat(word.W("a")) // a⊗b⊗c⊗a
//	word.Empty[string]()  // identity, prints "1"
//
// Words are plain values; all operations are pure and safe for concurrent
// use.
package word
