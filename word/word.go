package word

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Word is a finite word over the alphabet I: an immutable ordered sequence
// of letters. The zero value is the empty word (the monoid identity).
//
// Words never share or expose their backing slice; every constructor and
// operation copies, so a Word can be stored and passed around freely.
type Word[I cmp.Ordered] struct {
	letters []I
}

// W builds a word from the given letters in order.
func W[I cmp.Ordered](letters ...I) Word[I] {
	if len(letters) == 0 {
		return Word[I]{}
	}
	cp := make([]I, len(letters))
	copy(cp, letters)
	return Word[I]{letters: cp}
}

// Empty returns the empty word, the identity of the free monoid on I.
func Empty[I cmp.Ordered]() Word[I] { return Word[I]{} }

// Len returns the number of letters. This is the degree of the basis
// element the word indexes.
func (w Word[I]) Len() int { return len(w.letters) }

// IsEmpty reports whether w is the monoid identity.
func (w Word[I]) IsEmpty() bool { return len(w.letters) == 0 }

// At returns the letter at position i (0-based). Panics on out-of-range i,
// matching slice indexing.
func (w Word[I]) At(i int) I { return w.letters[i] }

// Letters returns a copy of the letter sequence. The copy is the caller's
// to mutate; w is unaffected.
func (w Word[I]) Letters() []I {
	if len(w.letters) == 0 {
		return nil
	}
	cp := make([]I, len(w.letters))
	copy(cp, w.letters)
	return cp
}

// Concat returns the word w followed by v — the monoid operation.
// Concatenation is associative and non-commutative; the empty word is the
// two-sided identity.
func (w Word[I]) Concat(v Word[I]) Word[I] {
	if len(w.letters) == 0 {
		return v
	}
	if len(v.letters) == 0 {
		return w
	}
	joined := make([]I, 0, len(w.letters)+len(v.letters))
	joined = append(joined, w.letters...)
	joined = append(joined, v.letters...)
	return Word[I]{letters: joined}
}

// Reverse returns the word with its letters in reverse order.
func (w Word[I]) Reverse() Word[I] {
	if len(w.letters) < 2 {
		return w
	}
	rev := make([]I, len(w.letters))
	for i, l := range w.letters {
		rev[len(rev)-1-i] = l
	}
	return Word[I]{letters: rev}
}

// Equal reports structural equality: same length, same letters in order.
func (w Word[I]) Equal(v Word[I]) bool {
	if len(w.letters) != len(v.letters) {
		return false
	}
	for i, l := range w.letters {
		if l != v.letters[i] {
			return false
		}
	}
	return true
}

// Compare orders words by length first, then letterwise. It is a total
// order compatible with Equal and gives the graded ordering used when
// listing an element's support.
func Compare[I cmp.Ordered](a, b Word[I]) int {
	if d := cmp.Compare(len(a.letters), len(b.letters)); d != 0 {
		return d
	}
	for i := range a.letters {
		if d := cmp.Compare(a.letters[i], b.letters[i]); d != 0 {
			return d
		}
	}
	return 0
}

// Run is a maximal block of equal consecutive letters.
type Run[I cmp.Ordered] struct {
	Letter I
	Mult   int
}

// Runs returns the run-length view of w: consecutive equal letters grouped
// with their multiplicities. Purely a display/storage convenience; the flat
// letter sequence remains the contract.
func (w Word[I]) Runs() []Run[I] {
	if len(w.letters) == 0 {
		return nil
	}
	runs := make([]Run[I], 0, len(w.letters))
	cur := Run[I]{Letter: w.letters[0], Mult: 1}
	for _, l := range w.letters[1:] {
		if l == cur.Letter {
			cur.Mult++
			continue
		}
		runs = append(runs, cur)
		cur = Run[I]{Letter: l, Mult: 1}
	}
	return append(runs, cur)
}

// Key returns an injective string encoding of w, usable as a map key.
// Each letter is rendered with fmt and length-prefixed, so distinct words
// always produce distinct keys, including letters whose rendering contains
// separators.
func (w Word[I]) Key() string {
	if len(w.letters) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, l := range w.letters {
		s := fmt.Sprint(l)
		sb.WriteString(strconv.Itoa(len(s)))
		sb.WriteByte(':')
		sb.WriteString(s)
	}
	return sb.String()
}

// String renders w with "⊗" between letters; the empty word prints as "1".
func (w Word[I]) String() string {
	if len(w.letters) == 0 {
		return "1"
	}
	parts := make([]string, len(w.letters))
	for i, l := range w.letters {
		parts[i] = fmt.Sprint(l)
	}
	return strings.Join(parts, "⊗")
}
