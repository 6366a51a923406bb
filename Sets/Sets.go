// Package Sets has the capability every container in the module offers and HashBag, the
// unordered bag.
package Sets

import (
	"fmt"
	"iter"
	"strings"
)

// Collection is what every container can do: report its size, test membership under its own
// comparer and enumerate its elements.
type Collection[E any] interface {
	Len() int
	Contains(E) bool
	All() iter.Seq[E]
}

// ToString renders the elements of seq as {a, b, c}.
func ToString[E any](seq iter.Seq[E]) string {
	var sb strings.Builder
	sb.WriteByte('{')
	first := true
	for e := range seq {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		fmt.Fprint(&sb, e)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Count the elements of c that satisfy f.
func Count[E any](c Collection[E], f func(E) bool) (n int) {
	for e := range c.All() {
		if f(e) {
			n++
		}
	}
	return
}

// ContainsAll reports whether c contains every element of seq.
func ContainsAll[E any](c Collection[E], seq iter.Seq[E]) bool {
	for e := range seq {
		if !c.Contains(e) {
			return false
		}
	}
	return true
}
