package Comparers

import (
	"strings"
	"sync"

	"github.com/emirpasic/gods/utils"
)

var caseInsensitive = sync.OnceValue(func() *Comparer[string] {
	return newComparer(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}, "caseInsensitive")
})

// CaseInsensitive orders strings ignoring case; "Hello" and "HELLO" are equivalent.
func CaseInsensitive() *Comparer[string] {
	return caseInsensitive()
}

// FromGods adapts a gods comparator. c must accept two values of type T.
func FromGods[T any](c utils.Comparator) (*Comparer[T], error) {
	if c == nil {
		return FromFunc[T](nil)
	}
	return newComparer(func(a, b T) int {
		return c(a, b)
	}, "gods"), nil
}
