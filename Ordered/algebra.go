package Ordered

import (
	"iter"

	Go_Collections "github.com/g-m-twostay/go-collections"
	"github.com/g-m-twostay/go-collections/Comparers"
	"github.com/pkg/errors"
)

// Set algebra works on the sorted contents of both operands. They are walked in step, one run
// of equivalent elements at a time, and a rule picks what the result keeps of each pair of
// runs. A Set is a Bag whose runs hold at most one element, so the same rules serve both.

// runs calls f with every pair of runs of equivalent elements of the sorted a and b, in
// order. One of the two runs is empty when the key is in only one operand. Stops when f
// returns false.
func runs[T any](cmp func(a, b T) int, a, b []T, f func(ra, rb []T) bool) {
	run := func(s []T) int {
		i := 1
		for i < len(s) && cmp(s[0], s[i]) == 0 {
			i++
		}
		return i
	}
	for len(a) > 0 || len(b) > 0 {
		var ra, rb []T
		if len(b) == 0 {
			ra = a[:run(a)]
		} else if len(a) == 0 {
			rb = b[:run(b)]
		} else if c := cmp(a[0], b[0]); c < 0 {
			ra = a[:run(a)]
		} else if c > 0 {
			rb = b[:run(b)]
		} else {
			ra, rb = a[:run(a)], b[:run(b)]
		}
		a, b = a[len(ra):], b[len(rb):]
		if !f(ra, rb) {
			return
		}
	}
}

// merge a and b into a new sorted slice with what rule keeps of each pair of runs.
func merge[T any](cmp func(a, b T) int, a, b []T, rule func(ra, rb []T) []T) []T {
	s := make([]T, 0, max(len(a), len(b)))
	runs(cmp, a, b, func(ra, rb []T) bool {
		s = append(s, rule(ra, rb)...)
		return true
	})
	return s
}

// union keeps the larger multiplicity, the extra copies coming from the end of rb.
func union[T any](ra, rb []T) []T {
	if len(rb) > len(ra) {
		return append(ra[:len(ra):len(ra)], rb[len(ra):]...)
	}
	return ra
}

// sum keeps every copy.
func sum[T any](ra, rb []T) []T {
	return append(ra[:len(ra):len(ra)], rb...)
}

// intersection keeps the smaller multiplicity from ra.
func intersection[T any](ra, rb []T) []T {
	return ra[:min(len(ra), len(rb))]
}

// difference keeps the copies of ra not matched by rb.
func difference[T any](ra, rb []T) []T {
	return ra[:max(len(ra)-len(rb), 0)]
}

// symmetricDifference keeps the unmatched copies of whichever run is longer.
func symmetricDifference[T any](ra, rb []T) []T {
	if len(ra) >= len(rb) {
		return ra[:len(ra)-len(rb)]
	}
	return rb[len(ra):]
}

// subset reports whether every multiplicity in a is at most the one in b.
func subset[T any](cmp func(a, b T) int, a, b []T) bool {
	ok := true
	runs(cmp, a, b, func(ra, rb []T) bool {
		ok = len(ra) <= len(rb)
		return ok
	})
	return ok
}

func disjoint[T any](cmp func(a, b T) int, a, b []T) bool {
	ok := true
	runs(cmp, a, b, func(ra, rb []T) bool {
		ok = len(ra) == 0 || len(rb) == 0
		return ok
	})
	return ok
}

// combine checks that o is ordered like u and merges both contents with rule.
// Nothing is modified here, so a failure leaves both operands untouched.
func (u *core[T]) combine(o *core[T], rule func(ra, rb []T) []T) ([]T, error) {
	if o == nil {
		return nil, errors.Wrap(Go_Collections.ErrNilArgument, "nil operand")
	}
	if err := Comparers.Consistent(u.c, o.c); err != nil {
		return nil, err
	}
	return merge(u.c.Func(), u.t.Slice(), o.t.Slice(), rule), nil
}

// compare checks that o is ordered like u and evaluates pred over both contents.
func (u *core[T]) compare(o *core[T], pred func(cmp func(a, b T) int, a, b []T) bool) (bool, error) {
	if o == nil {
		return false, errors.Wrap(Go_Collections.ErrNilArgument, "nil operand")
	}
	if err := Comparers.Consistent(u.c, o.c); err != nil {
		return false, err
	}
	return pred(u.c.Func(), u.t.Slice(), o.t.Slice()), nil
}

func (u *core[T]) isSubsetOf(o *core[T]) (bool, error) {
	return u.compare(o, subset[T])
}

func (u *core[T]) isProperSubsetOf(o *core[T]) (bool, error) {
	ok, err := u.compare(o, subset[T])
	return ok && u.Len() < o.Len(), err
}

func (u *core[T]) isEqualTo(o *core[T]) (bool, error) {
	ok, err := u.compare(o, subset[T])
	return ok && u.Len() == o.Len(), err
}

func (u *core[T]) isDisjointFrom(o *core[T]) (bool, error) {
	return u.compare(o, disjoint[T])
}

// collect seq before anything is added, so adding a container to itself terminates.
func collect[T any](seq iter.Seq[T]) ([]T, error) {
	if seq == nil {
		return nil, errors.Wrap(Go_Collections.ErrNilArgument, "nil sequence")
	}
	var s []T
	for v := range seq {
		s = append(s, v)
	}
	return s, nil
}
