// Package Go_Collections holds what every container package shares: the sentinel errors
// returned by the ordered containers, their views and the auxiliary lists/bags, and the
// Cloner capability used by CloneContents.
//
// Errors are returned wrapped with the offending arguments, test them with errors.Is.
package Go_Collections

import (
	"github.com/pkg/errors"
)

var (
	// ErrUnorderableType is returned when a container is constructed for a type with no
	// natural total order and no comparer was supplied.
	ErrUnorderableType = errors.New("type has no natural order and no comparer was supplied")
	// ErrInconsistentComparer is returned when two containers that use different comparers
	// are combined.
	ErrInconsistentComparer = errors.New("containers use inconsistent comparers")
	// ErrOutOfRange is returned for an index or an index range outside of [0, Len].
	ErrOutOfRange = errors.New("index out of range")
	// ErrCollectionModified invalidates an iterator after its container has changed.
	ErrCollectionModified = errors.New("collection was modified, enumeration operation may not execute")
	// ErrNotCloneable is returned by CloneContents when an element can't be cloned.
	ErrNotCloneable = errors.New("element type does not support cloning")
	// ErrOutOfBounds is returned when a view is asked to hold an element outside of its bounds.
	ErrOutOfBounds = errors.New("element is outside of the view bounds")
	// ErrNilArgument is returned for nil collection or comparer arguments.
	ErrNilArgument = errors.New("argument is nil")
	// ErrEmpty is returned when an element is requested from an empty collection.
	ErrEmpty = errors.New("collection is empty")
	// ErrReadOnly is returned when a mutation is forwarded to a read-only list.
	ErrReadOnly = errors.New("collection is read-only")
)

// CheckIndex returns nil if 0<=i<n, otherwise ErrOutOfRange.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return errors.Wrapf(ErrOutOfRange, "index %d, length %d", i, n)
	}
	return nil
}

// CheckRange returns nil if [start, start+count) lies within [0, n], otherwise ErrOutOfRange.
// It never computes start+count so extreme values can't overflow.
func CheckRange(start, count, n int) error {
	if start < 0 || count < 0 || start > n || count > n-start {
		return errors.Wrapf(ErrOutOfRange, "range start %d count %d, length %d", start, count, n)
	}
	return nil
}
