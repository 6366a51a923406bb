// Package Trees implements the size balanced tree behind the ordered containers.
//
// Receivers that return a pointer return nil when nothing is found; the pointer refers to
// the element inside the tree and is only valid until the next modification. Methods
// implemented recursively are noted, otherwise functions are implemented iteratively.
// A Tree isn't safe for concurrent use.
package Trees

import "fmt"

// InvalidSliceError is the panic value of Build and Load in safe mode when the given slice
// isn't sorted.
type InvalidSliceError struct {
	Prev, Next any
	Index      int
}

func (e InvalidSliceError) Error() string {
	return fmt.Sprintf("slice isn't sorted at index %d: %v is greater than %v", e.Index, e.Prev, e.Next)
}
