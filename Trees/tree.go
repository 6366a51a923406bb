package Trees

import (
	"golang.org/x/exp/constraints"
)

// Policy decides what Insert does when an equivalent element is already in the tree.
type Policy byte

const (
	// Reject keeps the element already in the tree.
	Reject Policy = iota
	// Replace overwrites the element already in the tree.
	Replace
	// Duplicate inserts another copy after every equivalent copy already in the tree.
	Duplicate
)

// A node in the Tree.
// The zero value is meaningless.
type node[T any, S constraints.Unsigned] struct {
	v    T
	l, r nodePtr[T, S]
	sz   S
}

// Pointer to a node.
// A nodePtr is considered to be nil if it is equal to the nilPtr of its Tree. The nilPtr
// has node.l, node.r = itself, and sz=0, so sizes of empty subtrees read as 0 without checks.
type nodePtr[T any, S constraints.Unsigned] *node[T, S]

// rotateLeft performs a left rotation on nodePtr n. n is passed by reference in order
// to modify its content.
// Time: O(1); Space: O(1)
func rotateLeft[T any, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	rc := r.r
	r.r = rc.l
	rc.l = r
	rc.sz = r.sz
	r.sz = r.l.sz + r.r.sz + 1
	*n = rc
}

// rotateRight performs a right rotation on nodePtr n.
// Time: O(1); Space: O(1)
func rotateRight[T any, S constraints.Unsigned](n *nodePtr[T, S]) {
	r := *n
	lc := r.l
	r.l = lc.r
	lc.r = r
	lc.sz = r.sz
	r.sz = r.l.sz + r.r.sz + 1
	*n = lc
}

// Tree is a size balanced tree ordered by a three-way comparison function. It allows
// equivalent elements (see Policy), which are kept next to each other in insertion order.
// T is the type of values it will hold, S is the type used for the sizes of subtrees; it
// should be a wide upperbound for the size of the tree.
// Every node knows the size of its subtree, so positional queries (At, IndexOf, CountLess)
// take O(D) where the height D is less than 1.44*log2(n+1.5)-1.33.
// Every structural change increments Version, which is what invalidates Iter.
type Tree[T any, S constraints.Unsigned] struct {
	root, nilPtr nodePtr[T, S]
	cmp          func(a, b T) int
	version      uint64
}

func sentinel[T any, S constraints.Unsigned]() nodePtr[T, S] {
	z := new(node[T, S])
	z.l, z.r = z, z
	return z
}

// New empty Tree ordered by cmp.
func New[T any, S constraints.Unsigned](cmp func(a, b T) int) *Tree[T, S] {
	z := sentinel[T, S]()
	return &Tree[T, S]{root: z, nilPtr: z, cmp: cmp}
}

// Build a Tree from a slice sorted in non-decreasing order of cmp. This is faster than
// repeatedly calling Insert, and the result is perfectly balanced. The slice isn't retained.
// If safe==true, Build checks the order and panics with InvalidSliceError when it's broken;
// otherwise it is up to the caller, and an unsorted slice gives a corrupt tree.
// Time: O(n)
func Build[T any, S constraints.Unsigned](sli []T, cmp func(a, b T) int, safe bool) *Tree[T, S] {
	u := New[T, S](cmp)
	u.root = u.build(sli, safe)
	return u
}

func (u *Tree[T, S]) build(sli []T, safe bool) nodePtr[T, S] {
	if safe {
		for i := 1; i < len(sli); i++ {
			if u.cmp(sli[i-1], sli[i]) > 0 {
				panic(InvalidSliceError{sli[i-1], sli[i], i})
			}
		}
	}
	var build func([]T) nodePtr[T, S]
	build = func(s []T) nodePtr[T, S] {
		if len(s) > 0 {
			mid := len(s) >> 1
			return &node[T, S]{s[mid], build(s[:mid]), build(s[mid+1:]), S(len(s))}
		} else {
			return u.nilPtr
		}
	}
	return build(sli)
}

// Load replaces the whole content with sli, which must satisfy the same conditions as in Build.
// Time: O(n)
func (u *Tree[T, S]) Load(sli []T, safe bool) {
	root := u.build(sli, safe)
	u.root = root
	u.version++
}

// Clone the tree structure. Elements are copied by assignment.
// Time: O(n)
func (u *Tree[T, S]) Clone() *Tree[T, S] {
	c := New[T, S](u.cmp)
	var clone func(nodePtr[T, S]) nodePtr[T, S]
	clone = func(n nodePtr[T, S]) nodePtr[T, S] {
		if n == u.nilPtr {
			return c.nilPtr
		}
		return &node[T, S]{n.v, clone(n.l), clone(n.r), n.sz}
	}
	c.root = clone(u.root)
	return c
}

// Size of the tree.
// Time: O(1); Space: O(1)
func (u *Tree[T, S]) Size() S {
	return u.root.sz
}

// Len is Size as an int.
func (u *Tree[T, S]) Len() int {
	return int(u.root.sz)
}

// Version is incremented by every change to the tree.
func (u *Tree[T, S]) Version() uint64 {
	return u.version
}

// Compare exposes the ordering of u.
func (u *Tree[T, S]) Compare(a, b T) int {
	return u.cmp(a, b)
}

// Clear the tree.
// Time: O(1)
func (u *Tree[T, S]) Clear() {
	u.root = u.nilPtr
	u.version++
}

// maintain the subtree rooting at cur recursively to satisfy the SBTree properties
// using rotateLeft and rotateRight.
// rightBigger indicates whether the right subtree may be too large compared to the left,
// this is for removing redundant size comparisons.
// curPtr is passed by reference.
// Time: amortized O(1)
func (u *Tree[T, S]) maintain(curPtr *nodePtr[T, S], rightBigger bool) {
	cur := *curPtr
	if rc, lc := cur.r, cur.l; rightBigger {
		if rc.r.sz > lc.sz {
			rotateLeft(curPtr)
		} else if rc.l.sz > lc.sz {
			rotateRight(&cur.r)
			rotateLeft(curPtr)
		} else {
			return
		}
	} else {
		if lc.l.sz > rc.sz {
			rotateRight(curPtr)
		} else if lc.r.sz > rc.sz {
			rotateLeft(&cur.l)
			rotateRight(curPtr)
		} else {
			return
		}
	}
	// the children of the new root.
	cur = *curPtr
	u.maintain(&cur.l, false)
	u.maintain(&cur.r, true)
	u.maintain(curPtr, false)
	u.maintain(curPtr, true)
}

// insert v to the subtree rooting at cur recursively.
func (u *Tree[T, S]) insert(curPtr *nodePtr[T, S], v T, p Policy) (inserted, replaced bool) {
	cur := *curPtr
	if cur == u.nilPtr {
		*curPtr = &node[T, S]{v, u.nilPtr, u.nilPtr, 1}
		return true, false
	}
	c := u.cmp(v, cur.v)
	if c == 0 {
		switch p {
		case Reject:
			return false, false
		case Replace:
			cur.v = v
			return false, true
		}
	}
	if c < 0 {
		inserted, replaced = u.insert(&cur.l, v, p)
	} else {
		inserted, replaced = u.insert(&cur.r, v, p)
	}
	if inserted {
		cur.sz++
		u.maintain(curPtr, c >= 0)
	}
	return
}

// Insert v according to p. inserted is true if the tree grew, replaced is true if an
// equivalent element was overwritten (only with Replace). Recursive.
// Time: O(D)
func (u *Tree[T, S]) Insert(v T, p Policy) (inserted, replaced bool) {
	if inserted, replaced = u.insert(&u.root, v, p); inserted || replaced {
		u.version++
	}
	return
}

// removeAt removes the k-th element of the subtree rooting at cur and returns it.
// k must be less than the size of the subtree.
func (u *Tree[T, S]) removeAt(curPtr *nodePtr[T, S], k S) (v T) {
	cur := *curPtr
	if ls := cur.l.sz; k < ls {
		v = u.removeAt(&cur.l, k)
		cur.sz--
		u.maintain(curPtr, true)
	} else if k > ls {
		v = u.removeAt(&cur.r, k-ls-1)
		cur.sz--
		u.maintain(curPtr, false)
	} else {
		v = cur.v
		if cur.l == u.nilPtr {
			*curPtr = cur.r
		} else if cur.r == u.nilPtr {
			*curPtr = cur.l
		} else {
			cur.v = u.removeAt(&cur.r, 0)
			cur.sz--
			u.maintain(curPtr, false)
		}
	}
	return
}

// RemoveAt removes and returns the element at index i. Returns false if i is out of range.
// Recursive.
// Time: O(D)
func (u *Tree[T, S]) RemoveAt(i int) (T, bool) {
	if i < 0 || i >= u.Len() {
		return *new(T), false
	}
	v := u.removeAt(&u.root, S(i))
	u.version++
	return v, true
}

// RemoveRange removes n elements starting at index i, which must be a valid range.
// Time: O(n*D)
func (u *Tree[T, S]) RemoveRange(i, n int) {
	if n <= 0 {
		return
	}
	if i == 0 && n == u.Len() {
		u.Clear()
		return
	}
	for range n {
		u.removeAt(&u.root, S(i))
	}
	u.version++
}

// Remove the last copy of v. Returns false if v isn't in the tree.
// Time: O(D)
func (u *Tree[T, S]) Remove(v T) bool {
	if i := u.LastIndexOf(v); i >= 0 {
		u.RemoveAt(i)
		return true
	}
	return false
}

// RemoveAllCopies of v and returns how many were removed.
// Time: O((k+1)*D) for k copies.
func (u *Tree[T, S]) RemoveAllCopies(v T) int {
	lo, hi := u.CountLess(v), u.CountLessOrEqual(v)
	u.RemoveRange(lo, hi-lo)
	return hi - lo
}

// Find the first element equivalent to v.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Find(v T) (p *T) {
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			p = &cur.v
			cur = cur.l
		}
	}
	return
}

// Has an element equivalent to v.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Has(v T) bool {
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(v, cur.v); c < 0 {
			cur = cur.l
		} else if c > 0 {
			cur = cur.r
		} else {
			return true
		}
	}
	return false
}

// At returns the pointer to the element at index i, nil if i is out of range.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) At(i int) *T {
	if i < 0 || i >= u.Len() {
		return nil
	}
	k := S(i)
	for cur := u.root; cur != u.nilPtr; {
		if ls := cur.l.sz; k < ls {
			cur = cur.l
		} else if k > ls {
			k -= ls + 1
			cur = cur.r
		} else {
			return &cur.v
		}
	}
	return nil
}

// CountLess returns the number of elements less than v, which is also the index v would
// be inserted at in front of its equivalents.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) CountLess(v T) int {
	var ra S = 0
	for cur := u.root; cur != u.nilPtr; {
		if u.cmp(cur.v, v) < 0 {
			ra += cur.l.sz + 1
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return int(ra)
}

// CountLessOrEqual returns the number of elements less than or equivalent to v.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) CountLessOrEqual(v T) int {
	var ra S = 0
	for cur := u.root; cur != u.nilPtr; {
		if u.cmp(cur.v, v) <= 0 {
			ra += cur.l.sz + 1
			cur = cur.r
		} else {
			cur = cur.l
		}
	}
	return int(ra)
}

// IndexOf the first element equivalent to v, -1 if there's none.
// Time: O(D)
func (u *Tree[T, S]) IndexOf(v T) int {
	if i := u.CountLess(v); i < u.Len() && u.cmp(*u.At(i), v) == 0 {
		return i
	}
	return -1
}

// LastIndexOf the last element equivalent to v, -1 if there's none.
// Time: O(D)
func (u *Tree[T, S]) LastIndexOf(v T) int {
	if i := u.CountLessOrEqual(v) - 1; i >= 0 && u.cmp(*u.At(i), v) == 0 {
		return i
	}
	return -1
}

// NumberOfCopies of v in the tree.
// Time: O(D)
func (u *Tree[T, S]) NumberOfCopies(v T) int {
	return u.CountLessOrEqual(v) - u.CountLess(v)
}

// Predecessor of v. If strict is true, result<v if found; otherwise, result<=v.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Predecessor(v T, strict bool) (p *T) {
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(v, cur.v); c < 0 || (strict && c == 0) {
			cur = cur.l
		} else {
			p = &cur.v
			cur = cur.r
		}
	}
	return
}

// Successor of v. If strict is true, result>v if found; otherwise, result>=v.
// Time: O(D); Space: O(1)
func (u *Tree[T, S]) Successor(v T, strict bool) (p *T) {
	for cur := u.root; cur != u.nilPtr; {
		if c := u.cmp(v, cur.v); c > 0 || (strict && c == 0) {
			cur = cur.r
		} else {
			p = &cur.v
			cur = cur.l
		}
	}
	return
}

// InOrder calls f on every element in order until f returns false. The tree mustn't be
// modified by f.
// Time: O(n); Space: O(D)
func (u *Tree[T, S]) InOrder(f func(*T) bool) {
	st := make([]nodePtr[T, S], 0, 32)
	for cur := u.root; cur != u.nilPtr; cur = cur.l {
		st = append(st, cur)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if !f(&cur.v) {
			return
		}
		for cur = cur.r; cur != u.nilPtr; cur = cur.l {
			st = append(st, cur)
		}
	}
}

// Slice of all elements in order.
// Time: O(n)
func (u *Tree[T, S]) Slice() []T {
	s := make([]T, 0, u.Len())
	u.InOrder(func(v *T) bool {
		s = append(s, *v)
		return true
	})
	return s
}

func (u *Tree[T, S]) minDepth(c nodePtr[T, S], cd uint) uint {
	if c == u.nilPtr {
		return cd
	}
	return min(u.minDepth(c.l, cd+1), u.minDepth(c.r, cd+1))
}

// MinDepth is the length of the shortest path from the root to an empty subtree.
func (u *Tree[T, S]) MinDepth() uint {
	return u.minDepth(u.root, 0)
}

func (u *Tree[T, S]) maxDepth(c nodePtr[T, S], cd uint) uint {
	if c == u.nilPtr {
		return cd
	}
	return max(u.maxDepth(c.l, cd+1), u.maxDepth(c.r, cd+1))
}

// MaxDepth is the height of the tree.
func (u *Tree[T, S]) MaxDepth() uint {
	return u.maxDepth(u.root, 0)
}

func (u *Tree[T, S]) corrupt(cur nodePtr[T, S]) bool {
	if cur == u.nilPtr {
		return false
	}
	if cur.sz != cur.l.sz+cur.r.sz+1 {
		return true
	}
	if cur.l != u.nilPtr && u.cmp(cur.l.v, cur.v) > 0 {
		return true
	}
	if cur.r != u.nilPtr && u.cmp(cur.r.v, cur.v) < 0 {
		return true
	}
	return u.corrupt(cur.l) || u.corrupt(cur.r)
}

// Corrupt returns whether the tree has corrupt structures: a wrong subtree size, a child on
// the wrong side of its parent, an out of order traversal, or a damaged nilPtr.
// This is to be distinguished from whether the tree is balanced or not.
func (u *Tree[T, S]) Corrupt() bool {
	if u.nilPtr.sz != 0 || u.nilPtr.l != u.nilPtr || u.nilPtr.r != u.nilPtr || u.corrupt(u.root) {
		return true
	}
	var prev *T
	ok := true
	u.InOrder(func(v *T) bool {
		if prev != nil && u.cmp(*prev, *v) > 0 {
			ok = false
		}
		prev = v
		return ok
	})
	return !ok
}
