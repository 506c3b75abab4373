package Trees

// A node in the RBTree
// The zero value is meaningless.
type node[T any] struct {
	v       T
	l, r, p nodePtr[T]
	red     bool
}

// Pointer to a node
// nil Pointer is meaningless. A nodePtr is considered to be nil if the
// pointer is equal to the nilPtr in RBTree. That sentinel node has
// l, r and p all pointing at itself, red==false, and v the zero value
// of T, which is never read.
type nodePtr[T any] *node[T]

// rotateLeft hoists x's right child into x's place; x becomes its left
// child. Only pointers are reassigned. nilPtr's p may be written when
// the hoisted child's left subtree is empty; that field is never read.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) rotateLeft(x nodePtr[T]) {
	y := x.r
	x.r = y.l
	y.l.p = x
	y.p = x.p
	if x.p == u.nilPtr {
		u.root = y
	} else if x.p.l == x {
		x.p.l = y
	} else {
		x.p.r = y
	}
	y.l = x
	x.p = y
}

// rotateRight is the mirror image of rotateLeft.
// Time: O(1); Space: O(1)
func (u *RBTree[T]) rotateRight(x nodePtr[T]) {
	y := x.l
	x.l = y.r
	y.r.p = x
	y.p = x.p
	if x.p == u.nilPtr {
		u.root = y
	} else if x.p.r == x {
		x.p.r = y
	} else {
		x.p.l = y
	}
	y.r = x
	x.p = y
}
