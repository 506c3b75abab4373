package Trees

import (
	"golang.org/x/exp/constraints"
)

// RBTree is a red-black tree implemented with node pointers. It is the
// structural twin of SlabTree and exists to compare the two memory
// strategies: same ordering, same tie direction, same invariants, but
// nodes are individually heap-allocated and there is no handle surface.
// Prefer SlabTree; this variant is kept as the baseline the benchmarks
// pit it against.
// Like SlabTree it uses a single always-black sentinel node instead of
// nil pointers, so the rebalancing code never checks for nil.
// This struct shouldn't be created directly using struct literal, use
// MakeRBTree.
type RBTree[T constraints.Ordered] struct {
	root   nodePtr[T] //the root of the tree. It is nilPtr initially.
	nilPtr nodePtr[T] //the sentinel described in nodePtr.
	sz     uint
}

// MakeRBTree returns an empty RBTree satisfying the descriptions of
// root and nilPtr above.
func MakeRBTree[T constraints.Ordered]() *RBTree[T] {
	z := new(node[T])
	z.l, z.r, z.p = z, z, z
	return &RBTree[T]{z, z, 0}
}

// Insert v into the tree. Same tie rule as SlabTree.Insert: only v <
// current goes left, so equal or incomparable values descend RIGHT and
// repeats are all kept.
// Time: O(log n)
func (u *RBTree[T]) Insert(v T) {
	p := u.nilPtr
	for x := u.root; x != u.nilPtr; {
		p = x
		if v < x.v {
			x = x.l
		} else {
			x = x.r
		}
	}
	z := &node[T]{v, u.nilPtr, u.nilPtr, p, true}
	if p == u.nilPtr {
		u.root = z
	} else if v < p.v {
		p.l = z
	} else {
		p.r = z
	}
	u.sz++
	u.fixup(z)
}

// fixup is the two-sided spelling of SlabTree.fixup: the slab variant
// folds both symmetries into one body via child indexes, here the left
// and right cases are written out.
func (u *RBTree[T]) fixup(z nodePtr[T]) {
	for z.p.red {
		if p, pp := z.p, z.p.p; p == pp.l {
			if y := pp.r; y.red {
				p.red, y.red, pp.red = false, false, true
				z = pp
			} else {
				if z == p.r {
					z = p
					u.rotateLeft(z)
				}
				z.p.red = false
				z.p.p.red = true
				u.rotateRight(z.p.p)
			}
		} else {
			if y := pp.l; y.red {
				p.red, y.red, pp.red = false, false, true
				z = pp
			} else {
				if z == p.l {
					z = p
					u.rotateRight(z)
				}
				z.p.red = false
				z.p.p.red = true
				u.rotateLeft(z.p.p)
			}
		}
	}
	u.root.red = false
}

// Has [Tree.Has]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Has(v T) bool {
	for x := u.root; x != u.nilPtr; {
		if v < x.v {
			x = x.l
		} else if v == x.v {
			return true
		} else {
			x = x.r
		}
	}
	return false
}

// Minimum [Tree.Minimum]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Minimum() (T, bool) {
	x := u.root
	for x.l != u.nilPtr {
		x = x.l
	}
	return x.v, x != u.nilPtr
}

// Maximum [Tree.Maximum]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Maximum() (T, bool) {
	x := u.root
	for x.r != u.nilPtr {
		x = x.r
	}
	return x.v, x != u.nilPtr
}

// Predecessor [Tree.Predecessor]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Predecessor(v T) (T, bool) {
	r := u.nilPtr
	for x := u.root; x != u.nilPtr; {
		if v <= x.v {
			x = x.l
		} else {
			r = x
			x = x.r
		}
	}
	return r.v, r != u.nilPtr
}

// Successor [Tree.Successor]
// Time: O(log n); Space: O(1)
func (u *RBTree[T]) Successor(v T) (T, bool) {
	r := u.nilPtr
	for x := u.root; x != u.nilPtr; {
		if v < x.v {
			r = x
			x = x.l
		} else {
			x = x.r
		}
	}
	return r.v, r != u.nilPtr
}

// Size [Tree.Size]
// Time: O(1)
func (u *RBTree[T]) Size() uint {
	return u.sz
}

func (u *RBTree[T]) inOrder(x nodePtr[T], f func(*T) bool) bool {
	if x == u.nilPtr {
		return true
	}
	return u.inOrder(x.l, f) && f(&x.v) && u.inOrder(x.r, f)
}

// InOrder [Tree.InOrder]. Recursive.
func (u *RBTree[T]) InOrder(f func(*T) bool) {
	u.inOrder(u.root, f)
}

// blackHeight of the subtree at x, -1 when some pair of paths disagree
// on their black count or a red node has a red child. Recursive.
func (u *RBTree[T]) blackHeight(x nodePtr[T]) int {
	if x == u.nilPtr {
		return 0
	}
	if x.red && (x.l.red || x.r.red) {
		return -1
	}
	l, r := u.blackHeight(x.l), u.blackHeight(x.r)
	if l < 0 || l != r {
		return -1
	}
	if !x.red {
		l++
	}
	return l
}

// Corrupt [Tree.Corrupt]. Recursive.
func (u *RBTree[T]) Corrupt() bool {
	return u.nilPtr.red || u.root.red || u.blackHeight(u.root) < 0
}
