package Trees

import (
	"cmp"

	RedBlack "github.com/sevagh/red-black-tree"
	"github.com/sevagh/red-black-tree/Queues"
	"golang.org/x/exp/constraints"
)

// SlabTree is a red-black tree whose nodes all live in an Arena and
// reference each other by handle instead of by pointer, sidestepping
// the cyclic parent/child ownership problem entirely: the Arena is the
// sole owner, handles carry no lifetime. T is the type of the values it
// holds, S is the unsigned type of the handles; pick S wide enough for
// the number of insertions.
//
// Slot 0 holds the shared nil sentinel: a single black node standing in
// wherever "no child" or "no parent" would otherwise be. Every real
// node's p, c[0] and c[1] always hold a valid handle, so the
// rebalancing code never branches on absence; it only compares handles
// against 0 and reads colors, and the sentinel being permanently black
// keeps the coloring rules intact at the leaves. The sentinel's key is
// never read, and its p field is a don't-care that rotations may
// scribble over.
//
// Repeated values are allowed; see Insert for the tie direction.
// This struct shouldn't be created directly using struct literal, use
// New.
type SlabTree[T cmp.Ordered, S constraints.Unsigned] struct {
	ar   Arena[T, S]
	root S
}

// New returns an empty SlabTree with room for hint values before the
// arena has to grow. The nil sentinel is allocated first, as slot 0,
// before any real node; its zero value is already black with all links
// looping back to slot 0. root starts at the sentinel. Cannot fail.
func New[T cmp.Ordered, S constraints.Unsigned](hint S) *SlabTree[T, S] {
	u := &SlabTree[T, S]{Arena[T, S]{make([]slot[T, S], 0, hint+1)}, 0}
	u.ar.alloc(slot[T, S]{})
	return u
}

// rotate hoists x's child opposite to dir into x's place and demotes x
// to that child's dir side; rotate(x, 0) is the textbook left rotation,
// rotate(x, 1) the right one. Only handles are reassigned, no slot is
// allocated or freed. When the hoisted child's dir subtree is empty
// this writes the sentinel's p field; that field is never read.
// Time: O(1); Space: O(1)
func (u *SlabTree[T, S]) rotate(x S, dir int) {
	y := u.ar.at(x).c[1-dir]
	b := u.ar.at(y).c[dir]
	u.ar.at(x).c[1-dir] = b
	u.ar.at(b).p = x
	u.ar.at(y).p = u.ar.at(x).p
	if p := u.ar.at(x).p; p == 0 {
		u.root = y
	} else if u.ar.at(p).c[0] == x {
		u.ar.at(p).c[0] = y
	} else {
		u.ar.at(p).c[1] = y
	}
	u.ar.at(y).c[dir] = x
	u.ar.at(x).p = y
}

// Insert v, returning the handle of the node now holding it. The handle
// stays valid (and keeps designating v) for the lifetime of the tree,
// through any amount of growth and rotation; read it back with Key.
//
// Tie rule: the descent goes left only when v < key, so a value equal
// to an existing one, or incomparable with it (a float NaN makes every
// comparison false), descends RIGHT. Repeats are therefore all kept,
// adjacent in order, and never reported as errors. Nothing is allocated
// or linked until the descent has fully decided the attachment point,
// so no partial insertion can ever be observed.
// Time: O(log n)
func (u *SlabTree[T, S]) Insert(v T) S {
	p, dir := S(0), 0
	for x := u.root; x != 0; {
		p = x
		if v < u.ar.at(x).k {
			dir = 0
		} else {
			dir = 1
		}
		x = u.ar.at(x).c[dir]
	}
	z := u.ar.alloc(slot[T, S]{k: v, red: true}) //p and c zero: all links at the sentinel.
	if p == 0 {
		u.root = z
	} else {
		u.ar.at(p).c[dir] = z
		u.ar.at(z).p = p
	}
	u.fixup(z)
	return z
}

// fixup restores the coloring rules after linking in the red node z.
// While z's parent is red (the sentinel and the root are black, so the
// grandparent exists and is black): a red uncle means blackness gets
// pushed down from the grandparent and the violation moves up two
// levels; a black uncle means at most two rotations fix it for good,
// the first one only needed to turn an inner grandchild into an outer
// one. The root is blackened unconditionally at the end.
func (u *SlabTree[T, S]) fixup(z S) {
	for u.ar.at(u.ar.at(z).p).red {
		p := u.ar.at(z).p
		pp := u.ar.at(p).p
		dir := 0 //the side of pp that the uncle is on.
		if u.ar.at(pp).c[0] == p {
			dir = 1
		}
		if y := u.ar.at(pp).c[dir]; u.ar.at(y).red {
			u.ar.at(p).red = false
			u.ar.at(y).red = false
			u.ar.at(pp).red = true
			z = pp
		} else {
			if z == u.ar.at(p).c[dir] { //z is the inner grandchild.
				z = p
				u.rotate(z, 1-dir)
				p = u.ar.at(z).p
				pp = u.ar.at(p).p
			}
			u.ar.at(p).red = false
			u.ar.at(pp).red = true
			u.rotate(pp, dir)
		}
	}
	u.ar.at(u.root).red = false
}

// search returns the handle of some node holding v, 0 if absent. Among
// repeats this is the topmost one.
func (u *SlabTree[T, S]) search(v T) S {
	for x := u.root; x != 0; {
		if n := u.ar.at(x); v == n.k {
			return x
		} else if v < n.k {
			x = n.c[0]
		} else {
			x = n.c[1]
		}
	}
	return 0
}

// Has [Tree.Has]
// Time: O(log n); Space: O(1)
func (u *SlabTree[T, S]) Has(v T) bool {
	return u.search(v) != 0
}

// minimum handle of the subtree at x. x must not be 0.
func (u *SlabTree[T, S]) minimum(x S) S {
	for l := u.ar.at(x).c[0]; l != 0; l = u.ar.at(x).c[0] {
		x = l
	}
	return x
}

// succ returns the in-order successor handle of x, 0 when x is the
// rightmost node. Walks child or parent handles only.
func (u *SlabTree[T, S]) succ(x S) S {
	if r := u.ar.at(x).c[1]; r != 0 {
		return u.minimum(r)
	}
	y := u.ar.at(x).p
	for y != 0 && x == u.ar.at(y).c[1] {
		x = y
		y = u.ar.at(y).p
	}
	return y
}

// Minimum returns the smallest element, nil if the tree is empty.
// Time: O(log n); Space: O(1)
func (u *SlabTree[T, S]) Minimum() *T {
	if u.root == 0 {
		return nil
	}
	return &u.ar.at(u.minimum(u.root)).k
}

// Maximum returns the greatest element, nil if the tree is empty.
// Time: O(log n); Space: O(1)
func (u *SlabTree[T, S]) Maximum() *T {
	if u.root == 0 {
		return nil
	}
	x := u.root
	for r := u.ar.at(x).c[1]; r != 0; r = u.ar.at(x).c[1] {
		x = r
	}
	return &u.ar.at(x).k
}

// Predecessor returns the greatest element less than v, nil if none.
// Time: O(log n); Space: O(1)
func (u *SlabTree[T, S]) Predecessor(v T) (p *T) {
	for x := u.root; x != 0; {
		if n := u.ar.at(x); v <= n.k {
			x = n.c[0]
		} else {
			p = &n.k
			x = n.c[1]
		}
	}
	return
}

// Successor returns the smallest element greater than v, nil if none.
// Time: O(log n); Space: O(1)
func (u *SlabTree[T, S]) Successor(v T) (p *T) {
	for x := u.root; x != 0; {
		if n := u.ar.at(x); v < n.k {
			p = &n.k
			x = n.c[0]
		} else {
			x = n.c[1]
		}
	}
	return
}

// InOrder traversal of the tree, calling f on each element until f
// returns false. Walks the parent handles, so it needs no stack and
// never writes to the tree. The tree must not be modified during the
// traversal.
func (u *SlabTree[T, S]) InOrder(f func(*T) bool) {
	if u.root == 0 {
		return
	}
	for x := u.minimum(u.root); x != 0; x = u.succ(x) {
		if !f(&u.ar.at(x).k) {
			return
		}
	}
}

// Key returns the value at handle i, as returned by Insert. Handles not
// issued by this tree's Arena yield an *InvalidHandleError. The handle
// never expires, but the returned pointer is only good until the next
// Insert: the arena may grow under it.
func (u *SlabTree[T, S]) Key(i S) (*T, error) {
	return u.ar.Get(i)
}

// Size of the tree: the number of insertions so far.
// Time: O(1)
func (u *SlabTree[T, S]) Size() S {
	return u.ar.Len() - 1
}

// blackHeight of the subtree at x: the number of black nodes on any
// path down to the sentinel, -1 when that count differs between two
// paths. Recursive.
func (u *SlabTree[T, S]) blackHeight(x S) int {
	if x == 0 {
		return 0
	}
	l, r := u.blackHeight(u.ar.at(x).c[0]), u.blackHeight(u.ar.at(x).c[1])
	if l < 0 || l != r {
		return -1
	}
	if !u.ar.at(x).red {
		l++
	}
	return l
}

// Corrupt [Tree.Corrupt]. Verifies the full set of structural
// properties: the sentinel is black with untouched child links, the
// root is black, no red node has a red child, every path to the
// sentinel crosses the same number of black nodes, every link holds a
// handle the arena issued, parent links mirror child links, and every
// allocated slot is reachable from the root through exactly one path.
// The red scan runs breadth-first over a Queues.ArrayQueue with a
// RedBlack.BitArray marking visited slots; the black-height check
// recurses.
func (u *SlabTree[T, S]) Corrupt() bool {
	if n := u.ar.at(0); n.red || n.c != [2]S{} {
		return true
	}
	if uint(u.root) >= uint(u.ar.Len()) || u.ar.at(u.root).red {
		return true
	}
	seen := RedBlack.New(int(u.ar.Len()))
	var cnt S
	q := Queues.MakeArrayQueue[S](16)
	if u.root != 0 {
		if u.ar.at(u.root).p != 0 {
			return true
		}
		q.Push(u.root)
	}
	for !q.Empty() {
		x, _ := q.Pop()
		if seen.Get(int(x)) {
			return true
		}
		seen.Up(int(x))
		cnt++
		n := u.ar.at(x)
		for _, ci := range n.c {
			if uint(ci) >= uint(u.ar.Len()) {
				return true
			}
			if n.red && u.ar.at(ci).red {
				return true
			}
			if ci != 0 {
				if u.ar.at(ci).p != x {
					return true
				}
				q.Push(ci)
			}
		}
	}
	return cnt != u.Size() || u.blackHeight(u.root) < 0
}
