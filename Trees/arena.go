package Trees

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// A slot in the Arena.
// The zero value is a black node whose key is the zero value of T and
// whose links all designate slot 0.
type slot[T any, S constraints.Unsigned] struct {
	k   T
	p   S    //parent
	c   [2]S //children; c[0] is the left child, c[1] the right.
	red bool
}

// Arena owns the storage of every node in a SlabTree. A handle of type
// S is a plain index into ns: once alloc issues it, it designates the
// same slot until the whole arena is dropped. The backing array may
// grow, but slots are never moved to a different index, reused, or
// compacted; there is no free operation. Handles are therefore plain
// data: copy and compare them freely, no aliasing to reason about.
// Slot 0 is reserved by SlabTree for the shared nil sentinel.
type Arena[T any, S constraints.Unsigned] struct {
	ns []slot[T, S]
}

// alloc stores n and returns its handle. Amortized O(1). Growth is
// success-or-abort: exhaustion isn't surfaced as an error.
func (u *Arena[T, S]) alloc(n slot[T, S]) S {
	u.ns = append(u.ns, n)
	return S(len(u.ns) - 1)
}

// at is unchecked field access for handle i. Callers only ever pass
// handles this arena issued itself.
func (u *Arena[T, S]) at(i S) *slot[T, S] {
	return &u.ns[i]
}

// Len is the number of slots ever allocated, nil sentinel included.
func (u *Arena[T, S]) Len() S {
	return S(len(u.ns))
}

// Get returns the key stored at handle i. A handle this arena never
// issued yields an *InvalidHandleError, as does handle 0: that slot is
// the nil sentinel, whose key bytes carry no meaning.
func (u *Arena[T, S]) Get(i S) (*T, error) {
	if i == 0 || uint(i) >= uint(len(u.ns)) {
		return nil, &InvalidHandleError{uint(i), uint(len(u.ns))}
	}
	return &u.ns[i].k, nil
}

// InvalidHandleError reports a handle presented to an Arena that didn't
// issue it, or whose slot holds no readable key.
type InvalidHandleError struct {
	Handle, Len uint
}

func (e *InvalidHandleError) Error() string {
	return fmt.Sprintf("invalid handle %d: Arena has %d slots", e.Handle, e.Len)
}
