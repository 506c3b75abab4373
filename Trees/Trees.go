package Trees

// Tree represents an ordered tree structure implemented using nodes.
// Receivers that have A bool as A second return value indicate whether
// the first return value is defined. For example, calling Minimum on an
// empty tree returns (x T, false bool); the value of x should not be
// used. Depending on specific implementations x might have A meaning,
// but it's advised that x not be used.
// Implementations may deviate from these signatures where their memory
// strategy offers something richer (SlabTree returns node handles from
// Insert and pointers from its lookups); the behaviors defined here
// still apply. Methods implemented recursively are noted, otherwise
// functions are implemented iteratively.
//
// Removal is intentionally absent from this family: the trees grow
// only, and rebalancing on removal is out of scope.
type Tree[T any] interface {
	//Insert v into the Tree. Values equal to or incomparable with an
	//existing value descend to its RIGHT, so repeated values are all
	//kept and end up adjacent in order. See the Insert implementations
	//for the exact tie rule.
	Insert(v T)
	//Has element v. Note that even though by utilizing the second
	//return value of other methods achieves the same functionality
	//as Has, it is encouraged to use Has for the purposes of checking
	//if some value exists, as Has should be optimized for this purpose
	//in implementations.
	Has(v T) bool
	//Minimum element of the tree.
	Minimum() (T, bool)
	//Maximum element of the tree.
	Maximum() (T, bool)
	//Predecessor returns the greatest element less than v.
	Predecessor(v T) (T, bool)
	//Successor returns the smallest element greater than v.
	Successor(v T) (T, bool)
	//Size of the tree.
	Size() uint
	//InOrder calls f on each element in the in-order traversal of the
	//tree, stopping early when f returns false. The tree must not be
	//modified during the traversal, otherwise it could corrupt the
	//tree. There will be no panic if such cases happen so design the
	//algorithm with this in mind.
	InOrder(f func(*T) bool)
	//Corrupt returns whether the tree has corrupt structures, when the
	//coloring or linking at some node violates the properties of that
	//specific implementation. This is to be distinguished from whether
	//the tree is balanced or not.
	Corrupt() bool
}
