package Trees

import (
	"cmp"

	"github.com/emirpasic/gods/utils"
	"golang.org/x/exp/constraints"
)

// Comparator is a three-way comparison over elements. It returns a negative number when a orders before b,
// zero when they are equivalent and a positive number when a orders after b. Only the sign is used.
type Comparator[T any] func(a, b T) int

// Ordered is the natural Comparator of an ordered type.
func Ordered[T cmp.Ordered]() Comparator[T] {
	return cmp.Compare[T]
}

// FromGods adapts one of the untyped comparators of github.com/emirpasic/gods/utils, for example
// utils.IntComparator or utils.StringComparator.
func FromGods[T any](c utils.Comparator) Comparator[T] {
	if c == nil {
		return nil
	}
	return func(a, b T) int {
		return c(a, b)
	}
}

// Visitor is called once for every node visited by a traversal. extra is whatever was handed to the traversal.
// Returning true stops the traversal; no further node is visited on any path.
// The tree must not be modified by the visitor.
type Visitor[T any, S constraints.Unsigned] func(t *BSTree[T, S], n Node[S], extra any) bool

// Order of a depth first or breadth first traversal.
type Order byte

const (
	InOrder    Order = iota // left, node, right
	PreOrder                // node, left, right
	PostOrder               // left, right, node
	LevelOrder              // by depth, left to right
)

func (o Order) String() string {
	switch o {
	case InOrder:
		return "in"
	case PreOrder:
		return "pre"
	case PostOrder:
		return "post"
	case LevelOrder:
		return "level"
	}
	return "unknown"
}

// ParseOrder is the inverse of Order.String.
func ParseOrder(s string) (Order, bool) {
	for o := InOrder; o <= LevelOrder; o++ {
		if o.String() == s {
			return o, true
		}
	}
	return 0, false
}

// Tree is the handle based surface of a binary search tree. Nodes are addressed with Node handles that stay
// valid until the node is removed. Receivers that return an error report it as one of ErrInvalidArgument,
// ErrEmpty, ErrAllocation or ErrNotFound, test with errors.Is. A failed call never modifies the tree.
// Methods are implemented iteratively, so adversarial insertion orders don't grow the call stack.
type Tree[T any, S constraints.Unsigned] interface {
	//Insert v as a new leaf and return its node. Equivalent elements are allowed.
	Insert(v T) (Node[S], error)
	//Remove n from the tree and return the element it held.
	Remove(n Node[S]) (T, error)
	//Find a node holding an element equivalent to v.
	Find(v T) (Node[S], error)
	//Minimum node of the tree according to the current orientation.
	Minimum() (Node[S], error)
	//Maximum node of the tree according to the current orientation.
	Maximum() (Node[S], error)
	//Root node of a non-empty tree.
	Root() (Node[S], error)
	//Height of the subtree rooted at n, -1 for the absent node.
	Height(n Node[S]) int
	//Size of the tree.
	Size() S
	IsEmpty() bool
	//Walk the tree in the given order. See Visitor.
	Walk(o Order, visit Visitor[T, S], extra any) error
	//Mirror swaps the children of every node.
	Mirror() error
	//Corrupt returns whether some node violates the ordering, linkage or height invariants.
	Corrupt() bool
}
