package Trees

import "golang.org/x/exp/constraints"

// A node in the BSTree arena.
// The zero value is the nil sentinel stored at index 0, apart from h which is -1 there.
// p is a back reference only; l and r own their subtrees.
type node[T any, S constraints.Unsigned] struct {
	v       T
	p, l, r S
	h       int // 1+max(h(l), h(r)); a leaf has 0.
}

// Node is a handle to a node of a BSTree. The zero value is the absent node.
// A handle is only meaningful for the tree that returned it, and only until that node is removed.
type Node[S constraints.Unsigned] struct {
	i S
}

// IsNil reports whether n is the absent node.
func (n Node[S]) IsNil() bool {
	return n.i == 0
}
