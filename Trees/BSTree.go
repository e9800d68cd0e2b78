package Trees

import (
	"cmp"
	"math/bits"
	"reflect"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"
)

// BSTree is a plain binary search tree ordered by a Comparator. It doesn't balance itself, so its height D
// depends exclusively on the order of insertions and removals: D is O(log n) for random orders and O(n) for
// sorted ones. Equivalent elements are allowed; an element equivalent to a node's goes to its left subtree.
// T is the type of the elements, S is the unsigned type used to address nodes. The tree holds at most
// max(S) nodes, so S should be a wide upperbound for the size of the tree.
// Nodes live in an arena indexed by S. Every node caches the height of its subtree, which is recalculated
// along the path to the root after each insertion or removal.
// A BSTree is owned by one goroutine at a time; guard it with a mutex if it's shared.
type BSTree[T any, S constraints.Unsigned] struct {
	base[T, S]
	cmp      Comparator[T]
	mirrored bool
}

var _ Tree[int, uint] = (*BSTree[int, uint])(nil)

// New returns an empty tree ordered by c. hint is the number of nodes to reserve memory for.
func New[T any, S constraints.Unsigned](c Comparator[T], hint S) (*BSTree[T, S], error) {
	if c == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "new: nil comparator")
	}
	return &BSTree[T, S]{base: makeBase[T, S](hint), cmp: c}, nil
}

// NewOrdered returns an empty tree of an ordered type, ordered ascending.
func NewOrdered[T cmp.Ordered, S constraints.Unsigned](hint S) *BSTree[T, S] {
	u, _ := New[T, S](Ordered[T](), hint)
	return u
}

// From builds a tree of minimal height out of sorted, which must be strictly ascending according to c. This is
// faster than repeatedly calling Insert. The i-th element of sorted is addressed by the i+1-th index. Returns an
// error marked as ErrInvalidArgument, holding an InvalidSliceError, if sorted isn't strictly ascending.
// Time: O(n).
func From[T any, S constraints.Unsigned](c Comparator[T], sorted []T) (*BSTree[T, S], error) {
	if c == nil {
		return nil, errors.Wrap(ErrInvalidArgument, "from: nil comparator")
	}
	if uint64(len(sorted)) > uint64(^S(0)) {
		return nil, errors.Wrapf(ErrAllocation, "from: %d elements", len(sorted))
	}
	for i := range sorted {
		if isNil(sorted[i]) {
			return nil, errors.Wrapf(ErrInvalidArgument, "from: nil element at %d", i)
		}
		if i > 0 && c(sorted[i-1], sorted[i]) >= 0 {
			return nil, errors.Wrap(invalidSlice(i, sorted[i-1], sorted[i]), "from")
		}
	}
	u := &BSTree[T, S]{base: makeBase[T, S](S(len(sorted))), cmp: c}
	if len(sorted) == 0 {
		return u, nil
	}
	u.ns = append(u.ns, make([]node[T, S], len(sorted))...)
	u.alive.Grow(len(u.ns))
	u.size = S(len(sorted))
	type span struct{ lo, hi, p S } // [lo, hi] are indexes, p is the parent of the span's root.
	st := make([]span, 0, bits.Len64(uint64(len(sorted)))+1)
	for st = append(st, span{1, S(len(sorted)), 0}); len(st) > 0; {
		top := st[len(st)-1]
		st = st[:len(st)-1]
		mid := top.lo + (top.hi-top.lo)/2
		n := &u.ns[mid]
		n.v, n.p, n.h = sorted[mid-1], top.p, bits.Len64(uint64(top.hi-top.lo)+1)-1
		u.alive.Up(int(mid))
		if top.p == 0 {
			u.root = mid
		} else if mid < top.p {
			u.ns[top.p].l = mid
		} else {
			u.ns[top.p].r = mid
		}
		if top.lo < mid {
			st = append(st, span{top.lo, mid - 1, mid})
		}
		if mid < top.hi {
			st = append(st, span{mid + 1, top.hi, mid})
		}
	}
	return u, nil
}

// isNil reports whether v is a nil pointer, interface, map, slice, channel or function.
func isNil[T any](v T) bool {
	switch rv := reflect.ValueOf(&v).Elem(); rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}

// valid reports whether u can be operated on; a nil or destroyed tree can't.
func (u *BSTree[T, S]) valid() bool {
	return u != nil && u.cmp != nil
}

// compare a with b in the current orientation: after Mirror, larger elements order first.
func (u *BSTree[T, S]) compare(a, b T) int {
	c := u.cmp(a, b)
	if u.mirrored {
		if c < 0 {
			return 1
		} else if c > 0 {
			return -1
		}
	}
	return c
}

// IsEmpty is true for a tree without nodes, including a nil or destroyed one.
func (u *BSTree[T, S]) IsEmpty() bool {
	return !u.valid() || u.root == 0
}

// Size returns the number of nodes.
// Time: O(1)
func (u *BSTree[T, S]) Size() S {
	if !u.valid() {
		return 0
	}
	return u.size
}

// Height of the subtree rooted at n. The absent node, or one that isn't in the tree, has height -1.
// Time: O(1)
func (u *BSTree[T, S]) Height(n Node[S]) int {
	if !u.valid() || !u.live(n.i) {
		return -1
	}
	return u.height(n.i)
}

// TreeHeight is the height of the root, -1 for an empty tree.
func (u *BSTree[T, S]) TreeHeight() int {
	if !u.valid() {
		return -1
	}
	return u.height(u.root)
}

// Insert [Tree.Insert]. The new node is linked below the last node visited by a search for v, at the right if
// v orders after that node's element and at the left otherwise. Heights are then recalculated up to the root.
// When S can't address another node ErrAllocation is returned and the tree is unchanged.
// Time: O(D)
func (u *BSTree[T, S]) Insert(v T) (Node[S], error) {
	if !u.valid() {
		return Node[S]{}, errors.Wrap(ErrInvalidArgument, "insert: nil tree")
	}
	if isNil(v) {
		return Node[S]{}, errors.Wrap(ErrInvalidArgument, "insert: nil element")
	}
	var p S
	right := false
	for cur := u.root; cur != 0; {
		p = cur
		if right = u.compare(v, u.ns[cur].v) > 0; right {
			cur = u.ns[cur].r
		} else {
			cur = u.ns[cur].l
		}
	}
	i := u.alloc(v)
	if i == 0 {
		return Node[S]{}, errors.Wrapf(ErrAllocation, "insert: %d nodes", u.size)
	}
	u.ns[i].p = p
	if p == 0 {
		u.root = i
	} else if right {
		u.ns[p].r = i
	} else {
		u.ns[p].l = i
	}
	u.fixHeights(p)
	return Node[S]{i}, nil
}

// Remove [Tree.Remove]. A node with two children takes the element of its in-order successor, the leftmost
// node of its right subtree, and the successor is unlinked instead: n stays valid and the successor's handle
// is released. A node with one child is replaced by it; a leaf is simply unlinked. Heights are recalculated
// from the unlinked node's parent up to the root.
// Removing a node that belongs to another tree is undefined; released handles are reported.
// Time: O(D)
func (u *BSTree[T, S]) Remove(n Node[S]) (T, error) {
	if !u.valid() {
		return *new(T), errors.Wrap(ErrInvalidArgument, "remove: nil tree")
	}
	if !u.live(n.i) {
		return *new(T), errors.Wrapf(ErrInvalidArgument, "remove: node %d isn't in the tree", n.i)
	}
	i := n.i
	v := u.ns[i].v
	if cur := &u.ns[i]; cur.l != 0 && cur.r != 0 {
		s := u.leftmost(cur.r)
		cur.v = u.ns[s].v
		i = s
	}
	c := u.ns[i].l
	if c == 0 {
		c = u.ns[i].r
	}
	p := u.ns[i].p
	u.replace(i, c)
	u.release(i)
	u.fixHeights(p)
	return v, nil
}

// Find [Tree.Find]. Searching stops at the first node whose element is equivalent to v, descending left when v
// orders before a node's element and right when it orders after. Returns ErrNotFound if there's no such node.
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Find(v T) (Node[S], error) {
	if !u.valid() {
		return Node[S]{}, errors.Wrap(ErrInvalidArgument, "find: nil tree")
	}
	if isNil(v) {
		return Node[S]{}, errors.Wrap(ErrInvalidArgument, "find: nil element")
	}
	for cur := u.root; cur != 0; {
		if c := u.compare(v, u.ns[cur].v); c < 0 {
			cur = u.ns[cur].l
		} else if c > 0 {
			cur = u.ns[cur].r
		} else {
			return Node[S]{cur}, nil
		}
	}
	return Node[S]{}, ErrNotFound
}

// Has an element equivalent to v.
func (u *BSTree[T, S]) Has(v T) bool {
	_, err := u.Find(v)
	return err == nil
}

// Minimum [Tree.Minimum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Minimum() (Node[S], error) {
	if u.IsEmpty() {
		return Node[S]{}, errors.Wrap(ErrEmpty, "minimum")
	}
	return Node[S]{u.leftmost(u.root)}, nil
}

// Maximum [Tree.Maximum]
// Time: O(D); Space: O(1)
func (u *BSTree[T, S]) Maximum() (Node[S], error) {
	if u.IsEmpty() {
		return Node[S]{}, errors.Wrap(ErrEmpty, "maximum")
	}
	return Node[S]{u.rightmost(u.root)}, nil
}

// Root [Tree.Root]. Returns ErrEmpty for an empty tree.
func (u *BSTree[T, S]) Root() (Node[S], error) {
	if !u.valid() {
		return Node[S]{}, errors.Wrap(ErrInvalidArgument, "root: nil tree")
	}
	if u.root == 0 {
		return Node[S]{}, errors.Wrap(ErrEmpty, "root")
	}
	return Node[S]{u.root}, nil
}

// link returns the node at one of n's links, which is the absent node if there's nothing linked there.
func (u *BSTree[T, S]) link(n Node[S], op string, f func(*node[T, S]) S) (Node[S], error) {
	if !u.valid() || !u.live(n.i) {
		return Node[S]{}, errors.Wrapf(ErrInvalidArgument, "%s: node %d isn't in the tree", op, n.i)
	}
	return Node[S]{f(&u.ns[n.i])}, nil
}

// Left child of n.
func (u *BSTree[T, S]) Left(n Node[S]) (Node[S], error) {
	return u.link(n, "left", func(x *node[T, S]) S { return x.l })
}

// Right child of n.
func (u *BSTree[T, S]) Right(n Node[S]) (Node[S], error) {
	return u.link(n, "right", func(x *node[T, S]) S { return x.r })
}

// Parent of n, absent for the root.
func (u *BSTree[T, S]) Parent(n Node[S]) (Node[S], error) {
	return u.link(n, "parent", func(x *node[T, S]) S { return x.p })
}

// Element held by n.
func (u *BSTree[T, S]) Element(n Node[S]) (T, error) {
	if !u.valid() || !u.live(n.i) {
		return *new(T), errors.Wrapf(ErrInvalidArgument, "element: node %d isn't in the tree", n.i)
	}
	return u.ns[n.i].v, nil
}

// Mirror [Tree.Mirror]. Afterwards the in-order sequence is reversed. Parent links and heights are unaffected.
// The tree remembers its orientation, so Insert and Find keep working on the mirrored order.
// Time: O(n)
func (u *BSTree[T, S]) Mirror() error {
	if !u.valid() {
		return errors.Wrap(ErrInvalidArgument, "mirror: nil tree")
	}
	if u.root != 0 {
		st := make([]S, 0, u.height(u.root)+1)
		for st = append(st, u.root); len(st) > 0; {
			n := &u.ns[st[len(st)-1]]
			st = st[:len(st)-1]
			n.l, n.r = n.r, n.l
			if n.l != 0 {
				st = append(st, n.l)
			}
			if n.r != 0 {
				st = append(st, n.r)
			}
		}
	}
	u.mirrored = !u.mirrored
	return nil
}

// Mirrored reports whether the tree is in the orientation produced by an odd number of calls to Mirror.
func (u *BSTree[T, S]) Mirrored() bool {
	return u.valid() && u.mirrored
}

// Clear removes every node, keeping the memory of the arena. Every handle is released.
// Time: O(n)
func (u *BSTree[T, S]) Clear() {
	if u.valid() {
		u.reset()
	}
}

// Destroy releases every node and the arena. The tree can't be used afterwards: IsEmpty reports true and
// every other operation reports ErrInvalidArgument.
func (u *BSTree[T, S]) Destroy() error {
	if !u.valid() {
		return errors.Wrap(ErrInvalidArgument, "destroy: nil tree")
	}
	u.reset()
	u.base = base[T, S]{}
	u.cmp = nil
	return nil
}
