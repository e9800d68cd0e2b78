package Trees

import (
	"github.com/cockroachdb/errors"
	"github.com/emirpasic/gods/lists/doublylinkedlist"
	"github.com/g-m-twostay/go-bst/Queues"
)

// stack returns an empty explicit stack big enough for a depth first walk of u.
func (u *BSTree[T, S]) stack() []S {
	return make([]S, 0, u.height(u.root)+2)
}

// Walk [Tree.Walk]. Dispatches to InOrder, PreOrder, PostOrder or LevelOrder.
func (u *BSTree[T, S]) Walk(o Order, visit Visitor[T, S], extra any) error {
	switch o {
	case InOrder:
		return u.InOrder(visit, extra)
	case PreOrder:
		return u.PreOrder(visit, extra)
	case PostOrder:
		return u.PostOrder(visit, extra)
	case LevelOrder:
		return u.LevelOrder(visit, extra)
	}
	return errors.Wrapf(ErrInvalidArgument, "walk: order %d", o)
}

// InOrder traversal of the tree using an explicit stack. visit may be nil, in which case the tree is walked
// without visiting anything.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) InOrder(visit Visitor[T, S], extra any) error {
	if !u.valid() {
		return errors.Wrap(ErrInvalidArgument, "in-order: nil tree")
	}
	st := u.stack()
	for cur := u.root; ; {
		for ; cur != 0; cur = u.ns[cur].l {
			st = append(st, cur)
		}
		if len(st) == 0 {
			break
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if visit != nil && visit(u, Node[S]{cur}, extra) {
			break
		}
		cur = u.ns[cur].r
	}
	return nil
}

// PreOrder traversal of the tree, see InOrder.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) PreOrder(visit Visitor[T, S], extra any) error {
	if !u.valid() {
		return errors.Wrap(ErrInvalidArgument, "pre-order: nil tree")
	}
	st := u.stack()
	if u.root != 0 {
		st = append(st, u.root)
	}
	for len(st) > 0 {
		cur := st[len(st)-1]
		st = st[:len(st)-1]
		if visit != nil && visit(u, Node[S]{cur}, extra) {
			break
		}
		if r := u.ns[cur].r; r != 0 {
			st = append(st, r)
		}
		if l := u.ns[cur].l; l != 0 {
			st = append(st, l)
		}
	}
	return nil
}

// PostOrder traversal of the tree, see InOrder. A node is visited once its right subtree is done, which is
// when the last visited node is its right child or it has none.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) PostOrder(visit Visitor[T, S], extra any) error {
	if !u.valid() {
		return errors.Wrap(ErrInvalidArgument, "post-order: nil tree")
	}
	st := u.stack()
	var last S
	for cur := u.root; cur != 0 || len(st) > 0; {
		if cur != 0 {
			st = append(st, cur)
			cur = u.ns[cur].l
			continue
		}
		top := st[len(st)-1]
		if r := u.ns[top].r; r != 0 && r != last {
			cur = r
			continue
		}
		st = st[:len(st)-1]
		if visit != nil && visit(u, Node[S]{top}, extra) {
			break
		}
		last = top
	}
	return nil
}

// LevelOrder traversal of the tree: the root, then its children from left to right, then theirs, and so on.
// Time: O(n); Space: O(width)
func (u *BSTree[T, S]) LevelOrder(visit Visitor[T, S], extra any) error {
	if !u.valid() {
		return errors.Wrap(ErrInvalidArgument, "level-order: nil tree")
	}
	if u.root == 0 {
		return nil
	}
	q := Queues.MakeArrayQueue[S](uint(u.height(u.root)) + 1)
	for q.Push(u.root); !q.Empty(); {
		cur, _ := q.Pop()
		if visit != nil && visit(u, Node[S]{cur}, extra) {
			break
		}
		if l := u.ns[cur].l; l != 0 {
			q.Push(l)
		}
		if r := u.ns[cur].r; r != 0 {
			q.Push(r)
		}
	}
	return nil
}

// AppendTo appends the elements of u to dst in the given order.
func (u *BSTree[T, S]) AppendTo(dst []T, o Order) ([]T, error) {
	err := u.Walk(o, func(t *BSTree[T, S], n Node[S], _ any) bool {
		dst = append(dst, t.ns[n.i].v)
		return false
	}, nil)
	return dst, err
}

// Collect the elements of u in the given order into a new doubly linked list.
func (u *BSTree[T, S]) Collect(o Order) (*doublylinkedlist.List, error) {
	l := doublylinkedlist.New()
	if err := u.Walk(o, func(t *BSTree[T, S], n Node[S], _ any) bool {
		l.Add(t.ns[n.i].v)
		return false
	}, nil); err != nil {
		return nil, err
	}
	return l, nil
}
