package Trees

import (
	"github.com/cockroachdb/errors"
)

// Verify walks the whole tree and returns an assertion failure describing the first broken invariant: the
// in-order sequence must be monotone in the current orientation, every child must link back to its parent,
// every cached height must be 1+max(height(l), height(r)) and exactly the live nodes must be reachable.
// Time: O(n); Space: O(D)
func (u *BSTree[T, S]) Verify() error {
	if !u.valid() {
		return errors.Wrap(ErrInvalidArgument, "verify: nil tree")
	}
	if z := u.ns[0]; z.h != -1 || z.l != 0 || z.r != 0 || z.p != 0 {
		return errors.AssertionFailedf("nil sentinel was written: %+v", z)
	}
	if u.root != 0 && u.ns[u.root].p != 0 {
		return errors.AssertionFailedf("root %d has parent %d", u.root, u.ns[u.root].p)
	}
	var count, prev S
	st := u.stack()
	for cur := u.root; ; {
		for ; cur != 0; cur = u.ns[cur].l {
			if !u.live(cur) {
				return errors.AssertionFailedf("released node %d is reachable", cur)
			}
			if uint64(len(st)) >= uint64(u.size) {
				return errors.AssertionFailedf("path to node %d is longer than the size %d", cur, u.size)
			}
			st = append(st, cur)
		}
		if len(st) == 0 {
			break
		}
		cur, st = st[len(st)-1], st[:len(st)-1]
		if count++; count > u.size {
			return errors.AssertionFailedf("more than %d nodes are reachable", u.size)
		}
		n := &u.ns[cur]
		if n.l != 0 && u.ns[n.l].p != cur {
			return errors.AssertionFailedf("left child %d of %d has parent %d", n.l, cur, u.ns[n.l].p)
		}
		if n.r != 0 && u.ns[n.r].p != cur {
			return errors.AssertionFailedf("right child %d of %d has parent %d", n.r, cur, u.ns[n.r].p)
		}
		if h := max(u.ns[n.l].h, u.ns[n.r].h) + 1; n.h != h {
			return errors.AssertionFailedf("node %d has height %d, want %d", cur, n.h, h)
		}
		if prev != 0 && u.compare(u.ns[prev].v, n.v) > 0 {
			return errors.AssertionFailedf("node %d orders after its in-order successor %d", prev, cur)
		}
		prev = cur
		cur = n.r
	}
	if count != u.size {
		return errors.AssertionFailedf("%d nodes are reachable, want %d", count, u.size)
	}
	if c := u.alive.Count(); uint64(c) != uint64(u.size) {
		return errors.AssertionFailedf("%d nodes are live, want %d", c, u.size)
	}
	return nil
}

// Corrupt [Tree.Corrupt]
func (u *BSTree[T, S]) Corrupt() bool {
	return u.Verify() != nil
}
