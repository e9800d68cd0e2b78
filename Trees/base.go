package Trees

import (
	Go_BST "github.com/g-m-twostay/go-bst"
	"golang.org/x/exp/constraints"
)

// base is the node arena shared by the tree operations.
// ns[0] is the nil sentinel, a 0 size loopback with height -1. All indexes are based on ns.
// free is the beginning of the linked list of released indexes; node[T, S]::l represents next.
// alive has bit i up iff ns[i] is reachable from root.
type base[T any, S constraints.Unsigned] struct {
	ns         []node[T, S]
	root, free S
	size       S
	alive      Go_BST.BitArray
}

// maxHint bounds the memory reserved up front for a capacity hint.
const maxHint = 1 << 20

func makeBase[T any, S constraints.Unsigned](hint S) base[T, S] {
	ns := make([]node[T, S], 1, min(uint64(hint), maxHint)+1)
	ns[0].h = -1
	return base[T, S]{ns: ns, alive: Go_BST.New(cap(ns))}
}

// addFree index once.
func (u *base[T, S]) addFree(a S) {
	u.ns[a] = node[T, S]{l: u.free}
	u.free = a
	u.alive.Down(int(a))
}

// popFree index once. Returns 0 when there's no free index(when u.free==0).
func (u *base[T, S]) popFree() S {
	b := u.free
	u.free = u.ns[u.free].l
	return b
}

// alloc a detached leaf holding v. Released indexes are reused before the arena grows. Returns 0 when S can't
// address another node, in which case nothing was changed.
func (u *base[T, S]) alloc(v T) S {
	i := u.popFree()
	if i == 0 {
		if uint64(len(u.ns)-1) >= uint64(^S(0)) {
			return 0
		}
		i = S(len(u.ns))
		u.ns = append(u.ns, node[T, S]{})
		u.alive.Grow(len(u.ns))
	}
	u.ns[i] = node[T, S]{v: v}
	u.alive.Up(int(i))
	u.size++
	return i
}

// release a node that has already been unlinked.
func (u *base[T, S]) release(i S) {
	u.addFree(i)
	u.size--
}

// live reports whether i addresses a node in the tree.
func (u *base[T, S]) live(i S) bool {
	return i != 0 && uint64(i) < uint64(len(u.ns)) && u.alive.Get(int(i))
}

func (u *base[T, S]) height(i S) int {
	return u.ns[i].h
}

// fixHeights recalculates the cached heights from i up to the root. The walk stops early at the first node
// whose height didn't change, since no ancestor can change either.
func (u *base[T, S]) fixHeights(i S) {
	for i != 0 {
		n := &u.ns[i]
		h := max(u.ns[n.l].h, u.ns[n.r].h) + 1
		if h == n.h {
			return
		}
		n.h = h
		i = n.p
	}
}

// replace the link from n's parent to n with c, which may be 0. n's own links are left alone.
func (u *base[T, S]) replace(n, c S) {
	p := u.ns[n].p
	if c != 0 {
		u.ns[c].p = p
	}
	if p == 0 {
		u.root = c
	} else if u.ns[p].l == n {
		u.ns[p].l = c
	} else {
		u.ns[p].r = c
	}
}

// leftmost node of the subtree rooted at i, i!=0.
func (u *base[T, S]) leftmost(i S) S {
	for u.ns[i].l != 0 {
		i = u.ns[i].l
	}
	return i
}

func (u *base[T, S]) rightmost(i S) S {
	for u.ns[i].r != 0 {
		i = u.ns[i].r
	}
	return i
}

// reset the arena, keeping the memory of the underlying array. O(size) because stored elements are zeroed so
// they can be collected.
func (u *base[T, S]) reset() {
	clear(u.ns[1:])
	u.ns = u.ns[:1]
	u.alive.Reset()
	u.root, u.free, u.size = 0, 0, 0
}
