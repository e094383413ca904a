package Trees

import (
	"unsafe"

	"github.com/g-m-twostay/bintrees/Queues"
	"golang.org/x/exp/constraints"
)

// IsFull reports whether every node has either 0 or 2 children. false for nil.
// Recursive.
func (u *Node[T]) IsFull() bool {
	if u == nil {
		return false
	} else if u.l == nil && u.r == nil {
		return true
	}
	return u.l.IsFull() && u.r.IsFull()
}

// IsPerfect reports whether every internal node has two children and all leaves
// share the same depth. A single node is perfect; nil is not.
// Recursive. Time: O(n*D)
func (u *Node[T]) IsPerfect() bool {
	if u == nil {
		return false
	}
	lh, rh := u.l.Levels(), u.r.Levels()
	if lh != rh {
		return false
	}
	return lh == 0 || (u.l.IsPerfect() && u.r.IsPerfect())
}

// IsComplete reports whether every level is full except possibly the last,
// which is filled from the left. false for nil.
// Nodes are visited in level-order with absent children queued as nil; a
// present node dequeued after a nil one is a gap.
// Time: O(n); Space: O(n)
func (u *Node[T]) IsComplete() bool {
	if u == nil {
		return false
	}
	q := Queues.MakeArrayQueue[*Node[T]](1)
	defer q.Release()
	q.Push(u)
	for seenNil := false; !q.Empty(); {
		cur, _ := q.Pop()
		if cur == nil {
			seenNil = true
		} else if seenNil {
			return false
		} else {
			q.Push(cur.l)
			q.Push(cur.r)
		}
	}
	return true
}

// bounds of T.
func bounds[T constraints.Signed]() (lo, hi T) {
	hi = T(uint64(1)<<(unsafe.Sizeof(hi)*8-1) - 1)
	return -hi - 1, hi
}

// isBST checks that all values of the subtree at c lie in the inclusive range [lo,hi].
func isBST[T constraints.Signed](c *Node[T], lo, hi T) bool {
	if c == nil {
		return true
	} else if c.v < lo || c.v > hi {
		return false
	}
	minT, maxT := bounds[T]()
	if c.v == minT {
		if c.l != nil {
			return false
		}
	} else if !isBST(c.l, lo, c.v-1) {
		return false
	}
	if c.v == maxT {
		return c.r == nil
	}
	return isBST(c.r, c.v+1, hi)
}

// IsBST reports whether left subtree values are strictly less and right
// subtree values strictly greater than each node's value. false for nil.
// Recursive. Time: O(n)
func (u *Node[T]) IsBST() bool {
	if u == nil {
		return false
	}
	lo, hi := bounds[T]()
	return isBST(u, lo, hi)
}
