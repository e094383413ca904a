package Trees

import (
	"fmt"
	"io"

	"golang.org/x/exp/constraints"
)

// Node is a binary tree node. A nil *Node is the absent tree; every method
// below accepts it and returns the documented base case.
// p is a back reference used only for upward walks. For every child c of n,
// c.p == n holds; all mutations in this package maintain it.
type Node[T constraints.Signed] struct {
	v       T
	p, l, r *Node[T]
}

// NewNode allocates a detached node holding v whose parent is p. It doesn't
// link the node into p; callers do that.
func NewNode[T constraints.Signed](p *Node[T], v T) *Node[T] {
	return &Node[T]{v: v, p: p}
}

// Value held by u. The zero value if u is nil.
func (u *Node[T]) Value() T {
	if u == nil {
		return *new(T)
	}
	return u.v
}

func (u *Node[T]) Parent() *Node[T] {
	if u == nil {
		return nil
	}
	return u.p
}

func (u *Node[T]) Left() *Node[T] {
	if u == nil {
		return nil
	}
	return u.l
}

func (u *Node[T]) Right() *Node[T] {
	if u == nil {
		return nil
	}
	return u.r
}

// IsLeaf reports whether u is present and has no children.
func (u *Node[T]) IsLeaf() bool {
	return u != nil && u.l == nil && u.r == nil
}

// IsRoot reports whether u is present and has no parent.
func (u *Node[T]) IsRoot() bool {
	return u != nil && u.p == nil
}

func (u *Node[T]) _Print(w io.Writer, d uint) {
	if u == nil {
		return
	}
	fmt.Fprintln(w, "node", u.v, "depth", d)
	u.l._Print(w, d+1)
	u.r._Print(w, d+1)
}

// Print writes every node of the subtree in pre-order together with its depth
// relative to u.
func (u *Node[T]) Print(w io.Writer) {
	u._Print(w, 0)
}

// replaceChild points the link of p that held old, or the root slot if p is
// nil, to n. n.p is set to p.
func replaceChild[T constraints.Signed](p, old, n *Node[T]) {
	if n != nil {
		n.p = p
	}
	if p == nil {
		return
	}
	if p.l == old {
		p.l = n
	} else {
		p.r = n
	}
}

// rotateLeft performs a left rotation on n and returns the new subtree root.
// n.r must be present. Parent links of all moved nodes are updated.
// Time: O(1); Space: O(1)
func rotateLeft[T constraints.Signed](n *Node[T]) *Node[T] {
	rc := n.r
	n.r = rc.l
	if rc.l != nil {
		rc.l.p = n
	}
	replaceChild(n.p, n, rc)
	rc.l = n
	n.p = rc
	return rc
}

// rotateRight performs a right rotation on n and returns the new subtree root.
// n.l must be present. Parent links of all moved nodes are updated.
// Time: O(1); Space: O(1)
func rotateRight[T constraints.Signed](n *Node[T]) *Node[T] {
	lc := n.l
	n.l = lc.r
	if lc.r != nil {
		lc.r.p = n
	}
	replaceChild(n.p, n, lc)
	lc.r = n
	n.p = lc
	return lc
}

// RotateLeft rotates the subtree at u to the left and returns its new root.
// If u or its right child is nil, u is returned unchanged.
func (u *Node[T]) RotateLeft() *Node[T] {
	if u == nil || u.r == nil {
		return u
	}
	return rotateLeft(u)
}

// RotateRight rotates the subtree at u to the right and returns its new root.
// If u or its left child is nil, u is returned unchanged.
func (u *Node[T]) RotateRight() *Node[T] {
	if u == nil || u.l == nil {
		return u
	}
	return rotateRight(u)
}
