package Trees

import "golang.org/x/exp/constraints"

// Sibling is the other child of u's parent. nil if u or its parent is nil.
func (u *Node[T]) Sibling() *Node[T] {
	if u == nil || u.p == nil {
		return nil
	} else if u.p.l == u {
		return u.p.r
	}
	return u.p.l
}

// Uncle is the sibling of u's parent. nil if u, its parent or its grandparent is nil.
func (u *Node[T]) Uncle() *Node[T] {
	if u == nil || u.p == nil {
		return nil
	}
	return u.p.Sibling()
}

// IsAncestorOf reports whether u is reached by walking the parent chain of n,
// n itself included.
// Time: O(D); Space: O(1)
func (u *Node[T]) IsAncestorOf(n *Node[T]) bool {
	if u == nil {
		return false
	}
	for ; n != nil; n = n.p {
		if n == u {
			return true
		}
	}
	return false
}

// LowestCommonAncestor of a and b: the first node on a's parent chain, a
// included, that is an ancestor of b. nil if either is nil or they belong to
// different trees.
// Time: O(D^2); Space: O(1)
func LowestCommonAncestor[T constraints.Signed](a, b *Node[T]) *Node[T] {
	if a == nil || b == nil {
		return nil
	}
	for cur := a; cur != nil; cur = cur.p {
		if cur.IsAncestorOf(b) {
			return cur
		}
	}
	return nil
}
