package Trees

import (
	"github.com/cornelk/hashmap"
	"golang.org/x/exp/constraints"
)

// BSTInsert inserts v into the binary search tree *tree and returns the new
// node. If *tree is nil, the new node becomes the root. Returns nil if tree is
// nil or v is already in the tree.
// Time: O(D); Space: O(1)
func BSTInsert[T constraints.Signed](tree **Node[T], v T) *Node[T] {
	if tree == nil {
		return nil
	}
	var p *Node[T]
	curPtr := tree
	for cur := *curPtr; cur != nil; cur = *curPtr {
		if v < cur.v {
			curPtr = &cur.l
		} else if v == cur.v {
			return nil
		} else {
			curPtr = &cur.r
		}
		p = cur
	}
	*curPtr = NewNode(p, v)
	return *curPtr
}

// ArrayToBST builds a binary search tree by inserting the values in order,
// skipping any value that appeared earlier. Returns nil for an empty slice.
// Time: O(n*D)
func ArrayToBST[T constraints.Signed](values []T) *Node[T] {
	var root *Node[T]
	seen := hashmap.New[T, struct{}]()
	for _, v := range values {
		if !seen.Insert(v, struct{}{}) {
			continue
		}
		if BSTInsert(&root, v) == nil {
			return nil
		}
	}
	return root
}

// BSTSearch returns the node of the binary search tree u holding v, or nil.
// Time: O(D); Space: O(1)
func (u *Node[T]) BSTSearch(v T) *Node[T] {
	for cur := u; cur != nil; {
		if v < cur.v {
			cur = cur.l
		} else if v == cur.v {
			return cur
		} else {
			cur = cur.r
		}
	}
	return nil
}

// BSTRemove removes v from the binary search tree root and returns the root of
// the resulting tree, which is nil once the last node is removed. A node with
// two children takes the value of its in-order successor, and the successor's
// node is unlinked instead. root is returned unchanged if v isn't present.
// Time: O(D); Space: O(1)
func BSTRemove[T constraints.Signed](root *Node[T], v T) *Node[T] {
	n := root.BSTSearch(v)
	if n == nil {
		return root
	}
	if n.l != nil && n.r != nil {
		s := n.r
		for s.l != nil {
			s = s.l
		}
		n.v = s.v
		n = s
	}
	c := n.l
	if c == nil {
		c = n.r
	}
	replaceChild(n.p, n, c)
	if n == root {
		root = c
	}
	n.p, n.l, n.r = nil, nil, nil
	return root
}
