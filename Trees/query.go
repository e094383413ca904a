package Trees

// Height is the number of edges on the longest downward path from u. Both a
// nil tree and a leaf have height 0.
// Recursive. Time: O(n)
func (u *Node[T]) Height() uint {
	if u == nil {
		return 0
	}
	return u.Levels() - 1
}

// Levels is the number of nodes on the longest downward path from u: 0 for a
// nil tree, 1 for a leaf. BalanceFactor and IsPerfect compare subtrees by it.
// Recursive. Time: O(n)
func (u *Node[T]) Levels() uint {
	if u == nil {
		return 0
	}
	return 1 + max(u.l.Levels(), u.r.Levels())
}

// Depth is the number of parent links from u up to its root. 0 for nil.
// Time: O(D); Space: O(1)
func (u *Node[T]) Depth() (d uint) {
	if u == nil {
		return 0
	}
	for cur := u.p; cur != nil; cur = cur.p {
		d++
	}
	return
}

// BalanceFactor is Levels(left)-Levels(right). Positive means left heavy,
// negative right heavy. 0 for nil and for leaves.
func (u *Node[T]) BalanceFactor() int {
	if u == nil {
		return 0
	}
	return int(u.l.Levels()) - int(u.r.Levels())
}

// Size is the number of nodes in the tree.
// Recursive. Time: O(n)
func (u *Node[T]) Size() uint {
	if u == nil {
		return 0
	}
	return 1 + u.l.Size() + u.r.Size()
}

// Leaves counts the nodes without children.
// Recursive. Time: O(n)
func (u *Node[T]) Leaves() uint {
	if u == nil {
		return 0
	} else if u.l == nil && u.r == nil {
		return 1
	}
	return u.l.Leaves() + u.r.Leaves()
}

// NodesWithChildren counts the nodes having at least one child.
// Recursive. Time: O(n)
func (u *Node[T]) NodesWithChildren() uint {
	if u == nil || (u.l == nil && u.r == nil) {
		return 0
	}
	return 1 + u.l.NodesWithChildren() + u.r.NodesWithChildren()
}
