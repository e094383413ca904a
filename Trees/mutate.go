package Trees

// InsertLeft creates a node holding v as the left child of u. A previous left
// subtree of u becomes the left subtree of the new node. Returns nil if u is nil.
// Time: O(1); Space: O(1)
func (u *Node[T]) InsertLeft(v T) *Node[T] {
	if u == nil {
		return nil
	}
	n := NewNode(u, v)
	if n.l = u.l; n.l != nil {
		n.l.p = n
	}
	u.l = n
	return n
}

// InsertRight creates a node holding v as the right child of u. A previous right
// subtree of u becomes the right subtree of the new node. Returns nil if u is nil.
// Time: O(1); Space: O(1)
func (u *Node[T]) InsertRight(v T) *Node[T] {
	if u == nil {
		return nil
	}
	n := NewNode(u, v)
	if n.r = u.r; n.r != nil {
		n.r.p = n
	}
	u.r = n
	return n
}
