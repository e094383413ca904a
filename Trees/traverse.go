package Trees

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/g-m-twostay/bintrees/Queues"
)

// LevelOrder calls f on every value breadth first, left before right within
// a level. No-op if u or f is nil. The queue is released before returning.
// Time: O(n); Space: O(w), w the widest level.
func (u *Node[T]) LevelOrder(f func(T)) {
	if u == nil || f == nil {
		return
	}
	q := Queues.MakeArrayQueue[*Node[T]](1)
	defer q.Release()
	for q.Push(u); !q.Empty(); {
		cur, _ := q.Pop()
		f(cur.v)
		if cur.l != nil {
			q.Push(cur.l)
		}
		if cur.r != nil {
			q.Push(cur.r)
		}
	}
}

// Preorder calls f on every value, node before its left then right subtree.
// No-op if u or f is nil. Iterative with an explicit stack.
func (u *Node[T]) Preorder(f func(T)) {
	if u == nil || f == nil {
		return
	}
	st := arraystack.New()
	for st.Push(u); !st.Empty(); {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		f(cur.v)
		if cur.r != nil {
			st.Push(cur.r)
		}
		if cur.l != nil {
			st.Push(cur.l)
		}
	}
}

// Inorder calls f on every value, left subtree before the node before the right
// subtree. No-op if u or f is nil. Iterative with an explicit stack.
func (u *Node[T]) Inorder(f func(T)) {
	if u == nil || f == nil {
		return
	}
	st := arraystack.New()
	for cur := u; cur != nil; cur = cur.l {
		st.Push(cur)
	}
	for !st.Empty() {
		top, _ := st.Pop()
		cur := top.(*Node[T])
		f(cur.v)
		for cur = cur.r; cur != nil; cur = cur.l {
			st.Push(cur)
		}
	}
}

func (u *Node[T]) postorder(f func(T)) {
	if u == nil {
		return
	}
	u.l.postorder(f)
	u.r.postorder(f)
	f(u.v)
}

// Postorder calls f on every value, both subtrees before the node.
// No-op if u or f is nil. Recursive.
func (u *Node[T]) Postorder(f func(T)) {
	if f != nil {
		u.postorder(f)
	}
}
