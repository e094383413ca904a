package Trees

import "golang.org/x/exp/constraints"

// SortedArrayToBalanced builds a tree from a slice sorted in ascending order
// without duplicates. Each subslice is rooted at its middle element, s[len(s)/2],
// with the halves on either side as its subtrees. No rotation happens afterwards.
// The slice isn't checked; use IsBST on the result if that's needed.
// Returns nil for an empty slice.
// Recursive. Time: O(n)
func SortedArrayToBalanced[T constraints.Signed](values []T) *Node[T] {
	var build func(*Node[T], []T) *Node[T]
	build = func(p *Node[T], s []T) *Node[T] {
		if len(s) == 0 {
			return nil
		}
		mid := len(s) >> 1
		n := NewNode(p, s[mid])
		n.l, n.r = build(n, s[:mid]), build(n, s[mid+1:])
		return n
	}
	return build(nil, values)
}
