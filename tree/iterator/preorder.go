package iterator

import (
	"go.lepak.sg/adt/tree"
	"golang.org/x/exp/constraints"
)

var _ Iterator[int] = (*PreOrder[int])(nil)

// PreOrder iterates over a binary tree visiting each node
// before its left subtree, and the left subtree before the right.
type PreOrder[T constraints.Ordered] struct {
	at    *tree.Node[T]
	stack []*tree.Node[T]
}

// NewPreOrder returns a new PreOrder iterator over the tree rooted at root.
// heightHint has the same meaning as in NewInOrder.
func NewPreOrder[T constraints.Ordered](root *tree.Node[T], heightHint int) *PreOrder[T] {
	i := &PreOrder[T]{
		stack: make([]*tree.Node[T], 0, heightHint+1),
	}
	if root != nil {
		i.stack = append(i.stack, root)
	}
	return i
}

// Next returns true if there is a next key to yield with Item.
func (i *PreOrder[T]) Next() bool {
	if i == nil {
		return false
	}

	if len(i.stack) == 0 {
		i.at = nil
		return false
	}

	i.at = i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]

	// right goes on first so left comes off first
	if i.at.Right != nil {
		i.stack = append(i.stack, i.at.Right)
	}
	if i.at.Left != nil {
		i.stack = append(i.stack, i.at.Left)
	}

	return true
}

// Item returns the current key of the iterator.
func (i *PreOrder[T]) Item() T {
	return i.at.Key
}
