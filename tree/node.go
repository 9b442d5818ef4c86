// Package tree holds the binary tree node shared by the tree
// implementations in this module, along with ordering helpers.
package tree

import (
	"golang.org/x/exp/constraints"
)

// Node is a vertex of a binary tree.
// Each child is owned by exactly one parent: there are no parent
// pointers, and a subtree must never be linked under two nodes at once.
// Node does not check ordering invariants, that is the job of the tree
// that owns it.
type Node[T constraints.Ordered] struct {
	Key         T
	Left, Right *Node[T]
}

// NodeOf returns a new leaf holding k.
func NodeOf[T constraints.Ordered](k T) *Node[T] {
	return &Node[T]{
		Key: k,
	}
}

// SetKey replaces the key held by n.
func (n *Node[T]) SetKey(k T) {
	n.Key = k
}

// SetLeft makes c the left child of n and returns the subtree
// that was there before. The caller now owns the old subtree.
func (n *Node[T]) SetLeft(c *Node[T]) (old *Node[T]) {
	old, n.Left = n.Left, c
	return
}

// SetRight makes c the right child of n and returns the subtree
// that was there before. The caller now owns the old subtree.
func (n *Node[T]) SetRight(c *Node[T]) (old *Node[T]) {
	old, n.Right = n.Right, c
	return
}

// IsLeaf returns true if n has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Clone returns a deep copy of the subtree rooted at n.
// Nodes are copied in pre-order. Cloning nil returns nil.
func (n *Node[T]) Clone() *Node[T] {
	if n == nil {
		return nil
	}

	c := NodeOf(n.Key)
	c.Left = n.Left.Clone()
	c.Right = n.Right.Clone()

	return c
}

// Order is the result of comparing two keys with Compare.
type Order int

const (
	Less Order = iota - 1
	Equal
	Greater
)

func (o Order) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	default:
		return "<invalid tree.Order>"
	}
}

// Compare returns the Order of l relative to r.
func Compare[T constraints.Ordered](l, r T) Order {
	if l < r {
		return Less
	} else if l > r {
		return Greater
	} else {
		return Equal
	}
}
