package binary

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"go.lepak.sg/adt/chops"
	"go.lepak.sg/adt/tree"
	"go.lepak.sg/adt/tree/iterator"
	"golang.org/x/exp/constraints"
)

// ErrEmptyTree is returned by queries that are undefined on an empty tree.
var ErrEmptyTree = errors.New("binary: tree is empty")

// Tree is a binary search tree. It is safe for concurrent reads
// (searching, iterating, etc) but not for concurrent reads and writes
// (adding or removing). Wrap it in a Guarded if you need that.
//
// The zero Tree may be used immediately. Tree should not be passed
// around as a value (ie. just use &Tree{} or New when creating one),
// use Copy to get an independent tree.
//
// This tree is not self-balancing. Balanced only reports on the shape.
//
// Invariants, kept by Add and Remove:
//  - At any node N in the tree, all node keys in the subtree rooted at N.Left
//    will be less than or equal to N.Key
//  - At any node N in the tree, all node keys in the subtree rooted at N.Right
//    will be greater than N.Key
//  - Duplicates are allowed. A key equal to N.Key is always added
//    to the left of N.
//
// Vine relaxes the second rule to greater than or equal.
type Tree[T constraints.Ordered] struct {
	// the tree is rooted here.
	// don't return nodes directly - client could mutate data or children!
	root *tree.Node[T]
}

// New returns an empty tree.
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// NewWithRoot returns a tree holding only k.
func NewWithRoot[T constraints.Ordered](k T) *Tree[T] {
	return &Tree[T]{root: tree.NodeOf(k)}
}

// FromSlice returns a tree built by adding each of items in order.
// items does not need to be sorted. Sorted input produces
// a degenerate tree, this does not try to balance anything.
func FromSlice[S ~[]T, T constraints.Ordered](items S) *Tree[T] {
	tr := &Tree[T]{}
	for _, k := range items {
		tr.Add(k)
	}
	return tr
}

// Copy returns a deep copy of the tree with the same shape.
// The copy shares no nodes with t.
func (t *Tree[T]) Copy() *Tree[T] {
	return &Tree[T]{root: t.root.Clone()}
}

// IsEmpty returns true if there are no keys in the tree.
func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

// Height returns the number of nodes on the longest path from
// the root to a leaf. An empty tree has height 0.
func (t *Tree[T]) Height() int {
	return height(t.root)
}

func height[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}

	l, r := height(n.Left), height(n.Right)
	if l > r {
		return l + 1
	}
	return r + 1
}

// Len returns the number of nodes in the tree.
func (t *Tree[T]) Len() int {
	return count(t.root)
}

func count[T constraints.Ordered](n *tree.Node[T]) int {
	if n == nil {
		return 0
	}

	return 1 + count(n.Left) + count(n.Right)
}

// Balanced compares the heights of the root's two subtrees
// and returns true if they differ by at most 1.
// Only the root is checked, the subtrees themselves may be
// arbitrarily lopsided.
// An empty tree has no root to check and returns ErrEmptyTree.
func (t *Tree[T]) Balanced() (bool, error) {
	if t.root == nil {
		return false, ErrEmptyTree
	}

	diff := height(t.root.Left) - height(t.root.Right)
	return diff >= -1 && diff <= 1, nil
}

// Contains searches for k in the tree and returns true if it was found.
func (t *Tree[T]) Contains(k T) bool {
	return find(t.root, k) != nil
}

func find[T constraints.Ordered](n *tree.Node[T], k T) *tree.Node[T] {
	if n == nil {
		return nil
	}

	switch tree.Compare(k, n.Key) {
	case tree.Less:
		return find(n.Left, k)
	case tree.Greater:
		return find(n.Right, k)
	case tree.Equal:
		return n
	default:
		panic("unreachable")
	}
}

// Less returns the largest key in the tree
// that is less than k.
// If there is no key in the tree less than k,
// p is the zero T and ok is false.
func (t *Tree[T]) Less(k T) (p T, ok bool) {
	// Every time we go right, the node we left from is less than k
	// and larger than anything we saw before it.
	n := t.root
	for n != nil {
		if n.Key < k {
			p, ok = n.Key, true
			n = n.Right
		} else {
			n = n.Left
		}
	}

	return
}

// Min returns the smallest key in the tree.
// ok is false if the tree is empty.
func (t *Tree[T]) Min() (k T, ok bool) {
	n := t.root
	if n == nil {
		return
	}

	for n.Left != nil {
		n = n.Left
	}

	return n.Key, true
}

// Max returns the largest key in the tree.
// ok is false if the tree is empty.
func (t *Tree[T]) Max() (k T, ok bool) {
	n := t.root
	if n == nil {
		return
	}

	for n.Right != nil {
		n = n.Right
	}

	return n.Key, true
}

// Add adds k to the tree. If k is already in the tree,
// the new node goes into the left subtree of the existing one.
func (t *Tree[T]) Add(k T) {
	t.root = add(t.root, k)
}

// add returns the new root of the subtree rooted at n after adding k.
func add[T constraints.Ordered](n *tree.Node[T], k T) *tree.Node[T] {
	if n == nil {
		return tree.NodeOf(k)
	}

	if tree.Compare(k, n.Key) == tree.Greater {
		n.SetRight(add(n.Right, k))
	} else {
		n.SetLeft(add(n.Left, k))
	}

	return n
}

// Remove removes one node holding k from the tree and returns true.
// If k is not in the tree, the tree is unchanged and Remove returns false.
func (t *Tree[T]) Remove(k T) bool {
	var ok bool
	t.root, ok = remove(t.root, k)
	return ok
}

// remove returns the new root of the subtree rooted at n after
// removing k, and whether k was found.
func remove[T constraints.Ordered](n *tree.Node[T], k T) (*tree.Node[T], bool) {
	if n == nil {
		return nil, false
	}

	var ok bool
	switch tree.Compare(k, n.Key) {
	case tree.Less:
		n.Left, ok = remove(n.Left, k)
	case tree.Greater:
		n.Right, ok = remove(n.Right, k)
	case tree.Equal:
		return removeNode(n), true
	default:
		panic("unreachable")
	}

	return n, ok
}

// removeNode unlinks n and returns whatever replaces it.
func removeNode[T constraints.Ordered](n *tree.Node[T]) *tree.Node[T] {
	switch {
	case n.IsLeaf():
		return nil
	case n.Left == nil:
		return n.Right
	case n.Right == nil:
		return n.Left
	}

	// Two children: pull up the in-order successor,
	// which has no left child.
	right, succ := removeLeftmost(n.Right)

	// Copies of succ left behind in the right subtree would sit to the
	// right of an equal key. Every key on the left is less than succ,
	// so they go in as the new largest keys there.
	for right != nil && tree.Compare(leftmost(right).Key, succ) == tree.Equal {
		right, _ = removeLeftmost(right)
		n.SetLeft(add(n.Left, succ))
	}

	n.SetRight(right)
	n.SetKey(succ)

	return n
}

func leftmost[T constraints.Ordered](n *tree.Node[T]) *tree.Node[T] {
	for n.Left != nil {
		n = n.Left
	}
	return n
}

// removeLeftmost removes the leftmost node under n. It returns the
// new root of the subtree and the key of the removed node.
func removeLeftmost[T constraints.Ordered](n *tree.Node[T]) (*tree.Node[T], T) {
	if n.Left == nil {
		k := n.Key
		return removeNode(n), k
	}

	var k T
	n.Left, k = removeLeftmost(n.Left)
	return n, k
}

// Clear removes every key from the tree.
func (t *Tree[T]) Clear() {
	t.root = nil
}

// Vine rearranges the tree so that no node has a left child.
// The smallest key becomes the root and every other key hangs off
// the right of the one before it, like a sorted linked list.
// The in-order sequence and number of nodes do not change.
// Equal keys may end up to the right of each other, which Contains,
// Add and Remove all tolerate.
func (t *Tree[T]) Vine() {
	pseudo := &tree.Node[T]{Right: t.root}

	tail, rest := pseudo, t.root
	for rest != nil {
		if rest.Left == nil {
			tail, rest = rest, rest.Right
		} else {
			rest = rest.RotateRight()
			tail.Right = rest
		}
	}

	t.root = pseudo.Right
}

// PreOrder applies f to each key in the tree in pre-order.
// If f returns false, the iteration is stopped early.
// This does not recurse, so it is safe on degenerate trees.
func (t *Tree[T]) PreOrder(f func(k T) bool) {
	i := t.PreOrderIterator()
	for i.Next() {
		if !f(i.Item()) {
			return
		}
	}
}

// InOrder applies f to each key in the tree in-order.
// If f returns false, the iteration is stopped early.
func (t *Tree[T]) InOrder(f func(k T) bool) {
	if t.root != nil {
		t.visitInOrder(t.root, f)
	}
}

func (t *Tree[T]) visitInOrder(n *tree.Node[T], f func(k T) bool) bool {
	// Classic recursive in-order iteration.
	// Compare this to iterator.InOrder which is not recursive
	if n.Left != nil {
		if !t.visitInOrder(n.Left, f) {
			return false
		}
	}

	if !f(n.Key) {
		return false
	}

	if n.Right != nil {
		if !t.visitInOrder(n.Right, f) {
			return false
		}
	}

	return true
}

// PreOrderSlice returns the keys of the tree in pre-order.
func (t *Tree[T]) PreOrderSlice() []T {
	return chops.Collect[T](t.PreOrderIterator(), 0)
}

// InOrderSlice returns the keys of the tree in-order,
// which is sorted in non-decreasing order.
func (t *Tree[T]) InOrderSlice() []T {
	return chops.Collect[T](t.InOrderIterator(), 0)
}

// DisplayPreorder writes the keys of the tree in pre-order to w,
// separated by spaces and terminated by a newline.
func (t *Tree[T]) DisplayPreorder(w io.Writer) error {
	var sb strings.Builder

	first := true
	t.PreOrder(func(k T) bool {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		sb.WriteString(fmt.Sprint(k))
		return true
	})
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("display preorder: %w", err)
	}

	return nil
}

// InOrderCoroutine starts coroutine-style in-order iteration.
// The usage is as follows:
//
//	co := t.InOrderCoroutine()
//	for k := range co.Items() {
//		... do stuff with k ...
//		if k meets some stopping condition {
//			co.Stop()
//			break
//		}
//	}
//
// Note: InOrderCoroutine starts a goroutine, which exits when either
// Stop() is called or the iteration is finished.
// If you follow the usage above, the goroutine will not live beyond
// the end of the for-range loop.
func (t *Tree[T]) InOrderCoroutine() chops.CoIterator[T] {
	// ?? Why can't T be inferred for CoIterate ??
	return chops.CoIterate[T](t.InOrderIterator())
}

// InOrderIterator returns an iterator object that yields
// keys from the tree in-order.
func (t *Tree[T]) InOrderIterator() *iterator.InOrder[T] {
	return iterator.NewInOrder(t.root, 0)
}

// InOrderReverseIterator returns an iterator object that yields
// keys from the tree in reverse order, largest first.
func (t *Tree[T]) InOrderReverseIterator() *iterator.InOrderReverse[T] {
	return iterator.NewInOrderReverse(t.root, 0)
}

// PreOrderIterator returns an iterator object that yields
// keys from the tree in pre-order.
func (t *Tree[T]) PreOrderIterator() *iterator.PreOrder[T] {
	return iterator.NewPreOrder(t.root, 0)
}

// String returns a string representation of the tree.
// A complete binary tree with height 3 would look like this:
//	4
//	├─L─2
//	│   ├─L─1
//	│   └─R─3
//	└─R─6
//	    ├─L─5
//	    └─R─7
func (t *Tree[T]) String() string {
	var sb strings.Builder

	if t.root == nil {
		return ""
	}

	printvisit(&sb, t.root, "", "", true, false)

	return sb.String()
}

const (
	treeMidBranch    = "├─"
	treeLastBranch   = "└─"
	treeLeftBranch   = "L─"
	treeRightBranch  = "R─"
	treeMidContinue  = "│   "
	treeLastContinue = "    "
)

func printvisit[T constraints.Ordered](
	sb *strings.Builder, n *tree.Node[T], prefix, branch string, initial, isMid bool) {
	if !initial {
		sb.WriteString(prefix)
		if isMid {
			prefix += treeMidContinue
			sb.WriteString(treeMidBranch)
		} else {
			prefix += treeLastContinue
			sb.WriteString(treeLastBranch)
		}
		sb.WriteString(branch)
	}
	sb.WriteString(fmt.Sprint(n.Key))
	sb.WriteRune('\n')

	if n.Left != nil {
		printvisit(sb, n.Left, prefix, treeLeftBranch, false, n.Right != nil)
	}

	if n.Right != nil {
		printvisit(sb, n.Right, prefix, treeRightBranch, false, false)
	}
}
