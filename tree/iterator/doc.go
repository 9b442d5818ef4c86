// Package iterator provides tree iterators for use
// by tree implementations.
// Nodes have no parent pointers, so every iterator here keeps
// an explicit stack of the nodes it still has to come back to.
// Its depth is bounded by the height of the tree.
package iterator

import (
	"go.lepak.sg/adt/chops"
	"golang.org/x/exp/constraints"
)

// Iterator describes the common interface for all
// iterators in this package.
// Next must always be called before Item, even for
// the first round of iteration.
// If Next returns false, Item must not be called.
// Item may be called any number of times if the
// last call to Next returned true.
// The iterator may be abandoned at any time.
// The result of mutating the tree while iterating over it is undefined.
//
// The usual usage of an Iterator is like this:
//	i := someTree.InOrderIterator()
//	for i.Next() {
//		k := i.Item()
//		... do stuff with k, or break ...
//	}
type Iterator[T constraints.Ordered] interface {
	Next() bool
	Item() T
}

// Make sure this Iterator is kept in sync with the one in chops.
var _ chops.Iterator[int] = (Iterator[int])(nil)
