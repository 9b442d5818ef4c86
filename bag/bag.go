// Package bag provides an unordered collection that allows duplicates.
package bag

import (
	"errors"

	"golang.org/x/exp/slices"
)

const (
	DefaultCapacity = 100
)

// ErrFull is returned when a bag with a fixed capacity has no room left.
var ErrFull = errors.New("bag: full")

// Bag is an unordered collection of items backed by a slice.
// The order of items is not preserved across removals.
// Bag is not safe for concurrent use.
type Bag[T comparable] struct {
	items []T
	// max == 0 means the bag grows as needed
	max int
}

// New returns an empty Bag. If capacity > 0 the bag will never
// hold more than capacity items. Otherwise it grows as needed.
func New[T comparable](capacity int) *Bag[T] {
	if capacity < 0 {
		capacity = 0
	}

	return &Bag[T]{
		items: make([]T, 0, capacity),
		max:   capacity,
	}
}

// NewFixed returns an empty Bag holding at most DefaultCapacity items.
func NewFixed[T comparable]() *Bag[T] {
	return New[T](DefaultCapacity)
}

// Len returns the number of items in the bag.
func (b *Bag[T]) Len() int {
	return len(b.items)
}

// Cap returns the maximum number of items the bag can hold,
// or 0 if it grows as needed.
func (b *Bag[T]) Cap() int {
	return b.max
}

func (b *Bag[T]) IsEmpty() bool {
	return len(b.items) == 0
}

func (b *Bag[T]) full() bool {
	return b.max > 0 && len(b.items) >= b.max
}

// Frequency returns the number of times x is in the bag.
func (b *Bag[T]) Frequency(x T) int {
	n := 0
	for _, item := range b.items {
		if item == x {
			n++
		}
	}
	return n
}

func (b *Bag[T]) Contains(x T) bool {
	return slices.Index(b.items, x) >= 0
}

// Add adds x to the bag. It returns false if the bag is full.
func (b *Bag[T]) Add(x T) bool {
	if b.full() {
		return false
	}

	b.items = append(b.items, x)
	return true
}

// Remove removes one x from the bag and returns true.
// If x is not in the bag, Remove returns false.
func (b *Bag[T]) Remove(x T) bool {
	i := slices.Index(b.items, x)
	if i < 0 {
		return false
	}

	// if T is a pointer, this prevents the truncated item
	// from keeping *T alive
	var zero T
	last := len(b.items) - 1
	b.items[i], b.items[last] = b.items[last], zero
	b.items = b.items[:last]

	return true
}

// Clear removes every item from the bag. The capacity is kept.
func (b *Bag[T]) Clear() {
	var zero T
	for i := range b.items {
		b.items[i] = zero
	}
	b.items = b.items[:0]
}

// Items returns a copy of the items in the bag, in no particular order.
func (b *Bag[T]) Items() []T {
	return slices.Clone(b.items)
}

// Merge adds every item in other to b.
// If b fills up, Merge stops and returns the number of items
// that were added along with ErrFull.
func (b *Bag[T]) Merge(other *Bag[T]) (int, error) {
	// copy first so that b.Merge(b) terminates
	items := other.Items()
	for i, item := range items {
		if !b.Add(item) {
			return i, ErrFull
		}
	}

	return len(items), nil
}

// MergeDistinct adds the items in other that b does not already contain.
// Duplicates within other are only added once.
// If b fills up, MergeDistinct stops and returns the number of items
// that were added along with ErrFull.
func (b *Bag[T]) MergeDistinct(other *Bag[T]) (int, error) {
	added := 0
	for _, item := range other.Items() {
		if b.Contains(item) {
			continue
		}

		if !b.Add(item) {
			return added, ErrFull
		}
		added++
	}

	return added, nil
}
