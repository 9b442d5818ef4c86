// Package list provides a generic doubly linked list addressed by position.
package list

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrOutOfRange is returned when a position does not refer to
// an item in the list.
var ErrOutOfRange = errors.New("list: position out of range")

// Node is an element of a List.
type Node[T any] struct {
	Item T

	prev, next *Node[T]
}

// Next returns the node after n, or nil if n is the tail.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

// Prev returns the node before n, or nil if n is the head.
func (n *Node[T]) Prev() *Node[T] {
	return n.prev
}

// List is a doubly linked list. The zero value is an empty list
// ready to use.
// List is not safe for concurrent use.
type List[T any] struct {
	head, tail *Node[T]
	n          int
}

func New[T any]() *List[T] {
	return &List[T]{}
}

// Copy returns a copy of the list with new nodes.
// Pointer-typed items will still point to the same location in memory.
func (l *List[T]) Copy() *List[T] {
	lcopy := New[T]()
	for e := l.head; e != nil; e = e.next {
		lcopy.PushBack(e.Item)
	}
	return lcopy
}

func (l *List[T]) IsEmpty() bool {
	return l.n == 0
}

func (l *List[T]) Len() int {
	return l.n
}

// Head returns the first node, or nil if the list is empty.
func (l *List[T]) Head() *Node[T] {
	return l.head
}

// Tail returns the last node, or nil if the list is empty.
func (l *List[T]) Tail() *Node[T] {
	return l.tail
}

// node walks from whichever end is closer to pos.
// pos must be in [0, l.n).
func (l *List[T]) node(pos int) *Node[T] {
	if pos < l.n/2 {
		e := l.head
		for i := 0; i < pos; i++ {
			e = e.next
		}
		return e
	}

	e := l.tail
	for i := l.n - 1; i > pos; i-- {
		e = e.prev
	}
	return e
}

func (l *List[T]) checkPos(pos, limit int) error {
	if pos < 0 || pos >= limit {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, pos, l.n)
	}
	return nil
}

// Get returns the item at pos.
func (l *List[T]) Get(pos int) (T, error) {
	if err := l.checkPos(pos, l.n); err != nil {
		var zero T
		return zero, err
	}
	return l.node(pos).Item, nil
}

// insertBefore links e in front of at. If at is nil, e becomes the tail.
func (l *List[T]) insertBefore(e, at *Node[T]) {
	if e == nil {
		panic("nil node")
	}

	if at == nil {
		e.prev = l.tail
		e.next = nil
		if l.tail != nil {
			l.tail.next = e
		} else {
			l.head = e
		}
		l.tail = e
	} else {
		e.prev = at.prev
		e.next = at
		if at.prev != nil {
			at.prev.next = e
		} else {
			if l.head != at {
				panic("node has no previous node but it is not the head")
			}
			l.head = e
		}
		at.prev = e
	}

	l.n++
}

func (l *List[T]) unlink(e *Node[T]) {
	if e == nil {
		panic("nil node")
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		if l.head != e {
			panic("node has no previous node but it is not the head")
		}
		l.head = e.next
	}

	if e.next != nil {
		e.next.prev = e.prev
	} else {
		if l.tail != e {
			panic("node has no next node but it is not the tail")
		}
		l.tail = e.prev
	}

	e.prev, e.next = nil, nil
	l.n--
}

// Insert inserts v so that it ends up at pos. pos may be Len(),
// which appends v.
func (l *List[T]) Insert(pos int, v T) error {
	if err := l.checkPos(pos, l.n+1); err != nil {
		return err
	}

	var at *Node[T]
	if pos < l.n {
		at = l.node(pos)
	}
	l.insertBefore(&Node[T]{Item: v}, at)
	return nil
}

func (l *List[T]) PushBack(v T) {
	l.insertBefore(&Node[T]{Item: v}, nil)
}

func (l *List[T]) PushFront(v T) {
	l.insertBefore(&Node[T]{Item: v}, l.head)
}

// Remove removes the item at pos. It returns false if pos is out of range.
func (l *List[T]) Remove(pos int) bool {
	if l.checkPos(pos, l.n) != nil {
		return false
	}
	l.unlink(l.node(pos))
	return true
}

// PopBack removes the last item. It returns false if the list is empty.
func (l *List[T]) PopBack() bool {
	if l.tail == nil {
		return false
	}
	l.unlink(l.tail)
	return true
}

// PopFront removes the first item. It returns false if the list is empty.
func (l *List[T]) PopFront() bool {
	if l.head == nil {
		return false
	}
	l.unlink(l.head)
	return true
}

func (l *List[T]) Clear() {
	l.head, l.tail = nil, nil
	l.n = 0
}

// Swap exchanges the items at positions i and j. The nodes stay in place.
func (l *List[T]) Swap(i, j int) error {
	if err := l.checkPos(i, l.n); err != nil {
		return err
	}
	if err := l.checkPos(j, l.n); err != nil {
		return err
	}
	if i == j {
		return nil
	}

	a, b := l.node(i), l.node(j)
	a.Item, b.Item = b.Item, a.Item
	return nil
}

// Items returns the items from head to tail.
func (l *List[T]) Items() []T {
	items := make([]T, 0, l.n)
	for e := l.head; e != nil; e = e.next {
		items = append(items, e.Item)
	}
	return items
}

// Display writes the items separated by spaces and followed by a newline.
// Nothing is written for an empty list.
func (l *List[T]) Display(w io.Writer) error {
	if l.head == nil {
		return nil
	}

	var sb strings.Builder
	for e := l.head; e != nil; e = e.next {
		if e != l.head {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, e.Item)
	}
	sb.WriteByte('\n')

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}
