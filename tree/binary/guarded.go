package binary

import (
	"sync"

	"golang.org/x/exp/constraints"
)

// Guarded is a Tree that is safe for concurrent use.
// Writers hold an exclusive lock for the whole rewrite,
// readers share a read lock.
// The zero Guarded is an empty tree ready for use.
type Guarded[T constraints.Ordered] struct {
	mu sync.RWMutex
	t  Tree[T]
}

// NewGuarded takes ownership of tr and returns it wrapped in a Guarded.
// tr must not be used directly afterwards. A nil tr is treated as empty.
func NewGuarded[T constraints.Ordered](tr *Tree[T]) *Guarded[T] {
	g := &Guarded[T]{}
	if tr != nil {
		g.t.root = tr.root
	}
	return g
}

// Add adds k under the write lock.
func (g *Guarded[T]) Add(k T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.t.Add(k)
}

// Remove removes one k under the write lock. See Tree.Remove.
func (g *Guarded[T]) Remove(k T) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.t.Remove(k)
}

// Contains reports whether k is in the tree.
func (g *Guarded[T]) Contains(k T) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.t.Contains(k)
}

// Len returns the number of keys in the tree.
func (g *Guarded[T]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.t.Len()
}

// Height returns the height of the tree. See Tree.Height.
func (g *Guarded[T]) Height() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.t.Height()
}

// Balanced is Tree.Balanced under the read lock.
func (g *Guarded[T]) Balanced() (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.t.Balanced()
}

// InOrderSlice returns the keys in sorted order.
func (g *Guarded[T]) InOrderSlice() []T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.t.InOrderSlice()
}

// Snapshot returns a deep copy of the tree as it is now.
// The copy is not guarded and may be used freely.
func (g *Guarded[T]) Snapshot() *Tree[T] {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.t.Copy()
}
