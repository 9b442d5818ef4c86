package binary

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestGuarded(t *testing.T) {
	var g Guarded[int]

	_, err := g.Balanced()
	assert.ErrorIs(t, err, ErrEmptyTree)

	g.Add(2)
	g.Add(1)
	g.Add(3)
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, 2, g.Height())
	assert.True(t, g.Contains(1))

	ok, err := g.Balanced()
	assert.NoError(t, err)
	assert.True(t, ok)

	assert.True(t, g.Remove(1))
	assert.False(t, g.Remove(1))
	assert.Equal(t, []int{2, 3}, g.InOrderSlice())

	snap := g.Snapshot()
	snap.Add(10)
	assert.False(t, g.Contains(10))
}

func TestNewGuarded(t *testing.T) {
	g := NewGuarded(FromSlice(scenario))
	assert.Equal(t, 7, g.Len())

	assert.Equal(t, 0, NewGuarded[int](nil).Len())
}

func TestGuarded_Concurrent(t *testing.T) {
	defer goleak.VerifyNone(t)

	g := &Guarded[int]{}
	const writers, perWriter = 8, 100

	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(2)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				g.Add(w*perWriter + i)
			}
		}(w)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_ = g.Contains(i)
				_ = g.Len()
			}
		}()
	}
	wg.Wait()

	in := g.InOrderSlice()
	assert.Len(t, in, writers*perWriter)
	for i, k := range in {
		assert.Equal(t, i, k)
	}
}
