package iterator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.lepak.sg/adt/chops"
	"go.lepak.sg/adt/tree"
)

func newCompleteTree_2Tall() *tree.Node[int] {
	return &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 1,
			},
			Key: 2,
			Right: &tree.Node[int]{
				Key: 3,
			},
		},
		Key: 4,
		Right: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 5,
			},
			Key: 6,
			Right: &tree.Node[int]{
				Key: 7,
			},
		},
	}
}

func newDogleg() *tree.Node[int] {
	return &tree.Node[int]{
		Left: &tree.Node[int]{
			Left: &tree.Node[int]{
				Key: 1,
			},
			Key: 5,
			Right: &tree.Node[int]{
				Left: &tree.Node[int]{
					Key: 6,
				},
				Key: 7,
			},
		},
		Key: 8,
		Right: &tree.Node[int]{
			Key: 9,
		},
	}
}

func TestInOrder(t *testing.T) {
	tests := []struct {
		name       string
		create     func() *tree.Node[int]
		heightHint int
		post       func(t *testing.T, i *InOrder[int])
	}{
		{
			name: "empty",
			create: func() *tree.Node[int] {
				return nil
			},
			post: func(t *testing.T, i *InOrder[int]) {
				assert.False(t, i.Next(), "first")
				assert.False(t, i.Next(), "again")
			},
		},
		{
			name: "one",
			create: func() *tree.Node[int] {
				return tree.NodeOf(1)
			},
			post: func(t *testing.T, i *InOrder[int]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.False(t, i.Next(), "second")
				assert.False(t, i.Next(), "third")
			},
		},
		{
			name:   "height=2",
			create: newCompleteTree_2Tall,
			post: func(t *testing.T, i *InOrder[int]) {
				assert.True(t, i.Next(), "first")
				assert.Equal(t, 1, i.Item())
				assert.True(t, i.Next(), "second")
				assert.Equal(t, 2, i.Item())
				assert.True(t, i.Next(), "third")
				assert.Equal(t, 3, i.Item())
				assert.True(t, i.Next(), "fourth")
				assert.Equal(t, 4, i.Item())
				assert.True(t, i.Next(), "fifth")
				assert.Equal(t, 5, i.Item())
				assert.True(t, i.Next(), "sixth")
				assert.Equal(t, 6, i.Item())
				assert.True(t, i.Next(), "seventh")
				assert.Equal(t, 7, i.Item())
				assert.False(t, i.Next(), "eighth")
			},
		},
		{
			name:       "dogleg",
			create:     newDogleg,
			heightHint: 3,
			post: func(t *testing.T, i *InOrder[int]) {
				assert.Equal(t, []int{1, 5, 6, 7, 8, 9}, chops.Collect[int](i, 0))
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.post(t, NewInOrder(tt.create(), tt.heightHint))
		})
	}
}

func TestInOrder_NilReceiver(t *testing.T) {
	var i *InOrder[int]
	assert.False(t, i.Next())
}
