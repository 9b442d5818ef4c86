package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNodeOf(t *testing.T) {
	n := NodeOf("a")

	assert.Equal(t, "a", n.Key)
	assert.Nil(t, n.Left)
	assert.Nil(t, n.Right)
	assert.True(t, n.IsLeaf())

	n.SetKey("b")
	assert.Equal(t, "b", n.Key)
}

func TestNode_SetChildren(t *testing.T) {
	n := NodeOf(2)

	assert.Nil(t, n.SetLeft(NodeOf(1)))
	assert.False(t, n.IsLeaf())
	assert.Nil(t, n.SetRight(NodeOf(3)))

	old := n.SetLeft(nil)
	if assert.NotNil(t, old) {
		assert.Equal(t, 1, old.Key)
	}
	assert.False(t, n.IsLeaf(), "right child still present")

	old = n.SetRight(nil)
	if assert.NotNil(t, old) {
		assert.Equal(t, 3, old.Key)
	}
	assert.True(t, n.IsLeaf())
}

func TestNode_Clone(t *testing.T) {
	assert.Nil(t, (*Node[int])(nil).Clone())

	orig := newCompleteTree_2Tall()
	c := orig.Clone()

	assert.Equal(t, orig, c)
	assert.NotSame(t, orig, c)
	assert.NotSame(t, orig.Left, c.Left)
	assert.NotSame(t, orig.Right.Right, c.Right.Right)

	c.Left.Left.Key = 100
	c.Right = nil
	assert.Equal(t, 1, orig.Left.Left.Key)
	assert.NotNil(t, orig.Right)
}

func TestCompare(t *testing.T) {
	tests := []struct {
		l, r int
		want Order
	}{
		{1, 2, Less},
		{2, 2, Equal},
		{3, 2, Greater},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.l, tt.r))
		})
	}

	assert.Equal(t, Less, Compare("abc", "abd"))
	assert.Equal(t, "<invalid tree.Order>", Order(5).String())
}
