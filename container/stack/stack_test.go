package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lrleon/Aleph-w-sub008/container/stack"
)

func TestStackLIFOOrder(t *testing.T) {
	s := stack.New[int]()
	assert.True(t, s.Empty())
	s.Push(1)
	s.Push(2)
	s.Push(3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Pop())
	assert.Equal(t, 2, s.Pop())
	assert.Equal(t, 1, s.Pop())
	assert.True(t, s.Empty())
}
