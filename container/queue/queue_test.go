package queue_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lrleon/Aleph-w-sub008/container/queue"
)

func TestQueueFIFOOrder(t *testing.T) {
	q := queue.New[int]()
	assert.True(t, q.Empty())
	q.Push(1)
	q.Push(2)
	q.Push(3)
	assert.Equal(t, 3, q.Len())
	assert.Equal(t, 1, q.Pop())
	assert.Equal(t, 2, q.Pop())
	assert.Equal(t, 3, q.Pop())
	assert.True(t, q.Empty())
}
