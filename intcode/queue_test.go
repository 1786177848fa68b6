package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueue_PushPop(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	assert.True(q.Empty())

	q.Push(Int(1), Int(2))
	q.Push(Int(3))
	assert.Equal(3, q.Len())

	for _, expect := range []int64{1, 2, 3} {
		value, ok := q.Pop()
		assert.True(ok)
		assert.Equal(Int(expect), value)
	}

	value, ok := q.Pop()
	assert.False(ok)
	assert.Equal(Zero, value)
}

func TestQueue_Peek(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	_, ok := q.Peek()
	assert.False(ok)

	q.Push(Int(5))
	value, ok := q.Peek()
	assert.True(ok)
	assert.Equal(Int(5), value)
	assert.Equal(1, q.Len())
}

func TestQueue_Reset(t *testing.T) {
	assert := assert.New(t)

	q := &Queue{}
	q.Push(Int(5), Int(6))
	dup := q.Clone()

	q.Reset()
	assert.True(q.Empty())
	assert.Equal(2, dup.Len())
}
