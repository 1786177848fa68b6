package intcode

import (
	"slices"
)

// Queue is a FIFO of Values.
type Queue struct {
	Data []Value
}

// Push appends values to the back of the queue.
func (q *Queue) Push(values ...Value) {
	q.Data = append(q.Data, values...)
}

// Pop removes and returns the front of the queue.
func (q *Queue) Pop() (value Value, ok bool) {
	value, ok = q.Peek()
	if ok {
		q.Data = q.Data[1:]
	}
	return
}

// Peek returns the front of the queue without removing it.
func (q *Queue) Peek() (value Value, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[0], true
}

// Len returns the number of queued values.
func (q *Queue) Len() int {
	return len(q.Data)
}

// Empty returns true if nothing is queued.
func (q *Queue) Empty() bool {
	return len(q.Data) == 0
}

// Reset drops all queued values.
func (q *Queue) Reset() {
	q.Data = nil
}

// Clone returns an independent copy.
func (q *Queue) Clone() Queue {
	return Queue{Data: slices.Clone(q.Data)}
}
