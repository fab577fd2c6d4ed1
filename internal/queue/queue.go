// Package queue provides a bounded FIFO of uint32 values backed by a
// circular buffer. It is the BFS frontier for the table build: capacity is
// fixed at construction to the total state count, so a correctly sized
// queue can never overflow.
package queue

import "errors"

// ErrFull is returned by Enqueue when the queue is at capacity.
var ErrFull = errors.New("queue: full")

// Queue is a fixed-capacity circular FIFO. The zero value is not usable;
// use New.
type Queue struct {
	buf  []uint32
	head int // index of the oldest element
	tail int // index of the next free cell
	used int
}

// New creates a queue holding at most capacity elements.
func New(capacity int) *Queue {
	return &Queue{buf: make([]uint32, capacity)}
}

// Enqueue appends v to the tail. Returns ErrFull when the queue is at
// capacity; the queue is left unchanged in that case.
func (q *Queue) Enqueue(v uint32) error {
	if q.used == len(q.buf) {
		return ErrFull
	}
	q.buf[q.tail] = v
	q.tail++
	if q.tail == len(q.buf) {
		q.tail = 0
	}
	q.used++
	return nil
}

// Dequeue removes and returns the head. The second return value is false
// when the queue is empty.
func (q *Queue) Dequeue() (uint32, bool) {
	if q.used == 0 {
		return 0, false
	}
	v := q.buf[q.head]
	q.head++
	if q.head == len(q.buf) {
		q.head = 0
	}
	q.used--
	return v, true
}

// Peek returns the head without removing it. The second return value is
// false when the queue is empty.
func (q *Queue) Peek() (uint32, bool) {
	if q.used == 0 {
		return 0, false
	}
	return q.buf[q.head], true
}

// Len returns the number of queued elements.
func (q *Queue) Len() int { return q.used }

// Cap returns the fixed capacity.
func (q *Queue) Cap() int { return len(q.buf) }
