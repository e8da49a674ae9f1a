// Package frontier provides the typed FIFO, LIFO and priority collections the
// search packages keep their candidates in.
//
// All three wrap github.com/emirpasic/gods containers. The Heap adds an
// insertion sequence number as the last tie-break so that entries the caller's
// ordering considers equal still pop in a reproducible order.
package frontier

import (
	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/emirpasic/gods/trees/binaryheap"
	"github.com/emirpasic/gods/utils"
)

// Queue is a first-in first-out frontier (BFS).
type Queue[T any] struct {
	q *linkedlistqueue.Queue
}

// NewQueue returns an empty Queue.
func NewQueue[T any]() *Queue[T] {
	return &Queue[T]{q: linkedlistqueue.New()}
}

// Push appends v at the tail.
func (q *Queue[T]) Push(v T) { q.q.Enqueue(v) }

// Pop removes the head. ok is false when the queue is empty.
func (q *Queue[T]) Pop() (v T, ok bool) {
	raw, ok := q.q.Dequeue()
	if !ok {
		return v, false
	}

	return raw.(T), true
}

// Len returns the number of queued entries.
func (q *Queue[T]) Len() int { return q.q.Size() }

// Stack is a last-in first-out frontier (DFS, Minimax frames).
type Stack[T any] struct {
	s *arraystack.Stack
}

// NewStack returns an empty Stack.
func NewStack[T any]() *Stack[T] {
	return &Stack[T]{s: arraystack.New()}
}

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.s.Push(v) }

// Pop removes the top entry. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (v T, ok bool) {
	raw, ok := s.s.Pop()
	if !ok {
		return v, false
	}

	return raw.(T), true
}

// Peek returns the top entry without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	raw, ok := s.s.Peek()
	if !ok {
		return v, false
	}

	return raw.(T), true
}

// Len returns the number of stacked entries.
func (s *Stack[T]) Len() int { return s.s.Size() }

// Less orders two heap entries; it must be a strict weak ordering.
type Less[T any] func(a, b T) bool

// entry pairs a value with its insertion sequence.
type entry[T any] struct {
	v   T
	seq uint64
}

// Heap is a binary min-heap ordered by less, then by insertion order.
type Heap[T any] struct {
	h   *binaryheap.Heap
	seq uint64
}

// NewHeap returns an empty Heap ordered by less.
func NewHeap[T any](less Less[T]) *Heap[T] {
	var cmp utils.Comparator = func(a, b interface{}) int {
		x, y := a.(entry[T]), b.(entry[T])
		switch {
		case less(x.v, y.v):
			return -1
		case less(y.v, x.v):
			return 1
		case x.seq < y.seq:
			return -1
		case x.seq > y.seq:
			return 1
		}

		return 0
	}

	return &Heap[T]{h: binaryheap.NewWith(cmp)}
}

// Push inserts v. Complexity: O(log n).
func (h *Heap[T]) Push(v T) {
	h.seq++
	h.h.Push(entry[T]{v: v, seq: h.seq})
}

// Pop removes the minimum. ok is false when the heap is empty.
// Complexity: O(log n).
func (h *Heap[T]) Pop() (v T, ok bool) {
	raw, ok := h.h.Pop()
	if !ok {
		return v, false
	}

	return raw.(entry[T]).v, true
}

// Len returns the number of entries.
func (h *Heap[T]) Len() int { return h.h.Size() }
