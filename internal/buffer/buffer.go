// Package buffer provides a bounded FIFO that sheds its oldest element on
// overflow instead of blocking the writer.
package buffer

import (
	"sync"

	"github.com/pkg/errors"
)

// Bounded is a fixed-capacity FIFO queue shared between one producer and many
// consumers. When full, Push evicts the oldest element so the writer never
// waits; Pop blocks until an element arrives or the queue is closed and
// drained. Safe for concurrent use.
type Bounded[T any] struct {
	mu       sync.Mutex
	notEmpty *sync.Cond
	items    []T
	head     int
	size     int
	closed   bool
}

// New returns an empty queue holding at most capacity elements.
func New[T any](capacity int) (*Bounded[T], error) {
	if capacity <= 0 {
		return nil, errors.Errorf("capacity must be positive, got %d", capacity)
	}
	b := &Bounded[T]{items: make([]T, capacity)}
	b.notEmpty = sync.NewCond(&b.mu)
	return b, nil
}

// Push appends item at the tail. If the queue is full the oldest element is
// evicted to make room; evicted reports whether that happened. Pushing into a
// closed queue drops the item and returns false.
func (b *Bounded[T]) Push(item T) (evicted bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return false
	}
	if b.size == len(b.items) {
		// Full: the tail slot coincides with the head, so writing the new
		// item over the head and advancing it evicts the oldest element.
		b.items[b.head] = item
		b.head = (b.head + 1) % len(b.items)
		b.notEmpty.Signal()
		return true
	}
	b.items[(b.head+b.size)%len(b.items)] = item
	b.size++
	b.notEmpty.Signal()
	return false
}

// Pop removes and returns the oldest element, blocking while the queue is
// empty and open. Once the queue is closed and drained it returns the zero
// value and false.
func (b *Bounded[T]) Pop() (T, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for b.size == 0 && !b.closed {
		b.notEmpty.Wait()
	}
	var zero T
	if b.size == 0 {
		return zero, false
	}
	item := b.items[b.head]
	b.items[b.head] = zero
	b.head = (b.head + 1) % len(b.items)
	b.size--
	return item, true
}

// Close marks the queue closed and wakes every blocked reader. Elements
// already queued remain poppable; further pushes are dropped. Safe to call
// more than once.
func (b *Bounded[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	b.notEmpty.Broadcast()
}

// Len returns the number of currently queued elements.
func (b *Bounded[T]) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}

// Empty reports whether the queue currently holds no elements.
func (b *Bounded[T]) Empty() bool {
	return b.Len() == 0
}

// Cap returns the fixed capacity of the queue.
func (b *Bounded[T]) Cap() int {
	return len(b.items)
}
