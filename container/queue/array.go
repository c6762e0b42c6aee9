// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue

// Array provides a FIFO queue stored in a circular buffer that grows
// as needed.
type Array[T any] struct {
	storage []T
	// NOTE, if head==tail then the buffer is empty or holds a single
	// item, and used == 0 must be used to distinguish between these two
	// cases.
	used int
	head int // index of the first item.
	tail int // index of the last item.
}

// NewArray creates a new queue with the specified initial capacity.
func NewArray[T any](size int) *Array[T] {
	if size <= 0 {
		size = 1
	}
	return &Array[T]{
		storage: make([]T, size),
	}
}

// Len returns the current number of items in the queue.
func (a *Array[T]) Len() int {
	return a.used
}

// Cap returns the current capacity of the queue.
func (a *Array[T]) Cap() int {
	return len(a.storage)
}

// IsEmpty returns true if the queue contains no items.
func (a *Array[T]) IsEmpty() bool {
	return a.used == 0
}

func (a *Array[T]) grow(size int) {
	n := make([]T, size)
	switch {
	case a.head <= a.tail:
		a.tail = copy(n, a.storage[a.head:a.tail+1]) - 1
	default:
		c := copy(n, a.storage[a.head:])
		a.tail = c + copy(n[c:], a.storage[:a.tail+1]) - 1
	}
	a.head = 0
	a.storage = n
}

// Enqueue implements Interface. The capacity is doubled when the queue
// is full.
func (a *Array[T]) Enqueue(v T) int {
	if len(a.storage) == 0 {
		a.storage = make([]T, 1)
	}
	if a.used == len(a.storage) {
		a.grow(2 * len(a.storage))
	}
	if a.used == 0 {
		a.head, a.tail = 0, 0
	} else {
		a.tail = (a.tail + 1) % len(a.storage)
	}
	a.storage[a.tail] = v
	a.used++
	return a.used
}

// Dequeue implements Interface. The vacated slot is zeroed so that any
// pointers it held may be GC'd.
func (a *Array[T]) Dequeue() (T, bool) {
	var zero T
	if a.used == 0 {
		return zero, false
	}
	v := a.storage[a.head]
	a.storage[a.head] = zero
	a.head = (a.head + 1) % len(a.storage)
	a.used--
	return v, true
}

// Front implements Interface.
func (a *Array[T]) Front() (T, bool) {
	if a.used == 0 {
		var zero T
		return zero, false
	}
	return a.storage[a.head], true
}

// Reset empties the queue, retaining its current storage.
func (a *Array[T]) Reset() {
	clear(a.storage)
	a.used, a.head, a.tail = 0, 0, 0
}

// Compact reduces the storage used by the queue to the minimum
// necessary to store its current contents.
func (a *Array[T]) Compact() {
	if a.used == 0 {
		a.storage = make([]T, 1)
		a.head, a.tail = 0, 0
		return
	}
	a.grow(a.used)
}
