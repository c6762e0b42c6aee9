// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package queue

// Linked provides a FIFO queue stored in a singly linked list. Items are
// enqueued at the tail and dequeued from the head.
type Linked[T any] struct {
	sentinel node[T] // sentinel to avoid having to handle head/tail corner cases.
	tail     *node[T]
	len      int
}

type node[T any] struct {
	next *node[T]
	val  T
}

// NewLinked creates a new, empty, linked queue.
func NewLinked[T any]() *Linked[T] {
	l := &Linked[T]{}
	l.Reset()
	return l
}

// Reset empties the queue.
func (l *Linked[T]) Reset() {
	l.len = 0
	l.sentinel.next = &l.sentinel
	l.tail = &l.sentinel
}

// Len returns the current number of items in the queue.
func (l *Linked[T]) Len() int {
	return l.len
}

// IsEmpty returns true if the queue contains no items.
func (l *Linked[T]) IsEmpty() bool {
	return l.len == 0
}

// Enqueue implements Interface.
func (l *Linked[T]) Enqueue(v T) int {
	if l.tail == nil {
		l.Reset()
	}
	n := &node[T]{val: v, next: &l.sentinel}
	l.tail.next = n
	l.tail = n
	l.len++
	return l.len
}

// Dequeue implements Interface.
func (l *Linked[T]) Dequeue() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	n := l.sentinel.next
	l.sentinel.next = n.next
	if l.tail == n {
		l.tail = &l.sentinel
	}
	l.len--
	v := n.val
	*n = node[T]{}
	return v, true
}

// Front implements Interface.
func (l *Linked[T]) Front() (T, bool) {
	if l.len == 0 {
		var zero T
		return zero, false
	}
	return l.sentinel.next.val, true
}
